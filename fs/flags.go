package fs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to the upper-cased flag name, with - replaced
// by _, to give the environment variable which overrides its default.
const EnvPrefix = "EXACTJOIN_"

// AddFlags adds the non filing system specific flags to the command
func AddFlags(ci *ConfigInfo, flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&ci.Separator, "separator", "s", ci.Separator, "String placed between consecutive elements")
	flagSet.BoolVarP(&ci.Escape, "escape", "e", ci.Escape, "Interpret backslash escapes such as \\t and \\n in the separator")
	flagSet.BoolVarP(&ci.Zero, "zero", "z", ci.Zero, "Elements read from stdin are NUL separated instead of newline separated")
	flagSet.BoolVarP(&ci.SkipEmpty, "skip-empty", "", ci.SkipEmpty, "Drop empty elements before joining")
	flagSet.BoolVarP(&ci.Sort, "sort", "", ci.Sort, "Sort elements in byte order before joining")
	flagSet.StringVarP(&ci.Normalize, "normalize", "", ci.Normalize, "Unicode normalize elements: none|nfc|nfd|nfkc|nfkd")
	flagSet.BoolVarP(&ci.CheckUTF8, "check-utf8", "", ci.CheckUTF8, "Fail if the result is not valid UTF-8")
	flagSet.BoolVarP(&ci.Newline, "newline", "n", ci.Newline, "Write a newline after the result")
	flagSet.VarP(&ci.LogLevel, "log-level", "", "Log level DEBUG|INFO|NOTICE|ERROR")
	flagSet.StringVarP(&ci.LogFormat, "log-format", "", ci.LogFormat, "Log format text|json")
	flagSet.CountVarP(&ci.Verbose, "verbose", "v", "Print lots more stuff (repeat for more)")
	flagSet.IntVarP(&ci.GCPercent, "gc-percent", "", ci.GCPercent, "Garbage collection target percentage, -1 disables the collector")
	flagSet.StringVarP(&ci.MemoryLimit, "memory-limit", "", ci.MemoryLimit, "Soft memory limit for the Go runtime, eg 512MiB, or off")
}

// SetDefaultsFromEnv sets the default of every flag in flagSet which has a
// matching EXACTJOIN_ environment variable.
func SetDefaultsFromEnv(flagSet *pflag.FlagSet) error {
	var errs []error
	flagSet.VisitAll(func(flag *pflag.Flag) {
		key := EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag.Name, "-", "_"))
		value, found := os.LookupEnv(key)
		if !found {
			return
		}
		if err := flag.Value.Set(value); err != nil {
			errs = append(errs, fmt.Errorf("invalid value %q for environment variable %s: %w", value, key, err))
			return
		}
		flag.DefValue = value
	})
	return errors.Join(errs...)
}

// SetFlags resolves options which depend on each other once the flags
// have been parsed.
func SetFlags(ci *ConfigInfo, flagSet *pflag.FlagSet) error {
	if ci.Verbose > 0 {
		if flagSet.Changed("log-level") {
			return errors.New("can't set -v and --log-level")
		}
		if ci.Verbose >= 2 {
			ci.LogLevel = LogLevelDebug
		} else {
			ci.LogLevel = LogLevelInfo
		}
	}
	return nil
}
