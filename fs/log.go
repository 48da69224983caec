package fs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevel describes exactjoin's logs.
type LogLevel byte

// Log levels. A log at a level is printed if the configured level is at
// least as verbose.
const (
	LogLevelError LogLevel = iota
	LogLevelNotice
	LogLevelInfo
	LogLevelDebug
)

var logLevelToString = []string{
	LogLevelError:  "ERROR",
	LogLevelNotice: "NOTICE",
	LogLevelInfo:   "INFO",
	LogLevelDebug:  "DEBUG",
}

var logLevelToLogrus = []logrus.Level{
	LogLevelError:  logrus.ErrorLevel,
	LogLevelNotice: logrus.WarnLevel,
	LogLevelInfo:   logrus.InfoLevel,
	LogLevelDebug:  logrus.DebugLevel,
}

// String turns a LogLevel into a string
func (l LogLevel) String() string {
	if int(l) >= len(logLevelToString) {
		return fmt.Sprintf("LogLevel(%d)", l)
	}
	return logLevelToString[l]
}

// Set a LogLevel
func (l *LogLevel) Set(s string) error {
	for n, name := range logLevelToString {
		if strings.EqualFold(s, name) {
			*l = LogLevel(n)
			return nil
		}
	}
	return fmt.Errorf("unknown log level %q", s)
}

// Type of the value
func (l *LogLevel) Type() string {
	return "string"
}

// Logger is where all exactjoin logs go. It writes to stderr until
// InitLogging is called.
var Logger = logrus.New()

// InitLogging points Logger at w and applies the level and format from ci.
func InitLogging(ci *ConfigInfo, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}
	if int(ci.LogLevel) >= len(logLevelToLogrus) {
		return fmt.Errorf("unknown log level %v", ci.LogLevel)
	}
	switch strings.ToLower(ci.LogFormat) {
	case "", "text":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006/01/02 15:04:05",
		})
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q: must be text or json", ci.LogFormat)
	}
	Logger.SetOutput(w)
	Logger.SetLevel(logLevelToLogrus[ci.LogLevel])
	return nil
}

// LogPrintf produces a log string from the arguments passed in
func LogPrintf(level LogLevel, o interface{}, text string, args ...interface{}) {
	out := fmt.Sprintf(text, args...)
	if o != nil {
		out = fmt.Sprintf("%v: %s", o, out)
	}
	switch level {
	case LogLevelDebug:
		Logger.Debug(out)
	case LogLevelInfo:
		Logger.Info(out)
	case LogLevelNotice:
		Logger.Warn(out)
	default:
		Logger.Error(out)
	}
}

// Errorf writes error log output for this Object or Fs.  It
// should always be seen by the user.
func Errorf(o interface{}, text string, args ...interface{}) {
	LogPrintf(LogLevelError, o, text, args...)
}

// Logf writes log output for this Object or Fs.  This should show
// up in the logs by default.
func Logf(o interface{}, text string, args ...interface{}) {
	LogPrintf(LogLevelNotice, o, text, args...)
}

// Infof writes info on transfers for this Object or Fs.  Use this
// level for logging things which the user might like to know about.
func Infof(o interface{}, text string, args ...interface{}) {
	LogPrintf(LogLevelInfo, o, text, args...)
}

// Debugf writes debugging output for this Object or Fs.  Use this for
// debug only.  The user must have to specify -vv to see this.
func Debugf(o interface{}, text string, args ...interface{}) {
	LogPrintf(LogLevelDebug, o, text, args...)
}
