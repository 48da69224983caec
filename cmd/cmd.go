// Package cmd implements the exactjoin command line
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/darthshadow/exactjoin/fs"
	"github.com/darthshadow/exactjoin/lib/debug"
	"github.com/darthshadow/exactjoin/lib/join"
	"github.com/dustin/go-humanize"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

// NewRootCommand makes the exactjoin command, storing its options in ci.
func NewRootCommand(ci *fs.ConfigInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "exactjoin [flags] [element ...]",
		Short: "Join elements with a separator in a single allocation",
		Long: `Join the elements given as arguments, or read one per line from
stdin when there are none, placing the separator between each pair.

The output is written without a trailing newline unless --newline is set.
Every flag can also be set with an environment variable made of
EXACTJOIN_ and the flag name in upper case with - replaced by _,
eg EXACTJOIN_SEPARATOR=", ".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, args []string) error {
			return setup(ci, command)
		},
		RunE: func(command *cobra.Command, args []string) error {
			ctx, c := fs.AddConfig(command.Context())
			*c = *ci
			return run(ctx, args, command.InOrStdin(), command.OutOrStdout())
		},
	}
	fs.AddFlags(ci, root.Flags())
	return root
}

func setup(ci *fs.ConfigInfo, command *cobra.Command) error {
	if err := fs.SetFlags(ci, command.Flags()); err != nil {
		return err
	}
	if err := fs.InitLogging(ci, command.ErrOrStderr()); err != nil {
		return err
	}
	if _, err := debug.Apply(ci.GCPercent, ci.MemoryLimit); err != nil {
		return err
	}
	return nil
}

// run reads the elements, joins them and writes the result to out.
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	ci := fs.GetConfig(ctx)

	sep := ci.Separator
	if ci.Escape {
		var err error
		sep, err = unescape(sep)
		if err != nil {
			return err
		}
	}

	elems := args
	if len(elems) == 0 {
		var err error
		elems, err = readElements(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to read elements: %w", err)
		}
		fs.Debugf("stdin", "read %d elements", len(elems))
	}

	elems, err := transform(ctx, elems)
	if err != nil {
		return err
	}

	var result string
	if ci.CheckUTF8 {
		result, err = join.JoinUTF8(elems, sep)
	} else {
		result, err = join.TryJoin(elems, sep)
	}
	if errors.Is(err, join.ErrCapacityOverflow) {
		return fmt.Errorf("can't join %d elements: %w", len(elems), err)
	}
	if err != nil {
		return err
	}

	if ci.LogLevel >= fs.LogLevelDebug {
		fs.Debugf(nil, "Joined %d elements with a %d byte separator into %s (%d graphemes)",
			len(elems), len(sep), humanize.IBytes(uint64(len(result))), uniseg.GraphemeClusterCount(result))
	}

	return writeResult(out, result, ci.Newline)
}

// Main runs exactjoin
func Main() {
	ci := fs.GetConfig(context.Background())
	root := NewRootCommand(ci)
	if err := fs.SetDefaultsFromEnv(root.Flags()); err != nil {
		fs.Errorf(nil, "%v", err)
		os.Exit(1)
	}
	if err := root.Execute(); err != nil {
		fs.Errorf(nil, "%v", err)
		os.Exit(1)
	}
}
