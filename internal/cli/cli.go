package cli

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/tilt-dev/strtok/pkg/logger"
)

var debug bool
var verbose bool

func logLevel() logger.Level {
	if debug {
		return logger.DebugLvl
	} else if verbose {
		return logger.VerboseLvl
	} else {
		return logger.InfoLvl
	}
}

// Where a command reads and writes. Tokens go to Out, logs go to ErrOut.
type streams struct {
	Out    io.Writer
	ErrOut io.Writer
}

func stdStreams() streams {
	return streams{Out: os.Stdout, ErrOut: os.Stderr}
}

func Execute() {
	s := stdStreams()
	if err := execute(newRootCmd(s), s); err != nil {
		os.Exit(1)
	}
}

// Cobra's own error printing is silenced so that failures are reported
// once, through the logger.
func execute(cmd *cobra.Command, s streams) error {
	err := cmd.Execute()
	if err != nil {
		newLogger(logLevel(), s.ErrOut).Errorf("%v", err)
	}
	return err
}

func Cmd() *cobra.Command {
	return newRootCmd(stdStreams())
}

func newRootCmd(s streams) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strtok",
		Short: "Split strings on a literal delimiter, one token at a time",
		Long: `strtok splits a string on a literal delimiter, one token at a time.

The delimiter is matched byte for byte, never as a pattern. A source that ends
in the delimiter doesn't produce a trailing empty token.

With no subcommand, strtok runs the demo.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(s.Out)
	rootCmd.SetErr(s.ErrOut)

	demo := newDemoCmd(s)
	rootCmd.RunE = runWithLogger(demo, s)

	addCommand(rootCmd, demo, s)
	addCommand(rootCmd, newSplitCmd(s), s)
	addCommand(rootCmd, newVersionCmd(s), s)

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return rootCmd
}

type strtokCmd interface {
	register() *cobra.Command
	run(ctx context.Context, args []string) error
}

func addCommand(parent *cobra.Command, child strtokCmd, s streams) {
	cobraChild := child.register()
	cobraChild.RunE = runWithLogger(child, s)

	parent.AddCommand(cobraChild)
}

func runWithLogger(c strtokCmd, s streams) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logger.WithLogger(cmd.Context(), newLogger(logLevel(), s.ErrOut))
		return c.run(ctx, args)
	}
}

// Color detection needs the raw file, but writes go through colorable
// so that escape codes render on Windows consoles.
func newLogger(level logger.Level, w io.Writer) logger.Logger {
	l := logger.NewLogger(level, w)
	f, ok := w.(*os.File)
	if !ok {
		return l
	}

	cw := colorable.NewColorable(f)
	return logger.NewFuncLogger(l.SupportsColor(), level, func(level logger.Level, b []byte) error {
		_, err := cw.Write(b)
		return err
	})
}
