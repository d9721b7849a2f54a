package logger

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger with controls for levels and colors.
//
// Discrete messages (like Infof) get a newline appended before they're
// passed to Write().
type Logger interface {
	// log information that is only interesting when debugging strtok itself
	Debugf(format string, a ...interface{})

	// log information a user might want to see when a split doesn't look right
	Verbosef(format string, a ...interface{})

	// log information that we always want to show
	Infof(format string, a ...interface{})

	Warnf(format string, a ...interface{})

	Errorf(format string, a ...interface{})

	Write(level Level, bytes []byte)

	Level() Level

	SupportsColor() bool
}

type Level struct {
	name     string
	severity int32
}

func (l Level) String() string {
	return l.name
}

// If l is the logger level, determine if we should display
// logs of the given severity.
func (l Level) ShouldDisplay(log Level) bool {
	return l.severity <= log.severity
}

var (
	DebugLvl   = Level{name: "debug", severity: 100}
	VerboseLvl = Level{name: "verbose", severity: 200}
	InfoLvl    = Level{name: "info", severity: 300}
	WarnLvl    = Level{name: "warn", severity: 400}
	ErrorLvl   = Level{name: "error", severity: 500}
)

type contextKey struct{}

var loggerContextKey = contextKey{}

func Get(ctx context.Context) Logger {
	val := ctx.Value(loggerContextKey)

	if val != nil {
		return val.(Logger)
	}

	// No logger found in context, something is wrong.
	panic("Called logger.Get(ctx) on a context with no logger attached!")
}

func NewLogger(minLevel Level, writer io.Writer) Logger {
	// adapted from fatih/color
	supportsColor := true
	if os.Getenv("TERM") == "dumb" {
		supportsColor = false
	} else {
		file, isFile := writer.(*os.File)
		if isFile {
			fd := file.Fd()
			supportsColor = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		} else {
			supportsColor = false
		}
	}
	return NewFuncLogger(supportsColor, minLevel, func(level Level, bytes []byte) error {
		_, err := writer.Write(bytes)
		return err
	})
}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func getColor(l Logger, c color.Attribute) *color.Color {
	color := color.New(c)
	if !l.SupportsColor() {
		color.DisableColor()
	}
	return color
}

func Yellow(l Logger) *color.Color { return getColor(l, color.FgYellow) }
func Green(l Logger) *color.Color  { return getColor(l, color.FgGreen) }
func Red(l Logger) *color.Color    { return getColor(l, color.FgRed) }
