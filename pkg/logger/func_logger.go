package logger

import (
	"fmt"
)

// A logger that writes all of its messages to `write`
type funcLogger struct {
	supportsColor bool
	level         Level
	write         func(level Level, b []byte) error
}

var _ Logger = funcLogger{}

func NewFuncLogger(supportsColor bool, level Level, write func(level Level, b []byte) error) Logger {
	return funcLogger{supportsColor, level, write}
}

func (l funcLogger) Level() Level {
	return l.level
}

func (l funcLogger) Infof(format string, a ...interface{}) {
	l.WriteString(InfoLvl, fmt.Sprintf(format+"\n", a...))
}

func (l funcLogger) Verbosef(format string, a ...interface{}) {
	l.WriteString(VerboseLvl, fmt.Sprintf(format+"\n", a...))
}

func (l funcLogger) Debugf(format string, a ...interface{}) {
	l.WriteString(DebugLvl, fmt.Sprintf(format+"\n", a...))
}

func (l funcLogger) Warnf(format string, a ...interface{}) {
	c := Yellow(l)
	l.WriteString(WarnLvl, c.Sprint("WARNING: ")+fmt.Sprintf(format+"\n", a...))
}

func (l funcLogger) Errorf(format string, a ...interface{}) {
	c := Red(l)
	l.WriteString(ErrorLvl, c.Sprint("ERROR: ")+fmt.Sprintf(format+"\n", a...))
}

func (l funcLogger) Write(level Level, bytes []byte) {
	if !l.level.ShouldDisplay(level) {
		return
	}
	_ = l.write(level, bytes)
}

func (l funcLogger) WriteString(level Level, s string) {
	l.Write(level, []byte(s))
}

func (l funcLogger) SupportsColor() bool {
	return l.supportsColor
}
