package log

import (
	"fmt"
	"strings"
)

// Logger is a level-aware logger that formats messages and hands them to
// a Func. It's prefix-based friendly.
type Logger struct {
	f        Func
	level    Level
	prefixes []string
}

// New creates a new level-aware logger.
func New(f Func, level Level) *Logger {
	return &Logger{
		f:     f,
		level: level,
	}
}

// Augment returns a new logger which has the same settings as this
// one, but with its prefix augmented with the given string.
func (l *Logger) Augment(prefix string) *Logger {
	prefixes := make([]string, len(l.prefixes), len(l.prefixes)+1)
	copy(prefixes, l.prefixes)
	return &Logger{
		f:        l.f,
		level:    l.level,
		prefixes: append(prefixes, prefix),
	}
}

// Enabled returns true if messages at the given level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// Tracef logs messages at Trace level.
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.printf(Trace, format, v...)
}

// Debugf logs messages at Debug level.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.printf(Debug, format, v...)
}

// Infof logs messages at Info level.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.printf(Info, format, v...)
}

// Errorf logs messages at Error level.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.printf(Error, format, v...)
}

// Panicf logs messages at Panic level, then panics.
func (l *Logger) Panicf(format string, v ...interface{}) {
	l.printf(Panic, format, v...)
	panic(l.format(format, v...))
}

func (l *Logger) printf(level Level, format string, v ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.f(level, l.format(format, v...))
}

func (l *Logger) format(format string, v ...interface{}) string {
	message := fmt.Sprintf(format, v...)
	if len(l.prefixes) == 0 {
		return message
	}
	return strings.Join(l.prefixes, ": ") + ": " + message
}
