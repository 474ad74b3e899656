package log

import (
	"log"
	"testing"

	"go.uber.org/zap"
)

// Func is a generic interface that logs a message against a certain backend.
type Func func(level Level, message string) error

// Standard creates a log Func that delegates logging to the stdlib logger.
func Standard() Func {
	return func(level Level, message string) error {
		log.Printf("[%s] %s", level, message)
		return nil
	}
}

// Stdlib creates a log Func that delegates logging to the given stdlib
// logger, tagging each line with its level so that level filters like the
// ones from hashicorp/logutils can pick it up.
func Stdlib(logger *log.Logger) Func {
	return func(level Level, message string) error {
		return logger.Output(4, "["+level.String()+"] "+message)
	}
}

// Zap creates a log Func that delegates logging to the given zap logger.
//
// Zap has no trace level, so trace messages are emitted at debug level
// with a trace field set.
func Zap(logger *zap.Logger) Func {
	return func(level Level, message string) error {
		switch level {
		case Trace:
			logger.Debug(message, zap.Bool("trace", true))
		case Debug:
			logger.Debug(message)
		case Info:
			logger.Info(message)
		default:
			logger.Error(message)
		}
		return nil
	}
}

// Testing adapts a testing logger to the Func interface.
func Testing(t testing.TB) Func {
	return func(level Level, message string) error {
		t.Logf("[%s] %s", level, message)
		return nil
	}
}
