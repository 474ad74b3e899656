package cmd

import (
	"io"

	"github.com/CanonicalLtd/loopscroll"
	loglevels "github.com/CanonicalLtd/loopscroll/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Return the controller options needed to log messages at the given level
// to w, using either the stdlib or the zap backend. The stdlib backend only
// retains lines from the given origins, if any.
func logOptions(w io.Writer, format, level string, flag int, origins []string) ([]loopscroll.Option, error) {
	parsed, err := loglevels.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	options := []loopscroll.Option{loopscroll.LogLevel(level)}

	switch format {
	case "stdlib":
		options = append(options, loopscroll.StdLogger(loopscroll.NewLogger(w, level, flag, origins...)))
	case "zap":
		if len(origins) > 0 {
			return nil, errors.New("log origins are only supported by the stdlib backend")
		}
		options = append(options, loopscroll.ZapLogger(loopscroll.NewZapLogger(w, zapLevel(parsed))))
	default:
		return nil, errors.Errorf("unknown log format '%s'", format)
	}

	return options, nil
}

// Zap has no trace level, and reports trace messages at debug level.
func zapLevel(level loglevels.Level) zapcore.Level {
	switch level {
	case loglevels.Trace, loglevels.Debug:
		return zapcore.DebugLevel
	case loglevels.Info:
		return zapcore.InfoLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Discard all messages.
func discardLog() loopscroll.Option {
	return loopscroll.LogFunc(func(string, string) {})
}
