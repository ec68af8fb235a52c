// Package zerologadapter adapts a github.com/rs/zerolog.Logger to the
// log.Logger interface.
package zerologadapter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hlandau/pgwire/log"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger wraps logger, tagging every entry with module=pgwire.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger.With().Str("module", "pgwire").Logger()}
}

func (a *Logger) Log(ctx context.Context, level log.LogLevel, msg string, data map[string]any) {
	var zlevel zerolog.Level
	switch level {
	case log.LogLevelNone:
		zlevel = zerolog.NoLevel
	case log.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case log.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case log.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	case log.LogLevelDebug:
		zlevel = zerolog.DebugLevel
	case log.LogLevelTrace:
		zlevel = zerolog.TraceLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	entry := a.logger.With().Fields(data).Logger()
	entry.WithLevel(zlevel).Msg(msg)
}
