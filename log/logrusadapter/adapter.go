// Package logrusadapter adapts a github.com/sirupsen/logrus.Logger to the
// log.Logger interface.
package logrusadapter

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hlandau/pgwire/log"
)

type Logger struct {
	l *logrus.Logger
}

func NewLogger(l *logrus.Logger) *Logger {
	return &Logger{l: l}
}

func (a *Logger) Log(ctx context.Context, level log.LogLevel, msg string, data map[string]any) {
	var entry logrus.FieldLogger = a.l
	if data != nil {
		fields := make(logrus.Fields, len(data))
		for k, v := range data {
			fields[k] = v
		}
		entry = a.l.WithFields(fields)
	}

	switch level {
	case log.LogLevelTrace:
		entry.WithField("level", level.String()).Debug(msg)
	case log.LogLevelDebug:
		entry.Debug(msg)
	case log.LogLevelInfo:
		entry.Info(msg)
	case log.LogLevelWarn:
		entry.Warn(msg)
	case log.LogLevelError:
		entry.Error(msg)
	default:
		entry.WithField("level", level.String()).Error(msg)
	}
}
