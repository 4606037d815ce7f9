// Package obslog wraps zap for this repository's logging needs: a thin
// SugaredLogger wrapper with a mode-selected config and a handful of
// leveled methods plus With for attaching fields.
package obslog

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger wraps a zap.SugaredLogger.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a Logger for the given mode ("prod"/"production" selects
// zap's production config; anything else, including "", selects
// development).
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}

func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Fatalw(msg, keysAndValues...)
}

// With returns a child Logger carrying the given fields on every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}

// WithQuery returns a child Logger tagged with a fresh correlation id for
// one query or batch run, so every log line for that run can be grepped
// out of a concurrent batch's interleaved output.
func (l *Logger) WithQuery(className string) *Logger {
	return l.With("query_id", uuid.NewString(), "class", className)
}
