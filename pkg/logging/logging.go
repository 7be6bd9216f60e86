package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields represents structured log fields
type Fields map[string]any

// Logger is the structured logging interface used across the codebase.
// Implementations must be safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

// zapLogger adapts a zap.Logger to the Logger interface
type zapLogger struct {
	zl *zap.Logger
}

var (
	defaultLogger Logger
	defaultOnce   sync.Once
)

// NewDefaultLogger returns the process-wide default logger, creating it on
// first use. Log level is controlled by the SYNTHGUARD_LOG_LEVEL environment
// variable (debug, info, warn, error; default info).
func NewDefaultLogger() Logger {
	defaultOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(os.Getenv("SYNTHGUARD_LOG_LEVEL")))
		zl, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			zl = zap.NewNop()
		}
		defaultLogger = &zapLogger{zl: zl}
	})
	return defaultLogger
}

// WithFields returns the default logger with the given fields attached
func WithFields(fields Fields) Logger {
	return NewDefaultLogger().WithFields(fields)
}

// NewNopLogger returns a logger that discards everything, for tests
func NewNopLogger() Logger {
	return &zapLogger{zl: zap.NewNop()}
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Debug(msg string, fields ...Fields) {
	l.zl.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Fields) {
	l.zl.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Fields) {
	l.zl.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(err error, msg string, fields ...Fields) {
	zf := zapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.zl.Error(msg, zf...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{zl: l.zl.With(zapFields([]Fields{fields})...)}
}

func zapFields(fieldMaps []Fields) []zap.Field {
	var zf []zap.Field
	for _, fm := range fieldMaps {
		for k, v := range fm {
			zf = append(zf, zap.Any(k, v))
		}
	}
	return zf
}
