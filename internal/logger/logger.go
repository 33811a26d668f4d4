// Package logger wraps zap with the key-value logging style used across the
// service.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type Logger struct {
	*zap.SugaredLogger
}

// Production returns a JSON logger at INFO level.
func Production() *Logger {
	return New(false)
}

// Development returns a console logger at DEBUG level with colored levels.
func Development() *Logger {
	return New(true)
}

func New(debug bool) *Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.MessageKey = "message"
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	base, err := cfg.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		base = zap.NewExample()
	}

	return &Logger{SugaredLogger: base.Sugar()}
}

// NewFromEnv picks Development when DEBUG_MODE is set or ENV is not production.
func NewFromEnv() *Logger {
	debug := os.Getenv("DEBUG_MODE") == "true" || os.Getenv("DEBUG_MODE") == "1"
	if os.Getenv("ENV") != "production" {
		debug = true
	}
	return New(debug)
}

// Nop discards everything. Used by tests and as a nil fallback.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Observed returns a logger whose entries can be inspected in tests.
func Observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func (l *Logger) WithFields(fields ...any) *Logger {
	return &Logger{SugaredLogger: l.With(fields...)}
}

func (l *Logger) Debug(msg string, fields ...any) { l.Debugw(msg, fields...) }
func (l *Logger) Info(msg string, fields ...any)  { l.Infow(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...any)  { l.Warnw(msg, fields...) }
func (l *Logger) Error(msg string, fields ...any) { l.Errorw(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...any) { l.Fatalw(msg, fields...) }

func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
