package logger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/logconf/logconfig"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The built-in configuration writes to stdout through the default formatter
	l, err := FromConfig(logconfig.New())
	if err != nil {
		panic(err)
	}
	defaultLogger = l
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger and returns the previous one
func SetDefault(l *Logger) *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultLogger
	defaultLogger = l
	return prev
}

// Apply builds a Logger from a rendered configuration and installs it as
// the default. It returns the previous default, which stays open: the
// caller closes it once nothing logs through it anymore. On error the
// default is left unchanged.
func Apply(config map[string]any) (*Logger, error) {
	l, err := New(config)
	if err != nil {
		return nil, err
	}
	return SetDefault(l), nil
}

// ApplyConfig is Apply(c.Render())
func ApplyConfig(c *logconfig.LogConfig) (*Logger, error) {
	return Apply(c.Render())
}

// Get returns a child of the default logger named name
func Get(name string) *zap.Logger {
	return Default().Named(name)
}

// Package-level convenience functions using the default logger

// caller reports the call site of the package-level functions
func caller() *zap.Logger {
	return Default().WithOptions(zap.AddCallerSkip(1))
}

// Debug logs a DEBUG record using the default logger
func Debug(msg string, fields ...zap.Field) {
	caller().Debug(msg, fields...)
}

// Info logs an INFO record using the default logger
func Info(msg string, fields ...zap.Field) {
	caller().Info(msg, fields...)
}

// Warning logs a WARNING record using the default logger
func Warning(msg string, fields ...zap.Field) {
	caller().Warn(msg, fields...)
}

// Error logs an ERROR record using the default logger
func Error(msg string, fields ...zap.Field) {
	caller().Error(msg, fields...)
}

// Critical logs a CRITICAL record using the default logger.
// It does not panic outside development mode.
func Critical(msg string, fields ...zap.Field) {
	caller().DPanic(msg, fields...)
}
