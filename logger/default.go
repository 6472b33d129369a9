package logger

import (
	"fmt"
	"sync"

	"github.com/philipp01105/namedlog/core"
)

var (
	defaultRegistry = NewBuilder().Build()
	defaultMu       sync.RWMutex
)

// Default returns the process-wide registry. It starts without a handler,
// so only WARN and above reach stderr until sinks are configured.
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide registry
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// GetLogger returns the named logger from the default registry, creating it
// on first use.
func GetLogger(name string) *Logger {
	return Default().Logger(name)
}

// Root returns the root logger of the default registry
func Root() *Logger {
	return Default().Root()
}

// Package-level convenience functions log through the default root logger.
// They call log directly so the caller skip matches the Logger methods.

// Debug logs a debug message using the default root logger
func Debug(msg string, fields ...core.Field) {
	if l := Root(); l.Enabled(core.DebugLevel) {
		l.log(core.DebugLevel, msg, fields)
	}
}

// Info logs an info message using the default root logger
func Info(msg string, fields ...core.Field) {
	if l := Root(); l.Enabled(core.InfoLevel) {
		l.log(core.InfoLevel, msg, fields)
	}
}

// Warn logs a warning message using the default root logger
func Warn(msg string, fields ...core.Field) {
	if l := Root(); l.Enabled(core.WarnLevel) {
		l.log(core.WarnLevel, msg, fields)
	}
}

// Error logs an error message using the default root logger
func Error(msg string, fields ...core.Field) {
	if l := Root(); l.Enabled(core.ErrorLevel) {
		l.log(core.ErrorLevel, msg, fields)
	}
}

// Debugf logs a formatted debug message using the default root logger
func Debugf(format string, args ...interface{}) {
	if l := Root(); l.Enabled(core.DebugLevel) {
		l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Infof logs a formatted info message using the default root logger
func Infof(format string, args ...interface{}) {
	if l := Root(); l.Enabled(core.InfoLevel) {
		l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Warnf logs a formatted warning message using the default root logger
func Warnf(format string, args ...interface{}) {
	if l := Root(); l.Enabled(core.WarnLevel) {
		l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Errorf logs a formatted error message using the default root logger
func Errorf(format string, args ...interface{}) {
	if l := Root(); l.Enabled(core.ErrorLevel) {
		l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
	}
}

// With creates a root logger child with additional fields
func With(fields ...core.Field) *Logger {
	return Root().With(fields...)
}
