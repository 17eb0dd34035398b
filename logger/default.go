package logger

import "sync"

var (
	defaultManager = NewManager()
	defaultMu      sync.RWMutex
)

// DefaultLoggerName is the logger the package-level log functions use.
const DefaultLoggerName = "default"

// Default returns the process-wide default manager.
func Default() *Manager {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultManager
}

// SetDefault replaces the process-wide default manager. Intended for
// tests and programs that build their own manager at startup.
func SetDefault(m *Manager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultManager = m
}

// GetLogger returns a named logger from the default manager, creating
// it with threshold NOTSET and no handlers if absent.
func GetLogger(name string) *Logger {
	return Default().GetLogger(name)
}

// Setup applies a declarative configuration to the default manager.
func Setup(cfg Config) error {
	return Default().Configure(cfg)
}

// Package-level convenience functions logging through the "default" logger

// Debug logs a debug message on the default logger
func Debug(msg any, args ...any) (any, error) {
	return GetLogger(DefaultLoggerName).Debug(msg, args...)
}

// Info logs an info message on the default logger
func Info(msg any, args ...any) (any, error) {
	return GetLogger(DefaultLoggerName).Info(msg, args...)
}

// Warn logs a warning message on the default logger
func Warn(msg any, args ...any) (any, error) {
	return GetLogger(DefaultLoggerName).Warn(msg, args...)
}

// Error logs an error message on the default logger
func Error(msg any, args ...any) (any, error) {
	return GetLogger(DefaultLoggerName).Error(msg, args...)
}

// Critical logs a critical message on the default logger
func Critical(msg any, args ...any) (any, error) {
	return GetLogger(DefaultLoggerName).Critical(msg, args...)
}
