package logging

import (
	"context"
	"sync"
)

// Global logger with package-level convenience functions so callers do not
// have to thread a logger through every constructor.

var (
	globalMu     sync.RWMutex
	globalLogger *StructuredLogger
)

// Init replaces the global logger with one built from the given config
func Init(config *LoggerConfig) error {
	logger, err := NewStructuredLogger(config)
	if err != nil {
		return err
	}

	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
	return nil
}

// GetGlobalLogger returns the global logger, lazily creating a default one
func GetGlobalLogger() *StructuredLogger {
	globalMu.RLock()
	logger := globalLogger
	globalMu.RUnlock()

	if logger != nil {
		return logger
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = NewStructuredLogger(DefaultConfig())
	}
	return globalLogger
}

// Debug logs a debug message using the global logger
func Debug(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Debug(ctx, message, fields)
}

// Info logs an info message using the global logger
func Info(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Info(ctx, message, fields)
}

// Warn logs a warning message using the global logger
func Warn(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Warn(ctx, message, fields)
}

// Error logs an error message using the global logger
func Error(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Error(ctx, message, fields)
}

// WarnWithError logs a warning message with error details using the global logger
func WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	GetGlobalLogger().WarnWithError(ctx, message, err, fields)
}

// ErrorWithError logs an error message with error details using the global logger
func ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	GetGlobalLogger().ErrorWithError(ctx, message, err, fields)
}

// CacheOperation logs a cache get/set with its outcome
func CacheOperation(ctx context.Context, operation, key string, hit bool, fields Fields) {
	if fields == nil {
		fields = make(Fields)
	}
	fields[FieldCacheOperation] = operation
	fields[FieldCacheKey] = key
	fields[FieldCacheHit] = hit

	GetGlobalLogger().Debug(ctx, "Cache operation", fields)
}

// SetGlobalLogLevel sets the level of the global logger
func SetGlobalLogLevel(level LogLevel) {
	GetGlobalLogger().SetLevel(level)
}
