package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	// globalLogger holds the logger set during application startup
	globalLogger *ZapLogger
	// defaultLogger is used until SetGlobalLogger is called
	defaultLogger *ZapLogger
	once          sync.Once
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger installs the logger used by the package level functions
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the logger set at startup, or a production logger
// when none was set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	logger := globalLogger
	mu.RUnlock()

	if logger != nil {
		return logger
	}

	once.Do(func() {
		l, _ := zap.NewProduction()
		defaultLogger = &ZapLogger{Logger: l}
	})
	return defaultLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}
