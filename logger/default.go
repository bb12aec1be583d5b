package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/bufflog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Until SetLog is called, lines go straight to stdout.
	l, err := New(Config{
		Writer:      os.Stdout,
		AutoFlush:   true,
		Environment: core.EnvironmentFromEnv(),
	})
	if err != nil {
		panic(fmt.Sprintf("bufflog: default logger: %v", err))
	}
	defaultLogger = l
}

// Default returns the process-wide active logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLog closes the active logger, then builds a new one from cfg and
// installs it. If construction fails the error is returned and the closed
// logger stays installed, so later emissions report ErrClosed. An error
// from closing the previous logger is returned together with the newly
// installed Logger.
func SetLog(cfg Config) (*Logger, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	var err error
	if defaultLogger != nil {
		err = defaultLogger.Close()
	}

	l, newErr := New(cfg)
	if newErr != nil {
		return nil, multierr.Append(err, newErr)
	}
	defaultLogger = l
	return l, err
}

// SetDefault installs an already constructed logger, closing the previous
// one first unless it is the same instance.
func SetDefault(l *Logger) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	var err error
	if defaultLogger != nil && defaultLogger != l {
		err = defaultLogger.Close()
	}
	defaultLogger = l
	return err
}

// Package-level convenience functions using the default logger

// Fatal logs a fatal message using the default logger
func Fatal(msg string, extra ...func() string) (string, error) {
	return Default().Fatal(msg, extra...)
}

// Error logs an error message using the default logger
func Error(msg string, extra ...func() string) (string, error) {
	return Default().Error(msg, extra...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, extra ...func() string) (string, error) {
	return Default().Warn(msg, extra...)
}

// Info logs an info message using the default logger
func Info(msg string, extra ...func() string) (string, error) {
	return Default().Info(msg, extra...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, extra ...func() string) (string, error) {
	return Default().Debug(msg, extra...)
}

// Flush flushes the default logger
func Flush() error {
	return Default().Flush()
}

// Close closes the default logger
func Close() error {
	return Default().Close()
}
