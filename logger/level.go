package logger

import (
	"github.com/philipp01105/bufflog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	FatalLevel = core.FatalLevel
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
)

// ParseLevel converts a level name to a Level. Unknown names report false.
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}

// The methods below are thin wrappers over Log and Enabled, one pair per
// entry of core.Levels, so every level behaves identically.

// Fatal logs at FatalLevel. It does not terminate the process.
func (l *Logger) Fatal(msg string, extra ...func() string) (string, error) {
	return l.Log(FatalLevel, msg, extra...)
}

// Error logs at ErrorLevel.
func (l *Logger) Error(msg string, extra ...func() string) (string, error) {
	return l.Log(ErrorLevel, msg, extra...)
}

// Warn logs at WarnLevel.
func (l *Logger) Warn(msg string, extra ...func() string) (string, error) {
	return l.Log(WarnLevel, msg, extra...)
}

// Info logs at InfoLevel.
func (l *Logger) Info(msg string, extra ...func() string) (string, error) {
	return l.Log(InfoLevel, msg, extra...)
}

// Debug logs at DebugLevel.
func (l *Logger) Debug(msg string, extra ...func() string) (string, error) {
	return l.Log(DebugLevel, msg, extra...)
}

// IsFatalEnabled reports whether Fatal would queue a line.
func (l *Logger) IsFatalEnabled() bool { return l.Enabled(FatalLevel) }

// IsErrorEnabled reports whether Error would queue a line.
func (l *Logger) IsErrorEnabled() bool { return l.Enabled(ErrorLevel) }

// IsWarnEnabled reports whether Warn would queue a line.
func (l *Logger) IsWarnEnabled() bool { return l.Enabled(WarnLevel) }

// IsInfoEnabled reports whether Info would queue a line.
func (l *Logger) IsInfoEnabled() bool { return l.Enabled(InfoLevel) }

// IsDebugEnabled reports whether Debug would queue a line.
func (l *Logger) IsDebugEnabled() bool { return l.Enabled(DebugLevel) }

// Emitter is a level-bound emission function.
type Emitter func(msg string, extra ...func() string) (string, error)

// Emitters returns one Emitter per entry of core.Levels, keyed by level
// name, for callers that dispatch on a level name at runtime.
func (l *Logger) Emitters() map[string]Emitter {
	out := make(map[string]Emitter, len(core.Levels))
	for _, info := range core.Levels {
		level := info.Level
		out[info.Name] = func(msg string, extra ...func() string) (string, error) {
			return l.Log(level, msg, extra...)
		}
	}
	return out
}
