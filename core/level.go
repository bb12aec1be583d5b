package core

import (
	"strconv"
	"strings"
)

// Level is the severity rank of a log line. Higher is more severe.
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = 0
	// InfoLevel for general informational messages
	InfoLevel Level = 3
	// WarnLevel for conditions that deserve attention
	WarnLevel Level = 4
	// ErrorLevel for error messages (default minimum in production)
	ErrorLevel Level = 6
	// FatalLevel for unrecoverable conditions. Logging at this level does
	// not terminate the process.
	FatalLevel Level = 7
)

// LevelInfo binds a level name to its rank.
type LevelInfo struct {
	Name  string
	Level Level
}

// Levels is the closed severity table, most severe first. Every
// level-named method and predicate is derived from it.
var Levels = [...]LevelInfo{
	{Name: "fatal", Level: FatalLevel},
	{Name: "error", Level: ErrorLevel},
	{Name: "warn", Level: WarnLevel},
	{Name: "info", Level: InfoLevel},
	{Name: "debug", Level: DebugLevel},
}

// String returns the lower-case level name, or "level(N)" for a custom rank.
func (l Level) String() string {
	for _, info := range Levels {
		if info.Level == l {
			return info.Name
		}
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Enabled reports whether a line at l passes the minimum rank.
func (l Level) Enabled(minimum Level) bool {
	return l >= minimum
}

// ParseLevel looks up a level name case-insensitively. The boolean is false
// for names outside the table; callers fall back to their default rule.
func ParseLevel(s string) (Level, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	for _, info := range Levels {
		if info.Name == name {
			return info.Level, true
		}
	}
	return DebugLevel, false
}
