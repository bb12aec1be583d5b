package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{FatalLevel, "fatal"},
		{ErrorLevel, "error"},
		{WarnLevel, "warn"},
		{InfoLevel, "info"},
		{DebugLevel, "debug"},
		{Level(5), "level(5)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestLevels_Ranks(t *testing.T) {
	assert.Equal(t, Level(7), FatalLevel)
	assert.Equal(t, Level(6), ErrorLevel)
	assert.Equal(t, Level(4), WarnLevel)
	assert.Equal(t, Level(3), InfoLevel)
	assert.Equal(t, Level(0), DebugLevel)

	// Table is ordered most severe first.
	for i := 1; i < len(Levels); i++ {
		assert.Greater(t, int(Levels[i-1].Level), int(Levels[i].Level))
	}
}

func TestLevel_Enabled(t *testing.T) {
	for _, minimum := range Levels {
		for _, l := range Levels {
			assert.Equal(t, l.Level >= minimum.Level, l.Level.Enabled(minimum.Level),
				"%s against minimum %s", l.Name, minimum.Name)
		}
	}

	// A custom threshold between warn and error admits error and fatal only.
	assert.False(t, WarnLevel.Enabled(Level(5)))
	assert.True(t, ErrorLevel.Enabled(Level(5)))
}

func TestParseLevel(t *testing.T) {
	for _, info := range Levels {
		l, ok := ParseLevel(info.Name)
		assert.True(t, ok, info.Name)
		assert.Equal(t, info.Level, l)
	}

	l, ok := ParseLevel(" WARNING ")
	assert.True(t, ok)
	assert.Equal(t, WarnLevel, l)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
	_, ok = ParseLevel("")
	assert.False(t, ok)
}
