package adapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/bufflog/core"
	"github.com/philipp01105/bufflog/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Logger.
type SlogHandler struct {
	logger *logger.Logger
	attrs  []core.Field
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter. A nil Logger follows
// logger.Default.
func NewSlogHandler(l *logger.Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

func (s *SlogHandler) target() *logger.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logger.Default()
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.target().Enabled(slogLevelToCore(level))
}

// Handle queues the record's message with its attributes as extra content.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, len(s.attrs), len(s.attrs)+record.NumAttrs())
	copy(fields, s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendSlogAttr(fields, s.group, a)
		return true
	})

	var err error
	if len(fields) == 0 {
		_, err = s.target().Log(slogLevelToCore(record.Level), record.Message)
	} else {
		_, err = s.target().Log(slogLevelToCore(record.Level), record.Message, func() string {
			return core.JoinFields(fields)
		})
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendSlogAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels four
// steps above error are treated as fatal.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendSlogAttr renders a slog.Attr, flattening groups into dotted keys.
func appendSlogAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendSlogAttr(fields, key, ga)
		}
		return fields
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Value: a.Value.Time().Format(time.RFC3339)})
	default:
		return append(fields, core.Field{Key: key, Value: a.Value.String()})
	}
}
