package adapter

import (
	"fmt"
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/bufflog/core"
	"github.com/philipp01105/bufflog/logger"
)

// ZapCore implements zapcore.Core on top of a Logger, so that
//
//	zap.New(adapter.NewZapCore(l))
//
// writes into the buffered sink.
type ZapCore struct {
	logger *logger.Logger
	fields []core.Field
}

var _ zapcore.Core = (*ZapCore)(nil)

// NewZapCore creates a zapcore.Core adapter. A nil Logger follows
// logger.Default.
func NewZapCore(l *logger.Logger) *ZapCore {
	return &ZapCore{logger: l}
}

func (c *ZapCore) target() *logger.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger.Default()
}

// Enabled reports whether entries at lvl reach the Logger.
func (c *ZapCore) Enabled(lvl zapcore.Level) bool {
	return c.target().Enabled(zapLevelToCore(lvl))
}

// With returns a core carrying additional context fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	return &ZapCore{
		logger: c.logger,
		fields: appendZapFields(newFields, fields),
	}
}

// Check adds this core to ce when the entry's level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write queues the entry. Entries above error level are flushed at once
// since zap may panic or exit right after writing them.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(all, c.fields)
	all = appendZapFields(all, fields)

	l := c.target()
	level := zapLevelToCore(ent.Level)
	var err error
	if len(all) == 0 {
		_, err = l.Log(level, ent.Message)
	} else {
		_, err = l.Log(level, ent.Message, func() string {
			return core.JoinFields(all)
		})
	}
	if err != nil {
		return err
	}
	if ent.Level > zapcore.ErrorLevel {
		return l.Flush()
	}
	return nil
}

// Sync flushes the Logger.
func (c *ZapCore) Sync() error {
	return c.target().Flush()
}

// zapLevelToCore converts a zapcore.Level to a core.Level. DPanic, Panic
// and Fatal all map to fatal.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.DPanicLevel:
		return core.FatalLevel
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl >= zapcore.WarnLevel:
		return core.WarnLevel
	case lvl >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendZapFields renders zap fields in call order. A field that expands
// to several keys, such as an inline object, contributes them sorted.
func appendZapFields(out []core.Field, fields []zapcore.Field) []core.Field {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, core.Field{Key: k, Value: fmt.Sprint(enc.Fields[k])})
		}
	}
	return out
}
