package logger

import (
	"io"
	"time"

	"github.com/philipp01105/bufflog/core"
	"github.com/philipp01105/bufflog/target"
)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg Config
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithPath logs to the file at path
func (b *Builder) WithPath(path string) *Builder {
	b.cfg.Path = path
	return b
}

// WithWriter logs to an already writable stream
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.cfg.Writer = w
	return b
}

// WithLevel sets the minimum level by name
func (b *Builder) WithLevel(name string) *Builder {
	b.cfg.Level = name
	return b
}

// WithThreshold sets an explicit minimum rank
func (b *Builder) WithThreshold(level Level) *Builder {
	b.cfg.Threshold = &level
	return b
}

// WithDelimiter sets the segment delimiter
func (b *Builder) WithDelimiter(delimiter string) *Builder {
	b.cfg.Delimiter = delimiter
	return b
}

// WithAutoFlush enables writing every accepted line immediately
func (b *Builder) WithAutoFlush(enabled bool) *Builder {
	b.cfg.AutoFlush = enabled
	return b
}

// WithEnvironment sets the runtime environment
func (b *Builder) WithEnvironment(env core.Environment) *Builder {
	b.cfg.Environment = env
	return b
}

// WithPlatform sets the platform used for write strategy selection
func (b *Builder) WithPlatform(p core.Platform) *Builder {
	b.cfg.Platform = p
	return b
}

// WithIOMode forces a write strategy
func (b *Builder) WithIOMode(mode target.IOMode) *Builder {
	b.cfg.IOMode = mode
	return b
}

// WithPartialWritePolicy sets how short non-blocking writes are handled
func (b *Builder) WithPartialWritePolicy(p target.PartialWritePolicy, retryTimeout time.Duration) *Builder {
	b.cfg.PartialWrite = p
	b.cfg.RetryTimeout = retryTimeout
	return b
}

// WithClock sets the clock used for the creation banner
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.cfg.Now = now
	return b
}

// Config returns a copy of the configuration built so far
func (b *Builder) Config() Config {
	return b.cfg
}

// Build creates the Logger instance
func (b *Builder) Build() (*Logger, error) {
	return New(b.cfg)
}
