package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/bufflog/core"
	"github.com/philipp01105/bufflog/formatter"
	"github.com/philipp01105/bufflog/target"
)

// ErrClosed is returned when emitting through a Logger after Close.
var ErrClosed = errors.New("logger closed")

// Config holds everything needed to construct a Logger. Exactly one of
// Path or Writer must be set.
type Config struct {
	// Path of the log file to append to or create
	Path string
	// Writer is an already writable stream to adopt instead of a file
	Writer io.Writer
	// Level is the minimum level name; empty or unknown names fall back
	// to the environment default
	Level string
	// Threshold, when set, overrides Level with an explicit rank
	Threshold *core.Level
	// Delimiter separates line segments (default: " ~ ")
	Delimiter string
	// AutoFlush writes every accepted line before the emitting call returns
	AutoFlush bool
	// Environment drives the default level and write strategy (default: development)
	Environment core.Environment
	// Platform drives write strategy selection (default: core.CurrentPlatform())
	Platform core.Platform
	// IOMode forces or auto-selects the write strategy (default: target.Auto)
	IOMode target.IOMode
	// PartialWrite controls short non-blocking writes (default: target.RetryPartial)
	PartialWrite target.PartialWritePolicy
	// RetryTimeout bounds a stalled non-blocking write (default: 5s)
	RetryTimeout time.Duration
	// Now stamps the banner of newly created files (default: time.Now)
	Now func() time.Time
}

func applyDefaults(cfg *Config) {
	if cfg.Delimiter == "" {
		cfg.Delimiter = formatter.DefaultDelimiter
	}
	if cfg.Environment == "" {
		cfg.Environment = core.Development
	}
	if cfg.Platform == "" {
		cfg.Platform = core.CurrentPlatform()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
}

// minimumLevel resolves the threshold: an explicit rank, then a valid
// level name, then the environment default.
func minimumLevel(cfg Config) core.Level {
	if cfg.Threshold != nil {
		return *cfg.Threshold
	}
	if level, ok := core.ParseLevel(cfg.Level); ok {
		return level
	}
	return cfg.Environment.DefaultLevel()
}

// Logger buffers formatted lines and flushes them to a single target.
// It is safe for concurrent use; one mutex serializes append, flush and
// close so lines never interleave and every line is written exactly once.
type Logger struct {
	mu         sync.Mutex
	target     *target.Target
	strategy   target.Strategy
	formatter  *formatter.TextFormatter
	minimum    core.Level
	autoFlush  bool
	buffer     []string
	closed     atomic.Bool
	targetName string
}

// New acquires the target described by cfg, resolves the write strategy
// once and returns an open Logger. Acquisition failures are returned.
func New(cfg Config) (*Logger, error) {
	applyDefaults(&cfg)
	f := formatter.NewTextFormatter(formatter.Config{Delimiter: cfg.Delimiter})

	var (
		t   *target.Target
		err error
	)
	switch {
	case cfg.Writer != nil && cfg.Path != "":
		return nil, fmt.Errorf("logger: both path %q and writer given", cfg.Path)
	case cfg.Writer != nil:
		t, err = target.Adopt(cfg.Writer)
	case cfg.Path != "":
		t, err = target.OpenFile(target.FileConfig{
			Filename:  cfg.Path,
			Formatter: f,
			Now:       cfg.Now,
		})
	default:
		return nil, fmt.Errorf("logger: a path or writer is required")
	}
	if err != nil {
		return nil, err
	}

	strategy, err := target.Resolve(t, target.StrategyConfig{
		Mode:         cfg.IOMode,
		Environment:  cfg.Environment,
		Platform:     cfg.Platform,
		PartialWrite: cfg.PartialWrite,
		RetryTimeout: cfg.RetryTimeout,
	})
	if err != nil {
		if cfg.Writer == nil {
			err = multierr.Append(err, t.Close())
		}
		return nil, err
	}

	return &Logger{
		target:     t,
		strategy:   strategy,
		formatter:  f,
		minimum:    minimumLevel(cfg),
		autoFlush:  cfg.AutoFlush,
		targetName: t.Name(),
	}, nil
}

// Log formats msg and any extra content at level and queues the line.
// It returns the queued line, or "" when the level is filtered out.
// Extra suppliers are only evaluated for lines that pass the filter.
// With auto-flush enabled the line is written before Log returns and any
// write error is returned alongside the line.
func (l *Logger) Log(level core.Level, msg string, extra ...func() string) (string, error) {
	if l.closed.Load() {
		return "", ErrClosed
	}
	if !l.Enabled(level) {
		return "", nil
	}

	line := l.formatter.Format(msg, extra...)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Load() {
		return "", ErrClosed
	}
	l.buffer = append(l.buffer, line)
	if l.autoFlush {
		return line, l.flushLocked()
	}
	return line, nil
}

// Enabled reports whether a line at level would be queued.
func (l *Logger) Enabled(level core.Level) bool {
	return level.Enabled(l.minimum)
}

// Flush writes every queued line to the target in a single write. It is a
// no-op when nothing is queued or the Logger is closed. When the target
// accepts only part of the payload the unwritten bytes stay queued ahead
// of later lines and the *target.PartialWriteError is returned.
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Load() {
		return nil
	}
	return l.flushLocked()
}

func (l *Logger) flushLocked() error {
	if len(l.buffer) == 0 {
		return nil
	}

	size := 0
	for _, line := range l.buffer {
		size += len(line)
	}
	payload := make([]byte, 0, size)
	for _, line := range l.buffer {
		payload = append(payload, line...)
	}
	clear(l.buffer)
	l.buffer = l.buffer[:0]

	if _, err := l.strategy.Write(payload); err != nil {
		var pwe *target.PartialWriteError
		if errors.As(err, &pwe) && len(pwe.Remainder) > 0 {
			l.buffer = append(l.buffer, string(pwe.Remainder))
		}
		return fmt.Errorf("logger: flush %s: %w", l.targetName, err)
	}
	return nil
}

// Close flushes queued lines, closes the target and leaves the Logger in
// its terminal state. Closing again is a no-op.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Load() {
		return nil
	}

	err := l.flushLocked()
	if closeErr := l.target.Close(); closeErr != nil {
		err = multierr.Append(err, fmt.Errorf("logger: close %s: %w", l.targetName, closeErr))
	}
	l.closed.Store(true)
	l.target = nil
	l.strategy = nil
	l.buffer = nil
	return err
}

// Closed reports whether Close has been called.
func (l *Logger) Closed() bool {
	return l.closed.Load()
}

// Level returns the minimum rank a line needs to be queued.
func (l *Logger) Level() core.Level {
	return l.minimum
}

// Delimiter returns the segment delimiter.
func (l *Logger) Delimiter() string {
	return l.formatter.Delimiter
}

// AutoFlush reports whether every accepted line is written immediately.
func (l *Logger) AutoFlush() bool {
	return l.autoFlush
}

// TargetName returns the path or stream description of the target.
func (l *Logger) TargetName() string {
	return l.targetName
}

// IOMode returns the write strategy resolved at construction, or
// target.Auto once the Logger is closed.
func (l *Logger) IOMode() target.IOMode {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.strategy == nil {
		return target.Auto
	}
	return l.strategy.Mode()
}

// Pending returns the number of queued entries not yet written.
func (l *Logger) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buffer)
}

// Stats returns the target's write statistics. A closed Logger reports
// zero values.
func (l *Logger) Stats() target.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.target == nil {
		return target.Snapshot{}
	}
	return l.target.Stats()
}
