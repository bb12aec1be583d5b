package adapter

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/bufflog/core"
	"github.com/philipp01105/bufflog/logger"
)

func newTestLogger(t *testing.T, level string) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logger.New(logger.Config{Writer: &buf, Level: level})
	require.NoError(t, err)
	return l, &buf
}

func TestSlogHandler_Handle(t *testing.T) {
	l, buf := newTestLogger(t, "info")
	log := slog.New(NewSlogHandler(l))

	log.Debug("hidden")
	log.Info("user login", "user", "alice", "id", 42)
	log.Warn("plain")
	require.NoError(t, l.Flush())

	assert.Equal(t, " ~ user login ~ user=alice id=42\n ~ plain\n", buf.String())
}

func TestSlogHandler_GroupsAndAttrs(t *testing.T) {
	l, buf := newTestLogger(t, "debug")
	log := slog.New(NewSlogHandler(l)).
		With("app", "shop").
		WithGroup("http")

	log.Info("done",
		"status", 200,
		slog.Group("req", "method", "GET", "path", "/cart"),
		slog.Duration("took", 1500*time.Millisecond),
	)
	require.NoError(t, l.Flush())

	assert.Equal(t,
		" ~ done ~ app=shop http.status=200 http.req.method=GET http.req.path=/cart http.took=1.5s\n",
		buf.String())
}

func TestSlogHandler_Enabled(t *testing.T) {
	l, _ := newTestLogger(t, "warn")
	h := NewSlogHandler(l)
	ctx := context.Background()

	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestSlogLevelToCore(t *testing.T) {
	assert.Equal(t, core.DebugLevel, slogLevelToCore(slog.LevelDebug))
	assert.Equal(t, core.InfoLevel, slogLevelToCore(slog.LevelInfo))
	assert.Equal(t, core.WarnLevel, slogLevelToCore(slog.LevelWarn))
	assert.Equal(t, core.ErrorLevel, slogLevelToCore(slog.LevelError))
	assert.Equal(t, core.FatalLevel, slogLevelToCore(slog.LevelError+4))
}

func TestSlogHandler_FollowsDefault(t *testing.T) {
	var buf bytes.Buffer
	_, err := logger.SetLog(logger.Config{Writer: &buf, AutoFlush: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, err := logger.SetLog(logger.Config{Writer: os.Stdout, AutoFlush: true})
		require.NoError(t, err)
	})

	slog.New(NewSlogHandler(nil)).Error("via default")
	assert.Equal(t, " ~ via default\n", buf.String())
}

func TestSlogHandler_ClosedLogger(t *testing.T) {
	l, _ := newTestLogger(t, "debug")
	require.NoError(t, l.Close())

	err := NewSlogHandler(l).Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "late", 0))
	assert.ErrorIs(t, err, logger.ErrClosed)
}
