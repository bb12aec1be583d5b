package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTextFormatter_Defaults(t *testing.T) {
	f := NewTextFormatter(Config{})
	assert.Equal(t, " ~ ", f.Delimiter)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 GMT", f.TimestampFormat)
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter(Config{})

	tests := []struct {
		name   string
		msg    string
		extras []func() string
		want   string
	}{
		{name: "message", msg: "hello", want: " ~ hello\n"},
		{name: "empty", msg: "", want: " ~ \n"},
		{name: "trailing newline kept once", msg: "hello\n", want: " ~ hello\n"},
		{
			name:   "extra",
			msg:    "hello",
			extras: []func() string{func() string { return "world" }},
			want:   " ~ hello ~ world\n",
		},
		{
			name:   "extra without message",
			extras: []func() string{func() string { return "only" }},
			want:   " ~  ~ only\n",
		},
		{
			name:   "extra ending in newline",
			msg:    "a",
			extras: []func() string{func() string { return "b\n" }},
			want:   " ~ a ~ b\n",
		},
		{
			name:   "nil extra skipped",
			msg:    "a",
			extras: []func() string{nil},
			want:   " ~ a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.msg, tt.extras...))
		})
	}
}

func TestTextFormatter_CustomDelimiter(t *testing.T) {
	f := NewTextFormatter(Config{Delimiter: " | "})
	got := f.Format("req", func() string { return "200" })
	assert.Equal(t, " | req | 200\n", got)
}

func TestTextFormatter_SupplierEvaluatedOnce(t *testing.T) {
	f := NewTextFormatter(Config{})
	calls := 0
	f.Format("x", func() string {
		calls++
		return "y"
	})
	assert.Equal(t, 1, calls)
}

func TestTextFormatter_Banner(t *testing.T) {
	f := NewTextFormatter(Config{})
	ts := time.Date(2026, 2, 18, 13, 0, 0, 0, time.FixedZone("CET", 3600))

	got := f.Banner(ts)
	assert.Equal(t, "Wed, 18 Feb 2026 12:00:00 GMT  ~  info  ~  Logfile created\n", got)
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestTextFormatter_LargeMessage(t *testing.T) {
	f := NewTextFormatter(Config{})
	msg := strings.Repeat("x", 128*1024)

	got := f.Format(msg)
	assert.Len(t, got, len(msg)+len(" ~ ")+1)

	// The pool must hand out a clean buffer afterwards.
	assert.Equal(t, " ~ small\n", f.Format("small"))
}

func BenchmarkTextFormatter_Format(b *testing.B) {
	f := NewTextFormatter(Config{})
	extra := func() string { return "status=200" }

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.Format("GET /users", extra)
	}
}
