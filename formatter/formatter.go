package formatter

import (
	"bytes"
	"net/http"
	"sync"
)

// DefaultDelimiter separates the segments of a line.
const DefaultDelimiter = " ~ "

// BannerMessage is written as the first line of a newly created log file.
const BannerMessage = "Logfile created"

// Config holds formatter configuration
type Config struct {
	// Delimiter is placed before the message and before each extra segment
	// (default: DefaultDelimiter)
	Delimiter string
	// TimestampFormat is the banner time layout (default: http.TimeFormat)
	TimestampFormat string
}

func applyDefaults(cfg *Config) {
	if cfg.Delimiter == "" {
		cfg.Delimiter = DefaultDelimiter
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = http.TimeFormat
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
