package formatter

import (
	"time"
)

// TextFormatter renders the plain-text line format:
//
//	<delimiter><message>[<delimiter><extra>...]\n
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	applyDefaults(&cfg)
	return &TextFormatter{Config: cfg}
}

// Format builds one line. An empty message is omitted, each extra supplier
// is evaluated once and appended after another delimiter, and the result
// ends with exactly one newline.
func (f *TextFormatter) Format(msg string, extras ...func() string) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(f.Delimiter)
	if msg != "" {
		buf.WriteString(msg)
	}
	for _, extra := range extras {
		if extra == nil {
			continue
		}
		buf.WriteString(f.Delimiter)
		buf.WriteString(extra())
	}

	if b := buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Banner returns the creation line for a new log file stamped with t.
func (f *TextFormatter) Banner(t time.Time) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.Write(t.UTC().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')
	buf.WriteString(f.Delimiter)
	buf.WriteString(" info ")
	buf.WriteString(f.Delimiter)
	buf.WriteByte(' ')
	buf.WriteString(BannerMessage)
	buf.WriteByte('\n')
	return buf.String()
}
