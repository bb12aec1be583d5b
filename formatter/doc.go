// Package formatter turns messages into the plain-text lines a Logger
// buffers.
//
// A line is the delimiter, the message when non-empty, then for every
// extra supplier another delimiter followed by the supplier's output.
// Each line ends with exactly one newline. Suppliers are evaluated only
// when a line is actually formatted, so callers can pass expensive
// content without paying for it on filtered levels.
//
// Newly created log files start with a banner line carrying the creation
// time in HTTP-date format.
//
// Formatting uses a pooled bytes.Buffer. Buffers larger than 64 KiB are
// not returned to the pool to prevent a single large log line from
// permanently inflating memory usage.
package formatter
