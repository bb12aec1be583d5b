// Package benchmark compares bufflog against other Go loggers under equal
// conditions. It is a separate module so the comparison libraries never
// become dependencies of bufflog itself.
package benchmark

import "sync/atomic"

// countingWriter discards everything it is given and counts writes and
// bytes, so benchmarks can report how many syscalls a logger would issue.
type countingWriter struct {
	writes atomic.Uint64
	bytes  atomic.Uint64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes.Add(1)
	w.bytes.Add(uint64(len(p)))
	return len(p), nil
}

// writesPerOp returns the average number of Write calls per logged line.
func (w *countingWriter) writesPerOp(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(w.writes.Load()) / float64(n)
}
