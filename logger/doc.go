// Package logger is the public API of bufflog. Most users only need to
// import this package.
//
// A Logger owns one target, a file or an adopted stream, and buffers
// formatted lines in memory until Flush, Close, or, with auto-flush
// enabled, every accepted line. Each flush drains the whole buffer in a
// single write using the strategy resolved when the Logger was built.
//
// Lines look like this, with the default " ~ " delimiter:
//
//	 ~ Routing to Users#show ~ params: {id: 1}
//
// Levels are ranks taken from core.Levels: fatal 7, error 6, warn 4,
// info 3, debug 0. A line is queued when its rank is at least the
// Logger's minimum. Without an explicit valid level name the minimum is
// error in production and debug elsewhere.
//
// The package keeps one process-wide active Logger. Until SetLog is
// called it writes to stdout with auto-flush enabled. SetLog closes the
// active Logger before installing its replacement:
//
//	l, err := logger.SetLog(logger.Config{
//	    Path:        "log/production.log",
//	    Level:       "warn",
//	    Environment: core.Production,
//	})
//	if err != nil {
//	    return err
//	}
//	defer l.Close()
//	l.Warn("slow request", func() string { return dumpParams() })
//
// Collaborators that should not depend on the global can receive a
// Logger explicitly or through a context with NewContext and
// FromContext.
//
// A closed Logger rejects emissions with ErrClosed; Flush and Close on it
// are no-ops.
package logger
