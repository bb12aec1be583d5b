// Package adapter lets code written against log/slog or go.uber.org/zap
// emit through a bufflog Logger.
//
// Both adapters map the foreign level onto the closed core.Levels table
// and render attributes as space separated key=value text appended after
// the message delimiter. The text is built lazily, so filtered records
// cost only the level check.
//
// An adapter built with a nil Logger resolves logger.Default on every
// record, so it keeps following the process-wide logger across SetLog
// calls.
package adapter
