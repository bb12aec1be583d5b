// Package core defines the shared vocabulary used across bufflog.
//
// It provides the Level type and the closed severity table that every
// level-named method is derived from, the Environment and Platform
// values that drive default level selection and write strategy
// resolution, and the Field type used by adapters to render key/value
// context as plain text.
//
// Levels are ranks, not an iota sequence. The gaps between them are
// significant: a custom threshold such as Level(5) admits warn and
// above exactly as rank comparison dictates.
package core
