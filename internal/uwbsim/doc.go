// Package uwbsim implements uci.Manager with a simulated chip.
//
// Each Chip runs one worker goroutine, locked to its OS thread, on the
// dispatcher's Executor. Commands are queued to the worker and executed in
// order; notifications produced by a command, and periodic range data for
// active sessions, are delivered on the same worker right after. This
// gives per-chip serialization and per-chip notification ordering without
// any cross-chip coordination.
package uwbsim
