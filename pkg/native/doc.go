// Package native is the host-facing boundary of the UWB stack.
//
// A Manager is the host object an embedding runtime owns. It stores the
// handle of its dispatcher and a monitor lock, and exposes one method per
// boundary operation. Every per-chip operation resolves the chip's protocol
// manager through the dispatch guard, runs the call with the configured
// command timeout and flattens the outcome the way the host expects:
//
//   - status calls return a UCI status byte (Ok, InvalidParam,
//     MaxSessionsExceeded, CommandRetry or Failed)
//   - lifecycle calls return a boolean
//   - structured calls return a result struct, or nil on failure
//
// Failures are logged once, with the operation name and chip id, and never
// returned to the host as errors.
//
// Notifications of every chip are delivered back to the Manager through
// its exported On* methods, which forward them to the Listener set with
// SetListener.
package native
