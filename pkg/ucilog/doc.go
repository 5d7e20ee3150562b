// Package ucilog provides UCI protocol capture logging for uwb-go.
//
// This package defines the Logger interface and Event types for capturing
// the UCI traffic exchanged with each UWB chip: commands, responses,
// notifications and data packets, plus chip state changes and errors.
// It is separate from operational logging (slog) - protocol capture provides
// a complete machine-readable trace per chip for debugging and analysis.
//
// # Basic Usage
//
// A Factory builds one logger per chip. Every logger carries its own log id
// and honours the logger Mode, which can be switched at runtime:
//
//	f := ucilog.NewFactory(ucilog.FactoryConfig{
//	    Dir:  "/data/uwb",
//	    Mode: ucilog.ModeFiltered,
//	})
//	chipLog, _ := f.Open("chip0")
//	defer chipLog.Close()
//
// For development, events can be mirrored to slog:
//
//	cfg.Also = ucilog.NewSlogAdapter(slog.Default())
//
// # Modes
//
//   - Disabled: events are dropped.
//   - Filtered: data packet and vendor message payloads are stripped, only
//     the header (kind, GID, OID, size) is kept.
//   - Unfiltered: everything is recorded.
//
// # File Format
//
// Log files use CBOR encoding and are named <prefix>_<chip>.ucilog. The
// uwb-log CLI tool provides viewing, filtering, and export capabilities.
package ucilog
