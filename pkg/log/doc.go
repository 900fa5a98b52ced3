// Package log provides structured protocol logging for Lattice.
//
// This package defines the Logger interface and Event type for capturing
// read-path events: incoming reads, emitted reports, version-gated skips,
// change signals, and errors. It is separate from operational logging
// (slog) - protocol capture provides a machine-readable event trace for
// debugging and analysis.
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	srv := interaction.NewServer(node, log.NewSlogAdapter(slog.Default()))
//
//	// Disabled
//	srv := interaction.NewServer(node, nil)
//
// Events use CBOR integer-key tags so traces can be written in the same
// encoding as the wire itself.
package log
