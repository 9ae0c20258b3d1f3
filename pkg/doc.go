// Package pkg provides shared utilities for the cycleprof profiler.
//
// This package contains common functionality used by the collector, the
// report sinks and the demo command, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values
//   - Collector lifecycle states
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with profiler-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentCollector, "report delivered", "records", 4)
//
// Instrumented hot paths never log. Only site registration, collector
// finalization and sink failures produce output.
//
// # Errors
//
// Common errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrInvalidFormat) {
//	    // Handle unknown output format
//	}
package pkg
