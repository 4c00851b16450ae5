// Package logging provides structured logging utilities for gusto components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// for consistent logging across all components. It supports environment-based
// log level configuration, module/version context injection, and automatic
// source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("gusto", version)
//
//	    // Use slog as normal
//	    slog.Info("recommendation generated", "entries", len(rec.Entries))
//	    slog.Debug("detailed state", "query", q)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("gusto", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug gusto recommend --price '$' --cuisine Thai
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "recommendation generated",
//	    "module": "gusto",
//	    "version": "v1.0.0",
//	    "entries": 2
//	}
package logging
