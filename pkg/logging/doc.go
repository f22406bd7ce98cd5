// Package logging provides structured logging utilities for vercmp components.
//
// It wraps the standard library slog package with project defaults: structured
// JSON logging to stderr, environment-based log level configuration via
// LOG_LEVEL, module/version context injection, and source location tracking
// for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("vercmp", "v1.0.0")
//
//	    slog.Info("comparing versions", "left", left, "right", right)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("vercmp-server", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vercmp", "v1.0.0", "warn")
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (debug, info, warn, error; default info):
//
//	LOG_LEVEL=debug vercmp compare 1.2.3 1.2.4
package logging
