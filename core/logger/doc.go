// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for command-line runs (console encoding) and
// for the catalog server (json encoding), and integrates with the Fiber web framework.
//
// # Correlation
//
// WithRayID extracts the RayID assigned by the rayid middleware from a Fiber context and
// attaches it to the log entry. WithRunID does the same for a curation run.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Reading data...")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
