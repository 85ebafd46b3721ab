// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Logs always go to stderr; stdout is reserved
// for the ownership report.
//
// # Run Correlation
//
// WithRunID attaches a random run_id (UUID) to the logger so that all lines
// written during a single invocation can be grouped together.
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
//	log = logger.WithRunID(log)
//	log.Info("Resolving custom URL", zap.String("alias", alias))
package logger
