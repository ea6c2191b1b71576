// Package log provides a structured logging interface for gdeval.
//
// The interface is slog-compatible so callers can plug in any backend, while the
// package ships a zerolog implementation (see logger.go) that is used by the
// fitter and by the warning system in pkg/errors.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("linear.gradient_descent").With(
//	    log.ModelNameKey, "GradientDescent",
//	)
//	logger.Info("fit finished",
//	    log.IterationKey, 1200,
//	    log.CostKey, 0.0,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key-value pairs. The interface supports
// chaining through With, returning a logger whose records always include the
// given fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error value it is attached as the record's
	// error, together with its stack trace when one is available.
	//
	// Example:
	//   logger.Error("fit failed",
	//       err,
	//       log.OperationKey, log.OperationFit,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to skip building expensive fields:
	//
	//   if logger.Enabled(ctx, LevelDebug) {
	//       logger.Debug("trace", "costs", collectCosts())
	//   }
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// It allows tests to swap the backend for an in-memory one.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
