package logger

import (
	"go.uber.org/zap"
)

// Standard field names for structured logging across stencil.
// Use these constants instead of raw strings to keep keys consistent.
const (
	// Generated artifacts
	FieldClass     = "class"
	FieldNamespace = "namespace"
	FieldPath      = "path"
	FieldStatus    = "status"

	// Inputs
	FieldManifest = "manifest"
	FieldFormat   = "format"

	// Operations
	FieldOperation  = "operation"
	FieldComponent  = "component"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Watcher struct {
//	    log *zap.SugaredLogger
//	}
//
//	func NewWatcher() *Watcher {
//	    return &Watcher{log: logger.ComponentLogger("manifest.watch")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
