// Package errors provides error handling for stencil.
//
// It re-exports github.com/cockroachdb/errors so every package wraps and
// inspects errors the same way:
//
//	if err := fs.MkdirAll(dir, 0o755); err != nil {
//	    return errors.Wrapf(err, "failed to create %s", dir)
//	}
//
//	return errors.WithHint(err, "use .toml, .yaml or .yml")
//
// Builder configuration in package stencil never fails; errors only come
// from the filesystem, manifest and configuration boundaries.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Join         = crdb.Join
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Wrap them with errors.Wrap to add context while keeping
// errors.Is checks working.
var (
	// ErrNotFound indicates a manifest or config file does not exist
	ErrNotFound = New("not found")

	// ErrInvalidManifest indicates a class manifest failed to decode or validate
	ErrInvalidManifest = New("invalid manifest")

	// ErrUnsupportedFormat indicates a manifest or output format stencil cannot handle
	ErrUnsupportedFormat = New("unsupported format")

	// ErrInvalidConfig indicates configuration values out of range
	ErrInvalidConfig = New("invalid config")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidManifestError checks if an error is or wraps ErrInvalidManifest
func IsInvalidManifestError(err error) bool {
	return err != nil && Is(err, ErrInvalidManifest)
}

// IsUnsupportedFormatError checks if an error is or wraps ErrUnsupportedFormat
func IsUnsupportedFormatError(err error) bool {
	return err != nil && Is(err, ErrUnsupportedFormat)
}

// NewInvalidManifestError creates an invalid-manifest error with a formatted message
func NewInvalidManifestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidManifest, Newf(format, args...).Error())
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
