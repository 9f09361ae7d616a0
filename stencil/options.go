package stencil

import "strings"

// indentWidth is the number of spaces per indentation unit.
const indentWidth = 4

// LineOption customizes how a single body line (or block of lines) is added.
type LineOption func(*lineOptions)

type lineOptions struct {
	indent    int
	hasIndent bool
}

// WithIndent overrides the builder's default indentation for one call.
// Negative values are ignored.
func WithIndent(units int) LineOption {
	return func(o *lineOptions) {
		if units < 0 {
			return
		}
		o.indent = units
		o.hasIndent = true
	}
}

// resolveIndent returns the indentation prefix for a call, falling back to
// defaultUnits when no override was given.
func resolveIndent(defaultUnits int, opts []LineOption) string {
	var o lineOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	units := defaultUnits
	if o.hasIndent {
		units = o.indent
	}
	if units <= 0 {
		return ""
	}
	return strings.Repeat(" ", units*indentWidth)
}
