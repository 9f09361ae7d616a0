// Package sym defines the glyphs stencil prints in command output.
// They are stable across CLI output and documentation.
package sym

// Status glyphs
const (
	Created = "✓" // a class file was written
	Skipped = "•" // a class file already existed and was left untouched
	Failed  = "✗" // generation failed for a manifest
)

// Command glyphs prefix the short help of their command.
const (
	Render   = "⎙"
	Generate = "⚙"
	Watch    = "⟳"
	Config   = "≡"
)

// StatusToSymbol maps a write status name to its glyph.
var StatusToSymbol = map[string]string{
	"created": Created,
	"skipped": Skipped,
	"failed":  Failed,
}
