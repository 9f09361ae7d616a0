// Package casing converts identifiers between the naming conventions used
// in generated PHP: PascalCase class names, camelCase method names and
// snake_case parameter and property names.
package casing

import (
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// Converter is the case-conversion capability stencil consumes.
type Converter interface {
	ToPascal(s string) string
	ToCamel(s string) string
	ToSnake(s string) string
}

// Default is the strcase-backed converter.
var Default Converter = strcaseConverter{}

type strcaseConverter struct{}

func (strcaseConverter) ToPascal(s string) string { return strcase.ToCamel(s) }
func (strcaseConverter) ToCamel(s string) string  { return strcase.ToLowerCamel(s) }
func (strcaseConverter) ToSnake(s string) string  { return strcase.ToSnake(s) }

// ToPascal converts snake_case, kebab-case or spaced words to PascalCase
// (e.g., "invoice_item" -> "InvoiceItem")
func ToPascal(s string) string {
	return Default.ToPascal(s)
}

// ToCamel converts an identifier to camelCase (e.g., "get_total" -> "getTotal")
func ToCamel(s string) string {
	return Default.ToCamel(s)
}

// ToSnake converts PascalCase or camelCase to snake_case
// (e.g., "firstName" -> "first_name")
func ToSnake(s string) string {
	return Default.ToSnake(s)
}

// UpperFirst upper-cases the first rune and keeps the rest as-is.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
