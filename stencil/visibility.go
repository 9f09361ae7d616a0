package stencil

import "strings"

// Visibility is the access-scope keyword of a class member.
// The zero value is not a valid visibility.
type Visibility uint8

const (
	Public Visibility = iota + 1
	Private
	Protected
)

var visibilityKeywords = map[Visibility]string{
	Public:    "public",
	Private:   "private",
	Protected: "protected",
}

// ParseVisibility converts "public", "private" or "protected" (any case)
// to a Visibility. Anything else yields the invalid zero value, which every
// setter treats as a no-op.
func ParseVisibility(s string) Visibility {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public":
		return Public
	case "private":
		return Private
	case "protected":
		return Protected
	}
	return 0
}

// Valid reports whether v is one of Public, Private or Protected.
func (v Visibility) Valid() bool {
	_, ok := visibilityKeywords[v]
	return ok
}

// String returns the PHP keyword, or "" for an invalid visibility.
func (v Visibility) String() string {
	return visibilityKeywords[v]
}
