package stencil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type literalKind uint8

const (
	kindAbsent literalKind = iota
	kindBool
	kindString
	kindInt
	kindFloat
	kindArray
	kindExpr
)

// Literal is a PHP literal used as a constant value, property default or
// parameter default. The zero value is absent: no "= ..." segment is
// rendered at all.
type Literal struct {
	kind literalKind
	b    bool
	s    string
	i    int64
	f    float64
	v    any
}

// Absent is the literal for "no default". A PHP null default is
// indistinguishable from no default and renders the same way.
var Absent = Literal{}

// Bool returns a boolean literal.
func Bool(b bool) Literal { return Literal{kind: kindBool, b: b} }

// String returns a double-quoted string literal.
func String(s string) Literal { return Literal{kind: kindString, s: s} }

// Int returns an integer literal.
func Int(i int64) Literal { return Literal{kind: kindInt, i: i} }

// Float returns a float literal.
func Float(f float64) Literal { return Literal{kind: kindFloat, f: f} }

// Array returns an array literal encoded as compact JSON. v is typically a
// slice or a map[string]any. A nil v, nil slice or nil map is absent.
func Array(v any) Literal {
	if isNil(v) {
		return Absent
	}
	return Literal{kind: kindArray, v: v}
}

// Expr returns a literal emitted verbatim, e.g. "self::DEFAULT" or "[]".
func Expr(code string) Literal { return Literal{kind: kindExpr, s: code} }

// Of converts an untyped Go value into a Literal. nil, including a typed
// nil pointer, slice or map, is absent. time.Time becomes an RFC 3339
// string. Values of any other type are emitted verbatim using their %v
// formatting.
func Of(v any) Literal {
	if isNil(v) {
		return Absent
	}

	switch t := v.(type) {
	case Literal:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Expr(strconv.FormatUint(uint64(t), 10))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return Expr(strconv.FormatUint(t, 10))
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case time.Time:
		return String(t.Format(time.RFC3339Nano))
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return Array(v)
	}
	return Expr(fmt.Sprintf("%v", v))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// IsAbsent reports whether the literal renders no default segment.
func (l Literal) IsAbsent() bool { return l.kind == kindAbsent }

// Format renders the literal as PHP source. ok is false for an absent
// literal.
func (l Literal) Format() (code string, ok bool) {
	switch l.kind {
	case kindAbsent:
		return "", false
	case kindBool:
		return strconv.FormatBool(l.b), true
	case kindString:
		return quote(l.s), true
	case kindInt:
		return strconv.FormatInt(l.i, 10), true
	case kindFloat:
		return strconv.FormatFloat(l.f, 'f', -1, 64), true
	case kindArray:
		return encodeArray(l.v), true
	case kindExpr:
		return l.s, true
	}
	return "", false
}

// String implements fmt.Stringer for debugging output.
func (l Literal) String() string {
	code, ok := l.Format()
	if !ok {
		return "<absent>"
	}
	return code
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

// encodeArray produces compact JSON. Values that cannot be encoded fall
// back to an empty array.
func encodeArray(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "[]"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
