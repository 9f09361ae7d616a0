package stencil

import (
	"strings"

	"github.com/teranos/stencil/casing"
)

// ConstructorName is the reserved PHP constructor method name.
const ConstructorName = "__construct"

type methodParam struct {
	value    Literal
	dataType string
}

// Method builds one class method: signature plus optional body.
type Method struct {
	name       string
	static     bool
	abstract   bool
	visibility Visibility
	params     ordered[methodParam]
	body       []string
	indent     int
}

// NewMethod creates a public method.
func NewMethod(name string, static bool) *Method {
	return &Method{
		name:       name,
		static:     static,
		visibility: Public,
	}
}

// NewPublicMethod creates a public instance method.
func NewPublicMethod(name string) *Method {
	return NewMethod(name, false).SetPublic()
}

// NewPublicStaticMethod creates a public static method.
func NewPublicStaticMethod(name string) *Method {
	return NewPublicMethod(name).SetStatic()
}

// NewPrivateMethod creates a private instance method.
func NewPrivateMethod(name string) *Method {
	return NewMethod(name, false).SetPrivate()
}

// NewPrivateStaticMethod creates a private static method.
func NewPrivateStaticMethod(name string) *Method {
	return NewPrivateMethod(name).SetStatic()
}

// NewProtectedMethod creates a protected instance method.
func NewProtectedMethod(name string) *Method {
	return NewMethod(name, false).SetProtected()
}

// NewProtectedStaticMethod creates a protected static method.
func NewProtectedStaticMethod(name string) *Method {
	return NewProtectedMethod(name).SetStatic()
}

// NewConstructor creates a public __construct method.
func NewConstructor() *Method {
	return NewPublicConstructor()
}

// NewPublicConstructor creates a public __construct method.
func NewPublicConstructor() *Method {
	return NewPublicMethod(ConstructorName)
}

// NewPrivateConstructor creates a private __construct method.
func NewPrivateConstructor() *Method {
	return NewPrivateMethod(ConstructorName)
}

func (m *Method) Name() string           { return m.name }
func (m *Method) Visibility() Visibility { return m.visibility }
func (m *Method) IsStatic() bool         { return m.static }
func (m *Method) IsAbstract() bool       { return m.abstract }

// SetIndent sets the default indentation, in units of four spaces, for body
// lines added without WithIndent.
func (m *Method) SetIndent(units int) *Method {
	if units >= 0 {
		m.indent = units
	}
	return m
}

// SetVisibility changes the visibility. Invalid values leave it unchanged.
func (m *Method) SetVisibility(v Visibility) *Method {
	if v.Valid() {
		m.visibility = v
	}
	return m
}

func (m *Method) SetPublic() *Method    { return m.SetVisibility(Public) }
func (m *Method) SetPrivate() *Method   { return m.SetVisibility(Private) }
func (m *Method) SetProtected() *Method { return m.SetVisibility(Protected) }

// SetStatic marks the method static.
func (m *Method) SetStatic() *Method {
	m.static = true
	return m
}

// SetAbstract marks the method abstract: it renders as a signature ending
// in ";" and its body lines are dropped.
func (m *Method) SetAbstract() *Method {
	m.abstract = true
	return m
}

// AddParam adds a parameter. dataType "" renders no type hint and an absent
// def renders no default. The name is snake_cased; a repeated name replaces
// the earlier entry in place.
func (m *Method) AddParam(name string, def Literal, dataType string) *Method {
	m.params.set(casing.ToSnake(name), methodParam{value: def, dataType: dataType})
	return m
}

// AddUntypedParam adds a parameter without a type hint. def may be any Go
// value accepted by Of; nil means no default.
func (m *Method) AddUntypedParam(name string, def any) *Method {
	return m.AddParam(name, Of(def), "")
}

// AddMixedParam adds a "mixed" parameter with an optional default.
func (m *Method) AddMixedParam(name string, def ...any) *Method {
	return m.AddParam(name, firstOf(def, Of), "mixed")
}

// AddStringParam adds a "string" parameter with an optional default.
func (m *Method) AddStringParam(name string, def ...string) *Method {
	return m.AddParam(name, firstOf(def, String), "string")
}

// AddIntegerParam adds an "int" parameter with an optional default.
func (m *Method) AddIntegerParam(name string, def ...int64) *Method {
	return m.AddParam(name, firstOf(def, Int), "int")
}

// AddBoolParam adds a "bool" parameter with an optional default.
func (m *Method) AddBoolParam(name string, def ...bool) *Method {
	return m.AddParam(name, firstOf(def, Bool), "bool")
}

// AddArrayParam adds an "array" parameter with an optional default.
func (m *Method) AddArrayParam(name string, def ...any) *Method {
	return m.AddParam(name, firstOf(def, Array), "array")
}

// AddFloatParam adds a "float" parameter with an optional default.
func (m *Method) AddFloatParam(name string, def ...float64) *Method {
	return m.AddParam(name, firstOf(def, Float), "float")
}

func firstOf[T any](values []T, lit func(T) Literal) Literal {
	if len(values) == 0 {
		return Absent
	}
	return lit(values[0])
}

// AddRawLine appends one body line, padded by the method's default indent
// or the WithIndent override.
func (m *Method) AddRawLine(text string, opts ...LineOption) *Method {
	m.body = append(m.body, resolveIndent(m.indent, opts)+text)
	return m
}

// Render returns the method source, one element per line, relative to the
// class body indentation.
func (m *Method) Render() []string {
	var sig strings.Builder
	sig.WriteString(m.visibility.String())
	sig.WriteString(" ")
	if m.abstract {
		sig.WriteString("abstract ")
	}
	if m.static {
		sig.WriteString("static ")
	}
	sig.WriteString("function ")
	sig.WriteString(methodName(m.name))
	sig.WriteString("(")
	sig.WriteString(strings.Join(m.renderParams(), ", "))
	sig.WriteString(")")

	if m.abstract {
		sig.WriteString(";")
		return []string{sig.String()}
	}

	lines := make([]string, 0, len(m.body)+3)
	lines = append(lines, sig.String(), "{")
	lines = append(lines, m.body...)
	return append(lines, "}")
}

func (m *Method) renderParams() []string {
	params := make([]string, 0, m.params.len())
	m.params.each(func(name string, p methodParam) {
		var b strings.Builder
		if p.dataType != "" {
			b.WriteString(p.dataType)
			b.WriteString(" ")
		}
		b.WriteString("$")
		b.WriteString(name)
		if code, ok := p.value.Format(); ok {
			b.WriteString(" = ")
			b.WriteString(code)
		}
		params = append(params, b.String())
	})
	return params
}

// methodName camelCases a method name. Magic methods (__construct,
// __toString, ...) are kept verbatim.
func methodName(name string) string {
	if strings.HasPrefix(name, "__") {
		return name
	}
	return casing.ToCamel(name)
}
