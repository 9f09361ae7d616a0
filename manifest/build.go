package manifest

import (
	"reflect"

	"github.com/teranos/stencil/stencil"
)

// BuildOption adjusts how a manifest is turned into classes.
type BuildOption func(*buildOptions)

type buildOptions struct {
	namespace   string
	indent      int
	forceIndent bool
}

// WithDefaults supplies the namespace and indent used when the manifest
// sets neither.
func WithDefaults(namespace string, indent int) BuildOption {
	return func(o *buildOptions) {
		o.namespace = namespace
		o.indent = indent
	}
}

// WithIndent overrides every indent setting, including the manifest's own.
func WithIndent(units int) BuildOption {
	return func(o *buildOptions) {
		o.indent = units
		o.forceIndent = true
	}
}

// Build validates the manifest and returns one class builder per declared
// class, in declaration order.
func (m *Manifest) Build(opts ...BuildOption) ([]*stencil.Class, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	o := buildOptions{indent: 1}
	for _, opt := range opts {
		opt(&o)
	}

	indent := o.indent
	if m.Indent != nil && !o.forceIndent {
		indent = *m.Indent
	}
	namespace := o.namespace
	if m.Namespace != "" {
		namespace = m.Namespace
	}

	classes := make([]*stencil.Class, 0, len(m.Classes))
	for _, c := range m.Classes {
		classes = append(classes, c.build(namespace, indent))
	}
	return classes, nil
}

func (c Class) build(namespace string, indent int) *stencil.Class {
	var class *stencil.Class
	if c.File != "" {
		class = stencil.New(c.File).SetClassName(c.Name)
	} else {
		class = stencil.New(c.Name)
	}

	if c.Namespace != "" {
		namespace = c.Namespace
	}
	class.SetNamespace(namespace).SetIndent(indent)

	if c.Abstract {
		class.SetAbstract()
	}
	if c.Extends != "" {
		class.SetParent(c.Extends)
	}
	for _, imp := range c.Imports {
		class.AddImportAlias(imp.Name, imp.Alias)
	}
	for _, iface := range c.Implements {
		class.Implement(iface)
	}

	gap := sectionGap{class: class}

	gap.open(len(c.Constants))
	for i, k := range c.Constants {
		if k.Description != "" {
			gap.separate(i)
			class.AddComment(stencil.NewFieldComment(phpType(k.Value), k.Description))
		}
		class.AddConstant(k.Name, literal(k.Value, k.Expr))
	}

	gap.open(len(c.Properties))
	for i, p := range c.Properties {
		if p.Type != "" || p.Description != "" {
			gap.separate(i)
			fieldType := p.Type
			if fieldType == "" {
				fieldType = phpType(p.Value)
			}
			class.AddComment(stencil.NewFieldComment(fieldType, p.Description))
		}
		class.AddVariable(p.Name, visibility(p.Visibility), literal(p.Value, p.Expr), p.Static)
	}

	gap.open(len(c.Methods))
	for i, m := range c.Methods {
		gap.separate(i)
		if m.Description != "" {
			class.AddComment(m.comment())
		}
		class.AddMethod(m.build())
	}

	return class
}

// sectionGap puts one blank line between non-empty body sections.
type sectionGap struct {
	class   *stencil.Class
	written bool
}

func (g *sectionGap) open(members int) {
	if members == 0 {
		return
	}
	if g.written {
		g.class.AddBlankLine()
	}
	g.written = true
}

// separate adds a blank line before member i unless it opens its section.
func (g *sectionGap) separate(i int) {
	if i > 0 {
		g.class.AddBlankLine()
	}
}

func (m Method) comment() *stencil.DocComment {
	doc := stencil.NewMethodComment(m.Description)
	for _, p := range m.Params {
		dataType := p.Type
		if dataType == "" {
			dataType = "mixed"
		}
		doc.AddParameter(p.Name, dataType, p.Description)
	}
	if m.Returns != "" {
		doc.SetReturnType(m.Returns)
	}
	return doc
}

func (m Method) build() *stencil.Method {
	method := stencil.NewMethod(m.Name, m.Static).
		SetVisibility(visibility(m.Visibility)).
		SetIndent(1)
	if m.Abstract {
		method.SetAbstract()
	}
	for _, p := range m.Params {
		method.AddParam(p.Name, literal(p.Default, p.DefaultExpr), p.Type)
	}
	for _, line := range m.Body {
		if line == "" {
			method.AddRawLine("", stencil.WithIndent(0))
			continue
		}
		method.AddRawLine(line)
	}
	return method
}

func visibility(s string) stencil.Visibility {
	if s == "" {
		return stencil.Public
	}
	return stencil.ParseVisibility(s)
}

func literal(value any, expr string) stencil.Literal {
	if expr != "" {
		return stencil.Expr(expr)
	}
	return stencil.Of(value)
}

// phpType infers a doc-comment type from a decoded manifest value.
func phpType(v any) string {
	if v == nil {
		return "mixed"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Slice, reflect.Array, reflect.Map:
		return "array"
	}
	return "mixed"
}
