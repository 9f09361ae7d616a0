package stencil

import (
	"strings"

	"github.com/teranos/stencil/casing"
)

const (
	// openTag starts every generated file
	openTag = "<?php"
	// namespaceSeparator is PHP's namespace separator
	namespaceSeparator = `\`
	// lineBreak joins rendered lines
	lineBreak = "\n"
)

type classImport struct {
	name  string
	alias string
}

// Class assembles a PHP class declaration. Body members are rendered into
// a flat list of lines as they are added, so call order is file order.
//
// A Class is not safe for concurrent mutation.
type Class struct {
	className  string
	fileBase   string
	namespace  string
	imports    []classImport
	abstract   bool
	parent     string
	interfaces []string
	lines      []string
	indent     int
}

// New creates a class builder. name is PascalCased for the class name and
// kept as the base of the output file name.
func New(name string) *Class {
	return &Class{
		className: casing.ToPascal(name),
		fileBase:  name,
	}
}

func (c *Class) ClassName() string    { return c.className }
func (c *Class) FileBaseName() string { return c.fileBase }
func (c *Class) Namespace() string    { return c.namespace }
func (c *Class) Parent() string       { return c.parent }
func (c *Class) IsAbstract() bool     { return c.abstract }

// Lines returns a copy of the body lines added so far.
func (c *Class) Lines() []string {
	return append([]string(nil), c.lines...)
}

// SetIndent sets the default indentation, in units of four spaces, for body
// lines added without WithIndent.
func (c *Class) SetIndent(units int) *Class {
	if units >= 0 {
		c.indent = units
	}
	return c
}

// SetNamespace sets the namespace; "/" is accepted as a separator.
func (c *Class) SetNamespace(path string) *Class {
	c.namespace = strings.Trim(normalizeSeparators(path), namespaceSeparator)
	return c
}

func (c *Class) SetAbstract() *Class {
	c.abstract = true
	return c
}

// SetClassName renames the class. The output file name is unaffected.
func (c *Class) SetClassName(name string) *Class {
	c.className = casing.ToPascal(name)
	return c
}

// SetParent sets the class this one extends.
func (c *Class) SetParent(name string) *Class {
	c.parent = normalizeName(name)
	return c
}

// AddImport appends a "use" statement. Duplicates are kept.
func (c *Class) AddImport(name string) *Class {
	return c.AddImportAlias(name, "")
}

// AddImportAlias appends a "use <name> as <alias>" statement.
func (c *Class) AddImportAlias(name, alias string) *Class {
	c.imports = append(c.imports, classImport{
		name:  normalizeName(name),
		alias: casing.UpperFirst(strings.TrimSpace(alias)),
	})
	return c
}

// Implement appends one interface, normalizing its name.
func (c *Class) Implement(name string) *Class {
	c.interfaces = append(c.interfaces, normalizeName(name))
	return c
}

// ImplementAll appends interfaces exactly as given.
func (c *Class) ImplementAll(names []string) *Class {
	c.interfaces = append(c.interfaces, names...)
	return c
}

// AddRawLine appends one body line at the class indent or the WithIndent
// override.
func (c *Class) AddRawLine(text string, opts ...LineOption) *Class {
	c.lines = append(c.lines, resolveIndent(c.indent, opts)+text)
	return c
}

// AddConstant appends "const NAME = <value>;". An absent value renders null.
func (c *Class) AddConstant(name string, value Literal, opts ...LineOption) *Class {
	code, ok := value.Format()
	if !ok {
		code = "null"
	}
	return c.AddRawLine("const "+strings.ToUpper(name)+" = "+code+";", opts...)
}

// AddVariable appends a property declaration. An invalid visibility adds
// nothing.
func (c *Class) AddVariable(name string, visibility Visibility, value Literal, static bool, opts ...LineOption) *Class {
	if !visibility.Valid() {
		return c
	}

	var b strings.Builder
	b.WriteString(visibility.String())
	if static {
		b.WriteString(" static")
	}
	b.WriteString(" $")
	b.WriteString(casing.ToSnake(name))
	if code, ok := value.Format(); ok {
		b.WriteString(" = ")
		b.WriteString(code)
	}
	b.WriteString(";")

	return c.AddRawLine(b.String(), opts...)
}

func (c *Class) AddPublicVariable(name string, value Literal, static bool, opts ...LineOption) *Class {
	return c.AddVariable(name, Public, value, static, opts...)
}

func (c *Class) AddPublicStaticVariable(name string, value Literal, opts ...LineOption) *Class {
	return c.AddPublicVariable(name, value, true, opts...)
}

func (c *Class) AddNullPublicVariable(name string, static bool, opts ...LineOption) *Class {
	return c.AddPublicVariable(name, Absent, static, opts...)
}

func (c *Class) AddPrivateVariable(name string, value Literal, static bool, opts ...LineOption) *Class {
	return c.AddVariable(name, Private, value, static, opts...)
}

func (c *Class) AddPrivateStaticVariable(name string, value Literal, opts ...LineOption) *Class {
	return c.AddPrivateVariable(name, value, true, opts...)
}

func (c *Class) AddNullPrivateVariable(name string, static bool, opts ...LineOption) *Class {
	return c.AddPrivateVariable(name, Absent, static, opts...)
}

func (c *Class) AddProtectedVariable(name string, value Literal, static bool, opts ...LineOption) *Class {
	return c.AddVariable(name, Protected, value, static, opts...)
}

func (c *Class) AddProtectedStaticVariable(name string, value Literal, opts ...LineOption) *Class {
	return c.AddProtectedVariable(name, value, true, opts...)
}

func (c *Class) AddNullProtectedVariable(name string, static bool, opts ...LineOption) *Class {
	return c.AddProtectedVariable(name, Absent, static, opts...)
}

// AddBlankLines appends n empty lines.
func (c *Class) AddBlankLines(n int) *Class {
	for i := 0; i < n; i++ {
		c.lines = append(c.lines, "")
	}
	return c
}

func (c *Class) AddBlankLine() *Class {
	return c.AddBlankLines(1)
}

// AddLineComment appends "// <Text>".
func (c *Class) AddLineComment(text string, opts ...LineOption) *Class {
	return c.AddRawLine("// "+casing.UpperFirst(text), opts...)
}

// AddMethod renders m into the body immediately; later changes to m are
// not reflected.
func (c *Class) AddMethod(m *Method, opts ...LineOption) *Class {
	return c.addBlock(m.Render(), opts)
}

// AddComment renders doc into the body immediately.
func (c *Class) AddComment(doc *DocComment, opts ...LineOption) *Class {
	return c.addBlock(doc.Render(), opts)
}

func (c *Class) addBlock(block []string, opts []LineOption) *Class {
	prefix := resolveIndent(c.indent, opts)
	for _, line := range block {
		if line == "" {
			c.lines = append(c.lines, "")
			continue
		}
		c.lines = append(c.lines, prefix+line)
	}
	return c
}

// Render returns the complete file text. Render does not modify the
// builder; repeated calls return identical output.
func (c *Class) Render() string {
	segments := []string{openTag, ""}

	if c.namespace != "" {
		segments = append(segments, "namespace "+c.namespace+";", "")
	}

	if len(c.imports) > 0 {
		for _, imp := range c.imports {
			line := "use " + imp.name
			if imp.alias != "" {
				line += " as " + imp.alias
			}
			segments = append(segments, line+";")
		}
		segments = append(segments, "")
	}

	segments = append(segments, c.signature(), "{")
	segments = append(segments, c.lines...)
	segments = append(segments, "}")

	return strings.Join(segments, lineBreak)
}

func (c *Class) signature() string {
	var b strings.Builder
	if c.abstract {
		b.WriteString("abstract ")
	}
	b.WriteString("class ")
	b.WriteString(c.className)

	if parent := c.qualifiedParent(); parent != "" {
		b.WriteString(" extends ")
		b.WriteString(parent)
	}

	if len(c.interfaces) > 0 {
		b.WriteString(" implements ")
		b.WriteString(strings.Join(c.interfaces, ", "))
	}

	return b.String()
}

// qualifiedParent prefixes a bare parent name with the class namespace
// unless the name is brought in by a use statement.
func (c *Class) qualifiedParent() string {
	if c.parent == "" || c.namespace == "" || strings.Contains(c.parent, namespaceSeparator) {
		return c.parent
	}
	if c.imported(c.parent) {
		return c.parent
	}
	return c.namespace + namespaceSeparator + c.parent
}

func (c *Class) imported(short string) bool {
	for _, imp := range c.imports {
		if imp.alias != "" {
			if imp.alias == short {
				return true
			}
			continue
		}
		if lastSegment(imp.name) == short {
			return true
		}
	}
	return false
}

func normalizeSeparators(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "/", namespaceSeparator)
}

// normalizeName converts "/" separators and upper-cases the first letter of
// every namespace segment, keeping a leading "\" for fully qualified names.
func normalizeName(name string) string {
	name = normalizeSeparators(name)
	segments := strings.Split(name, namespaceSeparator)
	for i, s := range segments {
		segments[i] = casing.UpperFirst(s)
	}
	return strings.Join(segments, namespaceSeparator)
}

func lastSegment(name string) string {
	if i := strings.LastIndex(name, namespaceSeparator); i >= 0 {
		return name[i+1:]
	}
	return name
}
