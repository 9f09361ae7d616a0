package stencil

import (
	"strings"

	"github.com/teranos/stencil/casing"
)

// CommentKind selects what a DocComment documents.
type CommentKind uint8

const (
	// FieldComment documents a property or constant with an @var line
	FieldComment CommentKind = iota + 1
	// MethodComment documents a method with @param and @return lines
	MethodComment
)

const (
	defaultFieldType  = "mixed"
	defaultReturnType = "void"
)

type docParam struct {
	dataType    string
	description string
}

// DocComment builds a /** ... */ documentation block.
type DocComment struct {
	kind        CommentKind
	fieldType   string
	description string
	params      ordered[docParam]
	returnType  string
}

func newDocComment(kind CommentKind) *DocComment {
	return &DocComment{
		kind:       kind,
		fieldType:  defaultFieldType,
		returnType: defaultReturnType,
	}
}

// NewFieldComment creates a field doc comment with the given @var type.
func NewFieldComment(fieldType, description string) *DocComment {
	return newDocComment(FieldComment).SetFieldType(fieldType).SetDescription(description)
}

// NewMixedFieldComment creates a field doc comment typed "mixed".
func NewMixedFieldComment(description string) *DocComment {
	return NewFieldComment("mixed", description)
}

// NewStringFieldComment creates a field doc comment typed "string".
func NewStringFieldComment(description string) *DocComment {
	return NewFieldComment("string", description)
}

// NewIntFieldComment creates a field doc comment typed "int".
func NewIntFieldComment(description string) *DocComment {
	return NewFieldComment("int", description)
}

// NewBoolFieldComment creates a field doc comment typed "bool".
func NewBoolFieldComment(description string) *DocComment {
	return NewFieldComment("bool", description)
}

// NewArrayFieldComment creates a field doc comment typed "array".
func NewArrayFieldComment(description string) *DocComment {
	return NewFieldComment("array", description)
}

// NewFloatFieldComment creates a field doc comment typed "float".
func NewFloatFieldComment(description string) *DocComment {
	return NewFieldComment("float", description)
}

// NewMethodComment creates a method doc comment returning "void".
func NewMethodComment(description string) *DocComment {
	return newDocComment(MethodComment).SetDescription(description)
}

func (c *DocComment) Kind() CommentKind   { return c.kind }
func (c *DocComment) Description() string { return c.description }
func (c *DocComment) FieldType() string   { return c.fieldType }
func (c *DocComment) ReturnType() string  { return c.returnType }

// SetDescription sets the summary line; surrounding whitespace is trimmed.
func (c *DocComment) SetDescription(description string) *DocComment {
	c.description = strings.TrimSpace(description)
	return c
}

// SetFieldType sets the @var type. Only rendered for field comments.
func (c *DocComment) SetFieldType(fieldType string) *DocComment {
	c.fieldType = fieldType
	return c
}

// AddParameter documents a method parameter. The name is snake_cased; a
// repeated name replaces the earlier entry in place.
func (c *DocComment) AddParameter(name, dataType, description string) *DocComment {
	c.params.set(casing.ToSnake(name), docParam{
		dataType:    dataType,
		description: strings.TrimSpace(description),
	})
	return c
}

// AddMixedParameter documents a parameter of type mixed.
func (c *DocComment) AddMixedParameter(name, description string) *DocComment {
	return c.AddParameter(name, "mixed", description)
}

// AddStringParameter documents a parameter of type string.
func (c *DocComment) AddStringParameter(name, description string) *DocComment {
	return c.AddParameter(name, "string", description)
}

// AddIntegerParameter documents a parameter of type int.
func (c *DocComment) AddIntegerParameter(name, description string) *DocComment {
	return c.AddParameter(name, "int", description)
}

// AddBoolParameter documents a parameter of type bool.
func (c *DocComment) AddBoolParameter(name, description string) *DocComment {
	return c.AddParameter(name, "bool", description)
}

// AddArrayParameter documents a parameter of type array.
func (c *DocComment) AddArrayParameter(name, description string) *DocComment {
	return c.AddParameter(name, "array", description)
}

// AddFloatParameter documents a parameter of type float.
func (c *DocComment) AddFloatParameter(name, description string) *DocComment {
	return c.AddParameter(name, "float", description)
}

// SetReturnType sets the @return type. Only rendered for method comments.
func (c *DocComment) SetReturnType(returnType string) *DocComment {
	c.returnType = returnType
	return c
}

// ReturnVoid sets the @return type to void.
func (c *DocComment) ReturnVoid() *DocComment { return c.SetReturnType("void") }

// ReturnMixed sets the @return type to mixed.
func (c *DocComment) ReturnMixed() *DocComment { return c.SetReturnType("mixed") }

// ReturnString sets the @return type to string.
func (c *DocComment) ReturnString() *DocComment { return c.SetReturnType("string") }

// ReturnInt sets the @return type to int.
func (c *DocComment) ReturnInt() *DocComment { return c.SetReturnType("int") }

// ReturnBool sets the @return type to bool.
func (c *DocComment) ReturnBool() *DocComment { return c.SetReturnType("bool") }

// ReturnArray sets the @return type to array.
func (c *DocComment) ReturnArray() *DocComment { return c.SetReturnType("array") }

// ReturnFloat sets the @return type to float.
func (c *DocComment) ReturnFloat() *DocComment { return c.SetReturnType("float") }

// Render returns the comment block, one element per line, unindented.
func (c *DocComment) Render() []string {
	lines := []string{
		"/**",
		commentLine(c.description),
		" *",
	}

	if c.kind == MethodComment {
		c.params.each(func(name string, p docParam) {
			lines = append(lines, commentLine("@param "+p.dataType+" $"+name+" "+p.description))
		})
		lines = append(lines, commentLine("@return "+c.returnType))
	} else {
		lines = append(lines, commentLine("@var "+c.fieldType))
	}

	return append(lines, " */")
}

func commentLine(text string) string {
	return strings.TrimRight(" * "+text, " ")
}
