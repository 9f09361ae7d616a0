package stencil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldCommentRender(t *testing.T) {
	got := NewFieldComment("string", "  The user name. ").Render()

	assert.Equal(t, []string{
		"/**",
		" * The user name.",
		" *",
		" * @var string",
		" */",
	}, got)
}

func TestMethodCommentRender(t *testing.T) {
	got := NewMethodComment("Find a user.").
		AddStringParameter("userName", "The name to look up.").
		AddIntegerParameter("limit", "").
		ReturnArray().
		Render()

	assert.Equal(t, []string{
		"/**",
		" * Find a user.",
		" *",
		" * @param string $user_name The name to look up.",
		" * @param int $limit",
		" * @return array",
		" */",
	}, got)
}

func TestMethodCommentWithoutParamsHasOneReturn(t *testing.T) {
	got := NewMethodComment("Boot the model.").Render()

	assert.Equal(t, 1, countPrefix(got, " * @return"))
	assert.Contains(t, got, " * @return void")
	assert.Zero(t, countPrefix(got, " * @param"))
	assert.Zero(t, countPrefix(got, " * @var"))
}

func TestFieldCommentNeverRendersParams(t *testing.T) {
	comments := []*DocComment{
		NewMixedFieldComment("m"),
		NewStringFieldComment("s"),
		NewIntFieldComment("i"),
		NewBoolFieldComment("b"),
		NewArrayFieldComment("a"),
		NewFloatFieldComment("f").AddStringParameter("ignored", "x").ReturnString(),
	}
	wantTypes := []string{"mixed", "string", "int", "bool", "array", "float"}

	for i, c := range comments {
		got := c.Render()
		assert.Zero(t, countPrefix(got, " * @param"))
		assert.Zero(t, countPrefix(got, " * @return"))
		assert.Contains(t, got, " * @var "+wantTypes[i])
	}
}

func TestCommentParameterLastWriteWins(t *testing.T) {
	got := NewMethodComment("Update.").
		AddParameter("a", "int", "first").
		AddBoolParameter("b", "flag").
		AddParameter("a", "string", "second").
		Render()

	assert.Equal(t, []string{
		" * @param string $a second",
		" * @param bool $b flag",
	}, got[3:5])
}

func TestCommentTypedParameters(t *testing.T) {
	got := NewMethodComment("All types.").
		AddMixedParameter("m", "").
		AddArrayParameter("a", "").
		AddFloatParameter("f", "").
		Render()

	assert.Equal(t, []string{" * @param mixed $m", " * @param array $a", " * @param float $f"}, got[3:6])
}

func TestCommentDefaults(t *testing.T) {
	c := NewMethodComment("")

	assert.Equal(t, MethodComment, c.Kind())
	assert.Equal(t, "mixed", c.FieldType())
	assert.Equal(t, "void", c.ReturnType())
	assert.Equal(t, " *", c.Render()[1])
}

func TestCommentReturnSetters(t *testing.T) {
	tests := []struct {
		set  func(*DocComment) *DocComment
		want string
	}{
		{(*DocComment).ReturnVoid, "void"},
		{(*DocComment).ReturnMixed, "mixed"},
		{(*DocComment).ReturnString, "string"},
		{(*DocComment).ReturnInt, "int"},
		{(*DocComment).ReturnBool, "bool"},
		{(*DocComment).ReturnArray, "array"},
		{(*DocComment).ReturnFloat, "float"},
	}

	for _, tt := range tests {
		c := tt.set(NewMethodComment("x"))
		assert.Equal(t, tt.want, c.ReturnType())
		assert.Contains(t, c.Render(), " * @return "+tt.want)
	}

	assert.Equal(t, "?User", NewMethodComment("x").SetReturnType("?User").ReturnType())
}

func TestFieldCommentSetters(t *testing.T) {
	c := NewStringFieldComment("old").SetFieldType("int[]").SetDescription(" new ")

	assert.Equal(t, FieldComment, c.Kind())
	assert.Equal(t, "new", c.Description())
	assert.Equal(t, "int[]", c.FieldType())
}

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}
