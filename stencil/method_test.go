package stencil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodRenderParams(t *testing.T) {
	m := NewPublicMethod("find").
		AddStringParam("name").
		AddIntegerParam("limit", 10).
		AddBoolParam("strict", true).
		AddArrayParam("options", []string{"a"}).
		AddFloatParam("ratio", 0.5).
		AddUntypedParam("extra", nil).
		AddMixedParam("value", "x")

	got := m.Render()

	assert.Equal(t, []string{
		`public function find(string $name, int $limit = 10, bool $strict = true, array $options = ["a"], float $ratio = 0.5, $extra, mixed $value = "x")`,
		"{",
		"}",
	}, got)
}

func TestMethodNilDefaultsRenderNoDefault(t *testing.T) {
	m := NewPublicMethod("f").
		AddArrayParam("items", nil).
		AddArrayParam("tags", []string(nil)).
		AddMixedParam("meta", map[string]any(nil)).
		AddUntypedParam("x", (*int)(nil))

	assert.Equal(t, "public function f(array $items, array $tags, mixed $meta, $x)", m.Render()[0])
}

func TestMethodLargeUnsignedDefault(t *testing.T) {
	m := NewPublicMethod("f").AddUntypedParam("u", uint(math.MaxUint64))

	assert.Equal(t, "public function f($u = 18446744073709551615)", m.Render()[0])
}

func TestMethodRepeatedParamKeepsPosition(t *testing.T) {
	m := NewPublicMethod("update").
		AddIntegerParam("a", 1).
		AddStringParam("b").
		AddStringParam("a", "latest")

	assert.Equal(t, `public function update(string $a = "latest", string $b)`, m.Render()[0])
}

func TestMethodParamNamesAreSnakeCased(t *testing.T) {
	m := NewPublicMethod("rename").AddStringParam("firstName")

	assert.Equal(t, "public function rename(string $first_name)", m.Render()[0])
}

func TestMethodAbstract(t *testing.T) {
	m := NewProtectedMethod("handle").
		SetAbstract().
		AddRawLine("return 1;")

	assert.Equal(t, []string{"protected abstract function handle();"}, m.Render())
	assert.True(t, m.IsAbstract())
}

func TestMethodNames(t *testing.T) {
	tests := []struct {
		name   string
		method *Method
		want   string
	}{
		{"private static", NewPrivateStaticMethod("make_instance"), "private static function makeInstance()"},
		{"public static", NewPublicStaticMethod("create"), "public static function create()"},
		{"protected static", NewProtectedStaticMethod("boot"), "protected static function boot()"},
		{"private", NewPrivateMethod("GetTotal"), "private function getTotal()"},
		{"constructor", NewConstructor(), "public function __construct()"},
		{"private constructor", NewPrivateConstructor(), "private function __construct()"},
		{"magic", NewPublicMethod("__toString"), "public function __toString()"},
		{"plain", NewMethod("run", true), "public static function run()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.Render()[0])
		})
	}
}

func TestMethodVisibility(t *testing.T) {
	m := NewPublicMethod("x")

	m.SetVisibility(Visibility(0))
	assert.Equal(t, Public, m.Visibility())

	m.SetProtected()
	assert.Equal(t, Protected, m.Visibility())

	m.SetVisibility(Private)
	assert.Equal(t, Private, m.Visibility())
	assert.False(t, m.IsStatic())
	assert.Equal(t, "x", m.Name())
}

func TestMethodBodyIndent(t *testing.T) {
	m := NewPublicMethod("total").
		SetIndent(1).
		AddRawLine("$sum = 0;").
		AddRawLine("foreach ($this->items as $item) {").
		AddRawLine("$sum += $item;", WithIndent(2)).
		AddRawLine("}").
		AddRawLine("return $sum;", WithIndent(-1)).
		SetIndent(-3).
		AddRawLine("// end")

	assert.Equal(t, []string{
		"public function total()",
		"{",
		"    $sum = 0;",
		"    foreach ($this->items as $item) {",
		"        $sum += $item;",
		"    }",
		"    return $sum;",
		"    // end",
		"}",
	}, m.Render())
}

func TestMethodRenderIsRepeatable(t *testing.T) {
	m := NewPublicMethod("x").AddStringParam("a").AddRawLine("return $a;")

	assert.Equal(t, m.Render(), m.Render())
}
