package stencil

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLiteralFormat(t *testing.T) {
	tests := []struct {
		name    string
		literal Literal
		want    string
		wantOK  bool
	}{
		{"absent", Absent, "", false},
		{"bool true", Bool(true), "true", true},
		{"bool false", Bool(false), "false", true},
		{"plain string", String("paid"), `"paid"`, true},
		{"quoted string", String(`he said "hi"`), `"he said \"hi\""`, true},
		{"backslash", String(`App\Models`), `"App\\Models"`, true},
		{"dollar", String("$total"), `"\$total"`, true},
		{"int", Int(42), "42", true},
		{"negative int", Int(-7), "-7", true},
		{"float", Float(1.5), "1.5", true},
		{"whole float", Float(2), "2", true},
		{"string slice", Array([]string{"a", "b"}), `["a","b"]`, true},
		{"empty slice", Array([]int{}), `[]`, true},
		{"map sorted keys", Array(map[string]any{"b": 1, "a": "x"}), `{"a":"x","b":1}`, true},
		{"no html escaping", Array([]string{"<br>"}), `["<br>"]`, true},
		{"unencodable", Array([]any{func() {}}), `[]`, true},
		{"expr", Expr("self::STATUS_PAID"), "self::STATUS_PAID", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.literal.Format()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOf(t *testing.T) {
	type point struct{ X, Y int }

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"bool", true, "true"},
		{"string", "x", `"x"`},
		{"int", 3, "3"},
		{"int64 from toml", int64(9), "9"},
		{"uint8", uint8(255), "255"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"uint above int64 range", uint(math.MaxUint64), "18446744073709551615"},
		{"toml datetime", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), `"2024-01-01T00:00:00Z"`},
		{"float32", float32(0.5), "0.5"},
		{"float64", 0.25, "0.25"},
		{"slice", []any{"a", int64(1), true}, `["a",1,true]`},
		{"map", map[string]any{"k": "v"}, `{"k":"v"}`},
		{"literal passthrough", Expr("PHP_EOL"), "PHP_EOL"},
		{"struct falls back to text", point{1, 2}, "{1 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Of(tt.value).Format()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOfNilIsAbsent(t *testing.T) {
	assert.True(t, Of(nil).IsAbsent())
	assert.True(t, Of([]string(nil)).IsAbsent())
	assert.True(t, Of(map[string]any(nil)).IsAbsent())
	assert.True(t, Of((*int)(nil)).IsAbsent())
	assert.True(t, Of(error(nil)).IsAbsent())
	assert.True(t, Array(nil).IsAbsent())
	assert.True(t, Array([]any(nil)).IsAbsent())
	assert.False(t, Array([]any{}).IsAbsent())
	assert.False(t, Of(map[string]any{}).IsAbsent())
	assert.Equal(t, "<absent>", Of(nil).String())
	assert.Equal(t, `"x"`, Of("x").String())
}
