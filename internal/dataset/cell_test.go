package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Cell
	}{
		{name: "integer", raw: "42", want: Number(42)},
		{name: "float", raw: "3.14", want: Number(3.14)},
		{name: "negative", raw: "-7.5", want: Number(-7.5)},
		{name: "scientific", raw: "1e3", want: Number(1000)},
		{name: "padded number", raw: " 10 ", want: Number(10)},
		{name: "text", raw: "hello", want: Text("hello")},
		{name: "mixed alphanumeric", raw: "12abc", want: Text("12abc")},
		{name: "empty is missing", raw: "", want: Missing},
		{name: "whitespace is missing", raw: "   ", want: Missing},
		{name: "NA is missing", raw: "NA", want: Missing},
		{name: "lowercase na is missing", raw: "na", want: Missing},
		{name: "N/A is missing", raw: "N/A", want: Missing},
		{name: "NaN is missing", raw: "NaN", want: Missing},
		{name: "null is missing", raw: "null", want: Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.raw)
			assert.True(t, got.Equal(tt.want), "Infer(%q) = %+v, want %+v", tt.raw, got, tt.want)
		})
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "1", Number(1).String(), "integral floats render without decimal point")
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "-0.125", Number(-0.125).String())
	assert.Equal(t, "x", Text("x").String())
	assert.Equal(t, "", Missing.String())
}

func TestCellEqual(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Number(1).Equal(Text("1")), "numeric 1 and text 1 differ in kind")
	assert.False(t, Text("").Equal(Missing), "empty text and missing differ in kind")
	assert.True(t, Missing.Equal(Missing))
}
