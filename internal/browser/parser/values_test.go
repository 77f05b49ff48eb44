package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueToPx(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected float32
	}{
		{"Pixels", Px(12.5), 12.5},
		{"Negative Pixels", Px(-3), -3},
		{"Auto Keyword", Keyword("auto"), 0},
		{"Color", ColorOf(Color{R: 10, G: 20, B: 30, A: 255}), 0},
		{"Unsupported Unit", Length(4, Unit(7)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.ToPx())
		})
	}
}

func TestValueEquality(t *testing.T) {
	assert.True(t, Keyword("auto") == Keyword("auto"))
	assert.False(t, Keyword("auto") == Keyword("block"))
	assert.False(t, Px(0) == Keyword("auto"))
	assert.True(t, Px(5) == Length(5, UnitPx))
	assert.True(t, Keyword("auto").IsKeyword("auto"))
	assert.False(t, Px(0).IsKeyword("auto"))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "auto", Keyword("auto").String())
	assert.Equal(t, "12.5px", Px(12.5).String())
	assert.Equal(t, "#ff0080ff", ColorOf(Color{R: 255, G: 0, B: 128, A: 255}).String())
}
