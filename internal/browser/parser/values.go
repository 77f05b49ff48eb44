// internal/browser/parser/values.go
package parser

import "fmt"

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindKeyword ValueKind = iota
	KindLength
	KindColor
)

// Unit is a length unit. Only pixels are supported.
type Unit int

const (
	UnitPx Unit = iota
)

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Value is a CSS value: a keyword, a length with unit, or a color.
// Values are comparable with ==, so a value can be tested against a
// constructed Keyword("auto").
type Value struct {
	Kind    ValueKind
	Keyword string
	Length  float32
	Unit    Unit
	Color   Color
}

// Keyword creates a keyword value.
func Keyword(text string) Value {
	return Value{Kind: KindKeyword, Keyword: text}
}

// Length creates a length value.
func Length(number float32, unit Unit) Value {
	return Value{Kind: KindLength, Length: number, Unit: unit}
}

// Px is shorthand for Length(number, UnitPx).
func Px(number float32) Value {
	return Length(number, UnitPx)
}

// ColorOf creates a color value.
func ColorOf(c Color) Value {
	return Value{Kind: KindColor, Color: c}
}

// ToPx returns the size of a pixel length, or zero for every other value.
func (v Value) ToPx() float32 {
	if v.Kind == KindLength && v.Unit == UnitPx {
		return v.Length
	}
	return 0
}

// IsKeyword reports whether v is the given keyword.
func (v Value) IsKeyword(text string) bool {
	return v.Kind == KindKeyword && v.Keyword == text
}

func (v Value) String() string {
	switch v.Kind {
	case KindKeyword:
		return v.Keyword
	case KindLength:
		return fmt.Sprintf("%g%s", v.Length, v.Unit)
	case KindColor:
		return fmt.Sprintf("#%02x%02x%02x%02x", v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	default:
		return "<invalid>"
	}
}
