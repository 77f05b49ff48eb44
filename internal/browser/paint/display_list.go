// internal/browser/paint/display_list.go
package paint

import (
	"github.com/Irere123/gozilla/internal/browser/layout"
	"github.com/Irere123/gozilla/internal/browser/parser"
)

// SolidColor fills a rectangle with one color.
type SolidColor struct {
	Color parser.Color
	Rect  layout.Rect
}

// DisplayList is the ordered list of paint commands for a box tree.
type DisplayList []SolidColor

// BuildDisplayList walks the box tree depth-first. Each box paints its background,
// then its borders, then its children.
func BuildDisplayList(root *layout.LayoutBox) DisplayList {
	var list DisplayList
	renderLayoutBox(&list, root)
	return list
}

func renderLayoutBox(list *DisplayList, box *layout.LayoutBox) {
	renderBackground(list, box)
	renderBorders(list, box)
	for _, child := range box.Children {
		renderLayoutBox(list, child)
	}
}

func renderBackground(list *DisplayList, box *layout.LayoutBox) {
	if c, ok := getColor(box, "background"); ok {
		*list = append(*list, SolidColor{Color: c, Rect: box.Dimensions.BorderBox()})
	}
}

func renderBorders(list *DisplayList, box *layout.LayoutBox) {
	c, ok := getColor(box, "border-color")
	if !ok {
		return
	}

	d := box.Dimensions
	borderBox := d.BorderBox()

	// Left, right, top, bottom.
	*list = append(*list,
		SolidColor{Color: c, Rect: layout.Rect{
			X: borderBox.X, Y: borderBox.Y, Width: d.Border.Left, Height: borderBox.Height,
		}},
		SolidColor{Color: c, Rect: layout.Rect{
			X: borderBox.X + borderBox.Width - d.Border.Right, Y: borderBox.Y, Width: d.Border.Right, Height: borderBox.Height,
		}},
		SolidColor{Color: c, Rect: layout.Rect{
			X: borderBox.X, Y: borderBox.Y, Width: borderBox.Width, Height: d.Border.Top,
		}},
		SolidColor{Color: c, Rect: layout.Rect{
			X: borderBox.X, Y: borderBox.Y + borderBox.Height - d.Border.Bottom, Width: borderBox.Width, Height: d.Border.Bottom,
		}},
	)
}

// getColor returns the color value of a property. Anonymous boxes have no style
// and therefore no color.
func getColor(box *layout.LayoutBox, name string) (parser.Color, bool) {
	sn, err := box.StyleNode()
	if err != nil {
		return parser.Color{}, false
	}
	val, ok := sn.Value(name)
	if !ok || val.Kind != parser.KindColor {
		return parser.Color{}, false
	}
	return val.Color, true
}
