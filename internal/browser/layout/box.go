// internal/browser/layout/box.go
package layout

// -- Core Structures: Box Model and Dimensions --

// Dimensions defines the geometry of a layout box.
type Dimensions struct {
	// Content area (x, y) relative to the viewport origin.
	Content Rect `json:"content"`

	Padding EdgeSizes `json:"padding"`
	Border  EdgeSizes `json:"border"`
	Margin  EdgeSizes `json:"margin"`
}

// MarginBox returns the rectangle enclosing the margin area.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// BorderBox returns the rectangle enclosing the border area.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// PaddingBox returns the rectangle enclosing the padding area.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

type Rect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// ExpandedBy returns a new rectangle expanded by the edge sizes.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

// EdgeSizes holds one value per side of a box edge (padding, border or margin).
type EdgeSizes struct {
	Left   float32 `json:"left"`
	Right  float32 `json:"right"`
	Top    float32 `json:"top"`
	Bottom float32 `json:"bottom"`
}
