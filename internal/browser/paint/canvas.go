// internal/browser/paint/canvas.go
package paint

import (
	"fmt"
	"image"
	"io"

	"github.com/Irere123/gozilla/internal/browser/layout"
	"github.com/fogleman/gg"
)

// Canvas is a raster surface backed by a gg drawing context.
type Canvas struct {
	context *gg.Context
	width   int
	height  int
}

// NewCanvas creates a white canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{context: gg.NewContext(width, height), width: width, height: height}
	c.context.SetRGB(1, 1, 1)
	c.context.Clear()
	return c
}

// Paint rasterizes a box tree onto a canvas the size of bounds.
func Paint(root *layout.LayoutBox, bounds layout.Rect) *Canvas {
	canvas := NewCanvas(int(bounds.Width), int(bounds.Height))
	for _, item := range BuildDisplayList(root) {
		canvas.PaintItem(item)
	}
	return canvas
}

// PaintItem fills the command's rectangle, snapped to whole pixels and clipped to
// the canvas.
func (c *Canvas) PaintItem(item SolidColor) {
	x0 := clamp(item.Rect.X, 0, float32(c.width))
	y0 := clamp(item.Rect.Y, 0, float32(c.height))
	x1 := clamp(item.Rect.X+item.Rect.Width, 0, float32(c.width))
	y1 := clamp(item.Rect.Y+item.Rect.Height, 0, float32(c.height))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	c.context.SetRGBA255(int(item.Color.R), int(item.Color.G), int(item.Color.B), int(item.Color.A))
	c.context.DrawRectangle(x0, y0, x1-x0, y1-y0)
	c.context.Fill()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Image returns the painted pixels.
func (c *Canvas) Image() image.Image {
	return c.context.Image()
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.context.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// clamp limits v to [lo, hi] and truncates it to a whole pixel.
func clamp(v, lo, hi float32) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return float64(int(v))
}
