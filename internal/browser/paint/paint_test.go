package paint

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/Irere123/gozilla/internal/browser/layout"
	"github.com/Irere123/gozilla/internal/browser/parser"
	"github.com/Irere123/gozilla/internal/browser/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = parser.Color{R: 255, A: 255}
	blue  = parser.Color{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func layoutFor(t *testing.T, htmlString, cssString string) *layout.LayoutBox {
	t.Helper()
	doc, err := parser.ParseHTMLString(htmlString)
	require.NoError(t, err)
	sheet, err := parser.ParseCSS(cssString)
	require.NoError(t, err)

	viewport := layout.Dimensions{Content: layout.Rect{Width: 800, Height: 600}}
	root, err := layout.LayoutTree(style.StyleTree(doc, sheet), viewport)
	require.NoError(t, err)
	return root
}

func pixel(c *Canvas, x, y int) color.RGBA {
	return color.RGBAModel.Convert(c.Image().At(x, y)).(color.RGBA)
}

func TestBuildDisplayList(t *testing.T) {
	root := layoutFor(t,
		`<div class="w"><p>text</p></div>`,
		`div { display: block; width: 100px; margin: auto; background: #ff0000;
		       border-width: 2px; border-color: #0000ff; }
		 p { display: block; height: 20px; }`,
	)

	list := BuildDisplayList(root)
	require.Len(t, list, 5, "background plus four border strips; the p and anonymous box paint nothing")

	assert.Equal(t, SolidColor{Color: red, Rect: layout.Rect{X: 348, Y: 0, Width: 104, Height: 24}}, list[0])
	assert.Equal(t, layout.Rect{X: 348, Y: 0, Width: 2, Height: 24}, list[1].Rect)
	assert.Equal(t, layout.Rect{X: 450, Y: 0, Width: 2, Height: 24}, list[2].Rect)
	assert.Equal(t, layout.Rect{X: 348, Y: 0, Width: 104, Height: 2}, list[3].Rect)
	assert.Equal(t, layout.Rect{X: 348, Y: 22, Width: 104, Height: 2}, list[4].Rect)
	for _, item := range list[1:] {
		assert.Equal(t, blue, item.Color)
	}
}

func TestBuildDisplayList_IgnoresNonColorValues(t *testing.T) {
	root := layoutFor(t, `<div></div>`, `div { display: block; background: transparent; border-color: 0; }`)
	assert.Empty(t, BuildDisplayList(root))
}

func TestPaint(t *testing.T) {
	root := layoutFor(t,
		`<div id="a" class="w"><p>x</p></div>`,
		`#a { display: block; width: 100px; margin: auto; } .w { background: #ff0000; } p { display: block; height: 20px; }`,
	)

	canvas := Paint(root, layout.Rect{Width: 800, Height: 600})
	assert.Equal(t, 800, canvas.Width())
	assert.Equal(t, 600, canvas.Height())

	assert.Equal(t, color.RGBA{R: 255, A: 255}, pixel(canvas, 400, 10))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, pixel(canvas, 350, 0))
	assert.Equal(t, white, pixel(canvas, 349, 10))
	assert.Equal(t, white, pixel(canvas, 450, 10))
	assert.Equal(t, white, pixel(canvas, 400, 20))
}

func TestPaintItem_ClipsToCanvas(t *testing.T) {
	canvas := NewCanvas(10, 10)
	canvas.PaintItem(SolidColor{Color: red, Rect: layout.Rect{X: -5, Y: 8, Width: 8, Height: 50}})
	canvas.PaintItem(SolidColor{Color: blue, Rect: layout.Rect{X: 20, Y: 20, Width: 5, Height: 5}})

	assert.Equal(t, color.RGBA{R: 255, A: 255}, pixel(canvas, 0, 9))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, pixel(canvas, 2, 8))
	assert.Equal(t, white, pixel(canvas, 3, 8))
	assert.Equal(t, white, pixel(canvas, 0, 7))
}

func TestEncodePNG(t *testing.T) {
	canvas := NewCanvas(4, 3)
	var buf bytes.Buffer
	require.NoError(t, canvas.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
}
