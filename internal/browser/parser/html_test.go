package parser

import (
	"testing"

	"github.com/Irere123/gozilla/internal/browser/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTML_SingleRoot(t *testing.T) {
	root, err := ParseHTMLString(`
		<div id="a" class="w x">
			<!-- dropped -->
			<p>Hello</p>
			<span>world</span>
		</div>`)
	require.NoError(t, err)

	require.Equal(t, dom.ElementNode, root.Type)
	assert.Equal(t, "div", root.Element.TagName)
	id, ok := root.Element.ID()
	assert.True(t, ok)
	assert.Equal(t, "a", id)
	assert.Equal(t, map[string]struct{}{"w": {}, "x": {}}, root.Element.Classes())

	require.Len(t, root.Children, 2, "comments and whitespace text are dropped")
	p := root.Children[0]
	assert.Equal(t, "p", p.Element.TagName)
	require.Len(t, p.Children, 1)
	assert.Equal(t, dom.TextNode, p.Children[0].Type)
	assert.Equal(t, "Hello", p.Children[0].Text)
	assert.Equal(t, "span", root.Children[1].Element.TagName)
}

func TestParseHTML_MultipleRootsWrapped(t *testing.T) {
	root, err := ParseHTMLString(`<p>one</p><p>two</p>`)
	require.NoError(t, err)

	assert.Equal(t, "html", root.Element.TagName)
	assert.Empty(t, root.Element.Attributes)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "p", root.Children[0].Element.TagName)
	assert.Equal(t, "p", root.Children[1].Element.TagName)
}

func TestParseHTML_MissingClassAttribute(t *testing.T) {
	root, err := ParseHTMLString(`<section></section>`)
	require.NoError(t, err)

	_, ok := root.Element.ID()
	assert.False(t, ok)
	assert.Empty(t, root.Element.Classes())
	assert.Empty(t, root.Children)
}

func TestParseHTML_Empty(t *testing.T) {
	root, err := ParseHTMLString("   ")
	require.NoError(t, err)
	assert.Equal(t, "html", root.Element.TagName)
	assert.Empty(t, root.Children)
}
