package layout

import (
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	root := setupLayoutTest(t,
		`<div id="a"><p>hello</p></div>`,
		`div, p { display: block; } p { height: 10px; }`,
	)

	snap := Snapshot(root)
	assert.Equal(t, "block", snap.Type)
	assert.Equal(t, "div", snap.Tag)
	require.Len(t, snap.Children, 1)

	p := snap.Children[0]
	assert.Equal(t, "p", p.Tag)
	assert.Equal(t, float32(10), p.Dimensions.Content.Height)
	require.Len(t, p.Children, 1)
	assert.Equal(t, "anonymous", p.Children[0].Type)
	require.Len(t, p.Children[0].Children, 1)
	assert.Equal(t, "inline", p.Children[0].Children[0].Type)
	assert.Equal(t, "hello", p.Children[0].Children[0].Text)
}

func TestMarshalJSON(t *testing.T) {
	root := setupLayoutTest(t, `<div></div>`, `div { display: block; width: 100px; margin: auto; }`)

	data, err := json.Marshal(root)
	require.NoError(t, err)

	var decoded BoxSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Snapshot(root), decoded)
	assert.Contains(t, string(data), `"type":"block"`)

	indented, err := MarshalIndent(root)
	require.NoError(t, err)
	assert.Contains(t, string(indented), "\n  \"tag\": \"div\"")
}
