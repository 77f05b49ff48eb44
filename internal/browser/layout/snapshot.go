// internal/browser/layout/snapshot.go
package layout

import (
	"strings"

	json "github.com/json-iterator/go"

	"github.com/Irere123/gozilla/internal/browser/dom"
)

// BoxSnapshot is a serializable view of a layout box and its descendants.
type BoxSnapshot struct {
	Type       string        `json:"type"`
	Tag        string        `json:"tag,omitempty"`
	Text       string        `json:"text,omitempty"`
	Dimensions Dimensions    `json:"dimensions"`
	Children   []BoxSnapshot `json:"children,omitempty"`
}

// Snapshot captures the box tree rooted at b.
func Snapshot(b *LayoutBox) BoxSnapshot {
	snap := BoxSnapshot{
		Type:       b.BoxType.String(),
		Dimensions: b.Dimensions,
	}
	if sn, err := b.StyleNode(); err == nil {
		switch sn.Node.Type {
		case dom.ElementNode:
			snap.Tag = sn.Node.Element.TagName
		case dom.TextNode:
			snap.Text = strings.TrimSpace(sn.Node.Text)
		}
	}
	for _, child := range b.Children {
		snap.Children = append(snap.Children, Snapshot(child))
	}
	return snap
}

// MarshalJSON encodes the box tree as JSON.
func (b *LayoutBox) MarshalJSON() ([]byte, error) {
	return json.Marshal(Snapshot(b))
}

// MarshalIndent encodes the box tree as indented JSON.
func MarshalIndent(b *LayoutBox) ([]byte, error) {
	return json.MarshalIndent(Snapshot(b), "", "  ")
}
