// internal/browser/style/style.go
package style

import (
	"github.com/Irere123/gozilla/internal/browser/dom"
	"github.com/Irere123/gozilla/internal/browser/parser"
	"go.uber.org/zap"
)

// PropertyMap maps CSS property names to their specified values.
type PropertyMap map[string]parser.Value

// StyledNode represents a DOM node combined with its specified values. It borrows
// the document node and must not outlive the document tree.
type StyledNode struct {
	Node            *dom.Node
	SpecifiedValues PropertyMap
	Children        []*StyledNode
}

// Value returns the specified value of a property, if any.
func (sn *StyledNode) Value(name string) (parser.Value, bool) {
	val, ok := sn.SpecifiedValues[name]
	return val, ok
}

// Lookup returns the value of name, or of fallbackName if name is not set, or def.
func (sn *StyledNode) Lookup(name, fallbackName string, def parser.Value) parser.Value {
	if val, ok := sn.Value(name); ok {
		return val
	}
	if val, ok := sn.Value(fallbackName); ok {
		return val
	}
	return def
}

// DisplayType is the box generation mode of a node.
type DisplayType int

const (
	DisplayInline DisplayType = iota
	DisplayBlock
	DisplayNone
)

func (d DisplayType) String() string {
	switch d {
	case DisplayBlock:
		return "block"
	case DisplayNone:
		return "none"
	default:
		return "inline"
	}
}

// Display reads the display property. Anything other than block or none,
// including an absent property, is inline.
func (sn *StyledNode) Display() DisplayType {
	val, ok := sn.Value("display")
	if !ok {
		return DisplayInline
	}
	switch {
	case val.IsKeyword("block"):
		return DisplayBlock
	case val.IsKeyword("none"):
		return DisplayNone
	default:
		return DisplayInline
	}
}

// StyleTree applies a stylesheet to a whole document tree.
func StyleTree(root *dom.Node, sheet parser.StyleSheet) *StyledNode {
	return NewEngine(sheet, nil).BuildTree(root)
}

// Engine builds style trees for one stylesheet.
type Engine struct {
	sheet  parser.StyleSheet
	logger *zap.Logger
}

// NewEngine creates a style engine. A nil logger disables logging.
func NewEngine(sheet parser.StyleSheet, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{sheet: sheet, logger: logger.Named("style")}
}

// BuildTree styles root and every descendant. Display filtering happens in layout,
// so children are styled regardless of their display value.
func (se *Engine) BuildTree(root *dom.Node) *StyledNode {
	styled := se.buildTreeRecursive(root)
	se.logger.Debug("Style tree built", zap.Int("rules", len(se.sheet.Rules)))
	return styled
}

func (se *Engine) buildTreeRecursive(node *dom.Node) *StyledNode {
	values := make(PropertyMap)
	if node.Type == dom.ElementNode {
		values = SpecifiedValues(node.Element, se.sheet)
	}

	styledNode := &StyledNode{
		Node:            node,
		SpecifiedValues: values,
		Children:        make([]*StyledNode, 0, len(node.Children)),
	}
	for _, child := range node.Children {
		styledNode.Children = append(styledNode.Children, se.buildTreeRecursive(child))
	}
	return styledNode
}
