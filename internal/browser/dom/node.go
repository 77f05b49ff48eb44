// internal/browser/dom/node.go
package dom

import "strings"

// NodeType distinguishes text leaves from elements.
type NodeType int

const (
	TextNode NodeType = iota
	ElementNode
)

// AttrMap holds an element's attributes. Order is not significant.
type AttrMap map[string]string

// ElementData is the element-specific part of a Node.
type ElementData struct {
	TagName    string
	Attributes AttrMap
}

// Node is a single node of the document tree. Text is set for text nodes,
// Element for element nodes.
type Node struct {
	Type     NodeType
	Text     string
	Element  *ElementData
	Children []*Node
}

// Text creates a text leaf.
func Text(data string) *Node {
	return &Node{Type: TextNode, Text: data}
}

// Elem creates an element node. A nil attribute map is replaced with an empty one.
func Elem(tagName string, attrs AttrMap, children []*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{
		Type:     ElementNode,
		Element:  &ElementData{TagName: tagName, Attributes: attrs},
		Children: children,
	}
}

// ID returns the value of the id attribute.
func (e *ElementData) ID() (string, bool) {
	id, ok := e.Attributes["id"]
	return id, ok
}

// Classes returns the space-separated tokens of the class attribute as a set.
func (e *ElementData) Classes() map[string]struct{} {
	classes := make(map[string]struct{})
	classList, ok := e.Attributes["class"]
	if !ok {
		return classes
	}
	for _, class := range strings.Fields(classList) {
		classes[class] = struct{}{}
	}
	return classes
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
