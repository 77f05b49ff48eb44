// internal/browser/parser/html.go
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/Irere123/gozilla/internal/browser/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML parses a document fragment into a dom tree. When the source has exactly
// one top-level node it becomes the root; otherwise the top-level nodes are wrapped
// in a synthetic <html> element.
func ParseHTML(r io.Reader) (*dom.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var roots []*dom.Node
	for _, n := range nodes {
		if converted := convertNode(n); converted != nil {
			roots = append(roots, converted)
		}
	}

	if len(roots) == 1 {
		return roots[0], nil
	}
	return dom.Elem("html", nil, roots), nil
}

// ParseHTMLString is a convenience wrapper around ParseHTML.
func ParseHTMLString(source string) (*dom.Node, error) {
	return ParseHTML(strings.NewReader(source))
}

// convertNode maps an x/net/html node onto the dom model. Comments, doctypes and
// whitespace-only text are dropped.
func convertNode(n *html.Node) *dom.Node {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return dom.Text(n.Data)
	case html.ElementNode:
		attrs := make(dom.AttrMap, len(n.Attr))
		for _, attr := range n.Attr {
			attrs[attr.Key] = attr.Val
		}
		var children []*dom.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convertNode(c); child != nil {
				children = append(children, child)
			}
		}
		return dom.Elem(n.Data, attrs, children)
	default:
		return nil
	}
}
