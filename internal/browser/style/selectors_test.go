package style

import (
	"testing"

	"github.com/Irere123/gozilla/internal/browser/dom"
	"github.com/Irere123/gozilla/internal/browser/parser"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	elem := dom.Elem("div", dom.AttrMap{"id": "main", "class": "card  primary"}, nil).Element
	bare := dom.Elem("div", nil, nil).Element

	tests := []struct {
		name     string
		elem     *dom.ElementData
		selector parser.SimpleSelector
		expected bool
	}{
		{"Universal", elem, parser.SimpleSelector{}, true},
		{"Tag Match", elem, parser.SimpleSelector{TagName: "div"}, true},
		{"Tag Mismatch", elem, parser.SimpleSelector{TagName: "p"}, false},
		{"Tag Case Sensitive", elem, parser.SimpleSelector{TagName: "DIV"}, false},
		{"ID Match", elem, parser.SimpleSelector{ID: "main"}, true},
		{"ID Mismatch", elem, parser.SimpleSelector{ID: "other"}, false},
		{"ID Missing Attribute", bare, parser.SimpleSelector{ID: "main"}, false},
		{"Single Class", elem, parser.SimpleSelector{Classes: []string{"primary"}}, true},
		{"All Classes", elem, parser.SimpleSelector{Classes: []string{"primary", "card"}}, true},
		{"One Class Missing", elem, parser.SimpleSelector{Classes: []string{"card", "secondary"}}, false},
		{"Class Missing Attribute", bare, parser.SimpleSelector{Classes: []string{"card"}}, false},
		{"Combined", elem, parser.SimpleSelector{TagName: "div", ID: "main", Classes: []string{"card"}}, true},
		{"Combined One Constraint Fails", elem, parser.SimpleSelector{TagName: "span", ID: "main", Classes: []string{"card"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.elem, tt.selector))
		})
	}
}
