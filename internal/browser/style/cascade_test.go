package style

import (
	"testing"

	"github.com/Irere123/gozilla/internal/browser/dom"
	"github.com/Irere123/gozilla/internal/browser/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to parse CSS inside a test.
func mustParseCSS(t *testing.T, source string) parser.StyleSheet {
	t.Helper()
	sheet, err := parser.ParseCSS(source)
	require.NoError(t, err)
	return sheet
}

func TestMatchingRules(t *testing.T) {
	sheet := mustParseCSS(t, `
		p { color: #000; }
		span, p.lead, #x { width: 1px; }
		div { width: 2px; }
	`)
	elem := dom.Elem("p", dom.AttrMap{"class": "lead"}, nil).Element

	matched := MatchingRules(elem, sheet)
	require.Len(t, matched, 2)
	assert.Same(t, &sheet.Rules[0], matched[0].Rule)
	assert.Equal(t, parser.Specificity{C: 1}, matched[0].Specificity)
	assert.Same(t, &sheet.Rules[1], matched[1].Rule)
	// The most specific matching selector of the rule is reported.
	assert.Equal(t, parser.Specificity{B: 1, C: 1}, matched[1].Specificity)
}

func TestSpecifiedValues(t *testing.T) {
	elem := dom.Elem("p", dom.AttrMap{"id": "target", "class": "highlight"}, nil).Element

	t.Run("Specificity Ordering", func(t *testing.T) {
		sheet := mustParseCSS(t, `
			#target { display: block; }
			p.highlight { display: inline; }
			p { display: none; }
		`)
		values := SpecifiedValues(elem, sheet)
		assert.Equal(t, parser.Keyword("block"), values["display"])
	})

	t.Run("Equal Specificity Later Wins", func(t *testing.T) {
		sheet := mustParseCSS(t, `
			.highlight { width: 10px; }
			p { height: 1px; }
			.highlight { width: 20px; }
		`)
		values := SpecifiedValues(elem, sheet)
		assert.Equal(t, parser.Px(20), values["width"])
		assert.Equal(t, parser.Px(1), values["height"])
	})

	t.Run("Duplicate In One Rule", func(t *testing.T) {
		sheet := mustParseCSS(t, `p { width: 1px; width: 2px; }`)
		assert.Equal(t, parser.Px(2), SpecifiedValues(elem, sheet)["width"])
	})

	t.Run("Non-Conflicting Properties Merge", func(t *testing.T) {
		sheet := mustParseCSS(t, `
			#target { margin: auto; }
			p { padding: 3px; }
		`)
		values := SpecifiedValues(elem, sheet)
		expected := PropertyMap{"margin": parser.Keyword("auto"), "padding": parser.Px(3)}
		if diff := cmp.Diff(expected, values); diff != "" {
			t.Errorf("SpecifiedValues mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		sheet := mustParseCSS(t, `div { width: 1px; }`)
		assert.Empty(t, SpecifiedValues(elem, sheet))
	})
}

func TestSpecifiedValues_Idempotent(t *testing.T) {
	sheet := mustParseCSS(t, `
		* { margin: 0; }
		.a { width: 5px; }
		div.a { width: 6px; }
		#b { width: 7px; margin: auto; }
	`)
	elem := dom.Elem("div", dom.AttrMap{"id": "b", "class": "a"}, nil).Element

	first := SpecifiedValues(elem, sheet)
	second := SpecifiedValues(elem, sheet)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cascade is not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, parser.Px(7), first["width"])
	assert.Equal(t, parser.Keyword("auto"), first["margin"])
}
