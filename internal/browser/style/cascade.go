// internal/browser/style/cascade.go
package style

import (
	"sort"

	"github.com/Irere123/gozilla/internal/browser/dom"
	"github.com/Irere123/gozilla/internal/browser/parser"
)

// MatchedRule pairs a rule with the specificity of the selector that matched.
type MatchedRule struct {
	Specificity parser.Specificity
	Rule        *parser.Rule
}

// MatchingRules returns the rules of the sheet that apply to elem, in sheet order.
// Selectors are sorted by descending specificity at parse time, so the first
// matching selector is the most specific one.
func MatchingRules(elem *dom.ElementData, sheet parser.StyleSheet) []MatchedRule {
	var matched []MatchedRule
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		for _, selector := range rule.Selectors {
			if Matches(elem, selector) {
				matched = append(matched, MatchedRule{Specificity: selector.Specificity(), Rule: rule})
				break
			}
		}
	}
	return matched
}

// SpecifiedValues runs the cascade for one element. Rules are applied from lowest
// to highest specificity; equal specificities keep sheet order, so the later rule wins.
func SpecifiedValues(elem *dom.ElementData, sheet parser.StyleSheet) PropertyMap {
	rules := MatchingRules(elem, sheet)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Specificity.Less(rules[j].Specificity)
	})

	values := make(PropertyMap)
	for _, matched := range rules {
		for _, decl := range matched.Rule.Declarations {
			values[decl.Name] = decl.Value
		}
	}
	return values
}
