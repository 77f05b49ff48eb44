// internal/browser/style/selectors.go
package style

import (
	"github.com/Irere123/gozilla/internal/browser/dom"
	"github.com/Irere123/gozilla/internal/browser/parser"
)

// Matches reports whether a simple selector matches an element. Every constraint
// the selector carries must hold; absent constraints always match.
func Matches(elem *dom.ElementData, selector parser.SimpleSelector) bool {
	if selector.TagName != "" && selector.TagName != elem.TagName {
		return false
	}
	if selector.ID != "" {
		if id, ok := elem.ID(); !ok || id != selector.ID {
			return false
		}
	}
	if len(selector.Classes) > 0 {
		elemClasses := elem.Classes()
		for _, requiredClass := range selector.Classes {
			if _, found := elemClasses[requiredClass]; !found {
				return false
			}
		}
	}
	return true
}
