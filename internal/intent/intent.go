// Package intent classifies free-text input into response categories.
//
// Classification is deliberately simple keyword containment. The rules are an
// ordered sequence evaluated top to bottom with first-match-wins semantics,
// so ties between categories are broken by declaration order, never by map
// iteration order.
package intent

import (
	"strings"

	"github.com/polyglotbot/polyglot/internal/catalog"
)

// rule binds a keyword set to the category it selects.
type rule struct {
	keywords []string
	category catalog.Category
}

// rules is the priority-ordered classification table. Farewell phrases are
// checked before everything else so that "goodbye everyone" ends up a
// farewell even when it also contains a greeting word.
var rules = []rule{
	{[]string{"bye", "goodbye", "exit", "quit"}, catalog.Farewell},
	{[]string{"hello", "hi ", "hey", "greetings", "hola", "bonjour", "namaste"}, catalog.Greeting},
	{[]string{"your name", "who are you", "what are you"}, catalog.Name},
	{[]string{"help", "commands", "options"}, catalog.Help},
}

// Classify maps text to a category. Unmatched input is a fallback; Classify
// never fails.
func Classify(text string) catalog.Category {
	lc := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lc, kw) {
				return r.category
			}
		}
	}
	return catalog.Fallback
}
