package shopping

import "strings"

// categoryKeywords maps a category to the name substrings that select it.
// First match wins; unmatched names fall back to "other".
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"dairy", []string{"milk", "cheese", "yogurt", "butter"}},
	{"produce", []string{"apple", "banana", "tomato", "onion", "potato", "orange"}},
	{"staples", []string{"bread", "rice", "flour", "pasta"}},
	{"beverages", []string{"water", "juice", "soda"}},
}

// Categorize assigns a category from the fixed keyword table.
func Categorize(name string) string {
	name = strings.ToLower(name)
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(name, kw) {
				return group.category
			}
		}
	}
	return "other"
}
