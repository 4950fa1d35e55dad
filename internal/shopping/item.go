// Package shopping defines the shopping list item type and list helpers.
// A list is a plain slice of items; every mutation in the codebase produces
// a brand-new slice so callers can treat old values as immutable snapshots.
package shopping

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item represents a single entry on the shopping list.
type Item struct {
	// ID is an opaque unique identifier, stable for the item's lifetime.
	ID string

	// Name is the display name, stored Title-cased.
	Name string

	// Quantity is the item count or amount. Always positive for a live item.
	Quantity float64

	// Unit is an optional free-text unit label ("bottle", "kg").
	Unit string

	// Category is the auto-assigned category ("other" when unknown).
	Category string

	// Completed marks items already purchased.
	Completed bool

	// AddedAt is the creation timestamp.
	AddedAt time.Time
}

// NewItem creates a shopping item with a fresh ID, Title-cased name,
// and a category derived from the name.
func NewItem(name string, quantity float64, unit string) Item {
	return Item{
		ID:       uuid.NewString(),
		Name:     TitleCase(name),
		Quantity: quantity,
		Unit:     unit,
		Category: Categorize(name),
		AddedAt:  time.Now(),
	}
}

// Find returns the index of the item whose name matches case-insensitively,
// or -1 when no item matches. Lists hold at most one item per name.
func Find(list []Item, name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, item := range list {
		if strings.ToLower(item.Name) == name {
			return i
		}
	}
	return -1
}

// Clone returns a shallow copy of the list. Mutating the copy never
// affects the original slice.
func Clone(list []Item) []Item {
	out := make([]Item, len(list))
	copy(out, list)
	return out
}

// TitleCase capitalizes the first letter of each word for display.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
