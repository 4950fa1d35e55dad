// Package store defines the persistence collaborator for the shopping
// list. A store holds the current list as an ordered sequence of items
// plus an append-only history of completed purchases, which feeds the
// suggestion engine across sessions.
package store

import "github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"

// Store persists the shopping list and purchase history.
// Saves are whole-list replacements: the core produces a brand-new list
// value per mutation, and the store records that snapshot.
type Store interface {
	// LoadList returns the persisted list in insertion order.
	// A fresh store returns an empty list, not an error.
	LoadList() ([]shopping.Item, error)

	// SaveList replaces the persisted list with the given snapshot.
	// Completed items in the snapshot are also appended to history.
	SaveList(list []shopping.Item) error

	// History returns the accumulated completed-item records,
	// oldest first.
	History() ([]shopping.Item, error)

	// AppendHistory records completed items directly.
	AppendHistory(items []shopping.Item) error

	// Clear removes the persisted list. History is kept.
	Clear() error

	// Close releases any resources (DB connections, file handles).
	Close() error
}
