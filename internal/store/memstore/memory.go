// Package memstore provides an in-memory implementation of the store
// interface. It is used by tests and by ephemeral sessions that should
// not touch the on-disk database.
package memstore

import (
	"sync"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
)

// MemoryStore is an in-memory store.Store. It is safe for concurrent
// use; data exists only for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	list    []shopping.Item
	history []shopping.Item
}

// New creates an empty in-memory store.
func New() *MemoryStore {
	return &MemoryStore{}
}

// LoadList returns a copy of the stored list.
func (m *MemoryStore) LoadList() ([]shopping.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return shopping.Clone(m.list), nil
}

// SaveList replaces the stored list and records completed items.
func (m *MemoryStore) SaveList(list []shopping.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = shopping.Clone(list)
	for _, item := range list {
		if item.Completed {
			m.history = append(m.history, item)
		}
	}
	return nil
}

// History returns a copy of the completed-item records.
func (m *MemoryStore) History() ([]shopping.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return shopping.Clone(m.history), nil
}

// AppendHistory records completed items.
func (m *MemoryStore) AppendHistory(items []shopping.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, items...)
	return nil
}

// Clear removes the stored list, keeping history.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = nil
	return nil
}

// Close releases resources (no-op for memory store).
func (m *MemoryStore) Close() error {
	return nil
}
