// Package mockboard provides a mock clipboard implementation for testing.
package mockboard

import "io"

// MockClipboard implements clipboard.Clipboard for testing
type MockClipboard struct {
	data []byte
}

// New creates a new MockClipboard instance
func New() *MockClipboard {
	return &MockClipboard{}
}

// Write implements Clipboard.Write for MockClipboard
func (m *MockClipboard) Write(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

// IsSupported always returns true for the mock clipboard
func (m *MockClipboard) IsSupported() bool {
	return true
}

// GetData returns the current clipboard data (for testing)
func (m *MockClipboard) GetData() []byte {
	return m.data
}
