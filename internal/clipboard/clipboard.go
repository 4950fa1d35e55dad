// Package clipboard abstracts copying text to the system clipboard so
// the CLI can export the rendered shopping list. The system
// implementation lives in sysboard; mockboard backs the tests.
package clipboard

import "io"

// Clipboard writes content to a clipboard destination.
type Clipboard interface {
	// Write copies the reader's content to the clipboard.
	Write(r io.Reader) error

	// IsSupported reports whether clipboard access works on this system.
	IsSupported() bool
}
