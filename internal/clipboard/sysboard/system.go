// Package sysboard implements clipboard writes using platform commands:
// pbcopy on macOS, xclip or xsel on Linux.
package sysboard

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// SystemClipboard implements clipboard.Clipboard using system commands
type SystemClipboard struct{}

// New creates a new SystemClipboard instance
func New() *SystemClipboard {
	return &SystemClipboard{}
}

// IsSupported returns true if clipboard operations are supported on this system
func (s *SystemClipboard) IsSupported() bool {
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		_, err := exec.LookPath("xsel")
		return err == nil
	default:
		return false
	}
}

// Write copies the reader's content to the system clipboard
func (s *SystemClipboard) Write(r io.Reader) error {
	switch runtime.GOOS {
	case "darwin":
		return writeWithCommand(r, "pbcopy")
	case "linux":
		// Try xclip first
		if err := writeWithCommand(r, "xclip", "-selection", "clipboard"); err == nil {
			return nil
		}
		if err := writeWithCommand(r, "xsel", "--clipboard", "--input"); err != nil {
			return fmt.Errorf("failed to write clipboard (tried xclip and xsel): %w", err)
		}
		return nil
	default:
		return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// writeWithCommand executes a command with data as stdin
func writeWithCommand(r io.Reader, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r
	return cmd.Run()
}
