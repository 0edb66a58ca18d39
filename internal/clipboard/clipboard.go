// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility is installed.
var ErrUnavailable = errors.New("clipboard not available")

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Read returns the current clipboard text.
func Read() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}
