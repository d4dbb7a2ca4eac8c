// Package app provides the main application structure and coordination.
package app

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/dshills/picoterm/internal/dispatcher"
)

// SystemClipboard bridges Edit mode yank and paste to the system
// clipboard.
type SystemClipboard struct{}

// ReadAll returns the clipboard text.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", dispatcher.ErrNoClipboard
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}

// WriteAll replaces the clipboard text.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return dispatcher.ErrNoClipboard
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
