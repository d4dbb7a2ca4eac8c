// Package console implements the one-line prompt used to capture file
// names and other free text.
package console

import (
	"errors"
	"strings"

	"github.com/dshills/picoterm/internal/engine/grapheme"
)

// ErrUserCancelled is returned when the prompt is cancelled or submitted
// empty.
var ErrUserCancelled = errors.New("cancelled by user")

// Console is a single-line text prompt with its own cursor.
// Column positions count grapheme clusters.
type Console struct {
	prompt string
	text   string
	column int
	active bool
}

// New creates an inactive console.
func New() *Console {
	return &Console{}
}

// Open activates the prompt with initial text and the cursor at its end.
func (c *Console) Open(prompt, initial string) {
	c.prompt = prompt
	c.text = initial
	c.column = grapheme.Count(initial)
	c.active = true
}

// Active reports whether the prompt is open.
func (c *Console) Active() bool {
	return c.active
}

// Prompt returns the prompt label.
func (c *Console) Prompt() string {
	return c.prompt
}

// Text returns the entered text.
func (c *Console) Text() string {
	return c.text
}

// Column returns the cursor column within the text.
func (c *Console) Column() int {
	return c.column
}

// Insert inserts a rune at the cursor.
func (c *Console) Insert(r rune) {
	head, tail := grapheme.SplitAt(c.text, c.column)
	c.text = head + string(r) + tail
	c.column = grapheme.Count(head + string(r))
}

// Backspace removes the cluster before the cursor.
// It reports whether the text changed.
func (c *Console) Backspace() bool {
	if c.column == 0 {
		return false
	}
	head, tail := grapheme.SplitAt(c.text, c.column)
	head = grapheme.Slice(head, 0, c.column-1)
	c.text = head + tail
	c.column--
	return true
}

// Left moves the cursor back one column.
func (c *Console) Left() bool {
	if c.column == 0 {
		return false
	}
	c.column--
	return true
}

// Right moves the cursor forward one column.
func (c *Console) Right() bool {
	if c.column >= grapheme.Count(c.text) {
		return false
	}
	c.column++
	return true
}

// Home moves the cursor to the start of the text.
func (c *Console) Home() bool {
	if c.column == 0 {
		return false
	}
	c.column = 0
	return true
}

// End moves the cursor past the end of the text.
func (c *Console) End() bool {
	n := grapheme.Count(c.text)
	if c.column == n {
		return false
	}
	c.column = n
	return true
}

// Submit closes the prompt and returns the trimmed text.
// Blank input returns ErrUserCancelled.
func (c *Console) Submit() (string, error) {
	text := strings.TrimSpace(c.text)
	c.reset()
	if text == "" {
		return "", ErrUserCancelled
	}
	return text, nil
}

// Cancel closes the prompt and discards the text.
func (c *Console) Cancel() {
	c.reset()
}

func (c *Console) reset() {
	c.prompt = ""
	c.text = ""
	c.column = 0
	c.active = false
}
