package cursor

import (
	"github.com/dshills/picoterm/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Text is the read-only view of a document a cursor moves over.
// *buffer.Buffer satisfies it.
type Text interface {
	LineCount() int
	Line(line int) string
	LineLen(line int) int
}

// Cursor is an insertion point in a document.
type Cursor struct {
	line   int
	column int
}

// New creates a cursor at the start of the document.
func New() *Cursor {
	return &Cursor{}
}

// NewAt creates a cursor at pos, clamped to text.
func NewAt(text Text, pos Position) *Cursor {
	c := &Cursor{line: pos.Line, column: pos.Column}
	c.Clamp(text)
	return c
}

// Position returns the cursor position.
func (c *Cursor) Position() Position {
	return Position{Line: c.line, Column: c.column}
}

// Line returns the cursor line.
func (c *Cursor) Line() int {
	return c.line
}

// Column returns the cursor column.
func (c *Cursor) Column() int {
	return c.column
}

// SetPosition moves the cursor to pos, clamped to text.
// It reports whether the position changed.
func (c *Cursor) SetPosition(text Text, pos Position) bool {
	old := c.Position()
	c.line, c.column = pos.Line, pos.Column
	c.Clamp(text)
	return c.Position() != old
}

// Clamp restores 0 <= Line < LineCount and 0 <= Column <= LineLen(Line).
func (c *Cursor) Clamp(text Text) {
	last := text.LineCount() - 1
	if last < 0 {
		last = 0
	}
	c.line = clamp(c.line, 0, last)
	c.column = clamp(c.column, 0, text.LineLen(c.line))
}

// Valid reports whether the cursor satisfies its invariant for text.
func (c *Cursor) Valid(text Text) bool {
	return c.line >= 0 && c.line < text.LineCount() &&
		c.column >= 0 && c.column <= text.LineLen(c.line)
}

// MoveRight advances one column. With wholeWord it continues to the start of
// the next word, stopping at the end of the line. It never wraps.
func (c *Cursor) MoveRight(text Text, wholeWord bool) bool {
	n := text.LineLen(c.line)
	if c.column >= n {
		return false
	}
	if !wholeWord {
		c.column++
		return true
	}
	c.column = nextWordStart(text.Line(c.line), c.column)
	return true
}

// MoveLeft moves back one column. With wholeWord it stops at the start of
// the previous word or the start of the line.
func (c *Cursor) MoveLeft(text Text, wholeWord bool) bool {
	if c.column <= 0 {
		return false
	}
	if !wholeWord {
		c.column--
		return true
	}
	c.column = prevWordStart(text.Line(c.line), c.column)
	return true
}

// MoveUp moves to the previous line, clamping the column.
func (c *Cursor) MoveUp(text Text) bool {
	if c.line <= 0 {
		return false
	}
	c.line--
	c.column = min(c.column, text.LineLen(c.line))
	return true
}

// MoveDown moves to the next line, clamping the column.
func (c *Cursor) MoveDown(text Text) bool {
	if c.line >= text.LineCount()-1 {
		return false
	}
	c.line++
	c.column = min(c.column, text.LineLen(c.line))
	return true
}

// LineStart moves to column 0.
func (c *Cursor) LineStart() bool {
	if c.column == 0 {
		return false
	}
	c.column = 0
	return true
}

// LineEnd moves past the last column of the line.
func (c *Cursor) LineEnd(text Text) bool {
	end := text.LineLen(c.line)
	if c.column == end {
		return false
	}
	c.column = end
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
