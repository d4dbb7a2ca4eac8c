package buffer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/picoterm/internal/engine/grapheme"
)

// ErrIndexOutOfRange is returned when a line or column lies outside the buffer.
var ErrIndexOutOfRange = errors.New("index out of range")

// Buffer holds the document as an ordered slice of lines.
// A Buffer always contains at least one line.
type Buffer struct {
	lines    []string
	revision uint64
	tabWidth int
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:    []string{""},
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer from newline-separated text.
// CRLF and CR line endings are normalized to LF first. Splitting is exact:
// a trailing newline yields a trailing empty line, so Text round-trips.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return NewBufferFromLines(strings.Split(s, "\n"), opts...)
}

// NewBufferFromLines creates a buffer holding a copy of lines.
// An empty slice yields a single empty line.
func NewBufferFromLines(lines []string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	if len(lines) > 0 {
		b.lines = make([]string, len(lines))
		copy(b.lines, lines)
	}
	return b
}

// LineCount returns the number of lines. It is never less than one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of a line, or "" if the index is out of range.
func (b *Buffer) Line(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the length of a line in grapheme columns.
func (b *Buffer) LineLen(line int) int {
	return grapheme.Count(b.Line(line))
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the document with lines joined by a single newline.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

// TabWidth returns the indent width used by InsertTab.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// Revision returns a counter bumped on every mutation.
// Comparing revisions tells whether the buffer changed since a save.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// Snapshot returns an immutable copy of the current content.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{lines: b.Lines(), revision: b.revision}
}

// ValidLine returns true if line indexes an existing line.
func (b *Buffer) ValidLine(line int) bool {
	return line >= 0 && line < len(b.lines)
}

// ValidPosition returns true if pos satisfies the cursor invariant:
// an existing line and a column between 0 and the line length inclusive.
func (b *Buffer) ValidPosition(pos Position) bool {
	if !b.ValidLine(pos.Line) {
		return false
	}
	return pos.Column >= 0 && pos.Column <= b.LineLen(pos.Line)
}

// checkPosition returns ErrIndexOutOfRange wrapped with pos when it is invalid.
func (b *Buffer) checkPosition(pos Position) error {
	if b.ValidPosition(pos) {
		return nil
	}
	return invariantViolated(fmt.Errorf("%w: position %s in %d lines", ErrIndexOutOfRange, pos, len(b.lines)))
}

// checkLine returns ErrIndexOutOfRange wrapped with line when it is invalid.
func (b *Buffer) checkLine(line int) error {
	if b.ValidLine(line) {
		return nil
	}
	return invariantViolated(fmt.Errorf("%w: line %d of %d", ErrIndexOutOfRange, line, len(b.lines)))
}

// touch records a mutation.
func (b *Buffer) touch() {
	b.revision++
}
