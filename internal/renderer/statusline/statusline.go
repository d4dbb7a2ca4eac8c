// Package statusline composes the status row: mode, file name, modified
// marker, cursor position and the transient status message.
package statusline

import (
	"strings"

	"github.com/dshills/picoterm/internal/engine/grapheme"
	"github.com/dshills/picoterm/internal/renderer/backend"
	"github.com/dshills/picoterm/internal/renderer/core"
	"github.com/dshills/picoterm/internal/renderer/gutter"
)

// StatusLine holds the values shown on the status row.
type StatusLine struct {
	mode       string // Mode display name (e.g. "WRITE", "EDIT")
	filename   string
	modified   bool
	line       int // 0-indexed
	col        int // 0-indexed
	totalLines int
	message    string
	width      int
}

// New creates an empty status line.
func New() *StatusLine {
	return &StatusLine{mode: "WRITE"}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position (0-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
}

// Resize updates the row width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Left returns the left-aligned part: mode, file and message.
func (s *StatusLine) Left() string {
	var sb strings.Builder
	sb.WriteString(" ")
	sb.WriteString(s.mode)
	sb.WriteString("  ")

	filename := s.filename
	if filename == "" {
		filename = "[No Name]"
	}
	sb.WriteString(filename)
	if s.modified {
		sb.WriteString(" [+]")
	}

	if s.message != "" {
		sb.WriteString("  ")
		sb.WriteString(s.message)
	}
	return sb.String()
}

// Right returns the right-aligned position info, e.g. "3:7 / 120".
func (s *StatusLine) Right() string {
	pos := gutter.FormatPosition(s.line, s.col)
	if s.totalLines > 0 {
		pos += " / " + gutter.FormatNumber(s.totalLines)
	}
	return pos + " "
}

// Text returns the complete row padded or truncated to the width.
// The position is dropped before the left part is truncated.
func (s *StatusLine) Text() string {
	left, right := s.Left(), s.Right()
	lw, rw := core.StringWidth(left), core.StringWidth(right)

	if lw+rw+1 > s.width {
		return truncate(left, s.width)
	}
	return left + strings.Repeat(" ", s.width-lw-rw) + right
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int, style core.Style) {
	x := 0
	for _, cell := range core.CellsFromString(s.Text(), style) {
		if x >= s.width {
			break
		}
		b.SetCell(x, row, cell)
		x++
	}
	for ; x < s.width; x++ {
		b.SetCell(x, row, core.Cell{Content: " ", Width: 1, Style: style})
	}
}

// truncate cuts s to at most width display cells without splitting a
// grapheme cluster.
func truncate(s string, width int) string {
	var sb strings.Builder
	used := 0
	for _, c := range grapheme.Split(s) {
		w := core.ClusterWidth(c)
		if used+w > width {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}
