// Package layout divides the terminal into the editor's fixed rows.
//
//	row 0          header (menu titles)
//	rows 1..H      text area, H = height - ChromeRows
//	row H+1        separator
//	row H+2        status
//	row H+3        help line or console prompt
//
// The text area is split into a line-number gutter and the text itself.
package layout

import "github.com/dshills/picoterm/internal/renderer/gutter"

// ChromeRows is the number of screen rows not used for text.
const ChromeRows = 4

// Screen describes the terminal size.
type Screen struct {
	Width  int
	Height int
}

// NewScreen creates a screen layout. Sizes are clamped to zero.
func NewScreen(width, height int) Screen {
	return Screen{Width: max(width, 0), Height: max(height, 0)}
}

// HeaderRow returns the row holding the menu titles.
func (s Screen) HeaderRow() int {
	return 0
}

// TextTop returns the first text row.
func (s Screen) TextTop() int {
	return 1
}

// TextRows returns the number of text rows, at least 1.
func (s Screen) TextRows() int {
	return max(s.Height-ChromeRows, 1)
}

// SeparatorRow returns the row between text and status.
func (s Screen) SeparatorRow() int {
	return s.TextTop() + s.TextRows()
}

// StatusRow returns the status row.
func (s Screen) StatusRow() int {
	return s.SeparatorRow() + 1
}

// HelpRow returns the bottom row used for help text and the console.
func (s Screen) HelpRow() int {
	return s.StatusRow() + 1
}

// GutterWidth returns the gutter width for a document of lineCount lines.
func (s Screen) GutterWidth(lineCount int) int {
	return gutter.Width(lineCount)
}

// TextWidth returns the number of text columns, at least 1.
func (s Screen) TextWidth(lineCount int) int {
	return max(s.Width-s.GutterWidth(lineCount), 1)
}
