// Package renderer draws the editor state on a terminal backend.
//
// The screen is split into fixed rows:
//
//	row 0          header with the menu titles
//	rows 1..H      text area (gutter + document lines)
//	row H+1        separator
//	row H+2        status line
//	row H+3        help text, or the console prompt in Console mode
//
// where H is the screen height minus the four chrome rows.
//
// Render takes the dirty region produced by the dispatcher and repaints
// only what it names:
//
//	All        clear and repaint everything
//	Skeleton   header, separator, status and help rows
//	AllLines   every text row plus the status row
//	SingleLine, LineRange
//	           the named document lines plus the status row
//	None       nothing; the frame is not flushed
//
// In Menu mode the open column's dropdown is drawn over the top of the
// text area after the text rows.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(state, dirty.All())
package renderer
