// Package viewport keeps the cursor inside the visible window of the document.
package viewport

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// First visible line, and cell offset of the first visible text cell
	scroll   int
	leftCell int

	// Size in screen cells
	width  int
	height int

	margins MarginConfig
}

// NewViewport creates a viewport with the given size and default margins.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:   max(width, 1),
		height:  max(height, 1),
		margins: DefaultMargins(),
	}
}

// Width returns the viewport width in cells.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the number of text rows.
func (v *Viewport) Height() int {
	return v.height
}

// Scroll returns the first visible line.
func (v *Viewport) Scroll() int {
	return v.scroll
}

// LeftCell returns the cell offset, from the start of the line, of the
// first visible text cell.
func (v *Viewport) LeftCell() int {
	return v.leftCell
}

// BottomLine returns the last line the viewport can show.
func (v *Viewport) BottomLine() int {
	return v.scroll + v.height - 1
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// Reset scrolls back to the top-left corner.
func (v *Viewport) Reset() {
	v.scroll = 0
	v.leftCell = 0
}

// Recompute adjusts the scroll position so that cursorLine is visible and
// respects the scroll margins. It reports whether the scroll changed.
//
// After Recompute, Scroll() <= cursorLine < Scroll()+Height().
func (v *Viewport) Recompute(cursorLine int) bool {
	old := v.scroll
	top, bottom := v.verticalMargins()

	switch {
	case cursorLine <= 0:
		v.scroll = 0
	case cursorLine+bottom >= v.scroll+v.height:
		v.scroll = cursorLine + bottom - v.height + 1
	case cursorLine < v.scroll+top:
		v.scroll = max(0, cursorLine-top)
	}
	return v.scroll != old
}

// RecomputeCell adjusts the left cell so that the cursor, which starts
// at cell offset cell and is cellWidth cells wide, lies in
// [LeftCell, LeftCell+Width). It reports whether the left cell changed.
func (v *Viewport) RecomputeCell(cell, cellWidth int) bool {
	old := v.leftCell
	left, right := v.horizontalMargins()
	last := cell + max(cellWidth, 1) - 1

	switch {
	case cell <= 0:
		v.leftCell = 0
	case last+right >= v.leftCell+v.width:
		v.leftCell = last + right - v.width + 1
	case cell < v.leftCell+left:
		v.leftCell = max(0, cell-left)
	}
	return v.leftCell != old
}

// ScrollBy moves the viewport by delta lines, clamped to
// [0, max(0, lineCount-Height)]. The bottom margin can leave the scroll
// past that bound; a positive delta then keeps it where it is rather than
// pulling the view back up. It reports whether the scroll changed.
func (v *Viewport) ScrollBy(delta, lineCount int) bool {
	old := v.scroll
	maxScroll := max(0, lineCount-v.height)
	if delta > 0 {
		maxScroll = max(maxScroll, v.scroll)
	}
	v.scroll = min(max(v.scroll+delta, 0), maxScroll)
	return v.scroll != old
}

// Contain returns line clamped into the visible window, as used to drag the
// cursor along after an explicit scroll.
func (v *Viewport) Contain(line int) int {
	return min(max(line, v.scroll), v.BottomLine())
}

// VisibleRange returns the half-open range of document lines on screen.
func (v *Viewport) VisibleRange(lineCount int) (start, end int) {
	start = min(v.scroll, lineCount)
	end = min(v.scroll+v.height, lineCount)
	return start, end
}

// IsLineVisible reports whether line falls inside the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.scroll && line < v.scroll+v.height
}

// ScreenRow converts a document line to a text row relative to the
// viewport. ok is false when the line is not visible.
func (v *Viewport) ScreenRow(line int) (row int, ok bool) {
	if !v.IsLineVisible(line) {
		return 0, false
	}
	return line - v.scroll, true
}

// ScreenCell converts a cell offset within a line to a column relative to
// the viewport. ok is false when the cell is scrolled out of view.
func (v *Viewport) ScreenCell(cell int) (col int, ok bool) {
	if cell < v.leftCell || cell >= v.leftCell+v.width {
		return 0, false
	}
	return cell - v.leftCell, true
}
