package dispatcher

import (
	"github.com/dshills/picoterm/internal/engine/cursor"
	"github.com/dshills/picoterm/internal/input/key"
	"github.com/dshills/picoterm/internal/renderer/dirty"
)

// move applies the cursor motions shared by Write and Edit mode.
// ok is false when k is not a motion key.
func move(k key.Event, st *State) (region dirty.Region, ok bool) {
	wholeWord := k.Modifiers.HasCtrl()

	switch k.Key {
	case key.KeyLeft:
		return horizontal(st, st.Cursor.MoveLeft(st.Buffer, wholeWord)), true
	case key.KeyRight:
		return horizontal(st, st.Cursor.MoveRight(st.Buffer, wholeWord)), true
	case key.KeyUp:
		return vertical(st, st.Cursor.MoveUp), true
	case key.KeyDown:
		return vertical(st, st.Cursor.MoveDown), true
	case key.KeyHome:
		return horizontal(st, st.Cursor.LineStart()), true
	case key.KeyEnd:
		return horizontal(st, st.Cursor.LineEnd(st.Buffer)), true
	case key.KeyPageUp:
		return page(st, -1), true
	case key.KeyPageDown:
		return page(st, 1), true
	}
	return dirty.None(), false
}

// horizontal classifies a move within the current line.
func horizontal(st *State, moved bool) dirty.Region {
	if !moved {
		return dirty.None()
	}
	return st.follow(dirty.SingleLine(st.Cursor.Line()))
}

// vertical runs a line change and covers the old and new line.
func vertical(st *State, motion func(text cursor.Text) bool) dirty.Region {
	old := st.Cursor.Line()
	if !motion(st.Buffer) {
		return dirty.None()
	}
	return st.follow(dirty.LineRange(old, st.Cursor.Line()))
}

// page scrolls by a viewport height and drags the cursor along.
func page(st *State, direction int) dirty.Region {
	region := scrollBy(st, direction*st.Viewport.Height())
	if !region.IsNone() {
		return region
	}

	// Already at the edge: jump the cursor to the first or last line.
	old := st.Cursor.Position()
	target := old
	if direction < 0 {
		target.Line = 0
	} else {
		target.Line = st.Buffer.LineCount() - 1
	}
	if !st.Cursor.SetPosition(st.Buffer, target) {
		return dirty.None()
	}
	return st.follow(dirty.LineRange(old.Line, st.Cursor.Line()))
}

// scrollBy moves the viewport by delta lines and keeps the cursor inside
// it without applying the scroll margins.
func scrollBy(st *State, delta int) dirty.Region {
	if delta == 0 || !st.Viewport.ScrollBy(delta, st.Buffer.LineCount()) {
		return dirty.None()
	}

	pos := st.Cursor.Position()
	pos.Line = min(st.Viewport.Contain(pos.Line), st.Buffer.LineCount()-1)
	st.Cursor.SetPosition(st.Buffer, pos)
	st.followColumn()
	return dirty.AllLines()
}
