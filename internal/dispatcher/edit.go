package dispatcher

import (
	"context"
	"unicode"

	"github.com/dshills/picoterm/internal/input/key"
	"github.com/dshills/picoterm/internal/renderer/dirty"
)

// handleEdit runs the single-key navigation and line commands.
func (d *Dispatcher) handleEdit(_ context.Context, k key.Event, st *State) (dirty.Region, error) {
	if region, ok := move(k, st); ok {
		return region, nil
	}
	if !k.IsRune() || k.Modifiers.HasCtrl() {
		return dirty.None(), nil
	}

	if k.Modifiers.HasAlt() {
		switch unicode.ToLower(k.Rune) {
		case 'l':
			return horizontal(st, st.Cursor.MoveRight(st.Buffer, true)), nil
		case 'h':
			return horizontal(st, st.Cursor.MoveLeft(st.Buffer, true)), nil
		case 'i':
			return swapUp(st)
		case 'k':
			return swapDown(st)
		}
		return dirty.None(), nil
	}

	switch k.Rune {
	case 'i':
		return vertical(st, st.Cursor.MoveUp), nil
	case 'k':
		return vertical(st, st.Cursor.MoveDown), nil
	case 'j':
		return horizontal(st, st.Cursor.MoveLeft(st.Buffer, false)), nil
	case 'l':
		return horizontal(st, st.Cursor.MoveRight(st.Buffer, false)), nil
	case 'w':
		return horizontal(st, st.Cursor.MoveRight(st.Buffer, true)), nil
	case 'b':
		return horizontal(st, st.Cursor.MoveLeft(st.Buffer, true)), nil
	case 'u':
		return horizontal(st, st.Cursor.LineStart()), nil
	case 'o':
		return horizontal(st, st.Cursor.LineEnd(st.Buffer)), nil
	case 'y':
		return d.yank(st), nil
	case 'p':
		return d.paste(st)
	case 'q':
		if err := d.switchMode(st, st.Modes.Finish); err != nil {
			return dirty.None(), err
		}
		return dirty.All(), nil
	}
	return dirty.None(), nil
}

// swapUp exchanges the cursor line with the one above; the cursor follows.
func swapUp(st *State) (dirty.Region, error) {
	line := st.Cursor.Line()
	ok, err := st.Buffer.SwapWithPrevious(line)
	if err != nil || !ok {
		return dirty.None(), err
	}

	pos := st.Cursor.Position()
	pos.Line--
	st.Cursor.SetPosition(st.Buffer, pos)
	return st.follow(dirty.LineRange(line-1, line)), nil
}

// swapDown exchanges the cursor line with the one below; the cursor follows.
func swapDown(st *State) (dirty.Region, error) {
	line := st.Cursor.Line()
	ok, err := st.Buffer.SwapWithNext(line)
	if err != nil || !ok {
		return dirty.None(), err
	}

	pos := st.Cursor.Position()
	pos.Line++
	st.Cursor.SetPosition(st.Buffer, pos)
	return st.follow(dirty.LineRange(line, line+1)), nil
}

// yank copies the cursor line to the clipboard.
func (d *Dispatcher) yank(st *State) dirty.Region {
	if d.clipboard == nil {
		st.SetStatus("Copy failed: %v", ErrNoClipboard)
		return dirty.Skeleton()
	}

	line := st.Cursor.Line()
	if err := d.clipboard.WriteAll(st.Buffer.Line(line)); err != nil {
		d.logger.Error("clipboard write: %v", err)
		st.SetStatus("Copy failed: %v", err)
		return dirty.Skeleton()
	}
	st.SetStatus("Copied line %d", line+1)
	return dirty.Skeleton()
}

// paste inserts the clipboard text at the cursor.
func (d *Dispatcher) paste(st *State) (dirty.Region, error) {
	if d.clipboard == nil {
		st.SetStatus("Paste failed: %v", ErrNoClipboard)
		return dirty.Skeleton(), nil
	}

	text, err := d.clipboard.ReadAll()
	if err != nil {
		d.logger.Error("clipboard read: %v", err)
		st.SetStatus("Paste failed: %v", err)
		return dirty.Skeleton(), nil
	}
	if text == "" {
		return dirty.None(), nil
	}

	pos := st.Cursor.Position()
	lines := st.Buffer.LineCount()
	next, err := st.Buffer.InsertText(pos, text)
	if err != nil {
		return dirty.None(), err
	}
	st.Cursor.SetPosition(st.Buffer, next)

	if st.Buffer.LineCount() != lines {
		return st.follow(st.toBottom(pos.Line)), nil
	}
	return st.follow(dirty.SingleLine(pos.Line)), nil
}
