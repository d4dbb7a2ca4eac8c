package dispatcher

import (
	"context"

	"github.com/dshills/picoterm/internal/input/key"
	"github.com/dshills/picoterm/internal/renderer/dirty"
)

// handleWrite inserts text and moves with the arrow keys.
func (d *Dispatcher) handleWrite(_ context.Context, k key.Event, st *State) (dirty.Region, error) {
	if region, ok := move(k, st); ok {
		return region, nil
	}

	pos := st.Cursor.Position()
	switch {
	case k.Key == key.KeyEnter && !k.IsModified():
		next, err := st.Buffer.SplitLineAt(pos)
		if err != nil {
			return dirty.None(), err
		}
		st.Cursor.SetPosition(st.Buffer, next)
		return st.follow(st.toBottom(pos.Line)), nil

	case k.Key == key.KeyBackspace:
		return deleteBefore(st)

	case k.Key == key.KeyTab && !k.IsModified():
		next, err := st.Buffer.InsertTab(pos)
		if err != nil {
			return dirty.None(), err
		}
		st.Cursor.SetPosition(st.Buffer, next)
		return st.follow(dirty.SingleLine(pos.Line)), nil

	case k.IsChar():
		next, err := st.Buffer.InsertChar(pos, k.Rune)
		if err != nil {
			return dirty.None(), err
		}
		st.Cursor.SetPosition(st.Buffer, next)
		return st.follow(dirty.SingleLine(pos.Line)), nil
	}

	return dirty.None(), nil
}

// deleteBefore removes the cluster before the cursor or joins the line
// onto the previous one.
func deleteBefore(st *State) (dirty.Region, error) {
	pos := st.Cursor.Position()
	lines := st.Buffer.LineCount()

	next, err := st.Buffer.DeleteBefore(pos)
	if err != nil {
		return dirty.None(), err
	}
	if next == pos {
		return dirty.None(), nil
	}

	st.Cursor.SetPosition(st.Buffer, next)
	if st.Buffer.LineCount() != lines {
		return st.follow(st.toBottom(next.Line)), nil
	}
	return st.follow(dirty.SingleLine(next.Line)), nil
}
