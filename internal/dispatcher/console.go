package dispatcher

import (
	"context"
	"errors"

	"github.com/dshills/picoterm/internal/input/console"
	"github.com/dshills/picoterm/internal/input/key"
	"github.com/dshills/picoterm/internal/input/mode"
	"github.com/dshills/picoterm/internal/renderer/dirty"
)

// handleConsole edits the prompt text and completes the pending action.
func (d *Dispatcher) handleConsole(ctx context.Context, k key.Event, st *State) (dirty.Region, error) {
	var changed bool
	switch {
	case k.Key == key.KeyEscape:
		st.Console.Cancel()
		return d.leaveConsole(st)
	case k.Key == key.KeyEnter:
		return d.confirmConsole(ctx, st)
	case k.Key == key.KeyBackspace:
		changed = st.Console.Backspace()
	case k.Key == key.KeyLeft:
		changed = st.Console.Left()
	case k.Key == key.KeyRight:
		changed = st.Console.Right()
	case k.Key == key.KeyHome:
		changed = st.Console.Home()
	case k.Key == key.KeyEnd:
		changed = st.Console.End()
	case k.IsChar():
		st.Console.Insert(k.Rune)
		changed = true
	}

	if !changed {
		return dirty.None(), nil
	}
	return dirty.Skeleton(), nil
}

// confirmConsole runs the pending action with the entered text. Blank
// input is a silent cancel.
func (d *Dispatcher) confirmConsole(ctx context.Context, st *State) (dirty.Region, error) {
	action := st.Modes.Pending()
	text, err := st.Console.Submit()
	if errors.Is(err, console.ErrUserCancelled) {
		return d.leaveConsole(st)
	}

	switch action {
	case mode.ActionSaveAs:
		d.save(ctx, st, text)
	case mode.ActionOpen:
		d.open(ctx, st, text)
	}
	return d.leaveConsole(st)
}

func (d *Dispatcher) leaveConsole(st *State) (dirty.Region, error) {
	if err := d.switchMode(st, st.Modes.Finish); err != nil {
		return dirty.None(), err
	}
	return dirty.All(), nil
}
