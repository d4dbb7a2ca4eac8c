package dispatcher

import (
	"context"

	"github.com/dshills/picoterm/internal/engine/buffer"
	"github.com/dshills/picoterm/internal/input/key"
	"github.com/dshills/picoterm/internal/input/menu"
	"github.com/dshills/picoterm/internal/input/mode"
	"github.com/dshills/picoterm/internal/renderer/dirty"
	"github.com/dshills/picoterm/internal/renderer/highlight"
)

// handleMenu moves the menu selection and runs the selected item.
func (d *Dispatcher) handleMenu(ctx context.Context, k key.Event, st *State) (dirty.Region, error) {
	var moved bool
	switch k.Key {
	case key.KeyLeft:
		moved = st.Menu.Left()
	case key.KeyRight:
		moved = st.Menu.Right()
	case key.KeyUp:
		moved = st.Menu.Up()
	case key.KeyDown:
		moved = st.Menu.Down()
	case key.KeyEnter:
		return d.confirmMenu(ctx, st)
	}

	if !moved {
		return dirty.None(), nil
	}
	return dirty.Skeleton(), nil
}

// confirmMenu runs the selected item. Items that need a file name open the
// console; every other item returns to Write mode.
func (d *Dispatcher) confirmMenu(ctx context.Context, st *State) (dirty.Region, error) {
	item, ok := st.Menu.Selected()
	if !ok {
		return dirty.None(), nil
	}

	switch item.ID {
	case menu.ItemOpenFile:
		return d.prompt(st, mode.ActionOpen, "")
	case menu.ItemSaveAs:
		return d.prompt(st, mode.ActionSaveAs, "")

	case menu.ItemNewFile:
		st.ReplaceDocument(buffer.NewBuffer(bufferOptions(st)...), st.DefaultFileName)
		st.SetStatus("New file %s", st.FileName)
	case menu.ItemSave:
		d.save(ctx, st, st.FileName)
	case menu.ItemTheme1, menu.ItemTheme2, menu.ItemTheme3:
		d.setTheme(st, themeForItem(item.ID))
	case menu.ItemSaveOnUnfocus:
		st.SaveOnUnfocus = !st.SaveOnUnfocus
		st.SetStatus("Save on unfocus: %s", onOff(st.SaveOnUnfocus))
	case menu.ItemHighlight:
		st.Highlight = !st.Highlight
		st.SetStatus("Syntax highlight: %s", onOff(st.Highlight))
	}

	if err := d.switchMode(st, st.Modes.Finish); err != nil {
		return dirty.None(), err
	}
	return dirty.All(), nil
}

// prompt opens the console for action.
func (d *Dispatcher) prompt(st *State, action mode.Action, initial string) (dirty.Region, error) {
	if err := d.switchMode(st, func() error { return st.Modes.EnterConsole(action) }); err != nil {
		return dirty.None(), err
	}
	st.Console.Open(action.Prompt(), initial)
	return dirty.All(), nil
}

func (d *Dispatcher) setTheme(st *State, name string) {
	theme, err := highlight.ThemeByName(name)
	if err != nil {
		d.logger.Error("theme %s: %v", name, err)
		st.SetStatus("%v", err)
		return
	}
	st.Theme = theme
	st.SetStatus("Theme %s", name)
}

func themeForItem(id menu.ItemID) string {
	switch id {
	case menu.ItemTheme2:
		return "theme2"
	case menu.ItemTheme3:
		return "theme3"
	default:
		return "theme1"
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
