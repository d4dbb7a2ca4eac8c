// Package app provides the main application structure and coordination.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/dshills/picoterm/internal/dispatcher"
	"github.com/dshills/picoterm/internal/input/key"
	"github.com/dshills/picoterm/internal/renderer/backend"
	"github.com/dshills/picoterm/internal/renderer/dirty"
)

// quitRequest is the interrupt payload posted when the process is asked
// to stop.
type quitRequest struct{}

// eventLoop polls the backend, dispatches each event and renders the
// returned region exactly once. It returns nil on a normal quit.
func (app *Application) eventLoop(ctx context.Context) error {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			return nil
		}
		if _, ok := ev.Data.(quitRequest); ok && ev.Type == backend.EventInterrupt {
			app.logger.Info("quit requested by signal")
			return nil
		}

		dev, ok := convertEvent(ev)
		if !ok {
			continue
		}

		err := app.handleEvent(ctx, dev)
		if errors.Is(err, ErrQuit) {
			app.logger.Info("quit")
			return nil
		}
	}
}

// handleEvent dispatches one event, renders its region and keeps the disk
// watcher on the current file.
func (app *Application) handleEvent(ctx context.Context, ev dispatcher.Event) error {
	timer := StartTimer()
	region, err := app.dispatcher.DispatchContext(ctx, ev, app.state)
	app.metrics.RecordEvent(timer.Stop(), err)

	if err != nil && !errors.Is(err, ErrQuit) {
		app.logger.Error("dispatch %s: %v", ev, err)
	}
	if errors.Is(err, ErrQuit) {
		return err
	}

	app.render(region)
	app.followFile()
	return nil
}

// render draws region and records the frame.
func (app *Application) render(region dirty.Region) {
	timer := StartTimer()
	app.renderer.Render(app.state, region)
	app.metrics.RecordRender(region, timer.Stop())
}

// followFile moves the disk watcher to the current file name after Save
// as or Open.
func (app *Application) followFile() {
	if app.watcher == nil || app.watcher.Path() == app.state.FileName {
		return
	}
	previous := app.watcher.Path()
	if err := app.watcher.Watch(app.state.FileName); err != nil {
		app.logger.Warn("watch %s: %v", app.state.FileName, err)
		return
	}
	if previous != "" && filepath.Clean(previous) != filepath.Clean(app.state.FileName) {
		app.store.Forget(previous)
	}
}

// convertEvent converts a backend event to a dispatcher event. Mouse
// events other than the wheel and unknown events are dropped.
func convertEvent(ev backend.Event) (dispatcher.Event, bool) {
	switch ev.Type {
	case backend.EventKey:
		k, ok := convertKeyEvent(ev)
		if !ok {
			return dispatcher.Event{}, false
		}
		return dispatcher.KeyEvent(k), true

	case backend.EventMouse:
		switch ev.MouseButton {
		case backend.MouseWheelUp:
			return dispatcher.WheelEvent(-1), true
		case backend.MouseWheelDown:
			return dispatcher.WheelEvent(1), true
		}
		return dispatcher.Event{}, false

	case backend.EventResize:
		return dispatcher.ResizeEvent(ev.Width, ev.Height), true

	case backend.EventFocus:
		return dispatcher.FocusEvent(ev.Focused), true

	case backend.EventInterrupt:
		if change, ok := ev.Data.(DiskChange); ok {
			return dispatcher.DiskChangeEvent(change.Path), true
		}
		return dispatcher.Event{}, false

	default:
		return dispatcher.Event{}, false
	}
}

// convertKeyEvent converts a backend key event to a key.Event.
func convertKeyEvent(ev backend.Event) (key.Event, bool) {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	if ev.Key == backend.KeyRune {
		if ev.Rune == 0 {
			return key.Event{}, false
		}
		return key.NewRuneEvent(ev.Rune, mods), true
	}

	k := mapBackendKey(ev.Key)
	if k == key.KeyNone {
		return key.Event{}, false
	}
	return key.NewSpecialEvent(k, mods), true
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key) key.Key {
	switch bk {
	case backend.KeyEscape:
		return key.KeyEscape
	case backend.KeyEnter:
		return key.KeyEnter
	case backend.KeyTab:
		return key.KeyTab
	case backend.KeyBackspace:
		return key.KeyBackspace
	case backend.KeyDelete:
		return key.KeyDelete
	case backend.KeyInsert:
		return key.KeyInsert
	case backend.KeyHome:
		return key.KeyHome
	case backend.KeyEnd:
		return key.KeyEnd
	case backend.KeyPageUp:
		return key.KeyPageUp
	case backend.KeyPageDown:
		return key.KeyPageDown
	case backend.KeyUp:
		return key.KeyUp
	case backend.KeyDown:
		return key.KeyDown
	case backend.KeyLeft:
		return key.KeyLeft
	case backend.KeyRight:
		return key.KeyRight
	case backend.KeyF1:
		return key.KeyF1
	case backend.KeyF2:
		return key.KeyF2
	case backend.KeyF3:
		return key.KeyF3
	case backend.KeyF4:
		return key.KeyF4
	case backend.KeyF5:
		return key.KeyF5
	case backend.KeyF6:
		return key.KeyF6
	case backend.KeyF7:
		return key.KeyF7
	case backend.KeyF8:
		return key.KeyF8
	case backend.KeyF9:
		return key.KeyF9
	case backend.KeyF10:
		return key.KeyF10
	case backend.KeyF11:
		return key.KeyF11
	case backend.KeyF12:
		return key.KeyF12
	default:
		return key.KeyNone
	}
}
