package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/picoterm/internal/engine/buffer"
	"github.com/dshills/picoterm/internal/input/key"
	"github.com/dshills/picoterm/internal/input/mode"
	"github.com/dshills/picoterm/internal/renderer/dirty"
)

// Handler processes key events for one mode.
type Handler interface {
	Handle(ctx context.Context, k key.Event, st *State) (dirty.Region, error)
}

// HandlerFunc is a function adapter for the Handler interface.
type HandlerFunc func(ctx context.Context, k key.Event, st *State) (dirty.Region, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, k key.Event, st *State) (dirty.Region, error) {
	return f(ctx, k, st)
}

// Logger is the logging the dispatcher needs. *app.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

// Dispatcher routes events to the handler of the active mode.
type Dispatcher struct {
	handlers  map[mode.Mode]Handler
	bindings  Bindings
	store     Store
	clipboard Clipboard
	logger    Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBindings sets the global key bindings.
func WithBindings(b Bindings) Option {
	return func(d *Dispatcher) {
		d.bindings = b
	}
}

// WithStore sets the store used by save and open commands.
func WithStore(s Store) Option {
	return func(d *Dispatcher) {
		d.store = s
	}
}

// WithClipboard sets the clipboard used by Edit mode yank and paste.
func WithClipboard(c Clipboard) Option {
	return func(d *Dispatcher) {
		d.clipboard = c
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a dispatcher with the built-in handler of every mode.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		bindings: DefaultBindings(),
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}

	d.handlers = map[mode.Mode]Handler{
		mode.Write:   HandlerFunc(d.handleWrite),
		mode.Edit:    HandlerFunc(d.handleEdit),
		mode.Menu:    HandlerFunc(d.handleMenu),
		mode.Console: HandlerFunc(d.handleConsole),
	}
	return d
}

// Register replaces the handler for m.
func (d *Dispatcher) Register(m mode.Mode, h Handler) {
	d.handlers[m] = h
}

// Bindings returns the global key bindings.
func (d *Dispatcher) Bindings() Bindings {
	return d.bindings
}

// Dispatch handles one event and returns the region to redraw.
func (d *Dispatcher) Dispatch(ev Event, st *State) (dirty.Region, error) {
	return d.DispatchContext(context.Background(), ev, st)
}

// DispatchContext is Dispatch with a context for file I/O.
func (d *Dispatcher) DispatchContext(ctx context.Context, ev Event, st *State) (dirty.Region, error) {
	var (
		region dirty.Region
		err    error
	)

	switch ev.Type {
	case EventKey:
		hadStatus := st.Status != ""
		st.Status = ""
		region, err = d.dispatchKey(ctx, ev.Key, st)
		if hadStatus && region.IsNone() {
			region = dirty.Skeleton()
		}
	case EventWheel:
		region = scrollBy(st, ev.Wheel*st.ScrollStep)
	case EventResize:
		st.Resize(ev.Width, ev.Height)
		region = dirty.All()
	case EventFocus:
		region = d.focusChanged(ctx, ev.Focused, st)
	case EventDiskChange:
		region = diskChanged(ev.Path, st)
	}

	switch {
	case errors.Is(err, ErrQuit):
		return dirty.None(), ErrQuit
	case errors.Is(err, buffer.ErrIndexOutOfRange):
		d.logger.Error("dispatch %s: %v", ev, err)
		st.Cursor.Clamp(st.Buffer)
		return dirty.None(), nil
	case err != nil:
		return dirty.None(), err
	}

	d.checkInvariants(ev, st)
	return region, nil
}

func (d *Dispatcher) dispatchKey(ctx context.Context, k key.Event, st *State) (dirty.Region, error) {
	if !st.Modes.Is(mode.Console) {
		if region, ok, err := d.global(ctx, k, st); ok {
			return region, err
		}
	}

	h, ok := d.handlers[st.Modes.Current()]
	if !ok {
		return dirty.None(), fmt.Errorf("%w: %s", ErrNoHandler, st.Modes.Current())
	}
	return h.Handle(ctx, k, st)
}

// global handles the bindings shared by Write, Edit and Menu mode.
func (d *Dispatcher) global(ctx context.Context, k key.Event, st *State) (dirty.Region, bool, error) {
	switch {
	case k.Matches(d.bindings.Quit):
		return dirty.None(), true, ErrQuit

	case k.Matches(d.bindings.Save):
		d.save(ctx, st, st.FileName)
		return dirty.Skeleton(), true, nil

	case k.Matches(d.bindings.ToggleEdit):
		if err := d.switchMode(st, st.Modes.ToggleEdit); err != nil {
			return dirty.None(), true, err
		}
		return dirty.All(), true, nil

	case k.Matches(d.bindings.Menu):
		if err := d.switchMode(st, st.Modes.ToggleMenu); err != nil {
			return dirty.None(), true, err
		}
		return dirty.All(), true, nil
	}
	return dirty.None(), false, nil
}

// switchMode runs a mode transition and resets the menu when leaving it.
func (d *Dispatcher) switchMode(st *State, transition func() error) error {
	wasMenu := st.Modes.Is(mode.Menu)
	if err := transition(); err != nil {
		return err
	}
	if wasMenu {
		st.Menu.Reset()
	}
	return nil
}

// save runs a SaveCommand for path and reports the outcome in the status.
func (d *Dispatcher) save(ctx context.Context, st *State, path string) bool {
	if d.store == nil {
		st.SetStatus("Save failed: no file store")
		return false
	}

	snap := st.Buffer.Snapshot()
	if err := (SaveCommand{Snapshot: snap, Path: path}).Execute(ctx, d.store); err != nil {
		d.logger.Error("save %s: %v", path, err)
		st.SetStatus("Save failed: %v", err)
		return false
	}

	st.FileName = path
	st.MarkSaved(snap.Revision())
	st.SetStatus("Saved %s (%d lines)", path, snap.LineCount())
	return true
}

// open runs an OpenCommand for path and replaces the document.
func (d *Dispatcher) open(ctx context.Context, st *State, path string) bool {
	if d.store == nil {
		st.SetStatus("Open failed: no file store")
		return false
	}

	doc, err := OpenCommand{Path: path, Options: bufferOptions(st)}.Execute(ctx, d.store)
	if err != nil {
		d.logger.Error("open %s: %v", path, err)
		st.SetStatus("Open failed: %v", err)
		return false
	}

	st.ReplaceDocument(doc.Buffer, doc.Path)
	d.logger.Debug("opened %s (created=%t)", doc.Path, doc.Created)
	if doc.Created {
		st.SetStatus("New file %s", doc.Path)
	} else {
		st.SetStatus("Opened %s (%d lines)", doc.Path, doc.Buffer.LineCount())
	}
	return true
}

func (d *Dispatcher) focusChanged(ctx context.Context, focused bool, st *State) dirty.Region {
	if focused || !st.SaveOnUnfocus || !st.Modified() {
		return dirty.None()
	}
	d.save(ctx, st, st.FileName)
	return dirty.Skeleton()
}

func diskChanged(path string, st *State) dirty.Region {
	if path != st.FileName {
		return dirty.None()
	}
	st.SetStatus("%s changed on disk", path)
	return dirty.Skeleton()
}

// checkInvariants repairs a cursor or viewport that ended up out of range.
func (d *Dispatcher) checkInvariants(ev Event, st *State) {
	if !st.Cursor.Valid(st.Buffer) {
		d.logger.Error("dispatch %s: cursor %s out of range: %v", ev, st.Cursor.Position(), buffer.ErrIndexOutOfRange)
		st.Cursor.Clamp(st.Buffer)
	}
	if !st.Viewport.IsLineVisible(st.Cursor.Line()) {
		d.logger.Error("dispatch %s: cursor line %d outside viewport at %d", ev, st.Cursor.Line(), st.Viewport.Scroll())
		st.Viewport.Recompute(st.Cursor.Line())
	}
}

func bufferOptions(st *State) []buffer.Option {
	return []buffer.Option{buffer.WithTabWidth(st.TabWidth)}
}
