// Package app provides the main application structure and coordination
// for the picoterm editor. It wires together configuration, logging, the
// file store, the dispatcher and the renderer, and owns the terminal for
// the lifetime of Run.
package app

import (
	"context"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/dshills/picoterm/internal/config"
	"github.com/dshills/picoterm/internal/dispatcher"
	"github.com/dshills/picoterm/internal/engine/buffer"
	"github.com/dshills/picoterm/internal/filestore"
	"github.com/dshills/picoterm/internal/input/mode"
	"github.com/dshills/picoterm/internal/renderer"
	"github.com/dshills/picoterm/internal/renderer/backend"
	"github.com/dshills/picoterm/internal/renderer/dirty"
	"github.com/dshills/picoterm/internal/renderer/highlight"
	"github.com/dshills/picoterm/internal/renderer/viewport"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the TOML configuration file.
	// Empty uses config.DefaultConfigFile.
	ConfigPath string

	// File is the file to open on startup. Empty starts an empty buffer
	// under the configured default name.
	File string

	// LogLevel and LogFile override the logging section when set.
	LogLevel string
	LogFile  string

	// Backend is the terminal. Nil uses a tcell terminal.
	Backend backend.Backend

	// FileSystem backs the file store. Nil uses the OS file system.
	FileSystem filestore.FileSystem

	// Clipboard is used by Edit mode yank and paste. Nil uses the system
	// clipboard.
	Clipboard dispatcher.Clipboard

	// DisableWatcher turns off external change detection.
	DisableWatcher bool
}

// Application is the central coordinator for all picoterm components.
type Application struct {
	opts Options

	config    *config.Config
	logger    *Logger
	logCloser io.Closer
	metrics   *Metrics

	store      *filestore.Store
	state      *dispatcher.State
	dispatcher *dispatcher.Dispatcher
	renderer   *renderer.Renderer
	backend    backend.Backend
	watcher    *DiskWatcher

	running      atomic.Bool
	started      bool
	shutdownOnce sync.Once
}

// New loads the configuration, opens the log and the initial document and
// builds the dispatcher. The terminal is not touched until Run.
func New(ctx context.Context, opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		backend: opts.Backend,
		metrics: NewMetrics(),
	}

	if err := app.loadConfig(ctx); err != nil {
		return nil, err
	}

	logger, closer, err := OpenLogger(app.config.Logging())
	if err != nil {
		return nil, err
	}
	app.logger, app.logCloser = logger, closer
	app.logger.Info("starting, config %s", app.config.ConfigFile())

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filestore.NewOSFS()
	}
	app.store = filestore.NewStore(fsys)

	if err := app.bootstrap(ctx); err != nil {
		app.closeLog()
		return nil, err
	}
	return app, nil
}

// loadConfig applies the command line overrides and loads the layered
// configuration.
func (app *Application) loadConfig(ctx context.Context) error {
	var cfgOpts []config.Option
	if app.opts.ConfigPath != "" {
		cfgOpts = append(cfgOpts, config.WithConfigFile(app.opts.ConfigPath))
	}
	app.config = config.New(cfgOpts...)

	if app.opts.LogLevel != "" {
		if err := app.config.Set("logging.level", app.opts.LogLevel); err != nil {
			return NewOperationError("config", "logging.level", err)
		}
	}
	if app.opts.LogFile != "" {
		if err := app.config.Set("logging.file", app.opts.LogFile); err != nil {
			return NewOperationError("config", "logging.file", err)
		}
	}

	if err := app.config.Load(ctx); err != nil {
		return NewOperationError("config", app.config.ConfigFile(), err)
	}
	return nil
}

// bootstrap builds the editor state and dispatcher from the configuration.
func (app *Application) bootstrap(ctx context.Context) error {
	editor := app.config.Editor()
	ui := app.config.UI()

	theme, err := highlight.ThemeByName(ui.Theme)
	if err != nil {
		app.logger.Warn("theme %q: %v, using %s", ui.Theme, err, highlight.Theme1().Name)
		theme = highlight.Theme1()
	}

	bindings, err := dispatcher.BindingsFromConfig(app.config.Keys())
	if err != nil {
		return NewOperationError("config", "keys", err)
	}

	settings := dispatcher.Settings{
		TabWidth:   editor.TabSize,
		ScrollStep: editor.ScrollStep,
		Margins: viewport.MarginConfig{
			Top:    editor.MarginTop,
			Bottom: editor.MarginBottom,
		},
		DefaultFileName: editor.DefaultFileName,
		SaveOnUnfocus:   editor.SaveOnUnfocus,
		Highlight:       editor.Highlight,
		Theme:           theme,
	}

	if err := app.openInitial(ctx, settings); err != nil {
		return err
	}

	modeLog := app.logger.WithComponent("mode")
	app.state.Modes.OnChange(func(from, to mode.Mode) {
		modeLog.Debug("%s -> %s", from, to)
	})

	clip := app.opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}

	app.dispatcher = dispatcher.New(
		dispatcher.WithBindings(bindings),
		dispatcher.WithStore(app.store),
		dispatcher.WithClipboard(clip),
		dispatcher.WithLogger(app.logger.WithComponent("dispatcher")),
	)
	return nil
}

// openInitial creates the state for the file named on the command line,
// or an empty buffer under the default name.
func (app *Application) openInitial(ctx context.Context, settings dispatcher.Settings) error {
	if app.opts.File == "" {
		app.state = dispatcher.NewState(nil, "", settings)
		return nil
	}

	cmd := dispatcher.OpenCommand{
		Path:    app.opts.File,
		Options: []buffer.Option{buffer.WithTabWidth(settings.TabWidth)},
	}
	doc, err := cmd.Execute(ctx, app.store)
	if err != nil {
		return NewOperationError("open", app.opts.File, err)
	}

	app.state = dispatcher.NewState(doc.Buffer, doc.Path, settings)
	if doc.Created {
		app.state.SetStatus("New file %s", doc.Path)
	} else {
		app.state.SetStatus("Opened %s (%d lines)", doc.Path, doc.Buffer.LineCount())
	}
	app.logger.Info("opened %s (created=%t)", doc.Path, doc.Created)
	return nil
}

// Run acquires the terminal and runs the event loop until the user quits
// or ctx is cancelled. The terminal is released on every exit path,
// including a panic in the loop, which is returned as a
// *RecoveredPanicError.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		term, termErr := backend.NewTerminal()
		if termErr != nil {
			return &InitError{Component: "backend", Err: termErr}
		}
		app.backend = term
	}
	if initErr := app.backend.Init(); initErr != nil {
		return &InitError{Component: "backend", Err: initErr}
	}
	app.started = true

	defer app.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("%v", perr)
			err = perr
		}
	}()

	app.prepare()

	stop := context.AfterFunc(ctx, func() {
		_ = app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
	})
	defer stop()

	return app.eventLoop(ctx)
}

// prepare configures the initialized backend, sizes the state to it and
// draws the first frame.
func (app *Application) prepare() {
	if app.config.UI().Mouse {
		app.backend.EnableMouse()
	}
	app.backend.EnableFocus()

	app.renderer = renderer.New(app.backend, renderer.Options{
		Keywords: app.config.Editor().Keywords,
		Bindings: app.dispatcher.Bindings(),
	})

	width, height := app.backend.Size()
	app.state.Resize(width, height)
	app.startWatcher()
	app.render(dirty.All())
}

// startWatcher starts external change detection for the open file.
// Failures only disable the feature.
func (app *Application) startWatcher() {
	if app.opts.DisableWatcher {
		return
	}
	w, err := NewDiskWatcher(app.backend, app.store, app.logger)
	if err != nil {
		app.logger.Warn("disk watcher disabled: %v", err)
		return
	}
	app.watcher = w
	app.followFile()
}

// Shutdown releases the watcher, the terminal and the log file. It is safe
// to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.logger.Warn("close watcher: %v", err)
			}
		}
		if app.started && app.backend != nil {
			app.backend.Shutdown()
		}

		s := app.metrics.Snapshot()
		app.logger.Info("shutdown after %s: %d events (%d errors), %d frames (%d full, %d skipped)",
			s.Uptime.Round(1e6), s.EventCount, s.ErrorCount, s.RenderCount, s.FullFrames, s.SkippedFrames)
		app.closeLog()
	})
}

func (app *Application) closeLog() {
	if app.logCloser != nil {
		_ = app.logCloser.Close()
		app.logCloser = nil
	}
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// State returns the editor state.
func (app *Application) State() *dispatcher.State {
	return app.state
}

// Store returns the file store.
func (app *Application) Store() *filestore.Store {
	return app.store
}

// Metrics returns the event loop statistics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
