package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/picoterm/internal/config"
	"github.com/dshills/picoterm/internal/dispatcher"
	"github.com/dshills/picoterm/internal/filestore"
	"github.com/dshills/picoterm/internal/renderer/backend"
)

type testClipboard struct {
	text string
}

func (c *testClipboard) ReadAll() (string, error) { return c.text, nil }

func (c *testClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// panicBackend panics on the first PollEvent.
type panicBackend struct {
	*backend.NullBackend
}

func (panicBackend) PollEvent() backend.Event {
	panic("poll failed")
}

func testOptions(t *testing.T, file string, b backend.Backend, fsys filestore.FileSystem) Options {
	t.Helper()
	return Options{
		ConfigPath:     filepath.Join(t.TempDir(), "config.toml"),
		File:           file,
		Backend:        b,
		FileSystem:     fsys,
		Clipboard:      &testClipboard{},
		DisableWatcher: true,
	}
}

func newTestApp(t *testing.T, file string, files map[string]string) (*Application, *backend.NullBackend, *filestore.MemFS) {
	t.Helper()

	mfs := filestore.NewMemFS()
	for name, content := range files {
		mfs.AddFile(name, content)
	}
	b := backend.NewNullBackend(80, 10)

	app, err := New(context.Background(), testOptions(t, file, b, mfs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return app, b, mfs
}

func postKeys(t *testing.T, b *backend.NullBackend, events ...backend.Event) {
	t.Helper()
	for _, ev := range events {
		ev.Type = backend.EventKey
		if err := b.PostEvent(ev); err != nil {
			t.Fatalf("PostEvent: %v", err)
		}
	}
}

func TestNew_OpensFile(t *testing.T) {
	app, _, _ := newTestApp(t, "a.txt", map[string]string{"a.txt": "hello\nworld"})

	st := app.State()
	if st.FileName != "a.txt" {
		t.Errorf("expected file name a.txt, got %q", st.FileName)
	}
	if st.Buffer.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", st.Buffer.LineCount())
	}
	if st.Modified() {
		t.Error("expected freshly opened document to be unmodified")
	}
	if st.Status != "Opened a.txt (2 lines)" {
		t.Errorf("expected open status, got %q", st.Status)
	}
}

func TestNew_MissingFile(t *testing.T) {
	app, _, _ := newTestApp(t, "new.txt", nil)

	st := app.State()
	if st.FileName != "new.txt" {
		t.Errorf("expected file name new.txt, got %q", st.FileName)
	}
	if st.Buffer.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", st.Buffer.LineCount())
	}
	if st.Status != "New file new.txt" {
		t.Errorf("expected new file status, got %q", st.Status)
	}
}

func TestNew_NoFile(t *testing.T) {
	app, _, _ := newTestApp(t, "", nil)

	if app.State().FileName != "new_file.txt" {
		t.Errorf("expected default file name, got %q", app.State().FileName)
	}
}

func TestNew_BinaryFile(t *testing.T) {
	mfs := filestore.NewMemFS()
	mfs.AddFile("image.bin", "\x00\x01\x02")

	_, err := New(context.Background(), testOptions(t, "image.bin", backend.NewNullBackend(80, 10), mfs))
	if !errors.Is(err, filestore.ErrBinaryFile) {
		t.Fatalf("expected ErrBinaryFile, got %v", err)
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" {
		t.Errorf("expected open OperationError, got %v", err)
	}
}

func TestNew_InvalidLogLevel(t *testing.T) {
	opts := testOptions(t, "", backend.NewNullBackend(80, 10), filestore.NewMemFS())
	opts.LogLevel = "loud"

	_, err := New(context.Background(), opts)
	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Path != "logging.level" {
		t.Errorf("expected logging.level, got %q", verr.Path)
	}
}

func TestNew_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := `
[editor]
defaultFileName = "notes.txt"

[keys]
quit = "Ctrl+Q"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b := backend.NewNullBackend(80, 10)
	opts := testOptions(t, "", b, filestore.NewMemFS())
	opts.ConfigPath = cfgPath

	app, err := New(context.Background(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.State().FileName != "notes.txt" {
		t.Errorf("expected notes.txt, got %q", app.State().FileName)
	}

	postKeys(t, b, backend.Event{Key: backend.KeyRune, Rune: 'q', Mod: backend.ModCtrl})
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("expected rebound quit key to end Run, got %v", err)
	}
}

func TestRun_EditSaveQuit(t *testing.T) {
	app, b, mfs := newTestApp(t, "a.txt", map[string]string{"a.txt": "hello\nworld"})

	postKeys(t, b,
		backend.Event{Key: backend.KeyRune, Rune: 'X'},
		backend.Event{Key: backend.KeyRune, Rune: 's', Mod: backend.ModCtrl},
		backend.Event{Key: backend.KeyEscape},
	)

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	content, ok := mfs.Content("a.txt")
	if !ok || content != "Xhello\nworld" {
		t.Errorf("expected saved content %q, got %q", "Xhello\nworld", content)
	}
	if app.State().Modified() {
		t.Error("expected document to be unmodified after save")
	}
	if row := b.RowText(1); !strings.Contains(row, "Xhello") {
		t.Errorf("expected first text row to show the edit, got %q", row)
	}
	if row := b.RowText(8); !strings.Contains(row, "Saved a.txt (2 lines)") {
		t.Errorf("expected save status, got %q", row)
	}

	snap := app.Metrics().Snapshot()
	if snap.EventCount != 3 {
		t.Errorf("expected 3 events, got %d", snap.EventCount)
	}
	if snap.FullFrames != 1 {
		t.Errorf("expected only the first frame to be full, got %d", snap.FullFrames)
	}
	if app.IsRunning() {
		t.Error("expected Run to have stopped")
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	app, _, _ := newTestApp(t, "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := app.Run(ctx); err != nil {
		t.Fatalf("expected nil on cancellation, got %v", err)
	}
}

func TestRun_AlreadyRunning(t *testing.T) {
	app, _, _ := newTestApp(t, "", nil)
	app.running.Store(true)

	if err := app.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	mfs := filestore.NewMemFS()
	b := panicBackend{backend.NewNullBackend(80, 10)}

	app, err := New(context.Background(), testOptions(t, "", b, mfs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = app.Run(context.Background())
	var perr *RecoveredPanicError
	if !errors.As(err, &perr) {
		t.Fatalf("expected RecoveredPanicError, got %v", err)
	}
	if perr.Value != "poll failed" {
		t.Errorf("expected panic value, got %v", perr.Value)
	}
}

func TestRun_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "picoterm.log")

	mfs := filestore.NewMemFS()
	mfs.AddFile("a.txt", "x")
	b := backend.NewNullBackend(80, 10)
	opts := testOptions(t, "a.txt", b, mfs)
	opts.LogFile = logPath
	opts.LogLevel = "debug"

	app, err := New(context.Background(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	postKeys(t, b,
		backend.Event{Key: backend.KeyRune, Rune: 'j', Mod: backend.ModAlt},
		backend.Event{Key: backend.KeyEscape},
	)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"opened a.txt", "component=mode", "write -> edit", "shutdown after", "session="} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got:\n%s", want, out)
		}
	}
}

func TestHandleEvent_DiskChange(t *testing.T) {
	app, b, _ := newTestApp(t, "a.txt", map[string]string{"a.txt": "hello"})
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	app.prepare()
	ctx := context.Background()

	if err := app.handleEvent(ctx, dispatcher.DiskChangeEvent("other.txt")); err != nil {
		t.Fatalf("handleEvent: %v", err)
	}
	if app.State().Status != "Opened a.txt (1 lines)" {
		t.Errorf("expected status untouched for another file, got %q", app.State().Status)
	}

	if err := app.handleEvent(ctx, dispatcher.DiskChangeEvent("a.txt")); err != nil {
		t.Fatalf("handleEvent: %v", err)
	}
	if row := b.RowText(8); !strings.Contains(row, "a.txt changed on disk") {
		t.Errorf("expected disk change notice, got %q", row)
	}
}

func TestHandleEvent_Quit(t *testing.T) {
	app, b, _ := newTestApp(t, "", nil)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	app.prepare()

	err := app.handleEvent(context.Background(), dispatcher.KeyEvent(dispatcher.DefaultBindings().Quit))
	if !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
}
