package backend

import (
	"errors"
	"testing"

	"github.com/dshills/picoterm/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewCell("X", core.DefaultStyle().WithForeground(core.ColorWhite))
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	if b.GetCell(-1, 0) != core.EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendRowText(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	for i, c := range core.CellsFromString("a世b", core.DefaultStyle()) {
		b.SetCell(i, 1, c)
	}
	if got := b.RowText(1); got != "a世b" {
		t.Errorf("expected %q, got %q", "a世b", got)
	}
	if b.RowText(0) != "" {
		t.Errorf("expected empty row, got %q", b.RowText(0))
	}
	if b.RowText(9) != "" {
		t.Error("out of range row should be empty")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(5, 1)
	b.Init()
	b.SetCell(0, 0, core.NewCell("x", core.DefaultStyle()))

	b.Clear()
	if b.RowText(0) != "" {
		t.Errorf("expected cleared row, got %q", b.RowText(0))
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(3, 4)
	x, y, visible := b.CursorPosition()
	if x != 3 || y != 4 || !visible {
		t.Errorf("expected visible cursor at (3, 4), got (%d, %d) %v", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendShowCount(t *testing.T) {
	b := NewNullBackend(1, 1)
	b.Init()
	b.Show()
	b.Show()
	if b.ShowCount() != 2 {
		t.Errorf("expected 2 shows, got %d", b.ShowCount())
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 30)
	if w, h := b.Size(); w != 100 || h != 30 {
		t.Errorf("expected (100, 30), got (%d, %d)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 30 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)

	if err := b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'}); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("unexpected event %+v", ev)
	}

	for i := 0; i < 100; i++ {
		_ = b.PostEvent(Event{Type: EventNone})
	}
	if err := b.PostEvent(Event{Type: EventNone}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModAlt

	if !m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Error("expected ctrl and alt")
	}
	if m.Has(ModShift) {
		t.Error("unexpected shift")
	}
}
