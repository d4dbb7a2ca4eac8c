package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/picoterm/internal/renderer/backend"
	"github.com/dshills/picoterm/internal/renderer/core"
)

func TestStatusLineText(t *testing.T) {
	s := New()
	s.Resize(40)
	s.SetMode("EDIT")
	s.SetFilename("main.go")
	s.SetPosition(2, 6)
	s.SetTotalLines(120)

	text := s.Text()
	if core.StringWidth(text) != 40 {
		t.Errorf("expected width 40, got %d (%q)", core.StringWidth(text), text)
	}
	if !strings.HasPrefix(text, " EDIT  main.go") {
		t.Errorf("expected mode and file prefix, got %q", text)
	}
	if !strings.HasSuffix(text, "3:7 / 120 ") {
		t.Errorf("expected 1-indexed position suffix, got %q", text)
	}
}

func TestStatusLineModifiedAndMessage(t *testing.T) {
	s := New()
	s.Resize(80)
	s.SetFilename("notes.txt")
	s.SetModified(true)
	s.SetMessage("Saved notes.txt (3 lines)")

	left := s.Left()
	if left != " WRITE  notes.txt [+]  Saved notes.txt (3 lines)" {
		t.Errorf("unexpected left part %q", left)
	}

	s.ClearMessage()
	if strings.Contains(s.Left(), "Saved") {
		t.Errorf("expected message cleared, got %q", s.Left())
	}
}

func TestStatusLineNoName(t *testing.T) {
	s := New()
	if !strings.Contains(s.Left(), "[No Name]") {
		t.Errorf("expected [No Name], got %q", s.Left())
	}
}

func TestStatusLineTruncate(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"drops position first", 20, " WRITE  a-very-long-"},
		{"tiny", 6, " WRITE"},
		{"zero", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetFilename("a-very-long-file-name.txt")
			s.Resize(tt.width)
			if got := s.Text(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTruncateKeepsClusters(t *testing.T) {
	// Each CJK cluster is two cells wide.
	if got := truncate("日本語", 5); got != "日本" {
		t.Errorf("expected %q, got %q", "日本", got)
	}
	if got := truncate("e\u0301e", 1); got != "e\u0301" {
		t.Errorf("expected combining cluster intact, got %q", got)
	}
}

func TestStatusLineRender(t *testing.T) {
	b := backend.NewNullBackend(30, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s := New()
	s.Resize(30)
	s.SetFilename("x.txt")
	s.SetTotalLines(1)

	s.Render(b, 1, core.DefaultStyle())

	if got := b.RowText(1); got != " WRITE  x.txt         1:1 / 1" {
		t.Errorf("unexpected row %q", got)
	}
	if got := b.RowText(0); got != "" {
		t.Errorf("expected other rows untouched, got %q", got)
	}
}
