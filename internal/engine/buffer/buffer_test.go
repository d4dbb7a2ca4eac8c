package buffer

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.TabWidth() != DefaultTabWidth {
		t.Errorf("expected tab width %d, got %d", DefaultTabWidth, b.TabWidth())
	}
}

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
	}{
		{"empty", "", []string{""}},
		{"single", "hello", []string{"hello"}},
		{"multiline", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline", "a\nb\n", []string{"a", "b", ""}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"cr", "a\rb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.text)
			got := b.Lines()
			if len(got) != len(tt.lines) {
				t.Fatalf("expected %d lines, got %d (%q)", len(tt.lines), len(got), got)
			}
			for i := range got {
				if got[i] != tt.lines[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.lines[i], got[i])
				}
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	text := "first\n\nthird line\n"
	b := NewBufferFromString(text)
	if b.Text() != text {
		t.Errorf("expected %q, got %q", text, b.Text())
	}
}

func TestNewBufferFromLinesCopies(t *testing.T) {
	lines := []string{"a", "b"}
	b := NewBufferFromLines(lines)
	lines[0] = "changed"
	if b.Line(0) != "a" {
		t.Error("buffer should not alias the input slice")
	}

	if NewBufferFromLines(nil).LineCount() != 1 {
		t.Error("nil lines should yield one empty line")
	}
}

func TestLineAccessors(t *testing.T) {
	b := NewBufferFromString("héllo\nx")

	if b.LineLen(0) != 5 {
		t.Errorf("expected 5 columns, got %d", b.LineLen(0))
	}
	if b.Line(5) != "" {
		t.Error("out of range line should be empty")
	}
	if b.LineLen(-1) != 0 {
		t.Error("out of range line length should be 0")
	}
}

func TestValidPosition(t *testing.T) {
	b := NewBufferFromString("abc\nde")

	tests := []struct {
		pos   Position
		valid bool
	}{
		{Position{0, 0}, true},
		{Position{0, 3}, true},
		{Position{1, 2}, true},
		{Position{0, 4}, false},
		{Position{1, 3}, false},
		{Position{2, 0}, false},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
	}

	for _, tt := range tests {
		if got := b.ValidPosition(tt.pos); got != tt.valid {
			t.Errorf("ValidPosition(%s) = %v, want %v", tt.pos, got, tt.valid)
		}
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	b := NewBufferFromString("abc")
	snap := b.Snapshot()

	if _, err := b.InsertChar(Position{0, 3}, 'd'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if snap.Text() != "abc" {
		t.Errorf("snapshot changed: %q", snap.Text())
	}
	if snap.Revision() == b.Revision() {
		t.Error("snapshot revision should lag behind the buffer")
	}
	if snap.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", snap.LineCount())
	}
}

func TestRevisionBumpsOnMutation(t *testing.T) {
	b := NewBuffer()
	rev := b.Revision()

	if _, err := b.DeleteBefore(Position{0, 0}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Revision() != rev {
		t.Error("no-op delete should not bump the revision")
	}

	if _, err := b.InsertChar(Position{0, 0}, 'x'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Revision() == rev {
		t.Error("insert should bump the revision")
	}
}

func TestErrIndexOutOfRangeWrapping(t *testing.T) {
	b := NewBufferFromString("abc")

	_, err := b.InsertChar(Position{0, 4}, 'x')
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if b.Text() != "abc" {
		t.Errorf("failed insert modified the buffer: %q", b.Text())
	}
}

func TestPositionCompare(t *testing.T) {
	a := Position{Line: 1, Column: 2}
	tests := []struct {
		other Position
		want  int
	}{
		{Position{1, 2}, 0},
		{Position{0, 9}, 1},
		{Position{2, 0}, -1},
		{Position{1, 1}, 1},
		{Position{1, 3}, -1},
	}
	for _, tt := range tests {
		if got := a.Compare(tt.other); got != tt.want {
			t.Errorf("Compare(%s) = %d, want %d", tt.other, got, tt.want)
		}
	}
	if !a.Before(Position{1, 3}) {
		t.Error("expected a before (1:3)")
	}
}
