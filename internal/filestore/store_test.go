package filestore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreLoad(t *testing.T) {
	mem := NewMemFS()
	mem.AddFile("/doc.txt", "alpha\nbeta")
	s := NewStore(mem)

	text, err := s.Load(context.Background(), "/doc.txt")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if text != "alpha\nbeta" {
		t.Errorf("expected %q, got %q", "alpha\nbeta", text)
	}
}

func TestStoreLoadErrors(t *testing.T) {
	mem := NewMemFS()
	mem.AddDir("/dir")
	mem.AddFile("/bin", "a\x00b")
	mem.AddFile("/big", strings.Repeat("x", 64))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", "/nope.txt", fs.ErrNotExist},
		{"directory", "/dir", ErrIsDirectory},
		{"binary", "/bin", ErrBinaryFile},
		{"too large", "/big", ErrFileTooLarge},
	}

	s := NewStore(mem, WithMaxFileSize(32))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Load(context.Background(), tt.path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var pe *PathError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *PathError, got %T", err)
			}
			if pe.Op != "open" || pe.Path != tt.path {
				t.Errorf("unexpected PathError: %+v", pe)
			}
		})
	}
}

func TestStoreLoadCancelled(t *testing.T) {
	mem := NewMemFS()
	mem.AddFile("/a", "a")
	s := NewStore(mem)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Load(ctx, "/a"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestStoreSave(t *testing.T) {
	mem := NewMemFS()
	s := NewStore(mem)

	if err := s.Save(context.Background(), "/out.txt", "one\n\ntwo"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, ok := mem.Content("/out.txt")
	if !ok {
		t.Fatal("expected file to exist after save")
	}
	if got != "one\n\ntwo" {
		t.Errorf("expected %q, got %q", "one\n\ntwo", got)
	}

	mem.AddDir("/d")
	err := s.Save(context.Background(), "/d", "x")
	if !errors.Is(err, ErrIsDirectory) {
		t.Errorf("expected ErrIsDirectory, got %v", err)
	}
}

func TestStoreChanged(t *testing.T) {
	mem := NewMemFS()
	mem.AddFile("/f", "v1")
	s := NewStore(mem)

	changed, err := s.Changed("/f")
	if err != nil || changed {
		t.Errorf("unknown path should not report changed, got %v, %v", changed, err)
	}

	if _, err := s.Load(context.Background(), "/f"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if changed, _ := s.Changed("/f"); changed {
		t.Error("expected unchanged right after load")
	}

	mem.AddFile("/f", "v2")
	if changed, _ := s.Changed("/f"); !changed {
		t.Error("expected changed after external write")
	}
	if err := s.Acknowledge("/f"); err != nil {
		t.Fatalf("Acknowledge failed: %v", err)
	}
	if changed, _ := s.Changed("/f"); changed {
		t.Error("acknowledged change should not be reported again")
	}
	if err := s.Acknowledge("/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}

	if err := s.Save(context.Background(), "/f", "v3"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if changed, _ := s.Changed("/f"); changed {
		t.Error("own save should not report changed")
	}

	s.Forget("/f")
	mem.AddFile("/f", "v4")
	if changed, _ := s.Changed("/f"); changed {
		t.Error("forgotten path should not report changed")
	}
}

func TestStoreOSFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	s := NewStore(NewOSFS())

	if err := s.Save(context.Background(), path, "hello\nworld"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello\nworld" {
		t.Errorf("expected %q, got %q", "hello\nworld", string(data))
	}

	text, err := s.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if text != "hello\nworld" {
		t.Errorf("expected %q, got %q", "hello\nworld", text)
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"empty", nil, false},
		{"text", []byte("plain text\n\twith tab\r\n"), false},
		{"utf8", []byte("héllo wörld"), false},
		{"null byte", []byte("abc\x00def"), true},
		{"control heavy", []byte("\x01\x02\x03\x04ab"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.content); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
