package filestore

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"time"
)

// DefaultMaxFileSize is the largest file Load accepts by default.
const DefaultMaxFileSize = 10 * 1024 * 1024

// Store loads and saves documents and tracks their modification times.
type Store struct {
	mu sync.Mutex
	// saveMu is held across a save so a concurrent Changed sees the new
	// modification time rather than the write itself.
	saveMu sync.Mutex

	fs       FileSystem
	maxSize  int64
	modTimes map[string]time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithMaxFileSize sets the maximum file size. Zero means unlimited.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxSize = size
	}
}

// NewStore creates a store over the given file system.
func NewStore(fsys FileSystem, opts ...Option) *Store {
	s := &Store{
		fs:       fsys,
		maxSize:  DefaultMaxFileSize,
		modTimes: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the text of a file. A missing file yields a *PathError that
// wraps fs.ErrNotExist.
func (s *Store) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &PathError{Op: "open", Path: path, Err: err}
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return "", &PathError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}
	if s.maxSize > 0 && info.Size() > s.maxSize {
		return "", &PathError{Op: "open", Path: path, Err: ErrFileTooLarge}
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return "", &PathError{Op: "open", Path: path, Err: err}
	}
	if IsBinary(content) {
		return "", &PathError{Op: "open", Path: path, Err: ErrBinaryFile}
	}

	s.remember(path, info.ModTime())
	return string(content), nil
}

// Save writes text to path verbatim.
func (s *Store) Save(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return &PathError{Op: "save", Path: path, Err: err}
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.fs.WriteFile(path, []byte(text), 0o644); err != nil {
		return &PathError{Op: "save", Path: path, Err: err}
	}

	// File was saved; fall back to the current time if stat fails.
	modTime := time.Now()
	if info, err := s.fs.Stat(path); err == nil {
		modTime = info.ModTime()
	}
	s.remember(path, modTime)
	return nil
}

// Changed reports whether path was modified on disk since it was last
// loaded or saved through this store. Unknown paths report false.
func (s *Store) Changed(path string) (bool, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	known, ok := s.modTimes[key(path)]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return false, &PathError{Op: "stat", Path: path, Err: err}
	}
	return info.ModTime().After(known), nil
}

// Acknowledge records the current on-disk modification time of path, so
// Changed reports false until the next external write.
func (s *Store) Acknowledge(path string) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	info, err := s.fs.Stat(path)
	if err != nil {
		return &PathError{Op: "stat", Path: path, Err: err}
	}
	s.remember(path, info.ModTime())
	return nil
}

// Forget drops the modification time recorded for path.
func (s *Store) Forget(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.modTimes, key(path))
}

func (s *Store) remember(path string, modTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modTimes[key(path)] = modTime
}

func key(path string) string {
	return filepath.Clean(path)
}

// IsBinary attempts to detect if content is binary (not text).
// Uses heuristics: presence of null bytes, high ratio of non-printable characters.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	// Check first 8KB at most
	sample := content[:min(len(content), 8192)]

	// Null bytes are a strong indicator of binary
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	// Count non-text bytes (control characters except tab, newline, carriage return, escape)
	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' && b != 0x1b {
			nonText++
		}
	}
	return nonText*10 > len(sample)
}
