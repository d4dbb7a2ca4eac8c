package filestore

import (
	"io/fs"
	"os"
	"path"
	"sync"
	"time"
)

// FileSystem is the subset of file operations the store needs.
type FileSystem interface {
	// ReadFile reads the entire file content.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Stat returns file information.
	Stat(name string) (fs.FileInfo, error)
}

// OSFS implements FileSystem on the operating system's file system.
type OSFS struct{}

// NewOSFS creates an OS-backed file system.
func NewOSFS() *OSFS {
	return &OSFS{}
}

func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// MemFS implements FileSystem in memory. It is safe for concurrent use.
//
// Every write advances an internal clock by one second so modification
// times are strictly increasing.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]bool
	clock time.Time
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]*memFile),
		dirs:  map[string]bool{"/": true, ".": true},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Ensure the implementations satisfy FileSystem.
var (
	_ FileSystem = (*OSFS)(nil)
	_ FileSystem = (*MemFS)(nil)
)

func (m *MemFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	f, ok := m.files[name]
	if !ok {
		if m.dirs[name] {
			return nil, &fs.PathError{Op: "read", Path: name, Err: ErrIsDirectory}
		}
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent modification
	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

func (m *MemFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	if m.dirs[name] {
		return &fs.PathError{Op: "write", Path: name, Err: ErrIsDirectory}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.clock = m.clock.Add(time.Second)
	m.files[name] = &memFile{content: content, mode: perm, modTime: m.clock}
	return nil
}

func (m *MemFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	if f, ok := m.files[name]; ok {
		return memInfo{name: path.Base(name), size: int64(len(f.content)), mode: f.mode, modTime: f.modTime}, nil
	}
	if m.dirs[name] {
		return memInfo{name: path.Base(name), mode: fs.ModeDir | 0o755, modTime: m.clock}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// AddFile creates a file with the given content.
func (m *MemFS) AddFile(name, content string) {
	_ = m.WriteFile(name, []byte(content), 0o644)
}

// AddDir creates a directory entry.
func (m *MemFS) AddDir(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path.Clean(name)] = true
}

// Content returns the content of a file and whether it exists.
func (m *MemFS) Content(name string) (string, bool) {
	data, err := m.ReadFile(name)
	if err != nil {
		return "", false
	}
	return string(data), true
}

type memInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.size }
func (i memInfo) Mode() fs.FileMode  { return i.mode }
func (i memInfo) ModTime() time.Time { return i.modTime }
func (i memInfo) IsDir() bool        { return i.mode.IsDir() }
func (i memInfo) Sys() any           { return nil }
