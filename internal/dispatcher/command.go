package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dshills/picoterm/internal/engine/buffer"
)

// Store persists documents. filestore.Store is the production
// implementation.
type Store interface {
	// Load returns the text of path. A missing file yields an error
	// wrapping fs.ErrNotExist.
	Load(ctx context.Context, path string) (string, error)

	// Save writes text to path verbatim.
	Save(ctx context.Context, path, text string) error
}

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SaveCommand writes a snapshot of the document to Path.
type SaveCommand struct {
	Snapshot buffer.Snapshot
	Path     string
}

// Execute runs the save against store.
func (c SaveCommand) Execute(ctx context.Context, store Store) error {
	if c.Path == "" {
		return fmt.Errorf("save: %w", fs.ErrInvalid)
	}
	return store.Save(ctx, c.Path, c.Snapshot.Text())
}

// Document is the result of an OpenCommand.
type Document struct {
	Buffer *buffer.Buffer
	Path   string

	// Created is true when the file did not exist and an empty document
	// was started under its name.
	Created bool
}

// OpenCommand reads the document at Path.
type OpenCommand struct {
	Path    string
	Options []buffer.Option
}

// Execute runs the open against store. A missing file is not an error: it
// yields an empty document that is created on first save.
func (c OpenCommand) Execute(ctx context.Context, store Store) (Document, error) {
	if c.Path == "" {
		return Document{}, fmt.Errorf("open: %w", fs.ErrInvalid)
	}

	text, err := store.Load(ctx, c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Document{
			Buffer:  buffer.NewBuffer(c.Options...),
			Path:    c.Path,
			Created: true,
		}, nil
	}
	if err != nil {
		return Document{}, err
	}

	return Document{
		Buffer: buffer.NewBufferFromString(text, c.Options...),
		Path:   c.Path,
	}, nil
}
