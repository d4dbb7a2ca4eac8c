package filestore

import "errors"

// Standard errors.
var (
	// ErrIsDirectory indicates the path is a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrBinaryFile indicates the file does not look like text.
	ErrBinaryFile = errors.New("binary file")

	// ErrFileTooLarge indicates the file exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// PathError records an error and the operation and path that caused it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}
