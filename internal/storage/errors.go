package storage

import (
	"errors"
	"fmt"
)

// Standard errors returned by storage operations.
var (
	// ErrIsDirectory indicates the path names a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrFileTooLarge indicates the file exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file too large")

	// ErrBinaryFile indicates the content appears to be binary.
	ErrBinaryFile = errors.New("binary file")

	// ErrEncodingUnsupported indicates an encoding the editor cannot load.
	ErrEncodingUnsupported = errors.New("unsupported encoding")

	// ErrNoPath indicates a save was attempted on an unnamed document.
	ErrNoPath = errors.New("no file name")
)

// PathError associates an error with the file path and operation that
// produced it.
type PathError struct {
	Op   string // Operation that failed (open, read, save)
	Path string // File path
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}
