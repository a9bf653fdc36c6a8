// Package local provides the local-filesystem storage backend for
// conversion artifacts.
package local

import (
	"io"
	"os"
	"path/filepath"
)

// Storage reads and writes files on the local filesystem.
type Storage struct{}

// New creates a local Storage.
func New() *Storage {
	return &Storage{}
}

// Open opens an existing file for reading.
func (s *Storage) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Create opens a new file for writing, creating any missing parent
// directories. The file must not already exist: creation is exclusive so
// an existing file is never silently overwritten.
func (s *Storage) Create(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// Remove deletes a file.
func (s *Storage) Remove(path string) error {
	return os.Remove(path)
}
