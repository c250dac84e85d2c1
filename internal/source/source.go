// Package source reads the text to be sorted.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	ErrNotFound   = errors.New("source not found")
	ErrUnreadable = errors.New("source unreadable")
)

// Reader reads a complete text, identified by id.
type Reader interface {
	Read(ctx context.Context, id string) (string, error)
}

// FileReader reads texts from the file system; ids are file paths.
type FileReader struct{}

// NewFileReader creates a reader for local files.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// Read returns the content of the file at path. A missing file is reported as
// ErrNotFound, anything else keeping us from reading it as ErrUnreadable.
func (r *FileReader) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrUnreadable, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return string(data), nil
}
