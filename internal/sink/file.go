package sink

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// FileWriter writes words to a text file, one per line.
type FileWriter struct{}

// NewFileWriter creates a writer for local files.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// Write creates or truncates the file at path and writes words to it.
// For an empty slice of words, the file is not touched at all.
func (w *FileWriter) Write(ctx context.Context, path string, words []string) error {
	if len(words) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", ErrWriteFailure, path, err)
	}
	bw := bufio.NewWriter(f)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			f.Close()
			return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			f.Close()
			return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: flushing %s: %v", ErrWriteFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrWriteFailure, path, err)
	}
	return nil
}
