package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Source is an openable input stream for one dataset. The parsers never
// touch the filesystem themselves; they consume whatever stream a Source
// hands them.
type Source interface {
	// Name identifies the source for logs and error messages.
	Name() string
	// Open returns a readable stream positioned at the start of the data.
	// The caller owns closing it.
	Open() (io.ReadCloser, error)
}

// FileSource opens a dataset file inside a data directory.
type FileSource struct {
	dir  string
	file string
}

// NewFileSource creates a FileSource for dir/file.
func NewFileSource(dir, file string) FileSource {
	return FileSource{dir: dir, file: file}
}

// Name returns the file name within the data directory.
func (s FileSource) Name() string { return s.file }

// Open opens the file for reading, failing with a descriptive error naming
// the full path.
func (s FileSource) Open() (io.ReadCloser, error) {
	path := filepath.Join(s.dir, s.file)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return f, nil
}
