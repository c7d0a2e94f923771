package source

import (
	"fmt"
	"os"
	"sync"
)

// Reader returns the normalized text of a header.
type Reader interface {
	Read(path string) (string, error)
}

// FileReader reads headers from disk and caches the normalized text per
// path. It is safe for concurrent use.
type FileReader struct {
	mu    sync.Mutex
	cache map[string]string
}

// NewFileReader creates an empty FileReader.
func NewFileReader() *FileReader {
	return &FileReader{cache: map[string]string{}}
}

// Read implements Reader.
func (r *FileReader) Read(path string) (string, error) {
	r.mu.Lock()
	text, ok := r.cache[path]
	r.mu.Unlock()

	if ok {
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", path, err)
	}

	text = Normalize(string(data))

	r.mu.Lock()
	r.cache[path] = text
	r.mu.Unlock()

	return text, nil
}
