package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Haseeb-Arshad/chime/internal/config"
)

// FileStore persists the key-value map as a single JSON document on disk.
// Every Set/Remove rewrites the file, which keeps crash behavior simple at
// the scale of a handful of preference keys.
type FileStore struct {
	// path is the filesystem location of the JSON document.
	path string
	// mu protects values and the file behind it.
	mu sync.Mutex
	// values is the in-memory copy of the stored map.
	values map[string]string
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens the JSON store at path. A missing file yields an
// empty store. A corrupt file also yields a usable empty store, together
// with an error describing the damage: the caller logs it, and the next
// write replaces the broken file.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   filepath.Clean(path),
		values: make(map[string]string),
	}

	contents, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}

		return s, fmt.Errorf("read state file: %w", err)
	}

	if err := json.Unmarshal(contents, &s.values); err != nil {
		s.values = make(map[string]string)

		return s, fmt.Errorf("decode state file: %w", err)
	}

	return s, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *FileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	return value, nil
}

// Set stores value under key and rewrites the file.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return s.flush()
}

// Remove deletes key and rewrites the file. Absent keys are a no-op.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}

	delete(s.values, key)

	return s.flush()
}

// flush writes the whole map to disk. Callers hold mu.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err := os.WriteFile(s.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
