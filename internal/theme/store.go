package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileStore persists preferences as a flat YAML map in a single file.
// Reads are served from memory; every Set rewrites the file.
type FileStore struct {
	path  string
	prefs map[string]string
}

// OpenFileStore loads the preference file at path. A missing file is not an
// error; the store starts empty and the file is created on first Set.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, prefs: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading preferences %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.prefs); err != nil {
		return nil, fmt.Errorf("parsing preferences %s: %w", path, err)
	}
	if s.prefs == nil {
		s.prefs = make(map[string]string)
	}
	return s, nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.prefs[key]
	return v, ok
}

// Set stores value under key and rewrites the preference file.
func (s *FileStore) Set(key, value string) error {
	s.prefs[key] = value

	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating preference directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing preferences %s: %w", s.path, err)
	}
	return nil
}

// MemStore is an in-memory PreferenceStore for tests and one-off runs.
type MemStore struct {
	prefs map[string]string
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{prefs: make(map[string]string)}
}

// Get returns the stored value for key.
func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.prefs[key]
	return v, ok
}

// Set stores value under key.
func (s *MemStore) Set(key, value string) error {
	s.prefs[key] = value
	return nil
}
