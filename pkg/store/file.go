package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps all keys in a single YAML document on disk
type FileStore struct {
	mu     sync.RWMutex
	values map[string]string
	path   string
}

// NewFileStore opens the store at path, starting empty if the file does not exist
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	if err := s.load(); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	return s, nil
}

// load reads the store from disk
func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse store %s: %w", s.path, err)
	}

	s.values = values
	return nil
}

// save writes the store to disk. Callers must hold the lock.
func (s *FileStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	// Write atomically
	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save store: %w", err)
	}

	return nil
}

// Get returns the value stored under key
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and persists the store
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Remove deletes key and persists the store
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	if !existed {
		return nil
	}
	delete(s.values, key)

	if err := s.save(); err != nil {
		s.values[key] = previous
		return err
	}
	return nil
}

// Path returns the file backing the store
func (s *FileStore) Path() string {
	return s.path
}

// Close is a no-op; every change is already on disk
func (s *FileStore) Close() error {
	return nil
}
