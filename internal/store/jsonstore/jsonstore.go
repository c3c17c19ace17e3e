// Package jsonstore is JSON-backed key/value storage. One document per
// key, human-readable, portable. No locking; fine for a local
// single-user client.
package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists string-keyed JSON documents under a single directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily
// on the first Set.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir is ~/.balcao, created on first write with owner-only
// permissions.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".balcao"), nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the document stored at key. A missing key is reported via
// the second return value, not as an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return b, true, nil
}

// Set writes the document at key, creating the data dir if needed.
func (s *Store) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes the document at key; deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
