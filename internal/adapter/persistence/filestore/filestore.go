package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store persists JSON document snapshots, one file per logical document.
//
// Write protocol: marshal to a temp file in the same directory, fsync, then
// rename over the target. Readers therefore never observe a torn write.
// A missing or unreadable document is not an error; the caller's zero value
// is returned so the service can fall back to defaults.

type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Read unmarshals the named document into out. Returns false when the
// document does not exist or cannot be decoded; out is left untouched.
func (s *Store) Read(name string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("filestore: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		// A corrupt snapshot is treated as absent rather than fatal so the
		// service can reseed; the broken file is kept aside for inspection.
		log.Printf("[filestore] document %s is corrupt, ignoring: %v", name, err)
		if renameErr := os.Rename(s.path(name), s.path(name)+".corrupt"); renameErr != nil {
			log.Printf("[filestore] could not quarantine %s: %v", name, renameErr)
		}
		return false, nil
	}
	return true, nil
}

// Write atomically replaces the named document.
func (s *Store) Write(name string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: marshal %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("filestore: replace %s: %w", name, err)
	}
	return nil
}

// Delete removes the named document. Missing documents are not an error.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("filestore: delete %s: %w", name, err)
	}
	return nil
}
