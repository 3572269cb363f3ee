// Package jsonfile stores the activity registry and log as two JSON documents
// in a data directory.
package jsonfile

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/storage"
)

// File names inside the data directory.
const (
	TypesFile   = "activity_types.json"
	RecordsFile = "activities.json"
)

// Store implements storage.Store with plain JSON files. Files are only open
// for the duration of a Load or Save call.
type Store struct {
	dir string
}

// New returns a store rooted at dataDir. The directory is created on the
// first Save.
func New(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("%w: empty data directory", storage.ErrStorage)
	}
	return &Store{dir: dataDir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// Load reads both documents. A missing file yields an empty value.
func (s *Store) Load() (*activity.Registry, *activity.Log, error) {
	reg := activity.NewRegistry()
	if err := readJSON(filepath.Join(s.dir, TypesFile), reg); err != nil {
		return nil, nil, err
	}
	log := activity.NewLog()
	if err := readJSON(filepath.Join(s.dir, RecordsFile), log); err != nil {
		return nil, nil, err
	}
	return reg, log, nil
}

// Save writes both documents, creating the data directory if needed.
func (s *Store) Save(reg *activity.Registry, log *activity.Log) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}
	if err := writeJSON(filepath.Join(s.dir, TypesFile), reg); err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.dir, RecordsFile), log)
}

// Close is a no-op; no handles outlive a call.
func (s *Store) Close() error { return nil }

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", storage.ErrStorage, filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		if errors.Is(err, activity.ErrIDMismatch) {
			return fmt.Errorf("%w: %s: %v", storage.ErrValidation, filepath.Base(path), err)
		}
		return fmt.Errorf("%w: parsing %s: %v", storage.ErrStorage, filepath.Base(path), err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", storage.ErrStorage, filepath.Base(path), err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("%w: encoding %s: %v", storage.ErrStorage, filepath.Base(path), err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: writing %s: %v", storage.ErrStorage, filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", storage.ErrStorage, filepath.Base(path), err)
	}
	return nil
}
