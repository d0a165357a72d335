package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecomdemo/storefront-api/models"
)

// Store owns the single JSON data file holding the whole dataset.
//
// Single-process, single-writer: every mutation runs read-full → mutate →
// write-full under one mutex. Concurrent processes sharing the same file
// are NOT supported; run exactly one instance per data file.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open prepares the data file, creating it with an empty dataset when
// absent, and seeds static reference data.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{path: path}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write(models.Dataset{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat data file: %w", err)
	}

	if err := s.Update(func(db *models.Dataset) error {
		Seed(db)
		return nil
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and decodes the full dataset.
func (s *Store) Load() (models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Save writes the full dataset, replacing whatever was there.
func (s *Store) Save(db models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(db)
}

// Update is the critical section every mutating operation goes through:
// the dataset is read in full, handed to fn, and written back in full
// before any other mutation can start. If fn returns an error nothing is
// written.
func (s *Store) Update(fn func(db *models.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(&db); err != nil {
		return err
	}
	return s.write(db)
}

func (s *Store) read() (models.Dataset, error) {
	var db models.Dataset
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return db, fmt.Errorf("read data file: %w", err)
	}
	if err := json.Unmarshal(raw, &db); err != nil {
		return db, fmt.Errorf("decode data file: %w", err)
	}
	return db, nil
}

// write encodes to a temp file and renames it into place so a crash
// mid-write can never leave a truncated dataset behind.
func (s *Store) write(db models.Dataset) error {
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
