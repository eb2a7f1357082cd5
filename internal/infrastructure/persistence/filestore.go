// Package persistence stores the whole ledger snapshot as one JSON blob on
// disk, the way the product has always persisted its state: a single named
// record, written after every mutation, loaded once at startup. No
// versioning or migration; the blob schema is exactly the entity tables.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nawiri/nawiri-bms/internal/application/ledger"
)

// FileStore reads and writes the snapshot blob. It implements ledger.Saver.
type FileStore struct {
	path string
}

// NewFileStore builds a store writing to dir/blob.
func NewFileStore(dir, blob string) *FileStore {
	return &FileStore{path: filepath.Join(dir, blob)}
}

// Path returns the blob location.
func (s *FileStore) Path() string { return s.path }

// Load reads the blob. A missing file is not an error: it returns an empty
// snapshot, the state of a first run.
func (s *FileStore) Load() (ledger.Snapshot, error) {
	var snap ledger.Snapshot
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snap, nil
		}
		return snap, fmt.Errorf("read snapshot blob: %w", err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot blob: %w", err)
	}
	return snap, nil
}

// Save writes the blob atomically: full marshal to a temp file in the same
// directory, then rename over the target so a crash mid-write never leaves
// a torn blob.
func (s *FileStore) Save(snap ledger.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot blob: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp blob: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot blob: %w", err)
	}
	return nil
}
