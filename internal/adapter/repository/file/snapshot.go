package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists snapshot values as one JSON file per key inside a data
// directory. It implements usecase.SnapshotStore.
type Store struct {
	dir string
}

// NewStore creates a Store, creating the data directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Load reads the value stored under key. A missing file or one that does not
// hold valid JSON is reported as absent.
func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !json.Valid(raw) {
		return nil, nil
	}

	return raw, nil
}

// Save writes the value under key. The write goes through a temp file and a
// rename so a crash mid-write cannot leave a torn snapshot behind.
func (s *Store) Save(_ context.Context, key string, value []byte) error {
	path := s.path(key)

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
