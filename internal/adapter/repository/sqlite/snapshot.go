package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// Store persists snapshot values in a single key/value table. It implements
// usecase.SnapshotStore.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store over an opened snapshot database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load reads the value stored under key. A missing row or a value that does
// not hold valid JSON is reported as absent.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !json.Valid(value) {
		return nil, nil
	}

	return value, nil
}

// Save upserts the value under key.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
