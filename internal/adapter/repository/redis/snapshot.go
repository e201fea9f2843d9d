package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Store persists snapshot values in Redis. It implements
// usecase.SnapshotStore.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a new Store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		prefix: "snapshot:",
	}
}

// Load reads the value stored under key. A missing key or a value that does
// not hold valid JSON is reported as absent.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
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

// Save stores the value under key without expiry.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
