package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/gowallet/internal/usecase"
)

// Store decorates a SnapshotStore with exponential backoff on Save. Loads
// pass through untouched. The decorated Save still returns the final error
// when every attempt fails; the caller decides whether to swallow it.
type Store struct {
	inner usecase.SnapshotStore

	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
}

// NewStore creates a retrying Store with default settings.
func NewStore(inner usecase.SnapshotStore, logger zerolog.Logger) *Store {
	return &Store{
		inner:           inner,
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  5 * time.Second,
		logger:          logger,
	}
}

// Load delegates to the wrapped store.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Load(ctx, key)
}

// Save retries the wrapped Save with exponential backoff.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialInterval
	b.MaxInterval = s.maxInterval
	b.MaxElapsedTime = s.maxElapsedTime

	retryCount := 0

	return backoff.Retry(func() error {
		err := s.inner.Save(ctx, key, value)
		if err == nil {
			return nil
		}

		retryCount++
		if retryCount > s.maxRetries {
			return backoff.Permanent(err)
		}

		s.logger.Warn().
			Err(err).
			Str("key", key).
			Int("retry", retryCount).
			Msg("snapshot save failed, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}
