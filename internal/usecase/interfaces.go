package usecase

import (
	"context"
)

// SnapshotStore persists ledger snapshots by key. Load reports a missing or
// unreadable value as (nil, nil) rather than an error; Save is best-effort
// and its failures never reach the ledger state.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
