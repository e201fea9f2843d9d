package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewStore(client), mr
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "walletBalance", []byte(`"5000"`)))

	got, err := store.Load(ctx, "walletBalance")
	require.NoError(t, err)
	require.Equal(t, []byte(`"5000"`), got)
}

func TestStore_KeysArePrefixed(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), "expenses", []byte(`[]`)))

	got, err := mr.Get("snapshot:expenses")
	require.NoError(t, err)
	require.Equal(t, "[]", got)
}

func TestStore_MissingKeyIsAbsent(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Load(context.Background(), "expenses")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_CorruptValueIsAbsent(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, mr.Set("snapshot:walletBalance", "}{"))

	got, err := store.Load(context.Background(), "walletBalance")
	require.NoError(t, err)
	require.Nil(t, got)
}
