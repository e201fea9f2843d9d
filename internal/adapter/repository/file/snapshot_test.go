package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "walletBalance", []byte(`"5000"`)))

	got, err := store.Load(ctx, "walletBalance")
	require.NoError(t, err)
	require.Equal(t, []byte(`"5000"`), got)
}

func TestStore_MissingKeyIsAbsent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Load(context.Background(), "expenses")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_CorruptValueIsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "expenses.json"), []byte("{torn write"), 0o644))

	got, err := store.Load(context.Background(), "expenses")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "walletBalance", []byte(`"100"`)))
	require.NoError(t, store.Save(ctx, "walletBalance", []byte(`"250"`)))

	got, err := store.Load(ctx, "walletBalance")
	require.NoError(t, err)
	require.Equal(t, []byte(`"250"`), got)
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
