package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFileStore_MissingFile verifies a missing file opens as an empty store.
func TestFileStore_MissingFile(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.NotNil(t, store)

	_, err = store.Get("clock.theme")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileStore_SetGetRemove walks a key through its full lifecycle.
func TestFileStore_SetGetRemove(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	require.NoError(t, store.Set("clock.timezone", "Asia/Tokyo"))

	got, err := store.Get("clock.timezone")
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", got)

	require.NoError(t, store.Remove("clock.timezone"))

	_, err = store.Get("clock.timezone")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileStore_RemoveMissingKey ensures removing an absent key is a no-op.
func TestFileStore_RemoveMissingKey(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	require.NoError(t, store.Remove("never.set"))
}

// TestFileStore_Reopen ensures values written by one store are visible to
// a store opened later on the same path.
func TestFileStore_Reopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("clock.use24hour", "true"))
	require.NoError(t, first.Set("clock.theme", "light"))

	second, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := second.Get("clock.use24hour")
	require.NoError(t, err)
	require.Equal(t, "true", got)

	got, err = second.Get("clock.theme")
	require.NoError(t, err)
	require.Equal(t, "light", got)
}

// TestFileStore_CorruptFile verifies a damaged file yields an error plus a
// usable empty store, and that the next write repairs the file.
func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileStore(path)
	require.Error(t, err)
	require.NotNil(t, store)

	_, err = store.Get("clock.theme")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("clock.theme", "dark"))

	healed, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := healed.Get("clock.theme")
	require.NoError(t, err)
	require.Equal(t, "dark", got)
}
