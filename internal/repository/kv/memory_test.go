package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMemoryStore_SetGetRemove walks a key through its full lifecycle.
func TestMemoryStore_SetGetRemove(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	_, err := store.Get("clock.alarm")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("clock.alarm", `{"time":"07:30"}`))

	got, err := store.Get("clock.alarm")
	require.NoError(t, err)
	require.Equal(t, `{"time":"07:30"}`, got)

	require.NoError(t, store.Remove("clock.alarm"))
	require.NoError(t, store.Remove("clock.alarm"))

	_, err = store.Get("clock.alarm")
	require.ErrorIs(t, err, ErrNotFound)
}
