package zone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestResolver_LocalSentinel verifies "local" and the empty id select the
// system's local zone without error.
func TestResolver_LocalSentinel(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	at := time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC)

	for _, id := range []string{Local, ""} {
		got, err := r.Convert(at, id)
		require.NoError(t, err)
		require.Equal(t, time.Local, got.Location())
		require.True(t, got.Equal(at))
	}
}

// TestResolver_ConvertTokyo verifies conversion into a named zone yields
// that zone's wall-clock fields for the same instant.
func TestResolver_ConvertTokyo(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	at := time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC)

	got, err := r.Convert(at, "Asia/Tokyo")
	require.NoError(t, err)
	require.True(t, got.Equal(at))
	require.Equal(t, 9, got.Hour())
	require.Equal(t, 5, got.Minute())
	require.Equal(t, time.Monday, got.Weekday())
}

// TestResolver_UnknownZoneDegrades verifies an unresolvable id still
// returns a usable local time and reports ErrUnknownZone, on every call.
func TestResolver_UnknownZoneDegrades(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	at := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		got, err := r.Convert(at, "Atlantis/Capital")
		require.ErrorIs(t, err, ErrUnknownZone)
		require.Equal(t, time.Local, got.Location())
		require.True(t, got.Equal(at))
	}
}

// TestResolver_CachesLocations verifies repeated lookups reuse the loaded
// location instead of reloading it.
func TestResolver_CachesLocations(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	at := time.Now()

	first, err := r.Convert(at, "Europe/Berlin")
	require.NoError(t, err)

	second, err := r.Convert(at, "Europe/Berlin")
	require.NoError(t, err)
	require.Same(t, first.Location(), second.Location())
}
