package alarmctl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Haseeb-Arshad/chime/internal/domain/alarm"
)

// newOptions points the commands at a temporary store with no config file.
func newOptions(t *testing.T) *Options {
	t.Helper()

	dir := t.TempDir()

	return &Options{
		ConfigPath: filepath.Join(dir, "chime.yaml"),
		StateFile:  filepath.Join(dir, "chime-state.json"),
	}
}

// TestSetClearToggleStatus walks an alarm through its full one-shot
// lifecycle against the on-disk store.
func TestSetClearToggleStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	opts := newOptions(t)

	// No alarm yet.
	report, err := Status(ctx, opts)
	require.NoError(t, err)
	require.Nil(t, report.Alarm)
	require.Equal(t, "local", report.Timezone)
	require.False(t, report.Use24Hour)
	require.Equal(t, "dark", report.Theme)

	// Set one.
	created, err := Set(ctx, opts, "07:30", true)
	require.NoError(t, err)
	require.Equal(t, "07:30", created.Time)
	require.True(t, created.Enabled)

	report, err = Status(ctx, opts)
	require.NoError(t, err)
	require.NotNil(t, report.Alarm)
	require.Equal(t, created.ID, report.Alarm.ID)

	// Disable it.
	toggled, err := Toggle(ctx, opts, false)
	require.NoError(t, err)
	require.False(t, toggled.Enabled)
	require.Equal(t, created.ID, toggled.ID)

	// Clear it.
	require.NoError(t, Clear(ctx, opts))

	report, err = Status(ctx, opts)
	require.NoError(t, err)
	require.Nil(t, report.Alarm)

	// Clearing again stays fine.
	require.NoError(t, Clear(ctx, opts))
}

// TestSetRejectsInvalidTime ensures malformed input never reaches the
// store.
func TestSetRejectsInvalidTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	opts := newOptions(t)

	_, err := Set(ctx, opts, "25:00", true)
	require.ErrorIs(t, err, alarm.ErrInvalidFormat)

	report, err := Status(ctx, opts)
	require.NoError(t, err)
	require.Nil(t, report.Alarm)
}

// TestToggleWithoutAlarm reports the missing alarm instead of inventing
// one.
func TestToggleWithoutAlarm(t *testing.T) {
	t.Parallel()

	_, err := Toggle(context.Background(), newOptions(t), true)
	require.ErrorIs(t, err, errNoAlarm)
}

// TestSetReplacesExistingAlarm checks replacement is wholesale.
func TestSetReplacesExistingAlarm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	opts := newOptions(t)

	first, err := Set(ctx, opts, "07:30", true)
	require.NoError(t, err)

	second, err := Set(ctx, opts, "08:15", false)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	report, err := Status(ctx, opts)
	require.NoError(t, err)
	require.Equal(t, "08:15", report.Alarm.Time)
	require.False(t, report.Alarm.Enabled)
}
