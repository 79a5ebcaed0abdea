package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Haseeb-Arshad/chime/internal/domain/clock"
)

// tick builds a TimeValue carrying only the raw fields MatchesTick reads.
func tick(hours, minutes, seconds int) clock.TimeValue {
	return clock.TimeValue{RawHours: hours, RawMinutes: minutes, RawSeconds: seconds}
}

// TestNew_ValidTimesEchoExactly verifies valid HH:MM strings survive
// unchanged and come back enabled with an id and creation timestamp.
func TestNew_ValidTimesEchoExactly(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, time.March, 1, 6, 0, 0, 0, time.UTC)

	for _, valid := range []string{"00:00", "07:30", "09:05", "12:00", "19:59", "23:59"} {
		a, err := New(valid, createdAt)

		require.NoError(t, err)
		require.Equal(t, valid, a.Time)
		require.True(t, a.Enabled)
		require.NotEmpty(t, a.ID)
		require.Equal(t, createdAt, a.CreatedAt)
	}
}

// TestNew_RejectsMalformedTimes verifies strings outside the pattern fail
// with ErrInvalidFormat and produce no alarm.
func TestNew_RejectsMalformedTimes(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"24:00", "9:30", "12:60", "12:5", "1230", "12-30", "ab:cd", "", "12:30 ", "-1:30",
	}

	for _, s := range invalid {
		a, err := New(s, time.Now())

		require.ErrorIs(t, err, ErrInvalidFormat, "input %q", s)
		require.Nil(t, a)
	}
}

// TestAlarm_HourMinute verifies the numeric accessors parse the validated
// time string.
func TestAlarm_HourMinute(t *testing.T) {
	t.Parallel()

	a, err := New("07:30", time.Now())
	require.NoError(t, err)
	require.Equal(t, 7, a.Hour())
	require.Equal(t, 30, a.Minute())

	b, err := New("23:05", time.Now())
	require.NoError(t, err)
	require.Equal(t, 23, b.Hour())
	require.Equal(t, 5, b.Minute())
}

// TestAlarm_MatchesTick_EdgeTrigger walks the seconds around 07:30 and
// asserts the alarm matches exactly the zeroth second of its minute.
func TestAlarm_MatchesTick_EdgeTrigger(t *testing.T) {
	t.Parallel()

	a, err := New("07:30", time.Now())
	require.NoError(t, err)

	require.False(t, a.MatchesTick(tick(7, 29, 59)))
	require.True(t, a.MatchesTick(tick(7, 30, 0)))
	require.False(t, a.MatchesTick(tick(7, 30, 1)))

	// Exactly one match across the whole matching minute.
	matches := 0
	for seconds := 0; seconds < 60; seconds++ {
		if a.MatchesTick(tick(7, 30, seconds)) {
			matches++
		}
	}

	require.Equal(t, 1, matches)

	// Non-matching minute never fires.
	for seconds := 0; seconds < 60; seconds++ {
		require.False(t, a.MatchesTick(tick(7, 31, seconds)))
	}
}

// TestAlarm_MatchesTick_DisabledOrMissing verifies a disabled or nil alarm
// never matches; neither case is an error.
func TestAlarm_MatchesTick_DisabledOrMissing(t *testing.T) {
	t.Parallel()

	a, err := New("07:30", time.Now())
	require.NoError(t, err)

	a.Enabled = false
	require.False(t, a.MatchesTick(tick(7, 30, 0)))

	require.False(t, (*Alarm)(nil).MatchesTick(tick(7, 30, 0)))
}

// TestAlarm_Clone verifies Clone returns an equal copy with its own
// identity and handles nil safely.
func TestAlarm_Clone(t *testing.T) {
	t.Parallel()

	require.Nil(t, (*Alarm)(nil).Clone())

	a, err := New("06:15", time.Now())
	require.NoError(t, err)

	b := a.Clone()
	require.Equal(t, a, b)
	require.NotSame(t, a, b)

	b.Enabled = false
	require.True(t, a.Enabled, "mutating the clone must not touch the original")
}

// TestAlarm_Validate verifies re-validation of restored alarms accepts good
// times and rejects tampered ones.
func TestAlarm_Validate(t *testing.T) {
	t.Parallel()

	a, err := New("07:30", time.Now())
	require.NoError(t, err)
	require.NoError(t, a.Validate())

	a.Time = "25:99"
	require.ErrorIs(t, a.Validate(), ErrInvalidFormat)
}
