package alarm

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Haseeb-Arshad/chime/internal/domain/clock"
)

// ErrInvalidFormat rejects alarm times that do not match the HH:MM pattern.
var ErrInvalidFormat = errors.New("alarm time must match HH:MM (24-hour)")

// timePattern accepts exactly 00-23 hours and 00-59 minutes.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Alarm is the single scheduled alarm. Replacement is wholesale: setting a
// new alarm produces a fresh id and creation timestamp.
type Alarm struct {
	// ID is an opaque, creation-time-ordered identifier (UUIDv7).
	ID string `json:"id"`
	// Time is the validated firing time in "HH:MM" 24-hour form.
	Time string `json:"time"`
	// Enabled gates matching; a disabled alarm never triggers.
	Enabled bool `json:"enabled"`
	// CreatedAt records when the alarm was set.
	CreatedAt time.Time `json:"createdAt"`
}

// New validates timeStr and builds an enabled alarm created at createdAt.
// Invalid input returns ErrInvalidFormat and no alarm.
func New(timeStr string, createdAt time.Time) (*Alarm, error) {
	if !timePattern.MatchString(timeStr) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, timeStr)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate alarm id: %w", err)
	}

	return &Alarm{
		ID:        id.String(),
		Time:      timeStr,
		Enabled:   true,
		CreatedAt: createdAt,
	}, nil
}

// Validate reports whether the stored fields are usable. It guards alarms
// restored from persistence, which bypass New.
func (a *Alarm) Validate() error {
	if !timePattern.MatchString(a.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, a.Time)
	}

	return nil
}

// Hour returns the alarm hour, 0-23. Meaningful only on a validated alarm.
func (a *Alarm) Hour() int {
	hours, _ := strconv.Atoi(a.Time[:2])

	return hours
}

// Minute returns the alarm minute, 0-59. Meaningful only on a validated alarm.
func (a *Alarm) Minute() int {
	minutes, _ := strconv.Atoi(a.Time[3:])

	return minutes
}

// MatchesTick reports whether tv is the single tick this alarm fires on:
// the zeroth second of the matching minute of an enabled alarm. Ticks
// arrive once per second, so the seconds guard makes the condition true
// exactly once per matching minute.
func (a *Alarm) MatchesTick(tv clock.TimeValue) bool {
	if a == nil || !a.Enabled {
		return false
	}

	return tv.RawHours == a.Hour() && tv.RawMinutes == a.Minute() && tv.RawSeconds == 0
}

// Clone returns a copy so callers cannot mutate trigger internals.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}
