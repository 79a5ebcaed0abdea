package trigger

import (
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/Haseeb-Arshad/chime/internal/domain/alarm"
	domain "github.com/Haseeb-Arshad/chime/internal/domain/clock"
	"github.com/Haseeb-Arshad/chime/internal/events"
)

// Trigger holds zero or one alarm and detects the single tick it fires on.
// It never pulls time on its own: the caller feeds it the per-second
// snapshot and acts on the result.
type Trigger struct {
	// clock supplies creation timestamps; tests inject a fake.
	clock clockwork.Clock

	// mu protects alarm and playing.
	mu sync.Mutex
	// alarm is the single scheduled alarm, nil when none is set.
	alarm *alarm.Alarm
	// playing tracks the firing/playing phase.
	playing bool

	setFeed     *events.Feed[alarm.Alarm]
	clearedFeed *events.Feed[struct{}]
	toggledFeed *events.Feed[bool]
	playingFeed *events.Feed[bool]
}

// Option configures trigger behaviour.
type Option func(*Trigger)

// WithClock replaces the creation-timestamp source; tests pass a fake.
func WithClock(clock clockwork.Clock) Option {
	return func(t *Trigger) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// New creates an empty Trigger on the real clock.
func New(opts ...Option) *Trigger {
	t := &Trigger{
		clock:       clockwork.NewRealClock(),
		setFeed:     events.NewFeed[alarm.Alarm](),
		clearedFeed: events.NewFeed[struct{}](),
		toggledFeed: events.NewFeed[bool](),
		playingFeed: events.NewFeed[bool](),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Set validates timeStr and replaces any existing alarm wholesale with a
// fresh enabled one. Invalid input returns alarm.ErrInvalidFormat and
// leaves the prior alarm untouched. Publishes an alarm-set event and
// returns a copy of the new alarm.
func (t *Trigger) Set(timeStr string) (*alarm.Alarm, error) {
	created, err := alarm.New(timeStr, t.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("set alarm: %w", err)
	}

	t.mu.Lock()
	t.alarm = created
	t.mu.Unlock()

	t.setFeed.Publish(*created)

	return created.Clone(), nil
}

// Restore installs a previously persisted alarm after re-validation,
// without publishing: restoring is seeding, not a user action. Invalid
// persisted data is rejected and nothing is installed.
func (t *Trigger) Restore(restored *alarm.Alarm) error {
	if restored == nil {
		return nil
	}

	if err := restored.Validate(); err != nil {
		return fmt.Errorf("restore alarm: %w", err)
	}

	t.mu.Lock()
	t.alarm = restored.Clone()
	t.mu.Unlock()

	return nil
}

// Alarm returns a copy of the current alarm, or nil when none is set.
func (t *Trigger) Alarm() *alarm.Alarm {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.alarm.Clone()
}

// Clear drops the alarm and resets the playing phase. Idempotent; always
// publishes an alarm-cleared event so mirrors converge on the empty state.
func (t *Trigger) Clear() {
	t.mu.Lock()
	t.alarm = nil
	t.playing = false
	t.mu.Unlock()

	t.clearedFeed.Publish(struct{}{})
}

// Toggle flips the enabled flag and reports whether it applied. Without an
// alarm it is a no-op returning false. Publishes an alarm-toggled event
// when applied.
func (t *Trigger) Toggle(enabled bool) bool {
	t.mu.Lock()

	if t.alarm == nil {
		t.mu.Unlock()

		return false
	}

	t.alarm.Enabled = enabled
	t.mu.Unlock()

	t.toggledFeed.Publish(enabled)

	return true
}

// SetPlaying records the firing/playing phase and publishes a
// playing-changed event on transitions. The tick glue calls it with true
// when ShouldTrigger reports a match; acknowledging is the caller's move.
func (t *Trigger) SetPlaying(playing bool) {
	t.mu.Lock()
	changed := t.playing != playing
	t.playing = playing
	t.mu.Unlock()

	if changed {
		t.playingFeed.Publish(playing)
	}
}

// Playing reports whether the alarm is in its firing/playing phase.
func (t *Trigger) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.playing
}

// ShouldTrigger reports whether tv is the single tick the current alarm
// fires on. A missing or disabled alarm is simply false, not an error.
func (t *Trigger) ShouldTrigger(tv domain.TimeValue) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.alarm.MatchesTick(tv)
}

// OnSet registers fn for alarm replacements; the returned function cancels
// the subscription. Listeners run synchronously and must not block.
func (t *Trigger) OnSet(fn func(alarm.Alarm)) func() {
	return t.setFeed.Subscribe(fn)
}

// OnCleared registers fn for alarm removals.
func (t *Trigger) OnCleared(fn func()) func() {
	return t.clearedFeed.Subscribe(func(struct{}) { fn() })
}

// OnToggled registers fn for enabled-flag changes.
func (t *Trigger) OnToggled(fn func(bool)) func() {
	return t.toggledFeed.Subscribe(fn)
}

// OnPlayingChanged registers fn for playing-phase transitions.
func (t *Trigger) OnPlayingChanged(fn func(bool)) func() {
	return t.playingFeed.Subscribe(fn)
}
