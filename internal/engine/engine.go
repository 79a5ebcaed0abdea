package engine

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	domain "github.com/Haseeb-Arshad/chime/internal/domain/clock"
	"github.com/Haseeb-Arshad/chime/internal/events"
	"github.com/Haseeb-Arshad/chime/internal/logger"
	"github.com/Haseeb-Arshad/chime/internal/zone"
)

// Engine owns the authoritative time computation: drift-corrected reads of
// the injected clock, conversion into the selected timezone, 12/24-hour
// display fields, and the one-second tick scheduler that feeds listeners.
type Engine struct {
	// clock is the wall-clock source; tests inject a fake.
	clock clockwork.Clock
	// converter maps instants onto the selected timezone's wall clock.
	converter zone.Converter
	// syncInterval is the window between drift-correction syncs.
	syncInterval time.Duration

	// mu protects all fields below.
	mu sync.Mutex
	// timezone is zone.Local or an IANA identifier.
	timezone string
	// use24Hour selects 24-hour display fields.
	use24Hour bool
	// driftMS accumulates the correction added to every clock read.
	driftMS int64
	// lastSyncMS anchors the current drift-measurement window.
	lastSyncMS int64
	// state is the scheduler phase.
	state State
	// cancel stops the running scheduler, nil when stopped.
	cancel context.CancelFunc
	// done closes when the run loop has fully exited.
	done chan struct{}
	// warnedZones holds ids already reported as unresolvable, so a bad
	// timezone logs once instead of once per tick.
	warnedZones map[string]struct{}

	tickFeed     *events.Feed[domain.TimeValue]
	timezoneFeed *events.Feed[string]
	formatFeed   *events.Feed[bool]
}

// New creates an Engine on the real clock, the standard zone resolver, the
// local timezone, and 12-hour display. Options override each collaborator.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock:        clockwork.NewRealClock(),
		converter:    zone.NewResolver(),
		syncInterval: DefaultSyncInterval,
		timezone:     zone.Local,
		warnedZones:  make(map[string]struct{}),
		tickFeed:     events.NewFeed[domain.TimeValue](),
		timezoneFeed: events.NewFeed[string](),
		formatFeed:   events.NewFeed[bool](),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.lastSyncMS = e.clock.Now().UnixMilli()

	return e
}

// SetTimezone switches the display timezone to id, either zone.Local or an
// IANA identifier. Identifiers are not validated here: an unknown id
// degrades to local time at conversion, not to an error. Publishes a
// timezone-changed event; the next regular tick picks the zone up, no
// re-tick is forced.
func (e *Engine) SetTimezone(id string) {
	e.mu.Lock()
	e.timezone = id
	e.mu.Unlock()

	e.timezoneFeed.Publish(id)
}

// Timezone reports the currently selected timezone id.
func (e *Engine) Timezone() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.timezone
}

// SetFormat24h flips between 24-hour and 12-hour display fields and
// publishes a format-changed event.
func (e *Engine) SetFormat24h(use24Hour bool) {
	e.mu.Lock()
	e.use24Hour = use24Hour
	e.mu.Unlock()

	e.formatFeed.Publish(use24Hour)
}

// Use24Hour reports whether 24-hour display is selected.
func (e *Engine) Use24Hour() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.use24Hour
}

// Time returns the current drift-corrected time converted into the
// selected timezone. The same computation backs the scheduler's ticks.
func (e *Engine) Time(ctx context.Context) domain.TimeValue {
	return e.timeValueAt(ctx, e.clock.Now())
}

// HandAngles returns analog hand positions for the current time.
func (e *Engine) HandAngles(ctx context.Context) domain.HandAngles {
	return e.Time(ctx).HandAngles()
}

// DriftCorrection reports the accumulated clock-source correction applied
// to every time read.
func (e *Engine) DriftCorrection() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	return time.Duration(e.driftMS) * time.Millisecond
}

// OnTick registers fn to receive the per-second time snapshot. Listeners
// run synchronously on the scheduler goroutine and must not block; the
// returned function cancels the subscription.
func (e *Engine) OnTick(fn func(domain.TimeValue)) func() {
	return e.tickFeed.Subscribe(fn)
}

// OnTimezoneChanged registers fn for timezone changes.
func (e *Engine) OnTimezoneChanged(fn func(string)) func() {
	return e.timezoneFeed.Subscribe(fn)
}

// OnFormatChanged registers fn for 12/24-hour format changes.
func (e *Engine) OnFormatChanged(fn func(bool)) func() {
	return e.formatFeed.Subscribe(fn)
}

// timeValueAt builds the display snapshot for the given raw clock reading:
// drift correction, zone conversion, then field derivation. Conversion
// failures degrade to local time and are logged once per offending id.
func (e *Engine) timeValueAt(ctx context.Context, rawNow time.Time) domain.TimeValue {
	e.mu.Lock()
	corrected := rawNow.Add(time.Duration(e.driftMS) * time.Millisecond)
	timezone := e.timezone
	use24Hour := e.use24Hour
	e.mu.Unlock()

	zoned, err := e.converter.Convert(corrected, timezone)
	if err != nil {
		e.warnZone(ctx, timezone, err)
	}

	return domain.NewTimeValue(zoned, use24Hour)
}

// warnZone logs a conversion failure the first time each id fails.
func (e *Engine) warnZone(ctx context.Context, id string, err error) {
	e.mu.Lock()
	_, seen := e.warnedZones[id]

	if !seen {
		e.warnedZones[id] = struct{}{}
	}
	e.mu.Unlock()

	if seen {
		return
	}

	logger.WarnKV(ctx, "Timezone conversion degraded", "timezone", id, "error", err)
}
