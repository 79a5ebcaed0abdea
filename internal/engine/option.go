package engine

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Haseeb-Arshad/chime/internal/zone"
)

// Option configures engine behaviour.
type Option func(*Engine)

// WithClock replaces the wall-clock source; tests pass a fake clock.
func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithConverter replaces the timezone converter.
func WithConverter(converter zone.Converter) Option {
	return func(e *Engine) {
		if converter != nil {
			e.converter = converter
		}
	}
}

// WithTimezone sets the initial timezone id.
func WithTimezone(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.timezone = id
		}
	}
}

// WithFormat24h sets the initial 12/24-hour display mode.
func WithFormat24h(use24Hour bool) Option {
	return func(e *Engine) {
		e.use24Hour = use24Hour
	}
}

// WithSyncInterval overrides the drift-correction sync window.
func WithSyncInterval(interval time.Duration) Option {
	return func(e *Engine) {
		if interval > 0 {
			e.syncInterval = interval
		}
	}
}
