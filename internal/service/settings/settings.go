package settings

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/Haseeb-Arshad/chime/internal/config"
	"github.com/Haseeb-Arshad/chime/internal/domain/alarm"
	"github.com/Haseeb-Arshad/chime/internal/engine"
	"github.com/Haseeb-Arshad/chime/internal/logger"
	"github.com/Haseeb-Arshad/chime/internal/repository/kv"
	"github.com/Haseeb-Arshad/chime/internal/trigger"
)

// Storage keys, mirroring the widget's localStorage names.
const (
	// KeyTimezone holds the selected timezone id.
	KeyTimezone = "clock.timezone"
	// KeyUse24Hour holds "true" or "false" for the display format.
	KeyUse24Hour = "clock.use24hour"
	// KeyTheme holds the widget theme name.
	KeyTheme = "clock.theme"
	// KeyAlarm holds the alarm as a JSON object.
	KeyAlarm = "clock.alarm"
)

// Service mirrors clock and alarm preferences into the key-value store:
// persisted values seed the core at bind time, and core events write back.
// Store failures are logged and swallowed, so the core keeps working from
// in-memory state even without persistence.
type Service struct {
	// store is the preference backend.
	store kv.Store
	// engine receives the seeded timezone and format.
	engine *engine.Engine
	// trigger receives the restored alarm.
	trigger *trigger.Trigger

	// mu protects theme.
	mu sync.Mutex
	// theme is the mirrored widget theme, display-only.
	theme string

	// cancels tears down the feed subscriptions on Unbind.
	cancels []func()
}

// NewService creates a mirror between the store and the given core
// components, starting from initialTheme (empty means the default theme).
// Call Bind to activate it.
func NewService(store kv.Store, eng *engine.Engine, trig *trigger.Trigger, initialTheme string) *Service {
	if initialTheme == "" {
		initialTheme = config.ThemeDark
	}

	return &Service{
		store:   store,
		engine:  eng,
		trigger: trig,
		theme:   initialTheme,
	}
}

// Bind seeds the core from persisted values, then subscribes to the core's
// feeds so later changes write back. Seeding happens before subscribing,
// so restored values are not immediately re-persisted.
func (s *Service) Bind(ctx context.Context) {
	s.seed(ctx)
	s.subscribe(ctx)
}

// Unbind cancels the write-back subscriptions. Idempotent.
func (s *Service) Unbind() {
	for _, cancel := range s.cancels {
		cancel()
	}

	s.cancels = nil
}

// Theme returns the mirrored widget theme.
func (s *Service) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.theme
}

// SetTheme records and persists the widget theme. The theme has no core
// behavior; it is carried for the widget chrome alone.
func (s *Service) SetTheme(ctx context.Context, theme string) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()

	s.persist(ctx, KeyTheme, theme)
}

// seed pushes persisted values into the core. Missing keys keep defaults;
// corrupt values are logged, removed, and replaced by defaults.
func (s *Service) seed(ctx context.Context) {
	if timezone, ok := s.lookup(ctx, KeyTimezone); ok && timezone != "" {
		s.engine.SetTimezone(timezone)
	}

	if raw, ok := s.lookup(ctx, KeyUse24Hour); ok {
		use24Hour, err := strconv.ParseBool(raw)
		if err != nil {
			s.dropCorrupt(ctx, KeyUse24Hour, err)
		} else {
			s.engine.SetFormat24h(use24Hour)
		}
	}

	if theme, ok := s.lookup(ctx, KeyTheme); ok && theme != "" {
		s.mu.Lock()
		s.theme = theme
		s.mu.Unlock()
	}

	s.seedAlarm(ctx)
}

// seedAlarm restores the persisted alarm, dropping it when the JSON or the
// alarm itself no longer validates.
func (s *Service) seedAlarm(ctx context.Context) {
	stored, err := LoadAlarm(s.store)
	if err != nil {
		s.dropCorrupt(ctx, KeyAlarm, err)

		return
	}

	if stored == nil {
		return
	}

	if err := s.trigger.Restore(stored); err != nil {
		s.dropCorrupt(ctx, KeyAlarm, err)

		return
	}

	logger.InfoKV(ctx, "Alarm restored", "time", stored.Time, "enabled", stored.Enabled)
}

// subscribe wires core feeds to store writes.
func (s *Service) subscribe(ctx context.Context) {
	s.cancels = append(s.cancels,
		s.engine.OnTimezoneChanged(func(id string) {
			s.persist(ctx, KeyTimezone, id)
		}),
		s.engine.OnFormatChanged(func(use24Hour bool) {
			s.persist(ctx, KeyUse24Hour, strconv.FormatBool(use24Hour))
		}),
		s.trigger.OnSet(func(a alarm.Alarm) {
			s.persistAlarm(ctx, &a)
		}),
		s.trigger.OnCleared(func() {
			if err := RemoveAlarm(s.store); err != nil {
				logger.WarnKV(ctx, "Removing alarm failed", "error", err)
			}
		}),
		s.trigger.OnToggled(func(bool) {
			// The feed carries only the flag; persist the whole alarm.
			if current := s.trigger.Alarm(); current != nil {
				s.persistAlarm(ctx, current)
			}
		}),
	)
}

// lookup reads key from the store, reporting whether a value exists.
func (s *Service) lookup(ctx context.Context, key string) (string, bool) {
	value, err := s.store.Get(key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			logger.WarnKV(ctx, "Reading preference failed", "key", key, "error", err)
		}

		return "", false
	}

	return value, true
}

// persist writes key=value, logging instead of failing.
func (s *Service) persist(ctx context.Context, key, value string) {
	if err := s.store.Set(key, value); err != nil {
		logger.WarnKV(ctx, "Persisting preference failed", "key", key, "error", err)
	}
}

// persistAlarm writes the alarm JSON under its key.
func (s *Service) persistAlarm(ctx context.Context, a *alarm.Alarm) {
	if err := SaveAlarm(s.store, a); err != nil {
		logger.WarnKV(ctx, "Persisting alarm failed", "error", err)
	}
}

// dropCorrupt logs and removes a value that no longer parses.
func (s *Service) dropCorrupt(ctx context.Context, key string, err error) {
	logger.WarnKV(ctx, "Stored preference is corrupt, dropping it", "key", key, "error", err)

	if err := s.store.Remove(key); err != nil {
		logger.WarnKV(ctx, "Removing preference failed", "key", key, "error", err)
	}
}
