package alarmctl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Haseeb-Arshad/chime/internal/config"
	"github.com/Haseeb-Arshad/chime/internal/domain/alarm"
	domain "github.com/Haseeb-Arshad/chime/internal/domain/clock"
	"github.com/Haseeb-Arshad/chime/internal/engine"
	"github.com/Haseeb-Arshad/chime/internal/logger"
	"github.com/Haseeb-Arshad/chime/internal/repository/kv"
	"github.com/Haseeb-Arshad/chime/internal/service/settings"
	"github.com/Haseeb-Arshad/chime/internal/trigger"
)

// Options locates the preference store for one-shot alarm commands.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// StateFile overrides the preference store path from configuration.
	StateFile string
}

// errNoAlarm is returned when an operation needs an alarm and none is set.
var errNoAlarm = errors.New("no alarm is set")

// Set validates timeStr and stores a fresh alarm wholesale, replacing any
// previous one. Returns the stored alarm.
func Set(ctx context.Context, opts *Options, timeStr string, enabled bool) (*alarm.Alarm, error) {
	ctx = logger.WithName(ctx, "chime-alarm")

	_, store, err := open(ctx, opts)
	if err != nil {
		return nil, err
	}

	created, err := alarm.New(timeStr, time.Now())
	if err != nil {
		return nil, err
	}

	created.Enabled = enabled

	if err := settings.SaveAlarm(store, created); err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Alarm saved", "time", created.Time, "enabled", created.Enabled)

	return created, nil
}

// Clear drops the persisted alarm. Clearing when none is set is fine.
func Clear(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "chime-alarm")

	_, store, err := open(ctx, opts)
	if err != nil {
		return err
	}

	if err := settings.RemoveAlarm(store); err != nil {
		return err
	}

	logger.Info(ctx, "Alarm cleared")

	return nil
}

// Toggle flips the persisted alarm's enabled flag and returns the updated
// alarm. Without a stored alarm it fails.
func Toggle(ctx context.Context, opts *Options, enabled bool) (*alarm.Alarm, error) {
	ctx = logger.WithName(ctx, "chime-alarm")

	_, store, err := open(ctx, opts)
	if err != nil {
		return nil, err
	}

	current, err := settings.LoadAlarm(store)
	if err != nil {
		return nil, err
	}

	if current == nil {
		return nil, errNoAlarm
	}

	current.Enabled = enabled

	if err := settings.SaveAlarm(store, current); err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Alarm toggled", "time", current.Time, "enabled", enabled)

	return current, nil
}

// StatusReport is the snapshot behind `chime alarm status`.
type StatusReport struct {
	// Now is the current time in the persisted timezone and format.
	Now domain.TimeValue
	// Timezone is the effective timezone id.
	Timezone string
	// Use24Hour reports the effective display format.
	Use24Hour bool
	// Theme is the effective widget theme.
	Theme string
	// Alarm is the persisted alarm, nil when none is set.
	Alarm *alarm.Alarm
}

// Status assembles the effective preferences and the current time the same
// way the daemon would see them: configuration first, persisted values on
// top.
func Status(ctx context.Context, opts *Options) (*StatusReport, error) {
	ctx = logger.WithName(ctx, "chime-alarm")

	cfg, store, err := open(ctx, opts)
	if err != nil {
		return nil, err
	}

	eng := engine.New(
		engine.WithTimezone(cfg.Timezone),
		engine.WithFormat24h(cfg.Use24Hour()),
	)
	trig := trigger.New()

	mirror := settings.NewService(store, eng, trig, cfg.Theme)
	mirror.Bind(ctx)

	defer mirror.Unbind()

	return &StatusReport{
		Now:       eng.Time(ctx),
		Timezone:  eng.Timezone(),
		Use24Hour: eng.Use24Hour(),
		Theme:     mirror.Theme(),
		Alarm:     trig.Alarm(),
	}, nil
}

// open loads configuration and opens the preference store behind it. A
// damaged store opens empty: the next write replaces the file.
func open(ctx context.Context, opts *Options) (*config.Config, kv.Store, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	if opts.StateFile != "" {
		cfg.StateFile = opts.StateFile
	}

	store, err := kv.NewFileStore(cfg.StateFile)
	if err != nil {
		logger.WarnKV(ctx, "Preference store is damaged, starting from defaults",
			"state_file", cfg.StateFile, "error", err)
	}

	return cfg, store, nil
}
