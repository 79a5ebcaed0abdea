package daemon

import (
	"context"
	"errors"
	"fmt"

	"github.com/Haseeb-Arshad/chime/internal/config"
	"github.com/Haseeb-Arshad/chime/internal/domain/alarm"
	domain "github.com/Haseeb-Arshad/chime/internal/domain/clock"
	"github.com/Haseeb-Arshad/chime/internal/engine"
	"github.com/Haseeb-Arshad/chime/internal/logger"
	"github.com/Haseeb-Arshad/chime/internal/repository/kv"
	"github.com/Haseeb-Arshad/chime/internal/service/settings"
	"github.com/Haseeb-Arshad/chime/internal/trigger"
)

// Options controls the clock daemon process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// StateFile overrides the preference store path from configuration.
	StateFile string
	// Timezone overrides the persisted timezone at startup.
	Timezone string
	// TimeFormat overrides the persisted display format, "12h" or "24h".
	TimeFormat string
	// LogLevel overrides the configured log level.
	LogLevel string
}

// errUnknownTimeFormat rejects format overrides other than 12h/24h.
var errUnknownTimeFormat = errors.New(`time format must be "12h" or "24h"`)

// Run wires the clock engine, alarm trigger, and settings mirror together,
// then ticks until ctx is canceled. Preference precedence is configuration,
// then persisted store values, then explicit option overrides.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "chime")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logLevel := cfg.LogLevel
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}

	if level, ok := logger.ParseLogLevel(logLevel); ok {
		logger.SetLevel(level)
	} else {
		logger.WarnKV(ctx, "Unknown log level, keeping the current one", "log_level", logLevel)
	}

	if opts.StateFile != "" {
		cfg.StateFile = opts.StateFile
	}

	// A broken state file is not fatal: the store opens empty and the next
	// write replaces the file.
	store, err := kv.NewFileStore(cfg.StateFile)
	if err != nil {
		logger.WarnKV(ctx, "Preference store is damaged, starting from defaults",
			"state_file", cfg.StateFile, "error", err)
	}

	eng := engine.New(
		engine.WithTimezone(cfg.Timezone),
		engine.WithFormat24h(cfg.Use24Hour()),
	)
	trig := trigger.New()

	mirror := settings.NewService(store, eng, trig, cfg.Theme)
	mirror.Bind(ctx)

	defer mirror.Unbind()

	unsubscribe := subscribe(ctx, eng, trig)
	defer unsubscribe()

	if err = applyOverrides(eng, opts); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Clock daemon starting",
		"timezone", eng.Timezone(),
		"format", formatName(eng.Use24Hour()),
		"state_file", cfg.StateFile,
		"alarm", alarmSummary(trig.Alarm()),
	)

	if err = eng.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	<-ctx.Done()

	eng.Stop()
	logger.Info(ctx, "Clock daemon stopped")

	return nil
}

// applyOverrides pushes option overrides into the engine after the mirror
// seeded it, so flags win over persisted values and are themselves
// persisted and logged.
func applyOverrides(eng *engine.Engine, opts *Options) error {
	if opts.Timezone != "" {
		eng.SetTimezone(opts.Timezone)
	}

	switch opts.TimeFormat {
	case "":
	case config.Format24Hour:
		eng.SetFormat24h(true)
	case config.Format12Hour:
		eng.SetFormat24h(false)
	default:
		return fmt.Errorf("%w: %q", errUnknownTimeFormat, opts.TimeFormat)
	}

	return nil
}

// subscribe attaches the daemon's observers: the tick glue that fires the
// alarm, plus a log line for every preference and alarm event. Returns a
// function tearing all subscriptions down.
func subscribe(ctx context.Context, eng *engine.Engine, trig *trigger.Trigger) func() {
	cancels := []func(){
		eng.OnTick(func(tv domain.TimeValue) {
			logger.DebugKV(ctx, "Tick", "time", tv.String())

			if trig.ShouldTrigger(tv) {
				trig.SetPlaying(true)
				logger.InfoKV(ctx, "Alarm fired", "time", tv.String())
			}
		}),
		eng.OnTimezoneChanged(func(id string) {
			logger.InfoKV(ctx, "Timezone changed", "timezone", id)
		}),
		eng.OnFormatChanged(func(use24Hour bool) {
			logger.InfoKV(ctx, "Time format changed", "format", formatName(use24Hour))
		}),
		trig.OnSet(func(a alarm.Alarm) {
			logger.InfoKV(ctx, "Alarm set", "time", a.Time, "id", a.ID)
		}),
		trig.OnCleared(func() {
			logger.Info(ctx, "Alarm cleared")
		}),
		trig.OnToggled(func(enabled bool) {
			logger.InfoKV(ctx, "Alarm toggled", "enabled", enabled)
		}),
		trig.OnPlayingChanged(func(playing bool) {
			logger.InfoKV(ctx, "Alarm playing state changed", "playing", playing)
		}),
	}

	return func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}

// formatName renders the display-format flag as its config value.
func formatName(use24Hour bool) string {
	if use24Hour {
		return config.Format24Hour
	}

	return config.Format12Hour
}

// alarmSummary renders the alarm for the startup log line.
func alarmSummary(a *alarm.Alarm) string {
	switch {
	case a == nil:
		return "none"
	case !a.Enabled:
		return a.Time + " (disabled)"
	default:
		return a.Time
	}
}
