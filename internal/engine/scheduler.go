package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Haseeb-Arshad/chime/internal/logger"
)

// State is the scheduler phase.
type State int32

// Scheduler phases: Stopped before Start and after Stop, Scheduled while
// waiting for the next second boundary, Ticking while listeners run.
const (
	StateStopped State = iota
	StateScheduled
	StateTicking
)

// String returns the lowercase phase name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateScheduled:
		return "scheduled"
	case StateTicking:
		return "ticking"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// millisPerSecond is the tick cadence the scheduler aligns to.
const millisPerSecond = 1000

// DefaultSyncInterval is the window between drift-correction syncs.
const DefaultSyncInterval = time.Minute

// errAlreadyRunning is returned when Start is called on a running scheduler.
var errAlreadyRunning = errors.New("scheduler is already running")

// Start launches the tick scheduler on its own goroutine. The first tick
// fires at the next wall-clock second boundary. Canceling ctx or calling
// Stop shuts the scheduler down.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()

	if e.state != StateStopped {
		e.mu.Unlock()

		return errAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)

	e.cancel = cancel
	e.done = make(chan struct{})
	e.state = StateScheduled

	// A fresh drift window: time spent between New and Start is not drift.
	e.lastSyncMS = e.clock.Now().UnixMilli()

	done := e.done

	e.mu.Unlock()

	go e.run(runCtx, done)

	return nil
}

// Stop cancels the scheduler and waits until the run loop has exited, so
// no tick is delivered after it returns. Idempotent, safe when not running.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	done := e.done
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	if done != nil {
		<-done
	}
}

// State reports the scheduler phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// run is the scheduler loop: wait for the next second boundary, tick,
// rearm. Each delay is computed fresh from the clock so per-call jitter
// never compounds across ticks.
func (e *Engine) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	timer := e.clock.NewTimer(e.nextDelay())
	defer timer.Stop()

	logger.Debug(ctx, "Tick scheduler started")

	for {
		select {
		case <-ctx.Done():
			e.setState(StateStopped)
			logger.Debug(ctx, "Tick scheduler stopped")

			return
		case <-timer.Chan():
			// A timer that fired alongside cancellation is not honored;
			// the next iteration takes the ctx.Done branch.
			if ctx.Err() != nil {
				continue
			}

			e.setState(StateTicking)
			e.tick(ctx)
			e.setState(StateScheduled)

			timer.Reset(e.nextDelay())
		}
	}
}

// nextDelay returns the time remaining until the next wall-clock second
// boundary, at most one full second.
func (e *Engine) nextDelay() time.Duration {
	remainder := e.clock.Now().UnixMilli() % millisPerSecond

	return time.Duration(millisPerSecond-remainder) * time.Millisecond
}

// tick advances drift correction, then computes one snapshot and hands the
// same value to every listener.
func (e *Engine) tick(ctx context.Context) {
	rawNow := e.clock.Now()

	e.syncDrift(ctx, rawNow)

	e.tickFeed.Publish(e.timeValueAt(ctx, rawNow))
}

// syncDrift folds clock-source drift into the correction offset once per
// sync window. The scheduler absorbs its own per-call jitter; this catches
// jumps it cannot see, such as NTP slew or a sleep/resume gap.
func (e *Engine) syncDrift(ctx context.Context, rawNow time.Time) {
	rawMS := rawNow.UnixMilli()

	e.mu.Lock()

	window := e.syncInterval.Milliseconds()
	elapsed := rawMS - e.lastSyncMS

	if elapsed < window {
		e.mu.Unlock()

		return
	}

	correction := window - elapsed
	e.driftMS += correction
	e.lastSyncMS = rawMS
	total := e.driftMS

	e.mu.Unlock()

	if correction == 0 {
		return
	}

	logger.DebugKV(ctx, "Drift correction applied",
		"correction_ms", correction,
		"total_correction_ms", total,
	)
}

// setState records the scheduler phase.
func (e *Engine) setState(state State) {
	e.mu.Lock()
	e.state = state
	e.mu.Unlock()
}
