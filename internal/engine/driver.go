package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rolldo-dev/rolldo/internal/ports"
)

// startDriver launches the tick loop. The caller must not hold the lock.
func (e *Engine) startDriver() {
	e.stopDriver()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	e.mu.Lock()
	e.timerCancel = cancel
	e.timerDone = done
	e.mu.Unlock()

	go e.runTimer(ctx, done)
}

// stopDriver cancels the tick loop and waits for it to exit. Cancellation
// takes effect at the next suspension point, so the wait is bounded by one
// tick interval.
func (e *Engine) stopDriver() {
	e.mu.Lock()
	cancel := e.timerCancel
	done := e.timerDone
	e.timerCancel = nil
	e.timerDone = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// runTimer is the countdown loop: sleep one interval, decrement, redraw,
// warn at the ten-percent threshold, persist. It exits when the timer stops
// running or runs out; only a natural expiry reaches the completion path.
func (e *Engine) runTimer(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		e.mu.Lock()
		active := e.state.Timer.Running && e.state.Timer.RemainingSeconds > 0
		e.mu.Unlock()
		if !active {
			break
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(e.tickInterval):
		}

		e.mu.Lock()
		e.state.Timer.Tick()
		warn := e.state.Timer.ShouldWarnTenPercent() && !e.state.Timer.WarnedTenPercent
		if warn {
			e.state.Timer.WarnedTenPercent = true
		}
		snap := e.state
		e.mu.Unlock()

		e.surface.TimerTicked(snap)
		if warn {
			e.notifyTenPercent(snap.Timer.RemainingSeconds, snap.Timer.IsBreak)
		}
		e.persist(snap)
	}

	if ctx.Err() != nil {
		return
	}

	e.mu.Lock()
	finished := e.state.Timer.IsFinished()
	wasBreak := e.state.Timer.IsBreak
	var snap = e.state
	if finished {
		e.state.Timer.Reset()
		snap = e.state
	}
	e.mu.Unlock()

	if !finished {
		return
	}

	e.notifyFinished(wasBreak)
	e.surface.StateChanged(snap)
	e.persist(snap)
}

// notifyTenPercent fires the one-time warning that the countdown entered its
// final ten percent.
func (e *Engine) notifyTenPercent(remainingSeconds int, isBreak bool) {
	what := "task"
	if isBreak {
		what = "break"
	}
	e.notifier.Notify(
		"⏳ Almost there",
		fmt.Sprintf("%ds left on your %s", remainingSeconds, what),
		ports.UrgencyNormal,
	)
}

// notifyFinished fires the natural-expiry notification.
func (e *Engine) notifyFinished(wasBreak bool) {
	if wasBreak {
		e.notifier.Notify("⏰ Break's over!", "Ready to roll again?", ports.UrgencyCritical)
		return
	}
	e.notifier.Notify("⏰ Time's up!", "Mark the task complete or roll again", ports.UrgencyCritical)
}
