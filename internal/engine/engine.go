// Package engine drives the roll-and-countdown flow. It owns the single
// mutable AppState: every transition happens under the engine's lock, the
// render surface only ever sees copies, and at most one roll or one timer
// loop is in flight at a time.
package engine

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rolldo-dev/rolldo/internal/animation"
	"github.com/rolldo-dev/rolldo/internal/domain"
	"github.com/rolldo-dev/rolldo/internal/ports"
)

// Engine coordinates state transitions between the store, the notifier and
// the render surface.
type Engine struct {
	mu       sync.Mutex
	state    domain.AppState
	store    ports.StateStore
	notifier ports.Notifier
	surface  ports.RenderSurface
	confirm  ports.Confirmer

	sweepCfg     animation.SweepConfig
	tickInterval time.Duration

	rolling     bool
	timerCancel context.CancelFunc
	timerDone   chan struct{}
}

// New creates an engine around an initial snapshot.
func New(state domain.AppState, store ports.StateStore, notifier ports.Notifier) *Engine {
	return &Engine{
		state:        state,
		store:        store,
		notifier:     notifier,
		sweepCfg:     animation.DefaultSweepConfig(),
		tickInterval: time.Second,
	}
}

// SetSurface attaches the render surface. Must be called before any flow
// starts.
func (e *Engine) SetSurface(surface ports.RenderSurface) {
	e.surface = surface
}

// SetConfirmer attaches the confirmation prompt used by the roll flow.
func (e *Engine) SetConfirmer(confirm ports.Confirmer) {
	e.confirm = confirm
}

// SetSweepConfig overrides the sweep animation tuning.
func (e *Engine) SetSweepConfig(cfg animation.SweepConfig) {
	e.sweepCfg = cfg
}

// SetTickInterval overrides the one-second tick, for tests.
func (e *Engine) SetTickInterval(d time.Duration) {
	e.tickInterval = d
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() domain.AppState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// EditTask replaces the text of one task slot and persists.
func (e *Engine) EditTask(index int, text string) error {
	if index < 0 || index >= domain.MaxTasks {
		return domain.ErrTaskIndexOutOfRange
	}
	e.mu.Lock()
	e.state.Tasks[index].SetText(text)
	snap := e.state
	e.mu.Unlock()

	e.surface.StateChanged(snap)
	e.persist(snap)
	return nil
}

// ToggleComplete flips the completed flag of the timer's active task.
func (e *Engine) ToggleComplete() error {
	e.mu.Lock()
	idx := e.state.Timer.TaskIndex
	if idx == nil {
		e.mu.Unlock()
		return domain.ErrNoActiveTask
	}
	e.state.Tasks[*idx].Toggle()
	snap := e.state
	e.mu.Unlock()

	e.surface.StateChanged(snap)
	e.persist(snap)
	return nil
}

// TogglePause pauses a running countdown or resumes a paused one.
func (e *Engine) TogglePause() error {
	e.mu.Lock()
	switch {
	case e.state.Timer.Running:
		e.state.Timer.Pause()
		snap := e.state
		e.mu.Unlock()
		e.stopDriver()
		e.surface.StateChanged(snap)
		e.persist(snap)
	case e.state.Timer.RemainingSeconds > 0:
		e.state.Timer.Resume()
		snap := e.state
		e.mu.Unlock()
		e.startDriver()
		e.surface.StateChanged(snap)
		e.persist(snap)
	default:
		e.mu.Unlock()
		return domain.ErrNoTimerToToggle
	}
	return nil
}

// EndTimer cancels the countdown manually. The completion notification never
// fires on this path.
func (e *Engine) EndTimer() {
	e.stopDriver()

	e.mu.Lock()
	e.state.Timer.Reset()
	snap := e.state
	e.mu.Unlock()

	e.surface.StateChanged(snap)
	e.persist(snap)
}

// ResumeFromSnapshot restarts the timer loop for a snapshot that was
// persisted mid-countdown.
func (e *Engine) ResumeFromSnapshot() {
	e.mu.Lock()
	running := e.state.Timer.Running && e.state.Timer.RemainingSeconds > 0
	e.mu.Unlock()
	if running {
		e.startDriver()
	}
}

// Close stops any running flow and persists the final snapshot.
func (e *Engine) Close() {
	e.stopDriver()
	e.persist(e.Snapshot())
}

// startTimer initializes the countdown and launches the tick loop.
func (e *Engine) startTimer(taskIndex *int, durationMinutes int, isBreak bool) {
	e.mu.Lock()
	e.state.Timer.Start(taskIndex, durationMinutes, isBreak)
	snap := e.state
	e.mu.Unlock()

	e.surface.StateChanged(snap)
	e.persist(snap)
	e.startDriver()
}

// persist writes the snapshot; failures degrade to a stderr warning.
func (e *Engine) persist(snap domain.AppState) {
	if err := e.store.Save(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save state: %v\n", err)
	}
}
