// Package ports defines the interfaces between the engine and its
// collaborators: snapshot persistence, desktop notifications and the render
// surface. The engine is the single writer of application state; everything
// behind these interfaces either stores it, displays it, or alerts on it.
package ports

import (
	"context"

	"github.com/rolldo-dev/rolldo/internal/domain"
)

// StateStore persists the single most-recent snapshot.
// This is a driven port (implemented by adapters).
type StateStore interface {
	// Load returns the stored snapshot, or the fresh default state when no
	// snapshot exists or the stored one cannot be decoded. Load never fails.
	Load() domain.AppState

	// Save overwrites the snapshot.
	Save(state domain.AppState) error
}

// Urgency tags a notification for the underlying desktop notifier.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notifier delivers fire-and-forget user alerts. Implementations must never
// block the caller or propagate failures.
type Notifier interface {
	Notify(title, message string, urgency Urgency)
}

// RenderSurface receives state updates from the engine and redraws.
// It sends nothing back into the engine; user intents arrive separately as
// pre-parsed commands on the engine API.
type RenderSurface interface {
	// RollFrame highlights one position during a selection sweep.
	RollFrame(index int)

	// RollSettled marks the final position of a sweep.
	RollSettled(index int)

	// TimerTicked delivers the snapshot after a one-second decrement.
	TimerTicked(state domain.AppState)

	// StateChanged delivers the snapshot after any other transition
	// (start, pause, resume, reset, task edit).
	StateChanged(state domain.AppState)
}

// Confirmer asks the user a yes/no question and blocks until answered or the
// context is cancelled. Cancellation counts as a rejection.
type Confirmer interface {
	Confirm(ctx context.Context, title, detail string) bool
}
