// Package domain contains the core entities for Rolldo.
// These entities represent the task slots and the countdown state machine
// and are independent of any external frameworks or infrastructure.
package domain

import "errors"

// Common domain errors.
var (
	ErrTaskIndexOutOfRange = errors.New("task index out of range")
	ErrFlowActive          = errors.New("a roll or timer is already active")
	ErrNoIncompleteTasks   = errors.New("no incomplete tasks to roll for")
	ErrNoActiveTask        = errors.New("no active task to complete")
	ErrNoTimerToToggle     = errors.New("roll for time first")
)

const (
	// MaxTasks is the fixed number of task slots. The slot index is the
	// task's identity; slots are never created or destroyed.
	MaxTasks = 6

	// TaskCharLimit is the maximum length of a task's text in runes.
	TaskCharLimit = 60
)

// Task is one of the six fixed task slots.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// SetText replaces the task text, truncating to TaskCharLimit runes.
func (t *Task) SetText(text string) {
	runes := []rune(text)
	if len(runes) > TaskCharLimit {
		runes = runes[:TaskCharLimit]
	}
	t.Text = string(runes)
}

// Toggle flips the completed flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// Clear resets the slot to empty. Slots are reset, never removed.
func (t *Task) Clear() {
	t.Text = ""
	t.Completed = false
}

// IsIncomplete reports whether the slot holds unfinished work.
func (t *Task) IsIncomplete() bool {
	return t.Text != "" && !t.Completed
}
