package domain

import "time"

// TimerState is the countdown state machine. States are Idle, Running and
// Paused; Running returns to Idle either through Reset or natural expiry.
// TaskIndex is nil exactly when the countdown is a break.
type TimerState struct {
	TaskIndex        *int       `json:"task_index"`
	DurationSeconds  int        `json:"duration_seconds"`
	RemainingSeconds int        `json:"remaining_seconds"`
	IsBreak          bool       `json:"is_break"`
	Running          bool       `json:"running"`
	StartedAt        *time.Time `json:"start_time"`
	WarnedTenPercent bool       `json:"warned_ten_percent"`
}

// Start initializes the countdown from scratch. Valid from any state; a
// running timer is overwritten. Callers enforce durationMinutes > 0; a zero
// duration yields a timer that is already finished.
func (s *TimerState) Start(taskIndex *int, durationMinutes int, isBreak bool) {
	s.TaskIndex = taskIndex
	s.DurationSeconds = durationMinutes * 60
	s.RemainingSeconds = s.DurationSeconds
	s.IsBreak = isBreak
	s.Running = true
	s.WarnedTenPercent = false
	now := time.Now()
	s.StartedAt = &now
}

// Pause stops the countdown without touching the remaining time.
// No-op if already paused or idle.
func (s *TimerState) Pause() {
	s.Running = false
}

// Resume continues a paused countdown. An exhausted timer cannot be resumed.
func (s *TimerState) Resume() {
	if s.RemainingSeconds > 0 {
		s.Running = true
		now := time.Now()
		s.StartedAt = &now
	}
}

// Tick advances the countdown by one second. No-op unless running with time
// left, so repeated calls on an idle or exhausted timer are harmless.
func (s *TimerState) Tick() {
	if s.Running && s.RemainingSeconds > 0 {
		s.RemainingSeconds--
	}
}

// IsFinished reports whether no time remains. This is true both for a timer
// that never started and one that expired; callers distinguish the two via
// Running and TaskIndex.
func (s *TimerState) IsFinished() bool {
	return s.RemainingSeconds <= 0
}

// WarnThresholdSeconds is the remaining time at which the ten-percent
// warning fires, ceil(duration / 10) in whole seconds.
func (s *TimerState) WarnThresholdSeconds() int {
	return (s.DurationSeconds + 9) / 10
}

// ShouldWarnTenPercent reports whether the countdown is inside the final ten
// percent of its duration. The caller pairs this with WarnedTenPercent to
// fire the warning exactly once per run.
func (s *TimerState) ShouldWarnTenPercent() bool {
	return s.Running && s.RemainingSeconds > 0 && s.RemainingSeconds <= s.WarnThresholdSeconds()
}

// Reset returns the timer to the Idle defaults.
func (s *TimerState) Reset() {
	s.TaskIndex = nil
	s.DurationSeconds = 0
	s.RemainingSeconds = 0
	s.IsBreak = false
	s.Running = false
	s.StartedAt = nil
	s.WarnedTenPercent = false
}
