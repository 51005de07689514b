package domain

// AppState is the entire persisted snapshot: six task slots plus the timer.
// It is a value type; the engine owns the single mutable instance and hands
// copies to the render surface.
type AppState struct {
	Tasks [MaxTasks]Task `json:"tasks"`
	Timer TimerState     `json:"timer"`
}

// NewAppState returns the fresh default state: six empty slots, idle timer.
func NewAppState() AppState {
	return AppState{}
}

// IncompleteTaskIndices returns the slot indices eligible for a task roll:
// non-empty text and not completed, in slot order.
func (s *AppState) IncompleteTaskIndices() []int {
	var indices []int
	for i := range s.Tasks {
		if s.Tasks[i].IsIncomplete() {
			indices = append(indices, i)
		}
	}
	return indices
}

// Validate checks the structural invariants the snapshot must satisfy.
// A snapshot that fails validation is discarded wholesale on load.
func (s *AppState) Validate() bool {
	for i := range s.Tasks {
		if len([]rune(s.Tasks[i].Text)) > TaskCharLimit {
			return false
		}
	}
	t := &s.Timer
	if t.DurationSeconds < 0 || t.RemainingSeconds < 0 {
		return false
	}
	if t.RemainingSeconds > t.DurationSeconds {
		return false
	}
	if t.TaskIndex != nil && (*t.TaskIndex < 0 || *t.TaskIndex >= MaxTasks) {
		return false
	}
	return true
}
