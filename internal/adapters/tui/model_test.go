package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolldo-dev/rolldo/internal/config"
	"github.com/rolldo-dev/rolldo/internal/domain"
)

func newTestModel() Model {
	return NewModel(nil, config.DefaultThemeConfig(), domain.NewAppState())
}

func TestStatusForErr(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrFlowActive, "A roll or timer is already active"},
		{domain.ErrNoIncompleteTasks, "No incomplete tasks to roll for!"},
		{domain.ErrNoActiveTask, "No active task to complete"},
		{domain.ErrNoTimerToToggle, "Roll for time first (press R)"},
	}
	for _, tt := range tests {
		if got := statusForErr(tt.err); got != tt.want {
			t.Errorf("statusForErr(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestDiceFace(t *testing.T) {
	for v := 1; v <= 6; v++ {
		if diceFace(v) == "" {
			t.Errorf("diceFace(%d) is empty", v)
		}
	}
	if diceFace(0) != diceFace(1) {
		t.Error("out-of-range value does not fall back to face 1")
	}
	if diceFace(3) == diceFace(5) {
		t.Error("distinct values render the same face")
	}
}

func TestRenderClock(t *testing.T) {
	out := renderClock(754)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("clock has %d rows, want 5", len(lines))
	}
	for i := 1; i < len(lines); i++ {
		if len([]rune(lines[i])) != len([]rune(lines[0])) {
			t.Errorf("row %d width differs from row 0", i)
		}
	}
	if renderClock(754) == renderClock(0) {
		t.Error("different times render the same clock")
	}
}

func TestUpdate_RollFrames(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(rollFrameMsg{index: 3})
	m = next.(Model)
	if !m.rolling || m.settled {
		t.Errorf("rolling = %v, settled = %v after frame, want true/false", m.rolling, m.settled)
	}
	if m.diceValue != 4 {
		t.Errorf("dice value = %d, want 4", m.diceValue)
	}

	offset := m.rollOffset
	next, _ = m.Update(rollFrameMsg{index: 0})
	m = next.(Model)
	if m.rollOffset != offset+1 {
		t.Error("roll offset did not advance with the frame")
	}

	next, _ = m.Update(rollSettledMsg{index: 5})
	m = next.(Model)
	if m.rolling || !m.settled {
		t.Errorf("rolling = %v, settled = %v after settle, want false/true", m.rolling, m.settled)
	}
	if m.diceValue != 6 {
		t.Errorf("dice value = %d, want 6", m.diceValue)
	}
}

func TestUpdate_StatusMsg(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(statusMsg{text: "No incomplete tasks to roll for!"})
	m = next.(Model)
	if m.status != "No incomplete tasks to roll for!" {
		t.Errorf("status = %q", m.status)
	}
}

func TestUpdate_FreshStartTriggersFill(t *testing.T) {
	m := newTestModel()

	state := domain.NewAppState()
	state.Timer.DurationSeconds = 600
	state.Timer.RemainingSeconds = 600
	state.Timer.Running = true

	next, cmd := m.Update(stateMsg{state: state})
	m = next.(Model)
	if len(m.fillFrames) == 0 {
		t.Fatal("fresh start did not build fill frames")
	}
	if cmd == nil {
		t.Error("fresh start did not schedule a fill tick")
	}

	// A mid-run tick must not restart the animation.
	state.Timer.RemainingSeconds = 599
	m.fillFrames = nil
	next, _ = m.Update(stateMsg{state: state})
	m = next.(Model)
	if len(m.fillFrames) != 0 {
		t.Error("mid-run tick rebuilt fill frames")
	}
}

func TestUpdate_ConfirmPrompt(t *testing.T) {
	m := newTestModel()

	reply := make(chan bool, 1)
	next, _ := m.Update(confirmMsg{title: "Take a break?", detail: "10 minutes", reply: reply})
	m = next.(Model)
	if m.confirm == nil {
		t.Fatal("confirm prompt not shown")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = next.(Model)
	if m.confirm != nil {
		t.Error("confirm prompt still visible after answer")
	}
	select {
	case answer := <-reply:
		if !answer {
			t.Error("y answered false")
		}
	default:
		t.Fatal("no reply sent")
	}

	// Declining.
	reply = make(chan bool, 1)
	next, _ = m.Update(confirmMsg{title: "Take a break?", detail: "10 minutes", reply: reply})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = next.(Model)
	if answer := <-reply; answer {
		t.Error("n answered true")
	}
}

func TestUpdate_DigitOpensEditor(t *testing.T) {
	state := domain.NewAppState()
	state.Tasks[2].SetText("existing text")
	m := NewModel(nil, config.DefaultThemeConfig(), state)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = next.(Model)
	if !m.editing || m.editIndex != 2 {
		t.Errorf("editing = %v, index = %d, want true/2", m.editing, m.editIndex)
	}
	if m.input.Value() != "existing text" {
		t.Errorf("editor prefilled with %q", m.input.Value())
	}
	if cmd == nil {
		t.Error("no blink command returned")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.editing {
		t.Error("esc did not close the editor")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}
