// Package tui provides the terminal user interface implementation using the
// Bubbletea framework. Key presses become engine commands; the engine pushes
// state copies back through the Surface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolldo-dev/rolldo/internal/animation"
	"github.com/rolldo-dev/rolldo/internal/config"
	"github.com/rolldo-dev/rolldo/internal/domain"
	"github.com/rolldo-dev/rolldo/internal/engine"
)

// confirmPrompt is a pending yes/no question from the roll flow.
type confirmPrompt struct {
	title  string
	detail string
	reply  chan bool
}

// Model represents the TUI state.
type Model struct {
	engine *engine.Engine
	state  domain.AppState
	theme  config.ThemeConfig
	width  int
	height int

	// Roll display
	rolling    bool
	settled    bool
	diceValue  int
	rollOffset int

	// Task edit modal
	editing   bool
	editIndex int
	input     textinput.Model

	confirm *confirmPrompt
	status  string

	// Progress bar, with an eased fill-in when a timer starts
	bar        progress.Model
	fillFrames []float64
	fillStep   int
}

// NewModel creates a new TUI model around the engine's initial snapshot.
func NewModel(eng *engine.Engine, theme config.ThemeConfig, initial domain.AppState) Model {
	input := textinput.New()
	input.CharLimit = domain.TaskCharLimit
	input.Width = domain.TaskCharLimit
	input.Placeholder = "Enter task description..."

	return Model{
		engine:    eng,
		state:     initial,
		theme:     theme,
		diceValue: 1,
		input:     input,
		bar:       progress.New(progress.WithGradient(theme.ColorActive, theme.ColorTimer)),
	}
}

// Init resumes a countdown that was persisted mid-run.
func (m Model) Init() tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		eng.ResumeFromSnapshot()
		return nil
	}
}

// rollCmd launches the full roll flow off the UI goroutine.
func (m Model) rollCmd() tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		if err := eng.Roll(context.Background()); err != nil {
			return statusMsg{text: statusForErr(err)}
		}
		return nil
	}
}

// endCmd cancels the countdown off the UI goroutine; the cancel wait is
// bounded by one tick interval.
func (m Model) endCmd() tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		eng.EndTimer()
		return statusMsg{text: "Timer ended"}
	}
}

// fillCmd schedules the next frame of the progress fill animation.
func fillCmd() tea.Cmd {
	return tea.Tick(time.Second/animation.DefaultSlideFPS, func(time.Time) tea.Msg {
		return fillTickMsg{}
	})
}

// statusForErr maps engine errors to the one-line status display.
func statusForErr(err error) string {
	switch {
	case errors.Is(err, domain.ErrFlowActive):
		return "A roll or timer is already active"
	case errors.Is(err, domain.ErrNoIncompleteTasks):
		return "No incomplete tasks to roll for!"
	case errors.Is(err, domain.ErrNoActiveTask):
		return "No active task to complete"
	case errors.Is(err, domain.ErrNoTimerToToggle):
		return "Roll for time first (press R)"
	default:
		return err.Error()
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rollFrameMsg:
		m.rolling = true
		m.settled = false
		m.diceValue = msg.index + 1
		m.rollOffset++
		m.status = ""
		return m, nil

	case rollSettledMsg:
		m.rolling = false
		m.settled = true
		m.diceValue = msg.index + 1
		return m, nil

	case stateMsg:
		prev := m.state.Timer
		m.state = msg.state
		next := m.state.Timer
		if !next.Running && next.RemainingSeconds == 0 {
			m.settled = false
		}
		// A fresh start animates the bar filling in.
		if !prev.Running && next.Running && next.DurationSeconds > 0 &&
			next.RemainingSeconds == next.DurationSeconds {
			m.fillFrames = animation.SlideFrames(0, 1, animation.DefaultSlideDurationMS, animation.DefaultSlideFPS)
			m.fillStep = 0
			return m, fillCmd()
		}
		return m, nil

	case fillTickMsg:
		if m.fillStep < len(m.fillFrames)-1 {
			m.fillStep++
			return m, fillCmd()
		}
		m.fillFrames = nil
		m.fillStep = 0
		return m, nil

	case confirmMsg:
		m.confirm = &confirmPrompt{title: msg.title, detail: msg.detail, reply: msg.reply}
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses to the confirm prompt, the edit modal, or the
// main key map, in that order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirm.reply <- true
			m.confirm = nil
		case "n", "N", "esc", "q":
			m.confirm.reply <- false
			m.confirm = nil
		}
		return m, nil
	}

	if m.editing {
		switch msg.String() {
		case "enter":
			text := m.input.Value()
			m.editing = false
			if err := m.engine.EditTask(m.editIndex, text); err != nil {
				m.status = statusForErr(err)
			}
			return m, nil
		case "esc":
			m.editing = false
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "1", "2", "3", "4", "5", "6":
		index := int(msg.String()[0] - '1')
		m.editing = true
		m.editIndex = index
		m.input.SetValue(m.state.Tasks[index].Text)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "r":
		return m, m.rollCmd()

	case " ":
		if err := m.engine.TogglePause(); err != nil {
			m.status = statusForErr(err)
		}
		return m, nil

	case "c":
		if idx := m.state.Timer.TaskIndex; idx != nil {
			m.status = fmt.Sprintf("Toggled task %d", *idx+1)
		}
		if err := m.engine.ToggleComplete(); err != nil {
			m.status = statusForErr(err)
		}
		return m, nil

	case "x":
		return m, m.endCmd()

	case "q", "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}
