package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolldo-dev/rolldo/internal/domain"
	"github.com/rolldo-dev/rolldo/internal/ports"
)

// Messages the engine pushes into the bubbletea program.
type (
	rollFrameMsg   struct{ index int }
	rollSettledMsg struct{ index int }
	stateMsg       struct{ state domain.AppState }
	statusMsg      struct{ text string }
	fillTickMsg    struct{}

	confirmMsg struct {
		title  string
		detail string
		reply  chan bool
	}
)

// Surface bridges the engine to the running bubbletea program. It implements
// both the render surface (one-way state pushes) and the confirmer (a
// request/reply prompt answered by the model).
type Surface struct {
	mu      sync.RWMutex
	program *tea.Program
}

// Ensure Surface implements the engine-facing ports.
var (
	_ ports.RenderSurface = (*Surface)(nil)
	_ ports.Confirmer     = (*Surface)(nil)
)

// NewSurface creates an unattached surface. Pushes before Attach are
// dropped.
func NewSurface() *Surface {
	return &Surface{}
}

// Attach binds the surface to a program.
func (s *Surface) Attach(p *tea.Program) {
	s.mu.Lock()
	s.program = p
	s.mu.Unlock()
}

func (s *Surface) send(msg tea.Msg) {
	s.mu.RLock()
	p := s.program
	s.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// RollFrame implements ports.RenderSurface.
func (s *Surface) RollFrame(index int) {
	s.send(rollFrameMsg{index: index})
}

// RollSettled implements ports.RenderSurface.
func (s *Surface) RollSettled(index int) {
	s.send(rollSettledMsg{index: index})
}

// TimerTicked implements ports.RenderSurface.
func (s *Surface) TimerTicked(state domain.AppState) {
	s.send(stateMsg{state: state})
}

// StateChanged implements ports.RenderSurface.
func (s *Surface) StateChanged(state domain.AppState) {
	s.send(stateMsg{state: state})
}

// Confirm implements ports.Confirmer. It blocks the calling goroutine until
// the model answers or the context is cancelled; cancellation counts as a
// rejection.
func (s *Surface) Confirm(ctx context.Context, title, detail string) bool {
	reply := make(chan bool, 1)
	s.send(confirmMsg{title: title, detail: detail, reply: reply})

	select {
	case <-ctx.Done():
		return false
	case ok := <-reply:
		return ok
	}
}
