package engine

import (
	"context"
	"fmt"

	"github.com/rolldo-dev/rolldo/internal/animation"
	"github.com/rolldo-dev/rolldo/internal/domain"
)

// BreakMinutes is the break length landed on by the sixth duration slot.
const BreakMinutes = 10

// DurationForIndex maps a duration-roll result to minutes and the break
// flag: slot 5 is a 10-minute break, slots 0..4 are 10..50 minutes of work.
func DurationForIndex(index int) (minutes int, isBreak bool) {
	if index == domain.MaxTasks-1 {
		return BreakMinutes, true
	}
	return (index + 1) * 10, false
}

// Roll runs the full selection flow: sweep for a duration, then — for a work
// roll — sweep over the incomplete tasks, with a confirmation gate before
// each start. At most one roll-or-timer flow is active at a time; re-entrant
// rolls are rejected, not queued. A rejected confirmation leaves the timer
// untouched.
func (e *Engine) Roll(ctx context.Context) error {
	e.mu.Lock()
	if e.rolling || e.state.Timer.Running {
		e.mu.Unlock()
		return domain.ErrFlowActive
	}
	e.rolling = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.rolling = false
		e.mu.Unlock()
	}()

	positions := make([]int, domain.MaxTasks)
	for i := range positions {
		positions[i] = i
	}

	durationIndex := RunFrames(ctx, animation.RandomSweepFrames(positions, e.sweepCfg), e.surface.RollFrame)
	if ctx.Err() != nil || durationIndex == NoSelection {
		return ctx.Err()
	}
	e.surface.RollSettled(durationIndex)

	minutes, isBreak := DurationForIndex(durationIndex)
	if isBreak {
		return e.rollBreak(ctx, minutes)
	}
	return e.rollTask(ctx, minutes)
}

func (e *Engine) rollBreak(ctx context.Context, minutes int) error {
	ok := e.confirm.Confirm(ctx, "Take a break?",
		fmt.Sprintf("%d minutes away from the desk", minutes))
	if !ok {
		e.surface.StateChanged(e.Snapshot())
		return nil
	}
	e.startTimer(nil, minutes, true)
	return nil
}

func (e *Engine) rollTask(ctx context.Context, minutes int) error {
	e.mu.Lock()
	incomplete := e.state.IncompleteTaskIndices()
	e.mu.Unlock()
	if len(incomplete) == 0 {
		e.surface.StateChanged(e.Snapshot())
		return domain.ErrNoIncompleteTasks
	}

	taskIndex := RunFrames(ctx, animation.RandomSweepFrames(incomplete, e.sweepCfg), e.surface.RollFrame)
	if ctx.Err() != nil || taskIndex == NoSelection {
		return ctx.Err()
	}
	e.surface.RollSettled(taskIndex)

	e.mu.Lock()
	text := e.state.Tasks[taskIndex].Text
	e.mu.Unlock()

	ok := e.confirm.Confirm(ctx, fmt.Sprintf("Work %d minutes on task %d?", minutes, taskIndex+1), text)
	if !ok {
		e.surface.StateChanged(e.Snapshot())
		return nil
	}

	idx := taskIndex
	e.startTimer(&idx, minutes, false)
	return nil
}
