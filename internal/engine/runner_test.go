package engine

import (
	"context"
	"testing"

	"github.com/rolldo-dev/rolldo/internal/animation"
)

func TestRunFrames(t *testing.T) {
	frames := []animation.Frame{
		{Index: 2, DelayMS: 0},
		{Index: 4, DelayMS: 0},
		{Index: 1, DelayMS: 0},
	}

	var seen []int
	got := RunFrames(context.Background(), frames, func(i int) {
		seen = append(seen, i)
	})

	if got != 1 {
		t.Errorf("RunFrames() = %d, want 1", got)
	}
	if len(seen) != 3 || seen[0] != 2 || seen[1] != 4 || seen[2] != 1 {
		t.Errorf("emitted frames = %v, want [2 4 1]", seen)
	}
}

func TestRunFrames_Empty(t *testing.T) {
	got := RunFrames(context.Background(), nil, func(int) {
		t.Error("onFrame called for empty sequence")
	})
	if got != NoSelection {
		t.Errorf("RunFrames() = %d, want NoSelection", got)
	}
}

func TestRunFrames_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := []animation.Frame{{Index: 3, DelayMS: 0}}
	got := RunFrames(ctx, frames, func(int) {
		t.Error("onFrame called after cancellation")
	})
	if got != NoSelection {
		t.Errorf("RunFrames() = %d, want NoSelection", got)
	}
}

func TestRunFrames_CancelMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	frames := []animation.Frame{
		{Index: 0, DelayMS: 0},
		{Index: 1, DelayMS: 60_000},
		{Index: 2, DelayMS: 0},
	}

	var seen []int
	got := RunFrames(ctx, frames, func(i int) {
		seen = append(seen, i)
		if i == 1 {
			cancel()
		}
	})

	if got != 1 {
		t.Errorf("RunFrames() = %d, want 1", got)
	}
	if len(seen) != 2 {
		t.Errorf("emitted %d frames, want 2 (cancellation must stop emission)", len(seen))
	}
}
