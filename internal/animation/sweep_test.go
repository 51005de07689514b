package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepFrames_EmptyPositions(t *testing.T) {
	assert.Empty(t, SweepFrames(nil, 3, DefaultSweepConfig()))
	assert.Empty(t, SweepFrames([]int{}, 3, DefaultSweepConfig()))
}

func TestSweepFrames_Deterministic(t *testing.T) {
	positions := []int{0, 1, 2, 3, 4, 5}
	a := SweepFrames(positions, 3, DefaultSweepConfig())
	b := SweepFrames(positions, 3, DefaultSweepConfig())
	assert.Equal(t, a, b)
}

func TestSweepFrames_EndsOnLastOccurrenceOfFinal(t *testing.T) {
	positions := []int{0, 1, 2, 3, 4, 5}
	cfg := DefaultSweepConfig()
	cfg.NumCycles = 2

	frames := SweepFrames(positions, 3, cfg)
	require.NotEmpty(t, frames)
	assert.Equal(t, 3, frames[len(frames)-1].Index)

	// The truncation point is the LAST occurrence within the full bounce
	// run. Rebuilding the raw run and cutting it there must agree.
	var raw []int
	for c := 0; c < cfg.NumCycles; c++ {
		raw = append(raw, positions...)
		for i := len(positions) - 2; i >= 1; i-- {
			raw = append(raw, positions[i])
		}
	}
	last := -1
	for i, p := range raw {
		if p == 3 {
			last = i
		}
	}
	require.Equal(t, last+1, len(frames))
	for i, f := range frames {
		assert.Equal(t, raw[i], f.Index)
	}
}

func TestSweepFrames_BouncePattern(t *testing.T) {
	// One cycle over [0 1 2 3] is a forward pass plus the reversed
	// interior: 0 1 2 3 2 1.
	cfg := DefaultSweepConfig()
	cfg.NumCycles = 1
	frames := SweepFrames([]int{0, 1, 2, 3}, 1, cfg)

	got := make([]int, len(frames))
	for i, f := range frames {
		got[i] = f.Index
	}
	assert.Equal(t, []int{0, 1, 2, 3, 2, 1}, got)
}

func TestSweepFrames_NonMemberFinalAppended(t *testing.T) {
	positions := []int{0, 2, 4}
	frames := SweepFrames(positions, 5, DefaultSweepConfig())
	require.NotEmpty(t, frames)
	assert.Equal(t, 5, frames[len(frames)-1].Index)
	for _, f := range frames[:len(frames)-1] {
		assert.Contains(t, positions, f.Index)
	}
}

func TestSweepFrames_DelaysDecelerate(t *testing.T) {
	frames := SweepFrames([]int{0, 1, 2, 3, 4, 5}, 0, DefaultSweepConfig())
	require.NotEmpty(t, frames)

	assert.InDelta(t, DefaultInitialDelayMS, frames[0].DelayMS, 1e-9)
	assert.InDelta(t, DefaultFinalDelayMS, frames[len(frames)-1].DelayMS, 1e-9)
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i].DelayMS, frames[i-1].DelayMS,
			"delay shrank at frame %d", i)
	}
}

func TestSweepFrames_SinglePosition(t *testing.T) {
	cfg := DefaultSweepConfig()
	cfg.NumCycles = 1
	frames := SweepFrames([]int{4}, 4, cfg)
	require.Len(t, frames, 1)
	assert.Equal(t, 4, frames[0].Index)
	// A one-frame sweep uses the initial delay (progress is zero).
	assert.InDelta(t, cfg.InitialDelayMS, frames[0].DelayMS, 1e-9)
}

func TestSweepFrames_TwoPositionsNoInterior(t *testing.T) {
	// With two positions there is no interior to reverse; cycles are
	// plain forward passes.
	cfg := DefaultSweepConfig()
	cfg.NumCycles = 2
	frames := SweepFrames([]int{7, 9}, 9, cfg)

	got := make([]int, len(frames))
	for i, f := range frames {
		got[i] = f.Index
	}
	assert.Equal(t, []int{7, 9, 7, 9}, got)
}

func TestRandomSweepFrames_LandsOnMember(t *testing.T) {
	positions := []int{1, 3, 5}
	for i := 0; i < 50; i++ {
		frames := RandomSweepFrames(positions, DefaultSweepConfig())
		require.NotEmpty(t, frames)
		assert.Contains(t, positions, frames[len(frames)-1].Index)
	}
}

func TestRandomSweepFrames_EmptyPositions(t *testing.T) {
	assert.Empty(t, RandomSweepFrames(nil, DefaultSweepConfig()))
}

func TestSlideFrames_CountAndEndpoints(t *testing.T) {
	frames := SlideFrames(0, 10, DefaultSlideDurationMS, DefaultSlideFPS)

	// floor(400/1000*30)+1 = 13 positions.
	require.Len(t, frames, 13)
	assert.InDelta(t, 0, frames[0], 1e-9)
	assert.InDelta(t, 10, frames[len(frames)-1], 1e-9)
}

func TestSlideFrames_EaseOutMonotonic(t *testing.T) {
	frames := SlideFrames(2, 8, 400, 30)
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i], frames[i-1])
	}
	// Ease-out: the first step is the largest.
	first := frames[1] - frames[0]
	lastStep := frames[len(frames)-1] - frames[len(frames)-2]
	assert.Greater(t, first, lastStep)
}

func TestSlideFrames_DegenerateDuration(t *testing.T) {
	frames := SlideFrames(1, 5, 0, 30)
	require.Len(t, frames, 2)
	assert.InDelta(t, 1, frames[0], 1e-9)
	assert.InDelta(t, 5, frames[1], 1e-9)
}

func TestRainbowColorAt(t *testing.T) {
	assert.Equal(t, RainbowColorAt(0), RainbowColorAt(6))
	assert.Equal(t, RainbowColorAt(1), RainbowColorAt(13))
	assert.Equal(t, RainbowColorAt(5), RainbowColorAt(-1))
	for i := 0; i < 6; i++ {
		assert.NotEmpty(t, RainbowColorAt(i))
	}
}
