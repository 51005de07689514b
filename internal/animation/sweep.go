// Package animation generates the frame sequences behind the roll mechanic:
// a decelerating back-and-forth sweep over candidate positions, an eased
// slide, and the rainbow palette that colors a roll in flight. Everything
// here is pure computation; the engine drives frames through time.
package animation

import (
	"math"
	"math/rand"
)

// Sweep timing defaults, in milliseconds.
const (
	DefaultInitialDelayMS = 34
	DefaultFinalDelayMS   = 250
	DefaultExponent       = 1.5
	DefaultNumCycles      = 3
)

// Frame is one step of a sweep: which position to highlight and how long to
// hold it before the next step. Frames are ephemeral and never persisted.
type Frame struct {
	Index   int
	DelayMS float64
}

// SweepConfig tunes the sweep's length and deceleration curve.
type SweepConfig struct {
	NumCycles      int
	InitialDelayMS float64
	FinalDelayMS   float64
	Exponent       float64
}

// DefaultSweepConfig returns the standard sweep tuning.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		NumCycles:      DefaultNumCycles,
		InitialDelayMS: DefaultInitialDelayMS,
		FinalDelayMS:   DefaultFinalDelayMS,
		Exponent:       DefaultExponent,
	}
}

// SweepFrames builds the deterministic sweep landing on finalIndex.
//
// The raw run repeats a forward pass over positions followed by a reverse
// pass over the interior (first and last excluded) NumCycles times, which
// bounces rather than loops. The run is truncated at the last occurrence of
// finalIndex; if finalIndex is not a member of positions it is appended as
// one extra terminal frame. Delays ease from InitialDelayMS to FinalDelayMS
// along progress^Exponent, so the sweep only ever slows down.
func SweepFrames(positions []int, finalIndex int, cfg SweepConfig) []Frame {
	if len(positions) == 0 {
		return nil
	}

	var sequence []int
	for c := 0; c < cfg.NumCycles; c++ {
		sequence = append(sequence, positions...)
		for i := len(positions) - 2; i >= 1; i-- {
			sequence = append(sequence, positions[i])
		}
	}

	cut := -1
	for i := len(sequence) - 1; i >= 0; i-- {
		if sequence[i] == finalIndex {
			cut = i
			break
		}
	}
	if cut >= 0 {
		sequence = sequence[:cut+1]
	} else {
		sequence = append(sequence, finalIndex)
	}

	frames := make([]Frame, len(sequence))
	denom := float64(len(sequence) - 1)
	if denom < 1 {
		denom = 1
	}
	for i, pos := range sequence {
		progress := float64(i) / denom
		delay := cfg.InitialDelayMS + (cfg.FinalDelayMS-cfg.InitialDelayMS)*math.Pow(progress, cfg.Exponent)
		frames[i] = Frame{Index: pos, DelayMS: delay}
	}
	return frames
}

// RandomSweepFrames builds a sweep landing on a uniformly random member of
// positions. This is the only non-deterministic path in the package.
func RandomSweepFrames(positions []int, cfg SweepConfig) []Frame {
	if len(positions) == 0 {
		return nil
	}
	final := positions[rand.Intn(len(positions))]
	return SweepFrames(positions, final, cfg)
}
