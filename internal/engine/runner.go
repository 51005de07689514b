package engine

import (
	"context"
	"time"

	"github.com/rolldo-dev/rolldo/internal/animation"
)

// NoSelection is returned when a sweep produced nothing: empty frames, or
// cancellation before the first frame.
const NoSelection = -1

// RunFrames drives a frame sequence through time: each frame is handed to
// onFrame synchronously, then the goroutine sleeps for the frame's delay.
// Cancellation stops both further emission and the in-flight delay; onFrame
// is never called again afterwards. Returns the index of the last frame
// emitted.
func RunFrames(ctx context.Context, frames []animation.Frame, onFrame func(int)) int {
	last := NoSelection
	for _, f := range frames {
		if ctx.Err() != nil {
			return last
		}
		onFrame(f.Index)
		last = f.Index

		select {
		case <-ctx.Done():
			return last
		case <-time.After(time.Duration(f.DelayMS * float64(time.Millisecond))):
		}
	}
	return last
}
