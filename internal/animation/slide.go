package animation

// Slide defaults.
const (
	DefaultSlideDurationMS = 400
	DefaultSlideFPS        = 30
)

// SlideFrames interpolates from start to end with ease-out-quadratic,
// returning floor(durationMS/1000*fps)+1 positions including both endpoints.
func SlideFrames(start, end float64, durationMS float64, fps int) []float64 {
	numFrames := int(durationMS / 1000 * float64(fps))
	if numFrames < 1 {
		numFrames = 1
	}
	positions := make([]float64, 0, numFrames+1)
	for i := 0; i <= numFrames; i++ {
		t := float64(i) / float64(numFrames)
		eased := 1 - (1-t)*(1-t)
		positions = append(positions, start+(end-start)*eased)
	}
	return positions
}
