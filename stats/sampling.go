package stats

import "time"

// SamplingMode selects when and on which goroutine counter samples are
// produced.
type SamplingMode int

const (
	// SamplingPolling pulls one synchronous sample per Update call.
	SamplingPolling SamplingMode = iota
	// SamplingContinuous samples on a background goroutine at a fixed
	// interval, independent of frame cadence.
	SamplingContinuous
)

// SamplingConfig is the immutable sampling choice made at construction.
type SamplingConfig struct {
	Mode SamplingMode
	// Interval between samples in continuous mode.
	Interval time.Duration
}

// Buffer sizing policy: one stored sample per this many pixels of screen
// width, with a floor so narrow windows still get usable history.
const (
	pixelsPerSample = 4
	minBufferSize   = 16
)

// BufferSizeForWidth derives a circular buffer capacity from a screen
// width in pixels.
func BufferSizeForWidth(width int) int {
	size := width / pixelsPerSample
	if size < minBufferSize {
		size = minBufferSize
	}
	return size
}
