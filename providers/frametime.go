// Package providers contains the stat providers shipped with pulse. Each
// covers a subset of stat indices; the stats facade resolves overlaps by
// priority order.
package providers

import "github.com/pthm-cable/pulse/stats"

// FrameTime reports frame time and FPS from the delta it is sampled with.
// Under polling that is the frame delta; under continuous sampling it is
// the worker's own lap time, so the stat degrades to sampling cadence
// rather than frame cadence.
type FrameTime struct{}

// NewFrameTime creates the frame time provider.
func NewFrameTime() *FrameTime {
	return &FrameTime{}
}

// IsAvailable implements stats.Provider.
func (f *FrameTime) IsAvailable(index stats.StatIndex) bool {
	return index == stats.StatFrameTime || index == stats.StatFPS
}

// Sample implements stats.Provider. Frame time is reported in seconds;
// graph metadata scales it for display.
func (f *FrameTime) Sample(delta float32) (stats.Counters, error) {
	if delta <= 0 {
		return stats.Counters{}, nil
	}
	return stats.Counters{
		stats.StatFrameTime: delta,
		stats.StatFPS:       1 / delta,
	}, nil
}
