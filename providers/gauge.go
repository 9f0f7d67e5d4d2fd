package providers

import "github.com/pthm-cable/pulse/stats"

// Gauge reports a single stat from a callback. It wires application-side
// quantities, like scene entity counts, into the stats engine without the
// application holding a provider type of its own.
type Gauge struct {
	index stats.StatIndex
	read  func() float32
}

// NewGauge creates a gauge for one stat index backed by read. The callback
// may be invoked from the continuous sampling worker and must be safe for
// that.
func NewGauge(index stats.StatIndex, read func() float32) *Gauge {
	return &Gauge{index: index, read: read}
}

// IsAvailable implements stats.Provider.
func (g *Gauge) IsAvailable(index stats.StatIndex) bool {
	return index == g.index
}

// Sample implements stats.Provider.
func (g *Gauge) Sample(delta float32) (stats.Counters, error) {
	return stats.Counters{g.index: g.read()}, nil
}
