package providers

import (
	"sync"
	"time"

	"github.com/pthm-cable/pulse/render"
	"github.com/pthm-cable/pulse/stats"
)

// RenderStats measures GPU work by instrumenting command batches: it
// timestamps each batch at its begin/end boundaries and reads the batch
// submission counters. Batches are keyed by in-flight frame index, so
// several may be open at once.
//
// The hooks run on the render thread while Sample may run on the
// continuous sampling worker, hence the mutex.
type RenderStats struct {
	mu       sync.Mutex
	inflight map[uint32]time.Time

	// Last completed batch, reported until the next one lands.
	batchSeconds float32
	drawCalls    float32
	vertices     float32
}

// NewRenderStats creates the batch-instrumenting provider. The device
// bounds how many batches can be in flight.
func NewRenderStats(device *render.Device) *RenderStats {
	return &RenderStats{
		inflight: make(map[uint32]time.Time, device.FramesInFlight()),
	}
}

// IsAvailable implements stats.Provider.
func (r *RenderStats) IsAvailable(index stats.StatIndex) bool {
	switch index {
	case stats.StatBatchTime, stats.StatDrawCalls, stats.StatVertices:
		return true
	}
	return false
}

// Sample implements stats.Provider.
func (r *RenderStats) Sample(delta float32) (stats.Counters, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return stats.Counters{
		stats.StatBatchTime: r.batchSeconds,
		stats.StatDrawCalls: r.drawCalls,
		stats.StatVertices:  r.vertices,
	}, nil
}

// BatchBegun implements stats.BatchInstrumenter.
func (r *RenderStats) BatchBegun(batch any, frameIdx uint32) {
	if _, ok := batch.(*render.CommandBatch); !ok {
		return
	}
	r.mu.Lock()
	r.inflight[frameIdx] = time.Now()
	r.mu.Unlock()
}

// BatchEnding implements stats.BatchInstrumenter. An Ending without a
// matching Begun for the same frame index is ignored.
func (r *RenderStats) BatchEnding(batch any, frameIdx uint32) {
	b, ok := batch.(*render.CommandBatch)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	begun, ok := r.inflight[frameIdx]
	if !ok {
		return
	}
	delete(r.inflight, frameIdx)

	r.batchSeconds = float32(time.Since(begun).Seconds())
	r.drawCalls = float32(b.DrawCalls())
	r.vertices = float32(b.Vertices())
}
