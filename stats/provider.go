package stats

// Counters maps stat indices to raw sample values produced by one provider
// at one sampling instant.
type Counters map[StatIndex]float32

// Provider is a source of counter values for a subset of stat indices.
// Multiple providers may cover overlapping indices; the Stats facade
// resolves each index to the first provider that claims it.
//
// Sample must be fast relative to the sampling interval. A provider that
// returns an error produces no data for its indices that cycle; the error
// never halts sampling. Providers that hold resources may additionally
// implement io.Closer; the facade closes them on shutdown.
type Provider interface {
	// IsAvailable reports whether this provider can produce values for
	// the given index on the current platform.
	IsAvailable(index StatIndex) bool

	// Sample returns current counter values. delta is the time in seconds
	// since this provider was last sampled.
	Sample(delta float32) (Counters, error)
}

// BatchInstrumenter is implemented by providers that can only measure GPU
// work by injecting measurement commands into a command batch. The batch
// handle is opaque to the stats core; implementations assert it to the
// concrete type they instrument.
//
// Begun and Ending calls are main-thread only and must be paired 1:1 per
// batch per frame.
type BatchInstrumenter interface {
	BatchBegun(batch any, frameIdx uint32)
	BatchEnding(batch any, frameIdx uint32)
}
