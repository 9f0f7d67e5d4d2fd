// Package stats collects per-frame CPU and GPU performance counters from
// pluggable providers, smooths them into fixed-capacity time series and
// exposes them for live graphing.
package stats

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"
)

const (
	defaultAlpha    = 0.2
	defaultInterval = 10 * time.Millisecond
)

// Options configure a Stats instance.
type Options struct {
	// Requested is the set of stats to collect if available. Immutable
	// for the object's lifetime.
	Requested []StatIndex
	// Sampling selects polling or continuous collection.
	Sampling SamplingConfig
	// BufferSize is the circular buffer capacity per stat (0 = 16).
	BufferSize int
	// Alpha is the exponential smoothing factor in (0,1] (0 = 0.2).
	Alpha float32
}

// Stats is the collection facade. It owns its providers exclusively:
// they are consulted only through it and released by Close.
//
// Update and the batch hooks are single-threaded caller contract; the only
// internal concurrency is the continuous sampling worker.
type Stats struct {
	requested []StatIndex
	providers []Provider // priority order
	owner     map[StatIndex]Provider
	active    []Provider // unique claiming providers, priority order
	cfg       SamplingConfig
	alpha     float32
	counters  map[StatIndex]*CircularBuffer

	// Guards the continuous sample queue and the collect flag.
	mu                sync.Mutex
	continuousSamples []Counters
	collectContinuous bool

	stopWorker chan struct{}
	workerDone chan struct{}
}

// New resolves each requested stat to the first provider (in the given
// priority order) that claims it and, in continuous mode, starts the
// sampling worker. Requested stats no provider claims are recorded as
// unavailable; that is not an error.
func New(providers []Provider, opts Options) *Stats {
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = minBufferSize
	}
	alpha := opts.Alpha
	if alpha <= 0 {
		alpha = defaultAlpha
	}
	cfg := opts.Sampling
	if cfg.Mode == SamplingContinuous && cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}

	requested := make([]StatIndex, len(opts.Requested))
	copy(requested, opts.Requested)
	sort.Slice(requested, func(i, j int) bool { return requested[i] < requested[j] })

	s := &Stats{
		requested:         requested,
		providers:         providers,
		owner:             make(map[StatIndex]Provider),
		cfg:               cfg,
		alpha:             alpha,
		counters:          make(map[StatIndex]*CircularBuffer),
		collectContinuous: true,
	}

	// First provider that claims an index wins; later providers are
	// skipped for that index.
	for _, index := range requested {
		for _, p := range providers {
			if p.IsAvailable(index) {
				s.owner[index] = p
				s.counters[index] = NewCircularBuffer(bufferSize)
				break
			}
		}
	}
	for _, p := range providers {
		for _, claimed := range s.owner {
			if claimed == p {
				s.active = append(s.active, p)
				break
			}
		}
	}

	if cfg.Mode == SamplingContinuous {
		s.stopWorker = make(chan struct{})
		s.workerDone = make(chan struct{})
		go s.continuousSamplingWorker()
	}

	return s
}

// IsAvailable reports whether the given stat was claimed by a provider and
// is being collected.
func (s *Stats) IsAvailable(index StatIndex) bool {
	_, ok := s.owner[index]
	return ok
}

// RequestedStats returns the stats requested at construction, sorted.
func (s *Stats) RequestedStats() []StatIndex {
	out := make([]StatIndex, len(s.requested))
	copy(out, s.requested)
	return out
}

// Data returns the smoothed history for a claimed stat, oldest-to-newest.
// Calling it for an unclaimed index is a contract violation and panics;
// guard with IsAvailable.
func (s *Stats) Data(index StatIndex) []float32 {
	buf, ok := s.counters[index]
	if !ok {
		panic(fmt.Sprintf("stats: data requested for unclaimed stat %s", index))
	}
	return buf.Values()
}

// GraphData returns presentation metadata for a claimed stat. Like Data,
// it panics for an unclaimed index.
func (s *Stats) GraphData(index StatIndex) StatGraphData {
	if _, ok := s.owner[index]; !ok {
		panic(fmt.Sprintf("stats: graph data requested for unclaimed stat %s", index))
	}
	return graphMap[index]
}

// Resize re-derives the circular buffer capacity from the screen width.
// Existing history is discarded.
func (s *Stats) Resize(width int) {
	size := BufferSizeForWidth(width)
	for _, buf := range s.counters {
		buf.Resize(size)
	}
}

// Update collects counters for the frame that just finished. Must be
// called once per frame from the render thread.
//
// In polling mode it samples all claiming providers synchronously. In
// continuous mode it drains whatever the worker queued since the last
// call: zero samples when the frame outpaces the sampling interval,
// several when it lags behind.
func (s *Stats) Update(delta float32, activeFrame uint32) {
	switch s.cfg.Mode {
	case SamplingPolling:
		s.pushSample(s.sampleProviders(delta, activeFrame))
	case SamplingContinuous:
		s.mu.Lock()
		pending := s.continuousSamples
		s.continuousSamples = nil
		s.mu.Unlock()

		// Smoothing happens outside the lock, in worker production order.
		for _, sample := range pending {
			s.pushSample(sample)
		}
	}
}

// PauseSampling stops the continuous worker from recording samples without
// tearing down the goroutine. No-op in polling mode.
func (s *Stats) PauseSampling() {
	s.mu.Lock()
	s.collectContinuous = false
	s.mu.Unlock()
}

// ResumeSampling re-enables continuous sample recording.
func (s *Stats) ResumeSampling() {
	s.mu.Lock()
	s.collectContinuous = true
	s.mu.Unlock()
}

// BatchBegun notifies instrumenting providers that a tracked command batch
// has begun, so they can inject measurement setup. Main thread only.
func (s *Stats) BatchBegun(batch any, frameIdx uint32) {
	for _, p := range s.providers {
		if bi, ok := p.(BatchInstrumenter); ok {
			bi.BatchBegun(batch, frameIdx)
		}
	}
}

// BatchEnding notifies instrumenting providers that a tracked command
// batch is about to end. Must pair 1:1 with BatchBegun per batch per
// frame. Main thread only.
func (s *Stats) BatchEnding(batch any, frameIdx uint32) {
	for _, p := range s.providers {
		if bi, ok := p.(BatchInstrumenter); ok {
			bi.BatchEnding(batch, frameIdx)
		}
	}
}

// Close stops the sampling worker, waits for it to exit, then closes any
// providers that hold resources. Safe to call once; the worker join must
// complete before provider state is released.
func (s *Stats) Close() error {
	if s.stopWorker != nil {
		close(s.stopWorker)
		<-s.workerDone
		s.stopWorker = nil
	}

	var firstErr error
	for _, p := range s.providers {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// sampleProviders queries each claiming provider once and merges the
// values it owns into a single sample. A provider error drops only that
// provider's values for this cycle; partial results from the others still
// apply.
func (s *Stats) sampleProviders(delta float32, activeFrame uint32) Counters {
	merged := make(Counters, len(s.owner))
	for _, p := range s.active {
		c, err := p.Sample(delta)
		if err != nil {
			slog.Debug("stats provider sample failed", "error", err, "frame", activeFrame)
			continue
		}
		for index, value := range c {
			if s.owner[index] == p {
				merged[index] = value
			}
		}
	}
	return merged
}

// pushSample smooths one merged sample into the circular buffers. The
// first sample for an index seeds the running average so there is no
// warm-up transient.
func (s *Stats) pushSample(sample Counters) {
	for index, value := range sample {
		buf, ok := s.counters[index]
		if !ok {
			continue
		}
		if prev, seeded := buf.Latest(); seeded {
			value = prev*(1-s.alpha) + value*s.alpha
		}
		buf.Push(value)
	}
}

// continuousSamplingWorker queries providers at the configured interval on
// its own timer and appends samples to the queue. It exits when the stop
// channel is closed; Close blocks until then.
func (s *Stats) continuousSamplingWorker() {
	defer close(s.workerDone)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	timer := NewTimer()
	for {
		select {
		case <-s.stopWorker:
			return
		case <-ticker.C:
		}

		delta := float32(timer.Tick())

		s.mu.Lock()
		collect := s.collectContinuous
		s.mu.Unlock()
		if !collect {
			continue
		}

		// Provider queries stay outside the critical section.
		sample := s.sampleProviders(delta, 0)
		if len(sample) == 0 {
			continue
		}

		s.mu.Lock()
		s.continuousSamples = append(s.continuousSamples, sample)
		s.mu.Unlock()
	}
}
