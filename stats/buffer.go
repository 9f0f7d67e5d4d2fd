package stats

// CircularBuffer is a fixed-capacity ring of float32 samples. Once full,
// each push evicts the oldest entry.
type CircularBuffer struct {
	data []float32
	head int // next write position
	size int
}

// NewCircularBuffer creates a buffer with the given capacity (minimum 1).
func NewCircularBuffer(capacity int) *CircularBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &CircularBuffer{data: make([]float32, capacity)}
}

// Push appends a value, evicting the oldest entry when at capacity.
func (b *CircularBuffer) Push(v float32) {
	b.data[b.head] = v
	b.head = (b.head + 1) % len(b.data)
	if b.size < len(b.data) {
		b.size++
	}
}

// Len returns the number of stored values.
func (b *CircularBuffer) Len() int {
	return b.size
}

// Cap returns the buffer capacity.
func (b *CircularBuffer) Cap() int {
	return len(b.data)
}

// Latest returns the most recently pushed value.
func (b *CircularBuffer) Latest() (float32, bool) {
	if b.size == 0 {
		return 0, false
	}
	return b.data[(b.head-1+len(b.data))%len(b.data)], true
}

// Values returns the stored values oldest-to-newest as a fresh slice.
func (b *CircularBuffer) Values() []float32 {
	out := make([]float32, b.size)
	start := (b.head - b.size + len(b.data)) % len(b.data)
	for i := 0; i < b.size; i++ {
		out[i] = b.data[(start+i)%len(b.data)]
	}
	return out
}

// Resize reallocates the buffer with a new capacity. Stored history is
// discarded.
func (b *CircularBuffer) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	b.data = make([]float32, capacity)
	b.head = 0
	b.size = 0
}
