package stats

import "testing"

func TestCircularBuffer_LenNeverExceedsCap(t *testing.T) {
	b := NewCircularBuffer(4)

	for i := 0; i < 10; i++ {
		b.Push(float32(i))
		want := i + 1
		if want > 4 {
			want = 4
		}
		if b.Len() != want {
			t.Fatalf("after %d pushes: len = %d, want %d", i+1, b.Len(), want)
		}
	}
}

func TestCircularBuffer_FIFOEviction(t *testing.T) {
	b := NewCircularBuffer(4)

	for i := 1; i <= 6; i++ {
		b.Push(float32(i))
	}

	// Pushing beyond capacity must evict exactly the oldest entries
	got := b.Values()
	want := []float32{3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("values length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("values[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCircularBuffer_Latest(t *testing.T) {
	b := NewCircularBuffer(3)

	if _, ok := b.Latest(); ok {
		t.Error("expected no latest value for empty buffer")
	}

	b.Push(1)
	b.Push(2)
	b.Push(3)
	b.Push(4) // wraps

	if v, ok := b.Latest(); !ok || v != 4 {
		t.Errorf("latest = %v, %v; want 4, true", v, ok)
	}
}

func TestCircularBuffer_Resize(t *testing.T) {
	b := NewCircularBuffer(8)
	for i := 0; i < 8; i++ {
		b.Push(float32(i))
	}

	b.Resize(3)

	if b.Len() != 0 {
		t.Errorf("len after resize = %d, want 0", b.Len())
	}
	if b.Cap() != 3 {
		t.Errorf("cap after resize = %d, want 3", b.Cap())
	}

	// New bound must hold when pushing past the new capacity
	for i := 0; i < 4; i++ {
		b.Push(float32(i))
	}
	if b.Len() != 3 {
		t.Errorf("len after overfilling resized buffer = %d, want 3", b.Len())
	}
}

func TestBufferSizeForWidth(t *testing.T) {
	if got := BufferSizeForWidth(1280); got != 320 {
		t.Errorf("BufferSizeForWidth(1280) = %d, want 320", got)
	}
	if got := BufferSizeForWidth(10); got != minBufferSize {
		t.Errorf("BufferSizeForWidth(10) = %d, want floor %d", got, minBufferSize)
	}
}
