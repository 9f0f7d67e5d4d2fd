package providers

import (
	"math"
	"testing"

	"github.com/pthm-cable/pulse/stats"
)

func TestFrameTime_Claims(t *testing.T) {
	p := NewFrameTime()

	if !p.IsAvailable(stats.StatFrameTime) || !p.IsAvailable(stats.StatFPS) {
		t.Error("frame time provider should claim frame_time and fps")
	}
	if p.IsAvailable(stats.StatCPUUsage) {
		t.Error("frame time provider should not claim cpu_usage")
	}
}

func TestFrameTime_Sample(t *testing.T) {
	p := NewFrameTime()

	c, err := p.Sample(0.016)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if c[stats.StatFrameTime] != 0.016 {
		t.Errorf("frame_time = %v, want 0.016", c[stats.StatFrameTime])
	}
	if math.Abs(float64(c[stats.StatFPS])-62.5) > 0.01 {
		t.Errorf("fps = %v, want 62.5", c[stats.StatFPS])
	}
}

func TestFrameTime_ZeroDelta(t *testing.T) {
	p := NewFrameTime()

	c, err := p.Sample(0)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(c) != 0 {
		t.Errorf("expected no counters for zero delta, got %v", c)
	}
}
