package providers

import (
	"testing"

	"github.com/pthm-cable/pulse/stats"
)

func TestProcess_Sample(t *testing.T) {
	p, err := NewProcess()
	if err != nil {
		t.Skipf("process inspection unavailable: %v", err)
	}

	if !p.IsAvailable(stats.StatCPUUsage) || !p.IsAvailable(stats.StatMemoryRSS) {
		t.Error("process provider should claim cpu_usage and memory_rss")
	}

	// First call establishes the CPU baseline
	if _, err := p.Sample(0.016); err != nil {
		t.Fatalf("first sample: %v", err)
	}

	c, err := p.Sample(0.016)
	if err != nil {
		t.Fatalf("second sample: %v", err)
	}
	if _, ok := c[stats.StatCPUUsage]; !ok {
		t.Error("expected cpu_usage counter")
	}
	if c[stats.StatMemoryRSS] <= 0 {
		t.Errorf("memory_rss = %v, want > 0", c[stats.StatMemoryRSS])
	}
}
