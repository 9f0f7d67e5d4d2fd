package providers

import (
	"testing"
	"time"

	"github.com/pthm-cable/pulse/render"
	"github.com/pthm-cable/pulse/stats"
)

func TestRenderStats_BatchLifecycle(t *testing.T) {
	device := render.NewDevice(640, 480, 2)
	p := NewRenderStats(device)

	batch := device.BeginBatch(0)
	batch.RecordDraw(6)
	batch.RecordDraw(6)
	batch.RecordDraw(38)

	p.BatchBegun(batch, 0)
	time.Sleep(time.Millisecond)
	p.BatchEnding(batch, 0)
	batch.End()

	c, err := p.Sample(0.016)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if c[stats.StatBatchTime] <= 0 {
		t.Errorf("batch_time = %v, want > 0", c[stats.StatBatchTime])
	}
	if c[stats.StatDrawCalls] != 3 {
		t.Errorf("draw_calls = %v, want 3", c[stats.StatDrawCalls])
	}
	if c[stats.StatVertices] != 50 {
		t.Errorf("vertices = %v, want 50", c[stats.StatVertices])
	}
}

func TestRenderStats_UnmatchedEndingIgnored(t *testing.T) {
	device := render.NewDevice(640, 480, 2)
	p := NewRenderStats(device)

	batch := device.BeginBatch(1)
	batch.RecordDraw(6)
	p.BatchEnding(batch, 1) // no matching Begun

	c, err := p.Sample(0.016)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if c[stats.StatDrawCalls] != 0 {
		t.Errorf("draw_calls = %v, want 0 for unmatched ending", c[stats.StatDrawCalls])
	}
}

func TestRenderStats_ForeignBatchIgnored(t *testing.T) {
	device := render.NewDevice(640, 480, 2)
	p := NewRenderStats(device)

	p.BatchBegun(struct{}{}, 0)
	p.BatchEnding(struct{}{}, 0)

	c, err := p.Sample(0.016)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if c[stats.StatBatchTime] != 0 {
		t.Errorf("batch_time = %v, want 0 when only foreign handles were seen", c[stats.StatBatchTime])
	}
}

func TestRenderStats_MultipleFramesInFlight(t *testing.T) {
	device := render.NewDevice(640, 480, 2)
	p := NewRenderStats(device)

	b0 := device.BeginBatch(0)
	b1 := device.BeginBatch(1)
	b0.RecordDraw(6)
	b1.RecordDraw(12)

	p.BatchBegun(b0, 0)
	p.BatchBegun(b1, 1)
	p.BatchEnding(b0, 0)
	p.BatchEnding(b1, 1)

	c, _ := p.Sample(0.016)
	// Last completed batch wins
	if c[stats.StatVertices] != 12 {
		t.Errorf("vertices = %v, want the last completed batch's 12", c[stats.StatVertices])
	}
}
