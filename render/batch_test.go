package render

import "testing"

func TestCommandBatch_Counters(t *testing.T) {
	device := NewDevice(640, 480, 3)
	batch := device.BeginBatch(2)

	if batch.FrameIndex() != 2 {
		t.Errorf("frame index = %d, want 2", batch.FrameIndex())
	}
	if !batch.Open() {
		t.Error("new batch should be open")
	}

	batch.RecordDraw(6)
	batch.RecordDraw(38)

	if batch.DrawCalls() != 2 {
		t.Errorf("draw calls = %d, want 2", batch.DrawCalls())
	}
	if batch.Vertices() != 44 {
		t.Errorf("vertices = %d, want 44", batch.Vertices())
	}

	batch.End()
	if batch.Open() {
		t.Error("ended batch should not be open")
	}
}

func TestDevice_FramesInFlightFloor(t *testing.T) {
	device := NewDevice(640, 480, 0)
	if device.FramesInFlight() != 1 {
		t.Errorf("frames in flight = %d, want floor 1", device.FramesInFlight())
	}
}

func TestDevice_SetSize(t *testing.T) {
	device := NewDevice(640, 480, 2)
	device.SetSize(800, 600)

	if device.Width() != 800 || device.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", device.Width(), device.Height())
	}
}
