package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/pulse/stats"
)

// fixedProvider returns a constant frame time.
type fixedProvider struct{}

func (fixedProvider) IsAvailable(index stats.StatIndex) bool {
	return index == stats.StatFrameTime
}

func (fixedProvider) Sample(delta float32) (stats.Counters, error) {
	return stats.Counters{stats.StatFrameTime: 0.016}, nil
}

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// nil receiver methods must be safe no-ops
	if err := om.WriteRow(StatRow{}); err != nil {
		t.Errorf("write on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("close on nil manager: %v", err)
	}
}

func TestOutputManager_WriteRows(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := om.WriteRow(StatRow{Frame: 1, FrameTimeMS: 16.1}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteRow(StatRow{Frame: 2, FrameTimeMS: 16.4}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatalf("reading stats.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], "frame_time_ms") {
		t.Errorf("header %q should contain frame_time_ms", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,") {
		t.Errorf("row %q should start with frame 1", lines[1])
	}
}

func TestSnapshotRow(t *testing.T) {
	s := stats.New([]stats.Provider{fixedProvider{}}, stats.Options{
		Requested: []stats.StatIndex{stats.StatFrameTime, stats.StatCPUUsage},
	})
	defer s.Close()

	s.Update(0.016, 0)
	row := SnapshotRow(s, 10, 1.5)

	if row.Frame != 10 || row.TimeSec != 1.5 {
		t.Errorf("frame/time = %d/%v, want 10/1.5", row.Frame, row.TimeSec)
	}
	// 0.016 s scaled to ms for display
	if row.FrameTimeMS < 15.9 || row.FrameTimeMS > 16.1 {
		t.Errorf("frame_time_ms = %v, want ~16", row.FrameTimeMS)
	}
	// cpu_usage has no provider; the column stays zero
	if row.CPUPct != 0 {
		t.Errorf("cpu_pct = %v, want 0 for unavailable stat", row.CPUPct)
	}
}
