// Package export writes periodic snapshots of the collected stats to CSV.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/pulse/stats"
)

// StatRow is a flat snapshot of the latest smoothed values, one per flush.
// Unavailable stats stay zero.
type StatRow struct {
	Frame       int64   `csv:"frame"`
	TimeSec     float64 `csv:"time"`
	FrameTimeMS float64 `csv:"frame_time_ms"`
	FPS         float64 `csv:"fps"`
	CPUPct      float64 `csv:"cpu_pct"`
	MemoryMB    float64 `csv:"memory_mb"`
	BatchTimeMS float64 `csv:"batch_time_ms"`
	DrawCalls   float64 `csv:"draw_calls"`
	Vertices    float64 `csv:"vertices"`
	Entities    float64 `csv:"entities"`
}

// SnapshotRow builds a row from the latest smoothed value of each
// available stat, scaled the same way the graphs display them.
func SnapshotRow(s *stats.Stats, frame int64, timeSec float64) StatRow {
	row := StatRow{Frame: frame, TimeSec: timeSec}

	latest := func(index stats.StatIndex) float64 {
		if !s.IsAvailable(index) {
			return 0
		}
		data := s.Data(index)
		if len(data) == 0 {
			return 0
		}
		return float64(data[len(data)-1] * s.GraphData(index).ScaleFactor)
	}

	row.FrameTimeMS = latest(stats.StatFrameTime)
	row.FPS = latest(stats.StatFPS)
	row.CPUPct = latest(stats.StatCPUUsage)
	row.MemoryMB = latest(stats.StatMemoryRSS)
	row.BatchTimeMS = latest(stats.StatBatchTime)
	row.DrawCalls = latest(stats.StatDrawCalls)
	row.Vertices = latest(stats.StatVertices)
	row.Entities = latest(stats.StatEntityCount)

	return row
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	statsFile *os.File

	// Track if headers have been written
	headerWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	statsPath := filepath.Join(dir, "stats.csv")
	f, err := os.Create(statsPath)
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}

	return &OutputManager{dir: dir, statsFile: f}, nil
}

// WriteRow writes one snapshot record to stats.csv.
func (om *OutputManager) WriteRow(row StatRow) error {
	if om == nil {
		return nil
	}

	records := []StatRow{row}

	if !om.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output file.
func (om *OutputManager) Close() error {
	if om == nil || om.statsFile == nil {
		return nil
	}
	return om.statsFile.Close()
}
