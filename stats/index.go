package stats

import "fmt"

// StatIndex identifies one measurable quantity, e.g. frame time or the
// number of draw calls submitted in a frame.
type StatIndex int

const (
	StatFrameTime StatIndex = iota
	StatFPS
	StatCPUUsage
	StatMemoryRSS
	StatBatchTime
	StatDrawCalls
	StatVertices
	StatEntityCount

	statIndexCount
)

var statNames = [statIndexCount]string{
	StatFrameTime:   "frame_time",
	StatFPS:         "fps",
	StatCPUUsage:    "cpu_usage",
	StatMemoryRSS:   "memory_rss",
	StatBatchTime:   "batch_time",
	StatDrawCalls:   "draw_calls",
	StatVertices:    "vertices",
	StatEntityCount: "entity_count",
}

func (i StatIndex) String() string {
	if i < 0 || i >= statIndexCount {
		return fmt.Sprintf("StatIndex(%d)", int(i))
	}
	return statNames[i]
}

// ParseStatIndex resolves a stat name as used in config files.
func ParseStatIndex(name string) (StatIndex, error) {
	for i, n := range statNames {
		if n == name {
			return StatIndex(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}
