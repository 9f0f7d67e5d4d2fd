package stats

// StatGraphData holds presentation metadata for graphing one stat: how to
// label it, how to format the current value and how to scale the raw
// samples for display.
type StatGraphData struct {
	Label       string
	Format      string  // printf format for the scaled current value
	ScaleFactor float32 // multiplier applied to raw samples before display
	HasFixedMax bool
	MaxValue    float32
}

// graphMap is populated once and never mutated, so reads need no
// synchronization.
var graphMap = map[StatIndex]StatGraphData{
	StatFrameTime:   {Label: "Frame Time", Format: "%5.2f ms", ScaleFactor: 1000},
	StatFPS:         {Label: "FPS", Format: "%4.0f", ScaleFactor: 1},
	StatCPUUsage:    {Label: "CPU Usage", Format: "%4.1f %%", ScaleFactor: 1, HasFixedMax: true, MaxValue: 100},
	StatMemoryRSS:   {Label: "Memory", Format: "%6.1f MB", ScaleFactor: 1.0 / (1024 * 1024)},
	StatBatchTime:   {Label: "Batch Time", Format: "%5.2f ms", ScaleFactor: 1000},
	StatDrawCalls:   {Label: "Draw Calls", Format: "%5.0f", ScaleFactor: 1},
	StatVertices:    {Label: "Vertices", Format: "%7.0f", ScaleFactor: 1},
	StatEntityCount: {Label: "Entities", Format: "%5.0f", ScaleFactor: 1},
}
