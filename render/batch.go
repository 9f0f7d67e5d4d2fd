package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Vertex counts submitted per primitive. Raylib draws circles as triangle
// fans with 36 segments and rectangles as two triangles.
const (
	circleVertices = 38
	rectVertices   = 6
	lineVertices   = 2
)

// CommandBatch is one unit of GPU work: the draw commands recorded between
// Device.BeginBatch and End, tagged with the in-flight frame index. Stats
// providers annotate batches around those boundaries to time them and read
// the submission counters.
type CommandBatch struct {
	frameIdx  uint32
	drawCalls int
	vertices  int
	open      bool
}

// FrameIndex returns the in-flight frame this batch belongs to.
func (b *CommandBatch) FrameIndex() uint32 {
	return b.frameIdx
}

// DrawCalls returns the number of draw commands recorded so far.
func (b *CommandBatch) DrawCalls() int {
	return b.drawCalls
}

// Vertices returns the number of vertices submitted so far.
func (b *CommandBatch) Vertices() int {
	return b.vertices
}

// Open reports whether the batch is still recording.
func (b *CommandBatch) Open() bool {
	return b.open
}

// End marks the batch as no longer recording.
func (b *CommandBatch) End() {
	b.open = false
}

// RecordDraw counts one draw command with the given vertex count. The
// drawing helpers below call it; instrumented code paths that draw through
// raylib directly can call it themselves.
func (b *CommandBatch) RecordDraw(vertices int) {
	b.drawCalls++
	b.vertices += vertices
}

// DrawCircle draws a filled circle and records it.
func (b *CommandBatch) DrawCircle(center rl.Vector2, radius float32, col rl.Color) {
	rl.DrawCircleV(center, radius, col)
	b.RecordDraw(circleVertices)
}

// DrawRectangle draws a filled rectangle and records it.
func (b *CommandBatch) DrawRectangle(x, y, width, height int32, col rl.Color) {
	rl.DrawRectangle(x, y, width, height, col)
	b.RecordDraw(rectVertices)
}

// DrawLine draws a line segment and records it.
func (b *CommandBatch) DrawLine(start, end rl.Vector2, col rl.Color) {
	rl.DrawLineV(start, end, col)
	b.RecordDraw(lineVertices)
}
