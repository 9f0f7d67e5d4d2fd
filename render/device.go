// Package render wraps the drawing context and the command batches the
// stats engine instruments.
package render

// Device describes the rendering context shared with stats providers that
// need per-frame-in-flight state.
type Device struct {
	width          int32
	height         int32
	framesInFlight int
}

// NewDevice creates a device descriptor. framesInFlight is the number of
// frames that may be recorded before the oldest completes (minimum 1).
func NewDevice(width, height int32, framesInFlight int) *Device {
	if framesInFlight < 1 {
		framesInFlight = 1
	}
	return &Device{width: width, height: height, framesInFlight: framesInFlight}
}

// Width returns the framebuffer width in pixels.
func (d *Device) Width() int32 {
	return d.width
}

// Height returns the framebuffer height in pixels.
func (d *Device) Height() int32 {
	return d.height
}

// FramesInFlight returns the number of in-flight frames.
func (d *Device) FramesInFlight() int {
	return d.framesInFlight
}

// SetSize records a new framebuffer size after a window resize.
func (d *Device) SetSize(width, height int32) {
	d.width = width
	d.height = height
}

// BeginBatch starts recording a command batch for the given in-flight
// frame.
func (d *Device) BeginBatch(frameIdx uint32) *CommandBatch {
	return &CommandBatch{frameIdx: frameIdx, open: true}
}
