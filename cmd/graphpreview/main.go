// Graph preview tool - interactive smoothing visualization with sliders.
//
// Feeds a noisy synthetic signal through the real stats engine so the
// effect of the smoothing factor can be judged by eye.
//
// Usage: go run ./cmd/graphpreview
package main

import (
	"fmt"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pulse/stats"
	"github.com/pthm-cable/pulse/ui"
)

const (
	windowWidth  = 900
	windowHeight = 620
	panelWidth   = 300
)

// PreviewParams holds the synthetic signal and smoothing parameters.
type PreviewParams struct {
	Alpha     float32
	Amplitude float32
	Frequency float32
	Noise     float32
}

// synthetic produces a noisy sine wave for the frame_time stat.
type synthetic struct {
	params *PreviewParams
	rng    *rand.Rand
	t      float32
}

func (s *synthetic) IsAvailable(index stats.StatIndex) bool {
	return index == stats.StatFrameTime
}

func (s *synthetic) Sample(delta float32) (stats.Counters, error) {
	s.t += delta
	wave := s.params.Amplitude * float32(math.Sin(float64(2*math.Pi*s.params.Frequency*s.t)))
	noise := (s.rng.Float32()*2 - 1) * s.params.Noise
	return stats.Counters{stats.StatFrameTime: 0.016 + wave + noise}, nil
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Graph Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := PreviewParams{Alpha: 0.2, Amplitude: 0.004, Frequency: 0.5, Noise: 0.002}
	prov := &synthetic{params: &params, rng: rand.New(rand.NewSource(1))}

	// Alpha is fixed at construction, so changing it rebuilds the engine.
	newStats := func() *stats.Stats {
		return stats.New([]stats.Provider{prov}, stats.Options{
			Requested:  []stats.StatIndex{stats.StatFrameTime},
			Sampling:   stats.SamplingConfig{Mode: stats.SamplingPolling},
			BufferSize: 128,
			Alpha:      params.Alpha,
		})
	}
	st := newStats()
	defer func() { st.Close() }()

	panel := ui.NewGraphPanel(20, 20, windowWidth-panelWidth-60)

	for !rl.WindowShouldClose() {
		st.Update(rl.GetFrameTime(), 0)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 10, G: 14, B: 24, A: 255})

		panel.Draw(st)

		panelX := float32(windowWidth - panelWidth - 20)
		panelY := float32(20)

		rl.DrawText("Smoothing Parameters", int32(panelX), int32(panelY), 20, rl.LightGray)
		panelY += 35

		// Alpha slider
		rl.DrawText("Alpha (smoothing factor)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newAlpha := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0.05", "1.0",
			params.Alpha, 0.05, 1.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Alpha), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.LightGray)
		if newAlpha != params.Alpha {
			params.Alpha = newAlpha
			st.Close()
			st = newStats()
		}
		panelY += 35

		// Amplitude slider
		rl.DrawText("Wave amplitude (ms)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Amplitude = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0", "10",
			params.Amplitude*1000, 0, 10,
		) / 1000
		rl.DrawText(fmt.Sprintf("%.1f", params.Amplitude*1000), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.LightGray)
		panelY += 35

		// Frequency slider
		rl.DrawText("Wave frequency (Hz)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Frequency = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0.1", "2.0",
			params.Frequency, 0.1, 2.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Frequency), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.LightGray)
		panelY += 35

		// Noise slider
		rl.DrawText("Noise amplitude (ms)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Noise = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0", "5",
			params.Noise*1000, 0, 5,
		) / 1000
		rl.DrawText(fmt.Sprintf("%.1f", params.Noise*1000), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.LightGray)

		rl.EndDrawing()
	}
}
