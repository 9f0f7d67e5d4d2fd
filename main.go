package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pulse/config"
	"github.com/pthm-cable/pulse/export"
	"github.com/pthm-cable/pulse/providers"
	"github.com/pthm-cable/pulse/render"
	"github.com/pthm-cable/pulse/scene"
	"github.com/pthm-cable/pulse/stats"
	"github.com/pthm-cable/pulse/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mode := flag.String("mode", "", "Sampling mode override: polling or continuous")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	seed := flag.Int64("seed", 0, "RNG seed for the demo scene (0 = time-based)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	sampling, err := samplingFromConfig(cfg, *mode)
	if err != nil {
		slog.Error("invalid sampling configuration", "error", err)
		os.Exit(1)
	}
	requested, err := requestedFromConfig(cfg)
	if err != nil {
		slog.Error("invalid requested stats", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Pulse")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	device := render.NewDevice(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.FramesInFlight)
	sc := scene.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), cfg.Scene.Particles, rng)

	// Providers in priority order. The frame time provider always comes
	// first so it wins the frame_time/fps claims.
	provs := []stats.Provider{
		providers.NewFrameTime(),
		providers.NewRenderStats(device),
		providers.NewGauge(stats.StatEntityCount, func() float32 {
			return float32(sc.Count())
		}),
	}
	if proc, err := providers.NewProcess(); err != nil {
		slog.Warn("process stats unavailable", "error", err)
	} else {
		provs = append(provs, proc)
	}

	bufferSize := cfg.Stats.BufferSize
	if bufferSize <= 0 {
		bufferSize = stats.BufferSizeForWidth(cfg.Screen.Width)
	}

	st := stats.New(provs, stats.Options{
		Requested:  requested,
		Sampling:   sampling,
		BufferSize: bufferSize,
		Alpha:      float32(cfg.Stats.Alpha),
	})
	defer st.Close()

	for _, index := range requested {
		if !st.IsAvailable(index) {
			slog.Warn("requested stat has no provider", "stat", index.String())
		}
	}

	om, err := export.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to initialize output", "error", err)
		os.Exit(1)
	}
	defer om.Close()
	if om != nil {
		if err := cfg.WriteYAML(filepath.Join(om.Dir(), "config.yaml")); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	slog.Info("starting",
		"mode", cfg.Stats.Mode,
		"buffer_size", bufferSize,
		"particles", cfg.Scene.Particles,
		"seed", rngSeed,
	)

	panel := ui.NewGraphPanel(10, 10, 320)
	clock := stats.NewTimer()

	var frame int64
	var exportAccum float64
	paused := false

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		frameIdx := uint32(frame % int64(device.FramesInFlight()))

		if rl.IsWindowResized() {
			w := rl.GetScreenWidth()
			h := rl.GetScreenHeight()
			device.SetSize(int32(w), int32(h))
			sc.Resize(float32(w), float32(h))
			if cfg.Stats.BufferSize <= 0 {
				st.Resize(w)
			}
		}
		if rl.IsKeyPressed(rl.KeyG) {
			panel.Toggle()
		}
		if rl.IsKeyPressed(rl.KeyP) {
			if paused {
				st.ResumeSampling()
			} else {
				st.PauseSampling()
			}
			paused = !paused
		}

		sc.Update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 10, G: 14, B: 24, A: 255})

		batch := device.BeginBatch(frameIdx)
		st.BatchBegun(batch, frameIdx)
		sc.Draw(batch)
		st.BatchEnding(batch, frameIdx)
		batch.End()

		panel.Draw(st)
		rl.DrawText("G: toggle graphs | P: pause sampling", 10, int32(rl.GetScreenHeight())-25, 14, rl.Gray)
		rl.EndDrawing()

		st.Update(dt, frameIdx)

		exportAccum += float64(dt)
		if om != nil && exportAccum >= cfg.Export.FlushEverySec {
			exportAccum = 0
			if err := om.WriteRow(export.SnapshotRow(st, frame, clock.Elapsed())); err != nil {
				slog.Error("failed to write stats row", "error", err)
			}
		}

		frame++
		if *maxFrames > 0 && frame >= int64(*maxFrames) {
			slog.Info("max frames reached", "frame", frame)
			break
		}
	}
}

// samplingFromConfig maps config values (plus an optional CLI override) to
// a sampling configuration.
func samplingFromConfig(cfg *config.Config, override string) (stats.SamplingConfig, error) {
	mode := cfg.Stats.Mode
	if override != "" {
		mode = override
	}

	out := stats.SamplingConfig{
		Interval: time.Duration(cfg.Stats.IntervalMS * float64(time.Millisecond)),
	}
	switch mode {
	case "polling":
		out.Mode = stats.SamplingPolling
	case "continuous":
		out.Mode = stats.SamplingContinuous
	default:
		return out, fmt.Errorf("unknown sampling mode %q", mode)
	}
	return out, nil
}

// requestedFromConfig parses the requested stat names.
func requestedFromConfig(cfg *config.Config) ([]stats.StatIndex, error) {
	out := make([]stats.StatIndex, 0, len(cfg.Stats.Requested))
	for _, name := range cfg.Stats.Requested {
		index, err := stats.ParseStatIndex(name)
		if err != nil {
			return nil, err
		}
		out = append(out, index)
	}
	return out, nil
}
