// Package ui renders the live stats overlay.
package ui

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/pulse/stats"
)

// Panel layout constants.
const (
	graphHeight = 48
	headerGap   = 16
	rowGap      = 8
	padding     = 6
)

// GraphPanel renders one stacked graph per available stat, oldest sample
// on the left.
type GraphPanel struct {
	x, y    int32
	width   int32
	visible bool
}

// NewGraphPanel creates a graph panel anchored at x, y.
func NewGraphPanel(x, y, width int32) *GraphPanel {
	return &GraphPanel{x: x, y: y, width: width, visible: true}
}

// Toggle switches panel visibility.
func (p *GraphPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *GraphPanel) IsVisible() bool {
	return p.visible
}

// SetPosition updates the panel position.
func (p *GraphPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders a graph for every available requested stat.
func (p *GraphPanel) Draw(s *stats.Stats) {
	if !p.visible {
		return
	}

	y := p.y
	for _, index := range s.RequestedStats() {
		if !s.IsAvailable(index) {
			continue
		}
		p.drawGraph(s, index, y)
		y += headerGap + graphHeight + rowGap
	}
}

// Height returns the total panel height for the given stats instance.
func (p *GraphPanel) Height(s *stats.Stats) int32 {
	var rows int32
	for _, index := range s.RequestedStats() {
		if s.IsAvailable(index) {
			rows++
		}
	}
	return rows * (headerGap + graphHeight + rowGap)
}

func (p *GraphPanel) drawGraph(s *stats.Stats, index stats.StatIndex, y int32) {
	data := s.Data(index)
	gd := s.GraphData(index)

	// Header: label, current value, mean and p95 over the visible window
	header := gd.Label
	if len(data) > 0 {
		current := data[len(data)-1] * gd.ScaleFactor
		header += ": " + fmt.Sprintf(gd.Format, current)
	}
	if len(data) >= 2 {
		mean, p95 := summarize(data)
		header += fmt.Sprintf("  (avg %s  p95 %s)",
			fmt.Sprintf(gd.Format, mean*gd.ScaleFactor),
			fmt.Sprintf(gd.Format, p95*gd.ScaleFactor))
	}
	rl.DrawText(header, p.x, y, 14, rl.White)

	// Plot area
	top := y + headerGap
	rl.DrawRectangle(p.x, top, p.width, graphHeight, rl.Fade(rl.Black, 0.5))
	rl.DrawRectangleLines(p.x, top, p.width, graphHeight, rl.DarkGray)

	if len(data) < 2 {
		return
	}

	maxVal := gd.MaxValue / gd.ScaleFactor
	if !gd.HasFixedMax {
		maxVal = 0
		for _, v := range data {
			if v > maxVal {
				maxVal = v
			}
		}
		maxVal *= 1.05
	}
	if maxVal <= 0 {
		return
	}

	plotW := float32(p.width - 2*padding)
	plotH := float32(graphHeight - 2*padding)
	step := plotW / float32(len(data)-1)

	toPoint := func(i int) rl.Vector2 {
		v := data[i] / maxVal
		if v > 1 {
			v = 1
		}
		return rl.Vector2{
			X: float32(p.x+padding) + float32(i)*step,
			Y: float32(top+padding) + plotH*(1-v),
		}
	}

	prev := toPoint(0)
	for i := 1; i < len(data); i++ {
		next := toPoint(i)
		rl.DrawLineV(prev, next, rl.Green)
		prev = next
	}
}

// summarize returns mean and 95th percentile of the raw samples.
func summarize(data []float32) (mean, p95 float32) {
	values := make([]float64, len(data))
	for i, v := range data {
		values[i] = float64(v)
	}
	sort.Float64s(values)
	return float32(stat.Mean(values, nil)),
		float32(stat.Quantile(0.95, stat.Empirical, values, nil))
}
