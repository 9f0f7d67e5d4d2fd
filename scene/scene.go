// Package scene provides the demo particle world the stats engine
// measures: a few hundred entities bouncing inside the window, enough
// per-frame work for the counters to show something real.
package scene

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pulse/render"
)

// Position is an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity is an entity's velocity in units per second.
type Velocity struct {
	X, Y float32
}

// Scene holds the particle world.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map2[Position, Velocity]
	filter *ecs.Filter2[Position, Velocity]

	width  float32
	height float32
	radius float32
	count  int
}

// New creates a scene with n particles at random positions and headings.
func New(width, height float32, n int, rng *rand.Rand) *Scene {
	world := ecs.NewWorld()

	s := &Scene{
		world:  world,
		mapper: ecs.NewMap2[Position, Velocity](world),
		filter: ecs.NewFilter2[Position, Velocity](world),
		width:  width,
		height: height,
		radius: 3,
		count:  n,
	}

	for i := 0; i < n; i++ {
		pos := &Position{
			X: rng.Float32() * width,
			Y: rng.Float32() * height,
		}
		vel := &Velocity{
			X: (rng.Float32()*2 - 1) * 120,
			Y: (rng.Float32()*2 - 1) * 120,
		}
		s.mapper.NewEntity(pos, vel)
	}

	return s
}

// Count returns the number of particles. Constant for the scene's
// lifetime, so safe to read from any goroutine.
func (s *Scene) Count() int {
	return s.count
}

// Resize updates the bounce bounds after a window resize.
func (s *Scene) Resize(width, height float32) {
	s.width = width
	s.height = height
}

// Update advances all particles by dt seconds, bouncing off the bounds.
func (s *Scene) Update(dt float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		if pos.X < 0 {
			pos.X = -pos.X
			vel.X = -vel.X
		} else if pos.X > s.width {
			pos.X = 2*s.width - pos.X
			vel.X = -vel.X
		}
		if pos.Y < 0 {
			pos.Y = -pos.Y
			vel.Y = -vel.Y
		} else if pos.Y > s.height {
			pos.Y = 2*s.height - pos.Y
			vel.Y = -vel.Y
		}
	}
}

// Draw records one circle per particle into the command batch.
func (s *Scene) Draw(batch *render.CommandBatch) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()

		speed := vel.X*vel.X + vel.Y*vel.Y
		col := rl.SkyBlue
		if speed > 120*120 {
			col = rl.Orange
		}
		batch.DrawCircle(rl.Vector2{X: pos.X, Y: pos.Y}, s.radius, col)
	}
}
