package game

import (
	"github.com/plus3/oneshot/engine"
	"github.com/plus3/oneshot/platform"
)

// Frame is the per-tick context handed to game systems.
type Frame = engine.Frame[*World]

// ScreenSystem resolves global keys and menu input, and gates gameplay.
type ScreenSystem struct{}

func (s *ScreenSystem) Execute(frame *Frame) {
	frame.World.UpdateScreen(frame.Dt())
}

// PlayerSystem applies weapon and movement input.
type PlayerSystem struct{}

func (s *PlayerSystem) Execute(frame *Frame) {
	if !frame.World.Live() {
		return
	}
	frame.World.UpdatePlayer(frame.Dt())
}

// ProjectileSystem integrates projectiles and area effects. Explosions keep
// fading on every screen.
type ProjectileSystem struct{}

func (s *ProjectileSystem) Execute(frame *Frame) {
	w, dt := frame.World, frame.Dt()
	w.UpdateExplosions(dt)
	if !w.Live() || w.Screen != ScreenPlaying {
		return
	}
	w.UpdateShrapnel(dt)
	w.UpdateProjectiles(dt)
}

// EnemySystem steers enemies and fires their shots.
type EnemySystem struct{}

func (s *EnemySystem) Execute(frame *Frame) {
	if !frame.World.Live() || frame.World.Screen != ScreenPlaying {
		return
	}
	frame.World.UpdateEnemies(frame.Dt())
}

// CollisionSystem resolves hits on post-motion positions.
type CollisionSystem struct{}

func (s *CollisionSystem) Execute(frame *Frame) {
	if !frame.World.Live() || frame.World.Screen != ScreenPlaying {
		return
	}
	frame.World.ResolveCollisions(frame.Dt())
}

// ProgressionSystem checks the level's clear rule once combat is resolved.
type ProgressionSystem struct{}

func (s *ProgressionSystem) Execute(frame *Frame) {
	if !frame.World.Live() {
		return
	}
	frame.World.CheckClear()
}

// RenderSystem draws the frame. Renderers that need explicit frame bracketing
// implement platform.FrameRenderer.
type RenderSystem struct {
	Renderer platform.Renderer
}

func (s *RenderSystem) Execute(frame *Frame) {
	if fr, ok := s.Renderer.(platform.FrameRenderer); ok {
		fr.BeginFrame()
		defer fr.EndFrame()
	}
	Draw(frame.World, s.Renderer)
}

// NewScheduler registers the game systems on a scheduler for w in frame
// order. A nil renderer yields a headless simulation.
func NewScheduler(w *World, r platform.Renderer) *engine.Scheduler[*World] {
	s := engine.NewScheduler(w)
	RegisterSystems(s, r)
	return s
}

// RegisterSystems appends the game systems to s, for hosts that run their own
// systems around them.
func RegisterSystems(s *engine.Scheduler[*World], r platform.Renderer) {
	s.Register(&ScreenSystem{})
	s.Register(&PlayerSystem{})
	s.Register(&ProjectileSystem{})
	s.Register(&EnemySystem{})
	s.Register(&CollisionSystem{})
	s.Register(&ProgressionSystem{})
	if r != nil {
		s.Register(&RenderSystem{Renderer: r})
	}
}
