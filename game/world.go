// Package game is the simulation core: one World value owns every pool and
// piece of run state, and a fixed sequence of systems advances it one frame at
// a time.
package game

import (
	"go.uber.org/zap"

	"github.com/plus3/oneshot/config"
	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
	"github.com/plus3/oneshot/pool"
)

// Services are the host facilities the world consumes.
type Services struct {
	Input  platform.Input
	Random platform.Random
	Logger *zap.Logger
}

type World struct {
	Config *config.Config
	Roster *Roster
	Input  platform.Input
	Rand   platform.Random
	Log    *zap.Logger

	Width, Height float32
	FenceY, BarY  float32

	Bullets    *pool.Pool[Projectile]
	Enemies    *pool.Pool[Enemy]
	Shrapnel   *pool.Pool[Shrapnel]
	Explosions *pool.Pool[Explosion]

	Player   Player
	Shield   Shield
	Progress Progress

	Screen      Screen
	MenuSel     int
	LevelSel    int
	Level       int // index into Roster.Levels of the level being played
	Countdown   float32
	ScreenTimer float32
	Spin        float32 // degrees, drives the waiting spinner

	Alive     int
	BigAlive  int
	BossAlive int
	Kills     int

	// Detonations holds grenade blast centres queued by the projectile step
	// and consumed by the collision step of the same frame.
	Detonations []geom.Vec2

	// Quit is set when the player picks Quit from the menu.
	Quit bool

	live bool
}

// NewWorld builds a world at the main menu with nothing owned and only the
// first level unlocked.
func NewWorld(cfg *config.Config, roster *Roster, svc Services) *World {
	if svc.Logger == nil {
		svc.Logger = zap.NewNop()
	}

	w := &World{
		Config: cfg,
		Roster: roster,
		Input:  svc.Input,
		Rand:   svc.Random,
		Log:    svc.Logger,

		Width:  float32(cfg.Window.Width),
		Height: float32(cfg.Window.Height),

		Bullets:    pool.New[Projectile](cfg.Pools.Bullets),
		Enemies:    pool.New[Enemy](cfg.Pools.Enemies),
		Shrapnel:   pool.New[Shrapnel](cfg.Pools.Shrapnel),
		Explosions: pool.New[Explosion](cfg.Pools.Explosions),
	}
	w.FenceY = w.Height * 0.65
	w.BarY = w.Height - 80

	w.Player = Player{Pos: w.PlayerStart(), Weapon: WeaponBasic}
	w.Progress = Progress{
		Ammo:     cfg.Progression.StartAmmo,
		Unlocked: make([]bool, len(roster.Levels)),
	}
	w.Progress.Owned[WeaponBasic] = true
	w.Progress.Unlocked[0] = true

	return w
}

// PlayerStart is where the player stands at the start of a level.
func (w *World) PlayerStart() geom.Vec2 {
	return geom.V(w.Width/2, w.Height*0.8)
}

// Muzzle is where the player's shots leave the gun barrel.
func (w *World) Muzzle() geom.Vec2 {
	return w.Player.Pos.Add(geom.V(26, -65))
}

// Live reports whether gameplay advances this frame: the run is playing and
// the countdown has finished.
func (w *World) Live() bool {
	return w.live
}

// CurrentLevel returns the roster entry of the level being played.
func (w *World) CurrentLevel() *LevelSpec {
	return &w.Roster.Levels[w.Level]
}

func (w *World) setScreen(s Screen) {
	if w.Screen == s {
		return
	}
	w.Log.Debug("screen", zap.Stringer("from", w.Screen), zap.Stringer("to", s))
	w.Screen = s
	w.ScreenTimer = 0
}

// randUnit returns a uniform value in [-1, 1] at 0.01 resolution.
func (w *World) randUnit() float32 {
	return float32(w.Rand.Int(-100, 100)) / 100
}
