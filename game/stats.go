package game

import "github.com/plus3/oneshot/pool"

// PoolUsage is a named snapshot of one entity pool.
type PoolUsage struct {
	Name string
	pool.Stats
}

// PoolUsage reports every entity pool in a fixed order.
func (w *World) PoolUsage() []PoolUsage {
	return []PoolUsage{
		{"bullets", w.Bullets.Stats()},
		{"enemies", w.Enemies.Stats()},
		{"shrapnel", w.Shrapnel.Stats()},
		{"explosions", w.Explosions.Stats()},
	}
}

// RunSummary is the outcome-relevant state of a world at a point in time.
type RunSummary struct {
	Screen Screen
	Level  string
	Gold   int
	Ammo   int
	Kills  int
	Alive  int
}

func (w *World) Summary() RunSummary {
	return RunSummary{
		Screen: w.Screen,
		Level:  w.CurrentLevel().Name,
		Gold:   w.Progress.Gold,
		Ammo:   w.Progress.Ammo,
		Kills:  w.Kills,
		Alive:  w.Alive,
	}
}
