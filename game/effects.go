package game

import (
	"math"

	"github.com/plus3/oneshot/geom"
)

// SpawnShrapnelFan releases the configured number of pieces from at, evenly
// spaced by angle starting straight down. Each piece takes its own slot; once
// the pool is exhausted the remaining pieces are dropped. It returns how many
// pieces were spawned.
func (w *World) SpawnShrapnelFan(at geom.Vec2) int {
	wc := &w.Config.Weapons
	if wc.ShrapnelCount <= 0 {
		return 0
	}
	step := 2 * math.Pi / float32(wc.ShrapnelCount)

	spawned := 0
	for i := range wc.ShrapnelCount {
		_, s, ok := w.Shrapnel.Acquire()
		if !ok {
			continue
		}
		sin, cos := geom.Sincos(float32(i) * step)
		*s = Shrapnel{
			Pos:  at,
			Vel:  geom.V(sin*wc.ShrapnelSpeed, cos*wc.ShrapnelSpeed),
			Life: wc.ShrapnelLife,
		}
		spawned++
	}
	return spawned
}

// SpawnExplosion places a visual marker at at. It reports false when the
// explosion pool is full.
func (w *World) SpawnExplosion(at geom.Vec2) bool {
	_, e, ok := w.Explosions.Acquire()
	if !ok {
		return false
	}
	*e = Explosion{Pos: at, Timer: w.Config.Weapons.ExplosionTime}
	return true
}

// UpdateShrapnel moves shrapnel and expires spent pieces.
func (w *World) UpdateShrapnel(dt float32) {
	for h, s := range w.Shrapnel.All() {
		s.Life -= dt
		s.Pos = s.Pos.Add(s.Vel.Scale(dt))
		if s.Life <= 0 {
			w.Shrapnel.Release(h)
		}
	}
}

// UpdateExplosions counts explosion timers down.
func (w *World) UpdateExplosions(dt float32) {
	for h, e := range w.Explosions.All() {
		e.Timer -= dt
		if e.Timer <= 0 {
			w.Explosions.Release(h)
		}
	}
}
