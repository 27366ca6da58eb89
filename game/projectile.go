package game

import (
	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/pool"
)

// offscreenMargin is how far a straight shot may leave the play area before it
// is released.
const offscreenMargin = 50

// UpdateProjectiles advances every active projectile by dt. Grenades that
// detonate queue a blast for the collision step and spawn their area effects.
func (w *World) UpdateProjectiles(dt float32) {
	wc := &w.Config.Weapons

	for h, p := range w.Bullets.All() {
		p.Age += dt

		switch p.Kind.(type) {
		case Basic:
			p.Pos = p.Pos.Add(p.Vel.Scale(dt))
			if p.Pos.Y < -offscreenMargin || p.Pos.Y > w.Height+offscreenMargin {
				w.Bullets.Release(h)
			}

		case Grenade:
			p.Vel.Y += wc.Gravity * dt
			p.Pos = p.Pos.Add(p.Vel.Scale(dt))
			if p.Vel.Y > 0 && p.Pos.Y >= wc.LandingY && p.Age < wc.LandingAge {
				p.Age = wc.LandingAge
			}
			if p.Age >= wc.Fuse {
				w.detonate(p.Pos)
				w.Bullets.Release(h)
			}

		case Beam:
			if p.Age > wc.BeamDuration {
				w.Bullets.Release(h)
			}

		default:
			panic("game: projectile with unknown kind")
		}
	}
}

func (w *World) detonate(at geom.Vec2) {
	w.Detonations = append(w.Detonations, at)
	w.SpawnShrapnelFan(at)
	w.SpawnExplosion(at)
}

// BeamRect is the area a beam of the given age covers: a vertical strip from
// the top of the screen down to just above the player, widening with age.
func (w *World) BeamRect(age float32) geom.Rect {
	wc := &w.Config.Weapons
	width := wc.BeamWidth + wc.BeamGrowth*age
	return geom.Rect{
		X: w.Player.Pos.X - width/2,
		Y: 0,
		W: width,
		H: w.Player.Pos.Y - 20,
	}
}

func (w *World) playerBeam() (pool.Handle, bool) {
	for h, p := range w.Bullets.All() {
		if _, ok := p.Kind.(Beam); ok && p.Owner == OwnerPlayer {
			return h, true
		}
	}
	return 0, false
}
