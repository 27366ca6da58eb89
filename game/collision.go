package game

import (
	"go.uber.org/zap"

	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/pool"
)

const (
	hitShake     = 0.1
	beamShake    = 0.05
	deflectShake = 0.15
)

// ResolveCollisions applies this frame's hits after all motion has been
// integrated. Order: grenade blasts, player shots, shrapnel, enemy shots
// against the player, then beams.
func (w *World) ResolveCollisions(dt float32) {
	w.resolveBlasts()
	w.resolvePlayerShots()
	w.resolveShrapnel()
	w.resolveEnemyShots()
	w.resolveBeams(dt)
}

func (w *World) resolveBlasts() {
	radius := w.Config.Weapons.BlastRadius
	for _, at := range w.Detonations {
		for h, e := range w.Enemies.All() {
			if geom.Dist(at, e.Pos) >= radius {
				continue
			}
			spec := w.Roster.Class(e.Class)
			if spec.BlastLethal {
				e.Health = 0
			} else {
				e.Health -= spec.BlastDamage
			}
			e.ShakeTimer = hitShake
			w.checkKill(h, e)
		}
	}
	w.Detonations = w.Detonations[:0]
}

func (w *World) resolvePlayerShots() {
	radius := w.Config.Weapons.BasicRadius
	for bh, p := range w.Bullets.All() {
		if p.Owner != OwnerPlayer {
			continue
		}
		if _, ok := p.Kind.(Basic); !ok {
			continue
		}
		for eh, e := range w.Enemies.All() {
			if !geom.CircleCircle(p.Pos, radius, e.Pos, e.Size) {
				continue
			}
			w.damage(eh, e, 1, hitShake)
			w.Bullets.Release(bh)
			break
		}
	}
}

func (w *World) resolveShrapnel() {
	radius := w.Config.Weapons.ShrapnelRadius
	for sh, s := range w.Shrapnel.All() {
		for eh, e := range w.Enemies.All() {
			if !geom.CircleCircle(s.Pos, radius, e.Pos, e.Size) {
				continue
			}
			w.damage(eh, e, 1, hitShake)
			w.Shrapnel.Release(sh)
			break
		}
	}
}

func (w *World) resolveEnemyShots() {
	bulletRadius := w.Config.Enemies.BulletRadius
	ring := w.Config.Weapons.ShieldRadius + bulletRadius
	player := w.Player.Pos

	for h, p := range w.Bullets.All() {
		if p.Owner != OwnerEnemy {
			continue
		}

		offset := p.Pos.Sub(player)
		dist := offset.Len()
		if w.Shield.Active && dist <= ring {
			p.Vel = p.Vel.Scale(-1)
			if dist > 0.1 {
				p.Pos = player.Add(offset.Scale(ring / dist))
			}
			w.Player.ShakeTimer = deflectShake
			continue
		}

		if geom.CircleCircle(p.Pos, bulletRadius, player, w.Config.Player.Radius) {
			w.Bullets.Release(h)
			w.fail("hit")
			return
		}
	}
}

func (w *World) resolveBeams(dt float32) {
	dps := w.Config.Weapons.BeamDPS
	for _, p := range w.Bullets.All() {
		if _, ok := p.Kind.(Beam); !ok || p.Owner != OwnerPlayer {
			continue
		}
		rect := w.BeamRect(p.Age)
		for eh, e := range w.Enemies.All() {
			if geom.CircleRect(e.Pos, e.Size, rect) {
				w.damage(eh, e, dps*dt, beamShake)
			}
		}
	}
}

func (w *World) damage(h pool.Handle, e *Enemy, amount, shake float32) {
	e.Health -= amount
	e.ShakeTimer = shake
	w.checkKill(h, e)
}

// checkKill releases a dead enemy, updates the counters, pays out the class
// reward and marks the spot with an explosion.
func (w *World) checkKill(h pool.Handle, e *Enemy) {
	if e.Health > 0 {
		return
	}

	pos, class := e.Pos, e.Class
	if !w.Enemies.Release(h) {
		return
	}

	w.Alive--
	if class.Heavy() {
		w.BigAlive--
	}
	if class == ClassBoss {
		w.BossAlive--
	}
	w.Kills++

	spec := w.Roster.Class(class)
	w.Progress.Gold += spec.Gold
	w.Progress.Ammo += spec.Ammo
	w.SpawnExplosion(pos)

	w.Log.Debug("kill",
		zap.Stringer("class", class),
		zap.Int("gold", w.Progress.Gold),
		zap.Int("ammo", w.Progress.Ammo))
}
