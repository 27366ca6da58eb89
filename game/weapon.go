package game

import (
	"go.uber.org/zap"

	"github.com/plus3/oneshot/geom"
)

// FireResult is the outcome of a fire request.
type FireResult uint8

const (
	Fired FireResult = iota
	NoAmmo
	Locked
	Dropped
	ShieldRaised
	BeamReleased
)

func (r FireResult) String() string {
	switch r {
	case Fired:
		return "fired"
	case NoAmmo:
		return "no-ammo"
	case Locked:
		return "locked"
	case Dropped:
		return "dropped"
	case ShieldRaised:
		return "shield-raised"
	case BeamReleased:
		return "beam-released"
	}
	return "unknown"
}

const shotCost = 1

// Fire turns a weapon into a projectile (or the shield) at origin. Ammo is
// only charged when something was actually created. A full bullet pool drops
// the request.
func (w *World) Fire(weapon Weapon, origin geom.Vec2) FireResult {
	if !w.Progress.Owned[weapon] {
		return Locked
	}

	wc := &w.Config.Weapons
	switch weapon {
	case WeaponShield:
		if w.Progress.Ammo < wc.ShieldCost {
			return NoAmmo
		}
		w.Progress.Ammo -= wc.ShieldCost
		w.Shield = Shield{Active: true, Remaining: wc.ShieldTime}
		w.Log.Debug("shield raised", zap.Int("ammo", w.Progress.Ammo))
		return ShieldRaised

	case WeaponLaser:
		if h, ok := w.playerBeam(); ok {
			w.Bullets.Release(h)
			return BeamReleased
		}
		return w.spawnShot(origin, geom.Vec2{}, Beam{})

	case WeaponGrenade:
		if w.Progress.Ammo < shotCost {
			return NoAmmo
		}
		angle := geom.Deg2Rad(float32(w.Rand.Int(-int(wc.GrenadeSpread), int(wc.GrenadeSpread))))
		sin, cos := geom.Sincos(angle)
		return w.spawnShot(origin, geom.V(sin*wc.GrenadeDrift, -cos*wc.GrenadeSpeed), Grenade{})

	case WeaponBasic:
		return w.spawnShot(origin, geom.V(0, -wc.BasicSpeed), Basic{})

	case weaponCount:
	}
	panic("game: fire with unknown weapon " + weapon.String())
}

func (w *World) spawnShot(origin, vel geom.Vec2, kind Kind) FireResult {
	if w.Progress.Ammo < shotCost {
		return NoAmmo
	}
	_, p, ok := w.Bullets.Acquire()
	if !ok {
		return Dropped
	}
	*p = Projectile{Pos: origin, Vel: vel, Owner: OwnerPlayer, Kind: kind}
	w.Progress.Ammo -= shotCost
	return Fired
}

// SelectWeapon equips an owned projectile weapon. Shield cannot be equipped;
// it is raised directly.
func (w *World) SelectWeapon(weapon Weapon) bool {
	if weapon == WeaponShield || !w.Progress.Owned[weapon] {
		return false
	}
	w.Player.Weapon = weapon
	return true
}
