package game

import (
	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
)

const playerJitter = 4

var weaponKeys = []struct {
	key    platform.Key
	weapon Weapon
}{
	{platform.KeyOne, WeaponBasic},
	{platform.KeyTwo, WeaponGrenade},
	{platform.KeyThree, WeaponLaser},
}

// UpdatePlayer handles weapon selection, firing and movement, and counts the
// shield and shake timers down.
func (w *World) UpdatePlayer(dt float32) {
	in := w.Input

	for _, wk := range weaponKeys {
		if in.Pressed(wk.key) {
			w.SelectWeapon(wk.weapon)
		}
	}
	if in.Pressed(platform.KeyFour) {
		w.Fire(WeaponShield, w.Player.Pos)
	}
	if in.Pressed(platform.KeyE) {
		if w.Fire(w.Player.Weapon, w.Muzzle()) == NoAmmo {
			w.fail("fired with no ammo")
			return
		}
	}

	w.move(dt)

	if w.Shield.Active {
		w.Shield.Remaining -= dt
		if w.Shield.Remaining <= 0 {
			w.Shield = Shield{}
		}
	}

	if w.Player.ShakeTimer > 0 {
		w.Player.ShakeTimer -= dt
		w.Player.Shake = geom.V(w.randUnit()*playerJitter, w.randUnit()*playerJitter)
	} else {
		w.Player.Shake = geom.Vec2{}
	}
}

func (w *World) move(dt float32) {
	in := w.Input
	pc := &w.Config.Player
	step := pc.Speed * dt
	pos := &w.Player.Pos

	if in.Down(platform.KeyW) && pos.Y > w.FenceY+pc.Margin {
		pos.Y -= step
	}
	if in.Down(platform.KeyS) && pos.Y < w.BarY-pc.Margin {
		pos.Y += step
	}
	if in.Down(platform.KeyA) && pos.X > pc.Margin {
		pos.X -= step
	}
	if in.Down(platform.KeyD) && pos.X < w.Width-pc.Margin {
		pos.X += step
	}
}
