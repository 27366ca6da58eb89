// Package sim plays the game headless: an autopilot drives scripted input,
// and runs report how the world fared.
package sim

import (
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
)

// Autopilot decides the next frame's key presses from the world state. It
// buys what it can afford, plays the highest unlocked level, and during play
// tracks the nearest enemy and fires when it is lined up.
type Autopilot struct {
	input *platform.Scripted

	// FireEvery is the minimum number of frames between shots.
	FireEvery int

	sinceShot int
}

func NewAutopilot(in *platform.Scripted) *Autopilot {
	return &Autopilot{input: in, FireEvery: 20}
}

// Plan schedules presses for the current frame.
func (a *Autopilot) Plan(w *game.World) {
	a.input.ReleaseAll()
	a.sinceShot++

	switch w.Screen {
	case game.ScreenMenu:
		a.menu(w)
	case game.ScreenShop:
		a.shop(w)
	case game.ScreenLevelSelect:
		a.levelSelect(w)
	case game.ScreenPlaying:
		if w.Countdown <= 0 {
			a.play(w)
		}
	case game.ScreenSuccess, game.ScreenFail, game.ScreenCredits:
		a.input.Press(platform.KeyM)
	}
}

func (a *Autopilot) menu(w *game.World) {
	want := game.MenuLevels
	if _, ok := a.affordable(w); ok {
		want = game.MenuShop
	}
	a.steer(w.MenuSel, want)
}

func (a *Autopilot) shop(w *game.World) {
	key, ok := a.affordable(w)
	if !ok {
		a.input.Press(platform.KeyM)
		return
	}
	a.input.Press(key)
}

func (a *Autopilot) levelSelect(w *game.World) {
	want := 0
	for i, open := range w.Progress.Unlocked {
		if open {
			want = i
		}
	}
	a.steer(w.LevelSel, want)
}

// steer moves a menu cursor one step toward want, or confirms when there.
func (a *Autopilot) steer(sel, want int) {
	switch {
	case sel < want:
		a.input.Press(platform.KeyDown)
	case sel > want:
		a.input.Press(platform.KeyUp)
	default:
		a.input.Press(platform.KeyEnter)
	}
}

// affordable returns the shop key of the first unowned weapon the player can
// pay for.
func (a *Autopilot) affordable(w *game.World) (platform.Key, bool) {
	items := []struct {
		key    platform.Key
		weapon game.Weapon
	}{
		{platform.KeyOne, game.WeaponGrenade},
		{platform.KeyTwo, game.WeaponLaser},
		{platform.KeyThree, game.WeaponShield},
	}
	for _, item := range items {
		if !w.Progress.Owned[item.weapon] && w.Progress.Gold >= w.Price(item.weapon) {
			return item.key, true
		}
	}
	return 0, false
}

func (a *Autopilot) play(w *game.World) {
	target, ok := nearestEnemy(w)
	if !ok {
		return
	}

	// Out of ammo with nothing left in flight: the level cannot be won, so
	// pull the trigger and take the fail.
	if w.Progress.Ammo == 0 && !shotsInFlight(w) && w.Shrapnel.Len() == 0 {
		a.input.Press(platform.KeyE)
		return
	}

	if w.Progress.Owned[game.WeaponShield] && !w.Shield.Active &&
		w.Progress.Ammo >= w.Config.Weapons.ShieldCost+1 && incoming(w) {
		a.input.Press(platform.KeyFour)
		return
	}

	weapon := game.WeaponBasic
	if w.Progress.Owned[game.WeaponGrenade] && target.Class.Heavy() {
		weapon = game.WeaponGrenade
	}
	if w.Player.Weapon != weapon {
		a.input.Press(weaponKey(weapon))
		return
	}

	dx := target.Pos.X - w.Muzzle().X
	switch {
	case dx < -target.Size/2:
		a.input.Hold(platform.KeyA)
	case dx > target.Size/2:
		a.input.Hold(platform.KeyD)
	}

	if abs(dx) < target.Size/2 && a.sinceShot >= a.FireEvery && w.Progress.Ammo > 0 {
		a.input.Press(platform.KeyE)
		a.sinceShot = 0
	}
}

func weaponKey(wp game.Weapon) platform.Key {
	switch wp {
	case game.WeaponGrenade:
		return platform.KeyTwo
	case game.WeaponLaser:
		return platform.KeyThree
	case game.WeaponBasic, game.WeaponShield:
	}
	return platform.KeyOne
}

// nearestEnemy picks the enemy closest to the muzzle horizontally.
func nearestEnemy(w *game.World) (*game.Enemy, bool) {
	muzzle := w.Muzzle()
	var best *game.Enemy
	for _, e := range w.Enemies.All() {
		if best == nil || abs(e.Pos.X-muzzle.X) < abs(best.Pos.X-muzzle.X) {
			best = e
		}
	}
	return best, best != nil
}

func shotsInFlight(w *game.World) bool {
	for _, p := range w.Bullets.All() {
		if p.Owner == game.OwnerPlayer {
			return true
		}
	}
	return false
}

// incoming reports an enemy shot within half a second of the player.
func incoming(w *game.World) bool {
	for _, p := range w.Bullets.All() {
		if p.Owner != game.OwnerEnemy {
			continue
		}
		ahead := p.Pos.Add(p.Vel.Scale(0.5))
		if geom.Dist(ahead, w.Player.Pos) < w.Config.Weapons.ShieldRadius {
			return true
		}
	}
	return false
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
