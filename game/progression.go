package game

import (
	"go.uber.org/zap"

	"github.com/plus3/oneshot/platform"
)

const menuEntries = 3

var shopKeys = []struct {
	key    platform.Key
	weapon Weapon
}{
	{platform.KeyOne, WeaponGrenade},
	{platform.KeyTwo, WeaponLaser},
	{platform.KeyThree, WeaponShield},
}

// Menu entries in display order.
const (
	MenuLevels = iota
	MenuShop
	MenuQuit
)

// UpdateScreen resolves this frame's input against the progression state
// machine and decides whether gameplay is live for the rest of the frame.
func (w *World) UpdateScreen(dt float32) {
	in := w.Input
	w.Spin += 180 * dt
	w.live = false

	if in.Pressed(platform.KeyZero) {
		w.ToggleDevMode()
	}
	if in.Pressed(platform.KeyM) && w.Screen != ScreenMenu {
		w.Countdown = 0
		w.setScreen(ScreenMenu)
		return
	}

	up := in.Pressed(platform.KeyUp) || in.Pressed(platform.KeyW)
	down := in.Pressed(platform.KeyDown) || in.Pressed(platform.KeyS)
	confirm := in.Pressed(platform.KeyEnter) || in.Pressed(platform.KeySpace)

	switch w.Screen {
	case ScreenMenu:
		w.MenuSel = cycle(w.MenuSel, menuEntries, up, down)
		if !confirm {
			return
		}
		switch w.MenuSel {
		case MenuLevels:
			w.setScreen(ScreenLevelSelect)
		case MenuShop:
			w.setScreen(ScreenShop)
		case MenuQuit:
			w.Log.Info("quit from menu")
			w.Quit = true
		}

	case ScreenLevelSelect:
		w.LevelSel = cycle(w.LevelSel, len(w.Roster.Levels), up, down)
		if confirm {
			w.LoadLevel(w.LevelSel)
		}

	case ScreenShop:
		for _, item := range shopKeys {
			if in.Pressed(item.key) {
				w.Buy(item.weapon)
			}
		}

	case ScreenPlaying:
		if w.Countdown > 0 {
			w.Countdown -= dt
			if w.Countdown <= 0 {
				w.Countdown = 0
			}
			return
		}
		w.live = true

	case ScreenSuccess, ScreenFail, ScreenCredits:
		w.ScreenTimer += dt
		if w.ScreenTimer > w.Config.Progression.ScreenHold {
			w.setScreen(ScreenMenu)
		}
	}
}

func cycle(sel, n int, up, down bool) int {
	if n <= 0 {
		return 0
	}
	if up {
		sel = (sel + n - 1) % n
	}
	if down {
		sel = (sel + 1) % n
	}
	return sel
}

// LoadLevel starts the level at idx if it is unlocked: the arena is cleared,
// ammo reset, the roster spawned and the countdown started. Locked or unknown
// levels are ignored.
func (w *World) LoadLevel(idx int) bool {
	if idx < 0 || idx >= len(w.Roster.Levels) || !w.Progress.Unlocked[idx] {
		return false
	}

	pc := &w.Config.Progression
	w.Bullets.Reset()
	w.Enemies.Reset()
	w.Shrapnel.Reset()
	w.Detonations = w.Detonations[:0]
	w.Alive, w.BigAlive, w.BossAlive = 0, 0, 0

	w.Level = idx
	w.Progress.Ammo = pc.StartAmmo
	if w.Progress.DevMode {
		w.Progress.Ammo = pc.DevAmmo
	}
	w.Player.Pos = w.PlayerStart()
	w.Player.ShakeTimer = 0
	w.Shield = Shield{}

	w.SpawnRoster(w.CurrentLevel())
	w.Countdown = pc.Countdown
	w.setScreen(ScreenPlaying)
	w.ScreenTimer = 0

	w.Log.Info("level loaded",
		zap.String("level", w.CurrentLevel().Name),
		zap.Int("gold", w.Progress.Gold),
		zap.Int("ammo", w.Progress.Ammo))
	return true
}

// Price returns the shop price of a weapon, or 0 for weapons not on sale.
func (w *World) Price(weapon Weapon) int {
	pc := &w.Config.Progression
	switch weapon {
	case WeaponGrenade:
		return pc.GrenadePrice
	case WeaponLaser:
		return pc.LaserPrice
	case WeaponShield:
		return pc.ShieldPrice
	case WeaponBasic, weaponCount:
	}
	return 0
}

// Buy purchases a weapon once, if the player can afford it.
func (w *World) Buy(weapon Weapon) bool {
	price := w.Price(weapon)
	if price == 0 || w.Progress.Owned[weapon] || w.Progress.Gold < price {
		return false
	}
	w.Progress.Gold -= price
	w.Progress.Owned[weapon] = true
	w.Log.Info("purchase", zap.Stringer("weapon", weapon), zap.Int("gold", w.Progress.Gold))
	return true
}

// ToggleDevMode swaps between the player's own progress and a generous
// developer loadout. Turning it off restores exactly what was saved.
func (w *World) ToggleDevMode() {
	p := &w.Progress
	if p.DevMode {
		saved := p.saved
		*p = *saved
		p.DevMode = false
		w.Log.Info("dev mode off", zap.Int("gold", p.Gold), zap.Int("ammo", p.Ammo))
		return
	}

	saved := p.snapshot()
	p.saved = saved
	p.DevMode = true
	p.Gold = w.Config.Progression.DevGold
	p.Ammo = w.Config.Progression.DevAmmo
	for i := range p.Owned {
		p.Owned[i] = true
	}
	p.Unlocked = make([]bool, len(saved.Unlocked))
	for i := range p.Unlocked {
		p.Unlocked[i] = true
	}
	w.Log.Info("dev mode on")
}

// CheckClear ends the level when its clear rule is met. The last level in the
// roster leads to the credits; any other unlocks the next one.
func (w *World) CheckClear() {
	if w.Screen != ScreenPlaying {
		return
	}

	lvl := w.CurrentLevel()
	var cleared bool
	switch lvl.Clear {
	case ClearAll:
		cleared = w.Alive == 0
	case ClearBig:
		cleared = w.BigAlive == 0
	case ClearBoss:
		cleared = w.BossAlive == 0
	}
	if !cleared {
		return
	}

	next := w.Level + 1
	if next >= len(w.Roster.Levels) {
		w.Log.Info("game complete", zap.Int("gold", w.Progress.Gold), zap.Int("kills", w.Kills))
		w.setScreen(ScreenCredits)
		return
	}
	w.Progress.Unlocked[next] = true
	w.Log.Info("level cleared", zap.String("level", lvl.Name), zap.Int("gold", w.Progress.Gold))
	w.setScreen(ScreenSuccess)
}

func (w *World) fail(reason string) {
	if w.Screen != ScreenPlaying {
		return
	}
	w.Log.Info("run failed", zap.String("reason", reason), zap.String("level", w.CurrentLevel().Name))
	w.setScreen(ScreenFail)
}
