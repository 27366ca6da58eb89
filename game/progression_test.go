package game_test

import (
	"testing"

	"github.com/plus3/oneshot/config"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuNavigation(t *testing.T) {
	h := newHarness(t)
	w := h.World
	require.Equal(t, game.ScreenMenu, w.Screen)

	h.Input.Press(platform.KeyUp)
	h.step()
	assert.Equal(t, game.MenuQuit, w.MenuSel, "selection wraps upward")

	h.Input.Press(platform.KeyS)
	h.step()
	assert.Equal(t, game.MenuLevels, w.MenuSel)

	h.Input.Press(platform.KeyDown)
	h.step()
	h.Input.Press(platform.KeySpace)
	h.step()
	assert.Equal(t, game.ScreenShop, w.Screen)

	h.Input.Press(platform.KeyM)
	h.step()
	assert.Equal(t, game.ScreenMenu, w.Screen)

	h.Input.Press(platform.KeyW)
	h.step()
	h.Input.Press(platform.KeyW)
	h.step()
	assert.Equal(t, game.MenuQuit, w.MenuSel)
	h.Input.Press(platform.KeyEnter)
	h.step()
	assert.True(t, w.Quit)
}

func TestLevelSelectAndCountdown(t *testing.T) {
	h := newHarness(t)
	w := h.World

	h.Input.Press(platform.KeyEnter)
	h.step()
	require.Equal(t, game.ScreenLevelSelect, w.Screen)

	h.Input.Press(platform.KeyDown)
	h.step()
	h.Input.Press(platform.KeyEnter)
	h.step()
	assert.Equal(t, game.ScreenLevelSelect, w.Screen, "level 2 is locked")

	h.Input.Press(platform.KeyUp)
	h.step()
	w.Progress.Ammo = 40
	h.Input.Press(platform.KeyEnter)
	h.step()
	require.Equal(t, game.ScreenPlaying, w.Screen)
	assert.Equal(t, 0, w.Level)
	assert.Equal(t, 1, w.Progress.Ammo, "ammo resets on level load")
	assert.Equal(t, 10, w.Alive)
	assert.Equal(t, float32(3), w.Countdown)
	assert.False(t, w.Live())

	h.Input.Hold(platform.KeyA)
	start := w.Player.Pos
	frames := h.stepUntil(t, 200, func() bool { return w.Countdown == 0 })
	assert.InDelta(t, 180, frames, 1)
	assert.Equal(t, start, w.Player.Pos, "no control during the countdown")

	h.step()
	assert.True(t, w.Live())
	assert.Less(t, w.Player.Pos.X, start.X)
}

func TestReturnToMenuAbandonsLevel(t *testing.T) {
	h := newHarness(t)
	w := h.World
	require.True(t, w.LoadLevel(0))

	h.Input.Press(platform.KeyM)
	h.step()
	assert.Equal(t, game.ScreenMenu, w.Screen)
	assert.Equal(t, float32(0), w.Countdown)
	assert.False(t, w.Live())
}

func TestResultScreensReturnToMenu(t *testing.T) {
	for _, screen := range []game.Screen{game.ScreenSuccess, game.ScreenFail, game.ScreenCredits} {
		t.Run(screen.String(), func(t *testing.T) {
			h := newHarness(t)
			w := h.World
			w.Screen = screen

			frames := h.stepUntil(t, 400, func() bool { return w.Screen == game.ScreenMenu })
			assert.InDelta(t, 181, frames, 2)

			w.Screen = screen
			h.Input.Press(platform.KeyM)
			h.step()
			assert.Equal(t, game.ScreenMenu, w.Screen, "M skips the wait")
		})
	}
}

func TestShopPurchases(t *testing.T) {
	h := newHarness(t)
	w := h.World
	w.Screen = game.ScreenShop
	w.Progress.Gold = 14

	h.Input.Press(platform.KeyOne)
	h.step()
	assert.True(t, w.Progress.Owned[game.WeaponGrenade])
	assert.Equal(t, 10, w.Progress.Gold)

	h.Input.Press(platform.KeyOne)
	h.step()
	assert.Equal(t, 10, w.Progress.Gold, "purchases are one-time")

	h.Input.Press(platform.KeyThree)
	h.step()
	assert.False(t, w.Progress.Owned[game.WeaponShield], "shield costs 12")

	h.Input.Press(platform.KeyTwo)
	h.step()
	assert.True(t, w.Progress.Owned[game.WeaponLaser])
	assert.Equal(t, 2, w.Progress.Gold)

	assert.False(t, w.Buy(game.WeaponBasic), "basic is not for sale")
}

func TestDevModeSavesAndRestores(t *testing.T) {
	h := newHarness(t)
	w := h.World
	w.Progress.Gold = 7
	w.Progress.Ammo = 3
	w.Progress.Owned[game.WeaponGrenade] = true

	h.Input.Press(platform.KeyZero)
	h.step()
	p := w.Progress
	assert.True(t, p.DevMode)
	assert.Equal(t, 5000, p.Gold)
	assert.Equal(t, 500, p.Ammo)
	assert.Equal(t, []bool{true, true, true}, p.Unlocked)
	for weapon := game.WeaponBasic; weapon <= game.WeaponShield; weapon++ {
		assert.True(t, p.Owned[weapon], weapon.String())
	}

	require.True(t, w.LoadLevel(2), "every level is open in dev mode")
	assert.Equal(t, 500, w.Progress.Ammo)
	w.Progress.Gold -= 100

	h.Input.Press(platform.KeyZero)
	h.step()
	p = w.Progress
	assert.False(t, p.DevMode)
	assert.Equal(t, 7, p.Gold)
	assert.Equal(t, 3, p.Ammo)
	assert.Equal(t, []bool{true, false, false}, p.Unlocked)
	assert.True(t, p.Owned[game.WeaponGrenade])
	assert.False(t, p.Owned[game.WeaponLaser])
}

func TestFireRules(t *testing.T) {
	h := newHarness(t)
	w := h.World
	w.Progress.Ammo = 2

	assert.Equal(t, game.Locked, w.Fire(game.WeaponGrenade, w.Muzzle()))
	assert.Equal(t, game.Locked, w.Fire(game.WeaponShield, w.Muzzle()))
	assert.False(t, w.SelectWeapon(game.WeaponLaser))
	assert.Equal(t, 2, w.Progress.Ammo)

	assert.Equal(t, game.Fired, w.Fire(game.WeaponBasic, w.Muzzle()))
	shot := projectiles(w)[0]
	assert.Equal(t, w.Muzzle(), shot.Pos)
	assert.Equal(t, geom.V(0, -900), shot.Vel)
	assert.Equal(t, game.OwnerPlayer, shot.Owner)
	assert.Equal(t, 1, w.Progress.Ammo)

	w.Progress.Owned[game.WeaponShield] = true
	assert.Equal(t, game.NoAmmo, w.Fire(game.WeaponShield, w.Player.Pos))
	assert.False(t, w.SelectWeapon(game.WeaponShield), "the shield is raised, not equipped")
}

func TestFireDropsWhenPoolFull(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.Pools.Bullets = 1 })
	w := h.World
	w.Progress.Ammo = 5

	assert.Equal(t, game.Fired, w.Fire(game.WeaponBasic, w.Muzzle()))
	assert.Equal(t, game.Dropped, w.Fire(game.WeaponBasic, w.Muzzle()))
	assert.Equal(t, 4, w.Progress.Ammo, "a dropped shot is not charged")
}

func TestGrenadeLaunchSpread(t *testing.T) {
	h := newHarness(t)
	w := h.World
	w.Progress.Owned[game.WeaponGrenade] = true
	w.Progress.Ammo = 200

	for range 200 {
		require.Equal(t, game.Fired, w.Fire(game.WeaponGrenade, w.Muzzle()))
	}
	for _, p := range projectiles(w) {
		assert.LessOrEqual(t, p.Vel.X, float32(220*0.3421), "within 20 degrees")
		assert.GreaterOrEqual(t, p.Vel.X, float32(-220*0.3421))
		assert.Less(t, p.Vel.Y, float32(-1000))
	}
}

func TestClearRules(t *testing.T) {
	t.Run("level 2 clears when the big enemies die", func(t *testing.T) {
		h := newHarness(t)
		w := h.World
		w.Progress.Unlocked[1] = true
		require.True(t, w.LoadLevel(1))

		for eh, e := range w.Enemies.All() {
			if e.Class.Heavy() {
				e.Health = 0
				w.Enemies.Release(eh)
				w.Alive--
				w.BigAlive--
			}
		}
		w.CheckClear()
		assert.Equal(t, game.ScreenSuccess, w.Screen)
		assert.True(t, w.Progress.Unlocked[2])
		assert.Equal(t, 20, w.Alive, "small enemies may survive")
	})

	t.Run("last level leads to credits", func(t *testing.T) {
		h := newHarness(t)
		w := h.World
		w.Progress.Unlocked[2] = true
		require.True(t, w.LoadLevel(2))

		var boss *game.Enemy
		for _, e := range w.Enemies.All() {
			if e.Class == game.ClassBoss {
				boss = e
			}
		}
		require.NotNil(t, boss)
		boss.Health = 1
		_, p, _ := w.Bullets.Acquire()
		*p = game.Projectile{Pos: boss.Pos, Kind: game.Basic{}, Owner: game.OwnerPlayer}

		w.ResolveCollisions(tick)
		assert.Equal(t, 0, w.BossAlive)
		assert.Equal(t, 2, w.BigAlive)
		assert.Equal(t, 20, w.Progress.Gold)
		assert.Equal(t, 16, w.Progress.Ammo)

		w.CheckClear()
		assert.Equal(t, game.ScreenCredits, w.Screen)
	})

	t.Run("no check after the run ended", func(t *testing.T) {
		h := newHarness(t)
		w := h.World
		require.True(t, w.LoadLevel(0))
		w.Enemies.Reset()
		w.Alive = 0
		w.Screen = game.ScreenFail

		w.CheckClear()
		assert.Equal(t, game.ScreenFail, w.Screen)
		assert.False(t, w.Progress.Unlocked[1])
	})
}

func TestProgressPersistsAcrossLevels(t *testing.T) {
	h := newHarness(t)
	w := h.World
	w.Progress.Gold = 30
	w.Progress.Owned[game.WeaponGrenade] = true

	require.True(t, w.LoadLevel(0))
	h.Input.Press(platform.KeyM)
	h.step()
	require.True(t, w.LoadLevel(0))

	assert.Equal(t, 30, w.Progress.Gold)
	assert.True(t, w.Progress.Owned[game.WeaponGrenade])
	assert.Equal(t, 1, w.Progress.Ammo)
}
