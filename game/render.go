package game

import (
	"fmt"

	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
)

var background = platform.DarkGray

// Draw renders the world. It reads state only.
func Draw(w *World, r platform.Renderer) {
	r.Clear(background)

	drawControls(w, r)
	if w.Screen != ScreenPlaying || w.Countdown > 0 {
		spinner := geom.V(w.Width-80, 80)
		r.Circle(spinner, 40, platform.Yellow.Fade(0.8))
		r.Poly(spinner, 6, 30, w.Spin, platform.White)
	}
	for x := float32(0); x < w.Width; x += 20 {
		r.Pixel(geom.V(x, w.FenceY), platform.White)
	}
	drawWeaponBar(w, r)
	drawPlayer(w, r)
	drawProjectiles(w, r)
	drawEnemies(w, r)
	drawExplosions(w, r)

	if w.Countdown > 0 {
		r.Text(fmt.Sprintf("%.1f", w.Countdown), int(w.Width/2)-50, int(w.Height/2)-50, 120, platform.Yellow)
	}
	drawHUD(w, r)
	drawScreen(w, r)
}

func drawControls(w *World, r platform.Renderer) {
	if w.Screen != ScreenPlaying {
		return
	}
	y := int(w.BarY)
	r.Text("WASD - MOVE", 20, y-140, 32, platform.Black)
	r.Text("1-4 WEAPONS", 20, y-105, 32, platform.Black)
	r.Text("E - FIRE", 20, y-70, 32, platform.Black)
	r.Text("M - MENU", 20, y-35, 32, platform.Black)
}

func drawWeaponBar(w *World, r platform.Renderer) {
	r.Rect(geom.Rect{X: 0, Y: w.BarY, W: w.Width, H: 80}, platform.Black.Fade(0.9))

	slot := func(label string, x int, selected, owned bool) {
		c := platform.LightGray
		if !owned {
			c = platform.Gray
		}
		if selected {
			c = platform.Yellow
		}
		r.Text(label, x, int(w.BarY)+25, 30, c)
	}
	owned := &w.Progress.Owned
	slot("1 pew pew", 50, w.Player.Weapon == WeaponBasic, true)
	slot("2 NADES", 300, w.Player.Weapon == WeaponGrenade, owned[WeaponGrenade])
	slot("3 LASER", 600, w.Player.Weapon == WeaponLaser, owned[WeaponLaser])
	slot("4 SHIELD", 900, w.Shield.Active, owned[WeaponShield])
}

func drawPlayer(w *World, r platform.Renderer) {
	p := w.Player.Pos.Add(w.Player.Shake)
	body := platform.SkyBlue
	if w.Player.Weapon == WeaponLaser {
		body = platform.Purple
	}

	r.Circle(p.Add(geom.V(-25, 15)), 18, platform.DarkBlue)
	r.Circle(p.Add(geom.V(25, 15)), 18, platform.DarkBlue)
	r.Circle(p, 30, body)
	r.Rect(geom.Rect{X: p.X + 20, Y: p.Y - 60, W: 12, H: 60}, platform.Gray)
	r.Rect(geom.Rect{X: p.X + 15, Y: p.Y - 65, W: 22, H: 10}, platform.DarkGray)

	if _, firing := w.playerBeam(); firing {
		r.Circle(w.Muzzle().Add(w.Player.Shake), 20, platform.Purple.Fade(0.3))
	}
	if w.Shield.Active {
		radius := w.Config.Weapons.ShieldRadius
		r.Ring(p, radius-20, radius, 0, -180, platform.SkyBlue.Fade(0.7))
	}
}

func drawProjectiles(w *World, r platform.Renderer) {
	for _, p := range w.Bullets.All() {
		switch p.Kind.(type) {
		case Basic:
			c := platform.Pink
			if p.Owner == OwnerPlayer {
				c = platform.Red
			}
			r.Circle(p.Pos, 8, c)
		case Grenade:
			r.Circle(p.Pos, 12, platform.Orange)
		case Beam:
			beam := w.BeamRect(p.Age)
			beam.X += w.Player.Shake.X
			r.Rect(beam, platform.Red.Fade(0.7))
			beam.X += 4
			beam.W -= 8
			r.Rect(beam, platform.Yellow.Fade(0.7))
		default:
			panic("game: drawing projectile with unknown kind")
		}
	}
	for _, s := range w.Shrapnel.All() {
		r.Circle(s.Pos, w.Config.Weapons.ShrapnelRadius, platform.Yellow)
	}
}

func drawEnemies(w *World, r platform.Renderer) {
	for _, e := range w.Enemies.All() {
		p := e.Pos.Add(e.Shake)
		r.Circle(p, e.Size, e.Color)

		size := 20
		if e.Class.Heavy() {
			size = 24
		}
		tw := r.MeasureText(e.Label, size)
		r.Text(e.Label, int(p.X)-tw/2, int(p.Y)-size/2, size, platform.White)

		if e.ShakeTimer > 0 {
			for _, spark := range e.Sparks {
				r.Pixel(p.Add(spark), platform.Yellow)
			}
		}
	}
}

func drawExplosions(w *World, r platform.Renderer) {
	full := w.Config.Weapons.ExplosionTime
	for _, e := range w.Explosions.All() {
		t := e.Timer / full
		r.Circle(e.Pos, w.Config.Weapons.BlastRadius*t, platform.Orange.Fade(t))
	}
}

func drawHUD(w *World, r platform.Renderer) {
	ammo := platform.Green
	if w.Progress.Ammo <= 0 {
		ammo = platform.Red
	}
	r.Text(fmt.Sprintf("GOLD: %d", w.Progress.Gold), 20, 20, 30, platform.Yellow)
	r.Text(fmt.Sprintf("AMMO: %d", w.Progress.Ammo), 20, 60, 30, ammo)
	if w.Progress.DevMode {
		r.Text("DEV MODE", int(w.Width)-210, 20, 40, platform.Red)
	}
	r.Text("Press M to return to menu", int(w.Width)-300, int(w.Height)-30, 20, platform.White.Fade(0.6))
}

// centered draws s horizontally centred on the screen.
func centered(w *World, r platform.Renderer, s string, y, size int, c platform.Color) {
	r.Text(s, int(w.Width)/2-r.MeasureText(s, size)/2, y, size, c)
}

func highlight(selected bool, normal platform.Color) platform.Color {
	if selected {
		return platform.Yellow
	}
	return normal
}

func drawScreen(w *World, r platform.Renderer) {
	switch w.Screen {
	case ScreenMenu:
		centered(w, r, "ONE SHOT, ONE KILL", 200, 80, platform.Gold)
		centered(w, r, "Levels", 400, 60, highlight(w.MenuSel == MenuLevels, platform.Gray))
		centered(w, r, "Shop", 480, 60, highlight(w.MenuSel == MenuShop, platform.Gray))
		centered(w, r, "Quit", 560, 60, highlight(w.MenuSel == MenuQuit, platform.Gray))

	case ScreenLevelSelect:
		centered(w, r, "SELECT LEVEL", 150, 70, platform.White)
		for i, lvl := range w.Roster.Levels {
			label := lvl.Name
			if !w.Progress.Unlocked[i] {
				label += " - LOCKED"
			}
			r.Text(label, int(w.Width)/2-120, 300+80*i, 50, highlight(w.LevelSel == i, platform.White))
		}

	case ScreenShop:
		drawShop(w, r)

	case ScreenSuccess:
		centered(w, r, "LEVEL COMPLETE!", int(w.Height)/2-50, 80, platform.Green)

	case ScreenFail:
		centered(w, r, "FAILURE!", int(w.Height)/2-50, 100, platform.Red)

	case ScreenCredits:
		r.Rect(geom.Rect{W: w.Width, H: w.Height}, platform.Black.Fade(0.8))
		centered(w, r, "CREDITS", int(w.Height)/2-120, 80, platform.Gold)
		centered(w, r, "Thanks for playing", int(w.Height)/2-20, 50, platform.White)
		centered(w, r, fmt.Sprintf("%d kills, %d gold", w.Kills, w.Progress.Gold), int(w.Height)/2+40, 50, platform.White)

	case ScreenPlaying:
	}
}

func drawShop(w *World, r platform.Renderer) {
	r.Rect(geom.Rect{X: 100, Y: 100, W: w.Width - 200, H: w.Height - 220}, platform.Black.Fade(0.9))
	centered(w, r, "SHOP", 130, 80, platform.Gold)
	r.Text(fmt.Sprintf("GOLD: %d", w.Progress.Gold), 150, 130, 50, platform.Yellow)

	items := []struct {
		weapon Weapon
		name   string
		hint   string
	}{
		{WeaponGrenade, "1 - NADES", "explodes, kills everything"},
		{WeaponLaser, "2 - Yuge Laser", "press E to toggle the beam"},
		{WeaponShield, "3 - Shield", "press 4 to activate"},
	}
	for i, item := range items {
		y := 280 + 160*i
		c := platform.White
		if w.Progress.Owned[item.weapon] {
			c = platform.Green
		}
		r.Text(fmt.Sprintf("%s (%dg)", item.name, w.Price(item.weapon)), 300, y, 40, c)
		r.Text("   "+item.hint, 300, y+40, 30, platform.White.Fade(0.7))
	}
}
