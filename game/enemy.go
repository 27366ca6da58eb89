package game

import (
	"go.uber.org/zap"

	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/pool"
)

const (
	patrolInset  = 100
	enemyJitter  = 3
	sparkSpread  = 20
	sparkCount   = 3
	heavyStartY  = 120
	heavySpacing = 200
)

// SpawnEnemy places an enemy of class at pos with the class template applied
// and updates the alive counters. It reports false when the enemy pool is full.
func (w *World) SpawnEnemy(class Class, pos geom.Vec2) (pool.Handle, *Enemy, bool) {
	h, e, ok := w.Enemies.Acquire()
	if !ok {
		return 0, nil, false
	}
	spec := w.Roster.Class(class)
	*e = Enemy{
		Pos:       pos,
		Speed:     spec.Speed,
		Health:    spec.Health,
		MaxHealth: spec.Health,
		Class:     class,
		Size:      spec.Size,
		BaseSize:  spec.Size,
		Color:     spec.color,
		Label:     spec.Label,
	}

	w.Alive++
	if class.Heavy() {
		w.BigAlive++
	}
	if class == ClassBoss {
		w.BossAlive++
	}
	return h, e, true
}

// SpawnRoster populates the enemy pool for lvl: heavies in a row across the
// top, then small enemies scattered above the fence.
func (w *World) SpawnRoster(lvl *LevelSpec) {
	heavies := make([]Class, 0, lvl.Big+1)
	for range lvl.Big {
		heavies = append(heavies, ClassBig)
	}
	if lvl.Boss {
		heavies = append(heavies, ClassBoss)
	}

	for i, class := range heavies {
		pos := geom.V(w.Width/2+float32(i-1)*heavySpacing, heavyStartY)
		_, e, ok := w.SpawnEnemy(class, pos)
		if !ok {
			break
		}
		e.Target = geom.V(1, 0)
		e.ChangeTimer = float32(w.Rand.Int(150, 300)) * 0.01
	}

	for range lvl.Small {
		x := float32(w.Rand.Int(patrolInset, int(w.Width)-patrolInset))
		y := float32(w.Rand.Int(int(w.FenceY)-200, int(w.FenceY)-50))
		_, e, ok := w.SpawnEnemy(ClassSmall, geom.V(x, y))
		if !ok {
			break
		}
		e.Target = geom.V(w.randUnit(), float32(w.Rand.Int(-20, 20))/100)
		e.ChangeTimer = float32(w.Rand.Int(100, 300)) * 0.01
	}

	w.Log.Debug("roster spawned",
		zap.String("level", lvl.Name),
		zap.Int("alive", w.Alive),
		zap.Int("big", w.BigAlive),
		zap.Int("boss", w.BossAlive))
}

// PatrolBounds is the rectangle enemies are kept inside.
func (w *World) PatrolBounds() geom.Rect {
	return geom.Rect{
		X: patrolInset,
		Y: patrolInset,
		W: w.Width - 2*patrolInset,
		H: w.FenceY - 2*patrolInset,
	}
}

// UpdateEnemies runs steering, bounds, damage feedback and shooting for every
// live enemy. A non-positive dt leaves all enemy state untouched.
func (w *World) UpdateEnemies(dt float32) {
	if dt <= 0 {
		return
	}
	for _, e := range w.Enemies.All() {
		w.steer(e, dt)
		e.UpdateSize()
		w.shakeEnemy(e, dt)

		switch e.Class {
		case ClassBig:
			w.fireBig(e, dt)
		case ClassBoss:
			w.fireBoss(e, dt)
		case ClassSmall:
		}
	}
}

func (w *World) steer(e *Enemy, dt float32) {
	e.ChangeTimer -= dt
	if e.ChangeTimer <= 0 {
		limit := w.Roster.Class(e.Class).WanderMax()
		e.Target = geom.V(w.randUnit()*limit.X, w.randUnit()*limit.Y)
		e.ChangeTimer = float32(w.Rand.Int(120, 250)) * 0.01
	}

	k := w.Config.Enemies.Steering * dt
	e.Vel = e.Vel.Add(e.Target.Sub(e.Vel).Scale(k))
	e.Pos = e.Pos.Add(e.Vel.Scale(e.Speed * dt))

	bounds := w.PatrolBounds()
	damping := w.Config.Enemies.Damping
	e.Pos.X, e.Vel.X = bounce(e.Pos.X, e.Vel.X, bounds.X, bounds.X+bounds.W, damping)
	e.Pos.Y, e.Vel.Y = bounce(e.Pos.Y, e.Vel.Y, bounds.Y, bounds.Y+bounds.H, damping)
}

// bounce clamps pos to [lo, hi]; a clamped axis has its velocity reversed and
// damped.
func bounce(pos, vel, lo, hi, damping float32) (float32, float32) {
	switch {
	case pos < lo:
		return lo, -vel * damping
	case pos > hi:
		return hi, -vel * damping
	}
	return pos, vel
}

func (w *World) shakeEnemy(e *Enemy, dt float32) {
	if e.ShakeTimer > 0 {
		e.ShakeTimer -= dt
		e.Shake = geom.V(w.randUnit()*enemyJitter, w.randUnit()*enemyJitter)
		for i := range e.Sparks {
			e.Sparks[i] = geom.V(float32(w.Rand.Int(-sparkSpread, sparkSpread)), float32(w.Rand.Int(-sparkSpread, sparkSpread)))
		}
		return
	}
	e.Shake = geom.Vec2{}
	e.Sparks = [sparkCount]geom.Vec2{}
}

func (w *World) fireBig(e *Enemy, dt float32) {
	ec := &w.Config.Enemies
	e.ShootTimer += dt
	if e.ShootTimer < ec.BigInterval {
		return
	}
	e.ShootTimer = 0
	w.spawnEnemyShot(e.Pos, geom.V(0, ec.BigShotSpeed))
}

// fireBoss runs the burst pattern: after a cooldown, a burst of shots aimed at
// the player, spaced by a short interval.
func (w *World) fireBoss(e *Enemy, dt float32) {
	ec := &w.Config.Enemies
	e.ShootTimer += dt

	wait := ec.BossInterval
	if e.Burst == 0 {
		wait = ec.BossCooldown
	}
	if e.ShootTimer < wait {
		return
	}

	e.ShootTimer = 0
	dir := w.Player.Pos.Sub(e.Pos).Normalize()
	w.spawnEnemyShot(e.Pos, dir.Scale(ec.BossShotSpeed))

	e.Burst++
	if e.Burst >= ec.BossBurst {
		e.Burst = 0
	}
}

func (w *World) spawnEnemyShot(pos, vel geom.Vec2) {
	_, p, ok := w.Bullets.Acquire()
	if !ok {
		return
	}
	*p = Projectile{Pos: pos, Vel: vel, Owner: OwnerEnemy, Kind: Basic{}}
}
