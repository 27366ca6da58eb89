package game

import (
	"fmt"

	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
)

// Owner tells which side fired a projectile.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Kind is the per-variant part of a projectile. The shared envelope (position,
// velocity, age, owner) lives on Projectile.
//
//sumtype:decl
type Kind interface {
	isKind()
}

// Basic is a straight shot with no gravity.
type Basic struct{}

// Grenade arcs under gravity and detonates once its fuse has burnt.
type Grenade struct{}

// Beam is a laser anchored to the player. It has no motion of its own and is
// tested against enemies as a rectangle every tick.
type Beam struct{}

func (Basic) isKind()   {}
func (Grenade) isKind() {}
func (Beam) isKind()    {}

// Projectile is an entry of the bullet pool.
type Projectile struct {
	Pos   geom.Vec2
	Vel   geom.Vec2
	Age   float32
	Owner Owner
	Kind  Kind
}

// Shrapnel is one piece of a grenade's fan.
type Shrapnel struct {
	Pos  geom.Vec2
	Vel  geom.Vec2
	Life float32
}

// Explosion is a self-expiring visual marker.
type Explosion struct {
	Pos   geom.Vec2
	Timer float32
}

// Class is an enemy classification.
type Class uint8

const (
	ClassSmall Class = iota
	ClassBig
	ClassBoss
)

func (c Class) String() string {
	switch c {
	case ClassSmall:
		return "small"
	case ClassBig:
		return "big"
	case ClassBoss:
		return "boss"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Heavy reports whether the class counts toward the big-enemy clear rule.
func (c Class) Heavy() bool {
	return c == ClassBig || c == ClassBoss
}

type Enemy struct {
	Pos       geom.Vec2
	Vel       geom.Vec2
	Target    geom.Vec2 // steering velocity, in units of Speed
	Speed     float32
	Health    float32
	MaxHealth float32
	Class     Class
	Size      float32
	BaseSize  float32
	Color     platform.Color
	Label     string

	ShootTimer  float32
	ChangeTimer float32
	Burst       int

	ShakeTimer float32
	Shake      geom.Vec2
	Sparks     [sparkCount]geom.Vec2 // hit spark offsets from the shaken position
}

// UpdateSize derives the visual and collision radius from remaining health.
func (e *Enemy) UpdateSize() {
	ratio := float32(0)
	if e.MaxHealth > 0 {
		ratio = e.Health / e.MaxHealth
	}
	e.Size = e.BaseSize * (0.7 + 0.3*ratio)
}

// Weapon is a selectable weapon. Shield is raised rather than fired as a
// projectile.
type Weapon uint8

const (
	WeaponBasic Weapon = iota
	WeaponGrenade
	WeaponLaser
	WeaponShield

	weaponCount
)

func (w Weapon) String() string {
	switch w {
	case WeaponBasic:
		return "basic"
	case WeaponGrenade:
		return "grenade"
	case WeaponLaser:
		return "laser"
	case WeaponShield:
		return "shield"
	case weaponCount:
	}
	return fmt.Sprintf("Weapon(%d)", uint8(w))
}

type Player struct {
	Pos        geom.Vec2
	Weapon     Weapon
	ShakeTimer float32
	Shake      geom.Vec2
}

type Shield struct {
	Active    bool
	Remaining float32
}

// Progress is what the player earns and spends across levels.
type Progress struct {
	Gold     int
	Ammo     int
	Owned    [weaponCount]bool
	Unlocked []bool // indexed by level position in the roster
	DevMode  bool

	saved *Progress
}

func (p *Progress) snapshot() *Progress {
	s := *p
	s.Unlocked = append([]bool(nil), p.Unlocked...)
	s.saved = nil
	return &s
}

// Screen is a state of the progression machine.
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenLevelSelect
	ScreenShop
	ScreenPlaying
	ScreenSuccess
	ScreenFail
	ScreenCredits
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenLevelSelect:
		return "level-select"
	case ScreenShop:
		return "shop"
	case ScreenPlaying:
		return "playing"
	case ScreenSuccess:
		return "success"
	case ScreenFail:
		return "fail"
	case ScreenCredits:
		return "credits"
	}
	return fmt.Sprintf("Screen(%d)", uint8(s))
}
