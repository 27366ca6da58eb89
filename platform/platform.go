// Package platform defines the services the simulation consumes from its host:
// keyboard input, random integers and drawing primitives. Concrete hosts live
// in the raylib, ebiten and terminal subpackages; the Scripted input and the
// seeded random source here drive tests and headless runs.
package platform

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/platform_mock.go -package=mocks . Input,Random,Renderer

import "github.com/plus3/oneshot/geom"

// Key is a key the game reacts to.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyEnter
	KeySpace
	KeyE
	KeyM
	KeyZero
	KeyOne
	KeyTwo
	KeyThree
	KeyFour
	KeyEscape

	keyCount
)

var keyNames = [keyCount]string{
	KeyW: "W", KeyA: "A", KeyS: "S", KeyD: "D",
	KeyUp: "Up", KeyDown: "Down", KeyEnter: "Enter", KeySpace: "Space",
	KeyE: "E", KeyM: "M",
	KeyZero: "0", KeyOne: "1", KeyTwo: "2", KeyThree: "3", KeyFour: "4",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// Keys lists every key the game polls, in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := range keyCount {
		keys = append(keys, k)
	}
	return keys
}

// Input reports keyboard state for the current frame.
type Input interface {
	// Pressed reports a key that went down this frame.
	Pressed(k Key) bool
	// Down reports a key that is currently held.
	Down(k Key) bool
}

// Random yields uniformly distributed integers in [lo, hi], inclusive.
type Random interface {
	Int(lo, hi int) int
}

// Renderer draws primitives in world coordinates. Implementations scale to
// their own surface if it differs from the world size.
type Renderer interface {
	Clear(c Color)
	Circle(center geom.Vec2, radius float32, c Color)
	// Ring draws the band between inner and outer radius over the angle range
	// [startDeg, endDeg].
	Ring(center geom.Vec2, inner, outer, startDeg, endDeg float32, c Color)
	Rect(r geom.Rect, c Color)
	// Poly fills a regular polygon with the given rotation in degrees.
	Poly(center geom.Vec2, sides int, radius, rotation float32, c Color)
	Triangle(a, b, v geom.Vec2, c Color)
	Pixel(p geom.Vec2, c Color)
	Text(s string, x, y, size int, c Color)
	MeasureText(s string, size int) int
}

// FrameRenderer is implemented by renderers that must be told where a frame
// starts and ends, such as immediate-mode windows and terminal screens.
type FrameRenderer interface {
	BeginFrame()
	EndFrame()
}
