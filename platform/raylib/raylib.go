// Package raylib hosts the game in a raylib window.
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
)

var keys = [...]int32{
	platform.KeyW:      rl.KeyW,
	platform.KeyA:      rl.KeyA,
	platform.KeyS:      rl.KeyS,
	platform.KeyD:      rl.KeyD,
	platform.KeyUp:     rl.KeyUp,
	platform.KeyDown:   rl.KeyDown,
	platform.KeyEnter:  rl.KeyEnter,
	platform.KeySpace:  rl.KeySpace,
	platform.KeyE:      rl.KeyE,
	platform.KeyM:      rl.KeyM,
	platform.KeyZero:   rl.KeyZero,
	platform.KeyOne:    rl.KeyOne,
	platform.KeyTwo:    rl.KeyTwo,
	platform.KeyThree:  rl.KeyThree,
	platform.KeyFour:   rl.KeyFour,
	platform.KeyEscape: rl.KeyEscape,
}

// Window is a raylib window. It implements platform.Input, platform.Random,
// platform.Renderer and platform.FrameRenderer; raylib keeps all of that state
// globally, so at most one Window exists per process.
type Window struct{}

// Open creates the window. Escape no longer closes it; the game decides.
func Open(width, height int, title string, fps int) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
	return &Window{}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// ShouldClose reports a close request from the window manager.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// FrameTime is the duration of the last frame in seconds.
func (w *Window) FrameTime() float64 {
	return float64(rl.GetFrameTime())
}

func (w *Window) Pressed(k platform.Key) bool {
	return rl.IsKeyPressed(keys[k])
}

func (w *Window) Down(k platform.Key) bool {
	return rl.IsKeyDown(keys[k])
}

func (w *Window) Int(lo, hi int) int {
	return int(rl.GetRandomValue(int32(lo), int32(hi)))
}

func (w *Window) BeginFrame() { rl.BeginDrawing() }
func (w *Window) EndFrame()   { rl.EndDrawing() }

func (w *Window) Clear(c platform.Color) {
	rl.ClearBackground(rgba(c))
}

func (w *Window) Circle(center geom.Vec2, radius float32, c platform.Color) {
	rl.DrawCircleV(vec(center), radius, rgba(c))
}

func (w *Window) Ring(center geom.Vec2, inner, outer, startDeg, endDeg float32, c platform.Color) {
	rl.DrawRing(vec(center), inner, outer, startDeg, endDeg, 32, rgba(c))
}

func (w *Window) Rect(r geom.Rect, c platform.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(r.X, r.Y, r.W, r.H), rgba(c))
}

func (w *Window) Poly(center geom.Vec2, sides int, radius, rotation float32, c platform.Color) {
	rl.DrawPoly(vec(center), int32(sides), radius, rotation, rgba(c))
}

func (w *Window) Triangle(a, b, v geom.Vec2, c platform.Color) {
	rl.DrawTriangle(vec(a), vec(b), vec(v), rgba(c))
}

func (w *Window) Pixel(p geom.Vec2, c platform.Color) {
	rl.DrawPixelV(vec(p), rgba(c))
}

func (w *Window) Text(s string, x, y, size int, c platform.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), rgba(c))
}

func (w *Window) MeasureText(s string, size int) int {
	return int(rl.MeasureText(s, int32(size)))
}

func vec(v geom.Vec2) rl.Vector2 {
	return rl.NewVector2(v.X, v.Y)
}

func rgba(c platform.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
