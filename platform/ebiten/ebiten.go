// Package ebiten hosts the game in an ebiten window. The simulation advances
// in Update at the ebiten tick rate and is drawn in Draw.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/oneshot/engine"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/platform"
)

var keys = [...]ebiten.Key{
	platform.KeyW:      ebiten.KeyW,
	platform.KeyA:      ebiten.KeyA,
	platform.KeyS:      ebiten.KeyS,
	platform.KeyD:      ebiten.KeyD,
	platform.KeyUp:     ebiten.KeyArrowUp,
	platform.KeyDown:   ebiten.KeyArrowDown,
	platform.KeyEnter:  ebiten.KeyEnter,
	platform.KeySpace:  ebiten.KeySpace,
	platform.KeyE:      ebiten.KeyE,
	platform.KeyM:      ebiten.KeyM,
	platform.KeyZero:   ebiten.KeyDigit0,
	platform.KeyOne:    ebiten.KeyDigit1,
	platform.KeyTwo:    ebiten.KeyDigit2,
	platform.KeyThree:  ebiten.KeyDigit3,
	platform.KeyFour:   ebiten.KeyDigit4,
	platform.KeyEscape: ebiten.KeyEscape,
}

// Input reads the keyboard through ebiten. Edges come from inpututil, which
// ebiten updates once per tick.
type Input struct {
	// Blocked suppresses game input, e.g. while a debug overlay has focus.
	Blocked func() bool
}

func (in *Input) Pressed(k platform.Key) bool {
	if in.Blocked != nil && in.Blocked() {
		return false
	}
	return inpututil.IsKeyJustPressed(keys[k])
}

func (in *Input) Down(k platform.Key) bool {
	if in.Blocked != nil && in.Blocked() {
		return false
	}
	return ebiten.IsKeyPressed(keys[k])
}

// Overlay is drawn above the game, such as a Dear ImGui debug layer. Its frame
// is open while the scheduler runs so systems can submit widgets.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game implements ebiten.Game around a world and its headless scheduler.
type Game struct {
	World     *game.World
	Scheduler *engine.Scheduler[*game.World]
	Renderer  *Renderer
	Overlay   Overlay
}

// NewGame builds the scheduler for w without a render system; drawing
// happens in Draw, which ebiten may call at a different rate.
func NewGame(w *game.World) *Game {
	return &Game{
		World:     w,
		Scheduler: game.NewScheduler(w, nil),
		Renderer:  NewRenderer(),
	}
}

// Configure sizes and titles the window.
func Configure(width, height int, title string, tps int) {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
}

func (g *Game) Update() error {
	if g.World.Quit {
		return ebiten.Termination
	}

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}
	g.Scheduler.Once(1.0 / float64(ebiten.TPS()))
	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Target(screen)
	game.Draw(g.World, g.Renderer)
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

// Layout keeps the logical screen at the world size; ebiten scales it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return int(g.World.Width), int(g.World.Height)
}

// Run blocks until the window closes or the player quits.
func (g *Game) Run() error {
	return ebiten.RunGame(g)
}
