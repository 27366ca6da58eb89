// Command oneshot-ebiten runs the game in an ebiten window, optionally with a
// Dear ImGui debug overlay.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/oneshot/debugui"
	debugui_ebiten "github.com/plus3/oneshot/debugui/ebiten"
	"github.com/plus3/oneshot/launch"
	"github.com/plus3/oneshot/platform"
	"github.com/plus3/oneshot/platform/ebiten"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "oneshot-ebiten: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file (default $ONESHOT_CONFIG)")
	debug := flag.Bool("debug", false, "show the Dear ImGui debug overlay")
	seed := flag.Uint64("seed", 0, "random seed (default: time based)")
	flag.Parse()

	env, err := launch.Load(*configPath)
	if err != nil {
		return err
	}
	defer env.Close()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	wc := env.Config.Window
	input := &ebiten.Input{}
	world := env.NewWorld(input, platform.NewSeededRandom(*seed))
	g := ebiten.NewGame(world)

	if *debug {
		g.Overlay = debugui_ebiten.NewImguiBackend(wc.Title, wc.Width, wc.Height)
		overlay := debugui.Attach(world, g.Scheduler)
		input.Blocked = overlay.KeyboardCaptured
	}
	ebiten.Configure(wc.Width, wc.Height, wc.Title, wc.FPS)

	env.Log.Info("starting", zap.Uint64("seed", *seed), zap.Bool("debug", *debug))
	if err := g.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	env.Log.Info("window closed",
		zap.Int64("frames", g.Scheduler.Stats().Frames),
		zap.Int("kills", world.Kills))
	return nil
}
