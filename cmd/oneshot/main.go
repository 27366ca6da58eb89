// Command oneshot runs the game in a raylib window.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/launch"
	"github.com/plus3/oneshot/platform/raylib"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "oneshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file (default $ONESHOT_CONFIG)")
	flag.Parse()

	env, err := launch.Load(*configPath)
	if err != nil {
		return err
	}
	defer env.Close()

	wc := env.Config.Window
	window := raylib.Open(wc.Width, wc.Height, wc.Title, wc.FPS)
	defer window.Close()

	world := env.NewWorld(window, window)
	scheduler := game.NewScheduler(world, window)

	for !window.ShouldClose() && !world.Quit {
		scheduler.Once(window.FrameTime())
	}

	stats := scheduler.Stats()
	env.Log.Info("window closed",
		zap.Int64("frames", stats.Frames),
		zap.Int("kills", world.Kills),
		zap.Int("gold", world.Progress.Gold))
	return nil
}
