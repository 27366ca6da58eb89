// Command oneshot-term runs the game in a text terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/oneshot/launch"
	"github.com/plus3/oneshot/platform"
	"github.com/plus3/oneshot/platform/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "oneshot-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file (default $ONESHOT_CONFIG)")
	seed := flag.Uint64("seed", 0, "random seed (default: time based)")
	hold := flag.Duration("hold", 0, "how long a key counts as held after its last repeat (default terminal.hold_timeout)")
	flag.Parse()

	env, err := launch.Load(*configPath)
	if err != nil {
		return err
	}
	defer env.Close()
	if env.Config.Logging.File == "" {
		env.Log.Warn("logging to stderr while the terminal is in use; set logging.file to keep the screen clean")
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.SetTitle(env.Config.Window.Title)
	screen.Clear()

	kb := terminal.NewKeyboard()
	kb.HoldTimeout = env.Config.Terminal.Hold()
	if *hold > 0 {
		kb.HoldTimeout = *hold
	}
	world := env.NewWorld(kb, platform.NewSeededRandom(*seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env.Log.Info("starting", zap.Uint64("seed", *seed))
	err = terminal.Run(ctx, screen, world, kb, env.Config.Window.FPS)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
