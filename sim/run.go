package sim

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plus3/oneshot/config"
	"github.com/plus3/oneshot/engine"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/platform"
)

// Options control a single headless run.
type Options struct {
	Seed   uint64
	Frames int
	Dt     float64
	Logger *zap.Logger
}

// Result is what a run reports once it stops.
type Result struct {
	ID       uuid.UUID
	Seed     uint64
	Frames   int64
	Duration time.Duration

	Summary game.RunSummary
	Clears  int
	Fails   int
	Credits int
	Quit    bool

	Pools   []game.PoolUsage
	Systems []engine.SystemStats
}

// ctxCheckEvery is how many frames pass between context checks.
const ctxCheckEvery = 256

// Run plays one seeded game under the autopilot for up to opts.Frames frames.
// The world stops early if it quits. A cancelled context ends the run and
// returns its error together with the partial result.
func Run(ctx context.Context, cfg *config.Config, roster *game.Roster, opts Options) (*Result, error) {
	if opts.Dt <= 0 {
		opts.Dt = 1 / float64(cfg.Window.FPS)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	res := &Result{ID: uuid.New(), Seed: opts.Seed}
	log := opts.Logger.With(zap.Stringer("run", res.ID), zap.Uint64("seed", opts.Seed))

	input := platform.NewScripted()
	world := game.NewWorld(cfg, roster, game.Services{
		Input:  input,
		Random: platform.NewSeededRandom(opts.Seed),
		Logger: log,
	})
	scheduler := game.NewScheduler(world, nil)
	pilot := NewAutopilot(input)

	start := time.Now()
	var err error
	prev := world.Screen
	for frame := 0; frame < opts.Frames && !world.Quit; frame++ {
		if frame%ctxCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}

		pilot.Plan(world)
		scheduler.Once(opts.Dt)
		input.Advance()

		if world.Screen != prev {
			switch world.Screen {
			case game.ScreenSuccess:
				res.Clears++
			case game.ScreenFail:
				res.Fails++
			case game.ScreenCredits:
				res.Clears++
				res.Credits++
			case game.ScreenMenu, game.ScreenLevelSelect, game.ScreenShop, game.ScreenPlaying:
			}
			prev = world.Screen
		}
	}

	res.Duration = time.Since(start)
	stats := scheduler.Stats()
	res.Frames = stats.Frames
	res.Systems = stats.Systems
	res.Summary = world.Summary()
	res.Pools = world.PoolUsage()
	res.Quit = world.Quit

	log.Info("run finished",
		zap.Int64("frames", res.Frames),
		zap.Int("clears", res.Clears),
		zap.Int("fails", res.Fails),
		zap.Int("kills", res.Summary.Kills),
		zap.Duration("took", res.Duration))
	return res, err
}
