// Command oneshot-sim plays seeded games headless under an autopilot and
// prints a markdown report of outcomes, pool pressure and system timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/oneshot/launch"
	"github.com/plus3/oneshot/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "oneshot-sim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file (default $ONESHOT_CONFIG)")
	frames := flag.Int("frames", 60*60*5, "frames to simulate per run")
	runs := flag.Int("runs", 4, "number of runs, each with its own seed")
	seed := flag.Uint64("seed", 1, "seed of the first run; run i uses seed+i")
	dt := flag.Duration("dt", 0, "fixed frame step (default 1/fps from the config)")
	parallel := flag.Int("parallel", runtime.GOMAXPROCS(0), "runs simulated at once")
	out := flag.String("out", "", "write the report to this file instead of stdout")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "include GC pause metrics in the report")
	flag.Parse()

	env, err := launch.Load(*configPath)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := &Report{
		Frames:         *frames,
		Seed:           *seed,
		Dt:             *dt,
		GCPauseMetrics: *gcPauseMetrics,
		Results:        make([]*sim.Result, *runs),
	}
	if report.Dt == 0 {
		report.Dt = time.Second / time.Duration(env.Config.Window.FPS)
	}

	env.Log.Info("simulating",
		zap.Int("runs", *runs),
		zap.Int("frames", *frames),
		zap.Duration("dt", report.Dt))

	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*parallel, 1))
	for i := range *runs {
		g.Go(func() error {
			res, err := sim.Run(ctx, env.Config, env.Roster, sim.Options{
				Seed:   *seed + uint64(i),
				Frames: *frames,
				Dt:     report.Dt.Seconds(),
				Logger: env.Log,
			})
			report.Results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	report.TotalTime = time.Since(start)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Finalize()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := report.Generate(w); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	env.Log.Info("simulation finished", zap.Duration("took", report.TotalTime))
	return nil
}
