// Package launch wires configuration, logging and level rosters for the
// executables.
package launch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/plus3/oneshot/config"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/logging"
	"github.com/plus3/oneshot/platform"
)

// Env is everything a host needs before it can create worlds.
type Env struct {
	Config *config.Config
	Log    *zap.Logger
	Roster *game.Roster
}

// Load resolves the config file from the flag value or $ONESHOT_CONFIG, then
// builds the logger and loads the level rosters it names.
func Load(configFlag string) (*Env, error) {
	cfg, err := config.Load(config.Path(configFlag))
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	roster, err := game.LoadRoster(cfg.LevelsFile)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	log.Info("configuration loaded",
		zap.String("config", config.Path(configFlag)),
		zap.Int("levels", len(roster.Levels)),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))
	return &Env{Config: cfg, Log: log, Roster: roster}, nil
}

// NewWorld creates a world driven by the given host services.
func (e *Env) NewWorld(in platform.Input, rnd platform.Random) *game.World {
	return game.NewWorld(e.Config, e.Roster, game.Services{
		Input:  in,
		Random: rnd,
		Logger: e.Log,
	})
}

// Close flushes buffered log entries.
func (e *Env) Close() {
	_ = e.Log.Sync()
}
