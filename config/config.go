package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable consulted when no -config flag is given.
const EnvPath = "ONESHOT_CONFIG"

type Config struct {
	LevelsFile  string            `toml:"levels_file"` // empty uses the embedded rosters
	Window      WindowConfig      `toml:"window"`
	Pools       PoolsConfig       `toml:"pools"`
	Player      PlayerConfig      `toml:"player"`
	Weapons     WeaponsConfig     `toml:"weapons"`
	Enemies     EnemiesConfig     `toml:"enemies"`
	Progression ProgressionConfig `toml:"progression"`
	Terminal    TerminalConfig    `toml:"terminal"`
	Logging     LoggingConfig     `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
}

type PoolsConfig struct {
	Bullets    int `toml:"bullets"`
	Enemies    int `toml:"enemies"`
	Shrapnel   int `toml:"shrapnel"`
	Explosions int `toml:"explosions"`
}

type PlayerConfig struct {
	Speed  float32 `toml:"speed"`
	Radius float32 `toml:"radius"`
	Margin float32 `toml:"margin"` // distance kept from the side walls, the fence and the weapon bar
}

type WeaponsConfig struct {
	BasicSpeed  float32 `toml:"basic_speed"`
	BasicRadius float32 `toml:"basic_radius"`

	GrenadeSpeed  float32 `toml:"grenade_speed"`
	GrenadeDrift  float32 `toml:"grenade_drift"`  // scales sin(launch angle) into horizontal speed
	GrenadeSpread float32 `toml:"grenade_spread"` // degrees either side of vertical
	Gravity       float32 `toml:"gravity"`
	LandingY      float32 `toml:"landing_y"`
	LandingAge    float32 `toml:"landing_age"`
	Fuse          float32 `toml:"fuse"`
	BlastRadius   float32 `toml:"blast_radius"`

	ShrapnelCount  int     `toml:"shrapnel_count"`
	ShrapnelSpeed  float32 `toml:"shrapnel_speed"`
	ShrapnelLife   float32 `toml:"shrapnel_life"`
	ShrapnelRadius float32 `toml:"shrapnel_radius"`

	BeamDuration  float32 `toml:"beam_duration"`
	BeamDPS       float32 `toml:"beam_dps"`
	BeamWidth     float32 `toml:"beam_width"`
	BeamGrowth    float32 `toml:"beam_growth"` // width gained per second of age
	ShieldCost    int     `toml:"shield_cost"`
	ShieldTime    float32 `toml:"shield_time"`
	ShieldRadius  float32 `toml:"shield_radius"`
	ExplosionTime float32 `toml:"explosion_time"`
}

type EnemiesConfig struct {
	Steering      float32 `toml:"steering"`
	Damping       float32 `toml:"damping"`
	BulletRadius  float32 `toml:"bullet_radius"`
	BigInterval   float32 `toml:"big_interval"`
	BigShotSpeed  float32 `toml:"big_shot_speed"`
	BossBurst     int     `toml:"boss_burst"`
	BossInterval  float32 `toml:"boss_interval"`
	BossCooldown  float32 `toml:"boss_cooldown"`
	BossShotSpeed float32 `toml:"boss_shot_speed"`
}

type ProgressionConfig struct {
	StartAmmo    int     `toml:"start_ammo"`
	DevAmmo      int     `toml:"dev_ammo"`
	DevGold      int     `toml:"dev_gold"`
	Countdown    float32 `toml:"countdown"`
	ScreenHold   float32 `toml:"screen_hold"`
	GrenadePrice int     `toml:"grenade_price"`
	LaserPrice   int     `toml:"laser_price"`
	ShieldPrice  int     `toml:"shield_price"`
}

type TerminalConfig struct {
	// HoldTimeout is how long, in seconds, a key stays down after its last
	// press or auto-repeat. It should exceed the terminal's key repeat delay.
	HoldTimeout float32 `toml:"hold_timeout"`
}

// Hold returns HoldTimeout as a duration.
func (t TerminalConfig) Hold() time.Duration {
	return time.Duration(float64(t.HoldTimeout) * float64(time.Second))
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Path picks the config file: the flag value if set, otherwise $ONESHOT_CONFIG.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPath)
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	for name, n := range map[string]int{
		"pools.bullets":    c.Pools.Bullets,
		"pools.enemies":    c.Pools.Enemies,
		"pools.shrapnel":   c.Pools.Shrapnel,
		"pools.explosions": c.Pools.Explosions,
	} {
		if n < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, n))
		}
	}
	if c.Weapons.Fuse <= c.Weapons.LandingAge {
		errs = append(errs, fmt.Errorf("weapons.fuse %.2f must exceed landing_age %.2f", c.Weapons.Fuse, c.Weapons.LandingAge))
	}
	if c.Terminal.HoldTimeout <= 0 {
		errs = append(errs, fmt.Errorf("terminal.hold_timeout must be positive, got %.3f", c.Terminal.HoldTimeout))
	}
	if c.Enemies.BossBurst <= 0 {
		errs = append(errs, fmt.Errorf("enemies.boss_burst must be positive, got %d", c.Enemies.BossBurst))
	}
	return errors.Join(errs...)
}

// Default returns the tuning of the shipped game.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "ONE SHOT, ONE KILL",
			Width:  1200,
			Height: 800,
			FPS:    60,
		},
		Pools: PoolsConfig{
			Bullets:    600,
			Enemies:    100,
			Shrapnel:   64,
			Explosions: 40,
		},
		Player: PlayerConfig{
			Speed:  300,
			Radius: 30,
			Margin: 40,
		},
		Weapons: WeaponsConfig{
			BasicSpeed:     900,
			BasicRadius:    8,
			GrenadeSpeed:   1100,
			GrenadeDrift:   220,
			GrenadeSpread:  20,
			Gravity:        1600,
			LandingY:       280,
			LandingAge:     0.4,
			Fuse:           0.9,
			BlastRadius:    180,
			ShrapnelCount:  8,
			ShrapnelSpeed:  350,
			ShrapnelLife:   0.25,
			ShrapnelRadius: 6,
			BeamDuration:   3,
			BeamDPS:        20,
			BeamWidth:      20,
			BeamGrowth:     40,
			ShieldCost:     10,
			ShieldTime:     15,
			ShieldRadius:   90,
			ExplosionTime:  0.4,
		},
		Enemies: EnemiesConfig{
			Steering:      5,
			Damping:       0.6,
			BulletRadius:  8,
			BigInterval:   1.8,
			BigShotSpeed:  500,
			BossBurst:     5,
			BossInterval:  0.15,
			BossCooldown:  2.0,
			BossShotSpeed: 600,
		},
		Progression: ProgressionConfig{
			StartAmmo:    1,
			DevAmmo:      500,
			DevGold:      5000,
			Countdown:    3,
			ScreenHold:   3,
			GrenadePrice: 4,
			LaserPrice:   8,
			ShieldPrice:  12,
		},
		Terminal: TerminalConfig{
			HoldTimeout: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
