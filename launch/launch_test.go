package launch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/oneshot/config"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/launch"
	"github.com/plus3/oneshot/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(config.EnvPath, "")

	env, err := launch.Load("")
	require.NoError(t, err)
	defer env.Close()

	assert.Equal(t, config.Default(), env.Config)
	assert.Len(t, env.Roster.Levels, 3)

	w := env.NewWorld(platform.NewScripted(), platform.NewSeededRandom(1))
	assert.Equal(t, game.ScreenMenu, w.Screen)
	assert.Same(t, env.Log, w.Log)
}

func TestLoadFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	levels := filepath.Join(dir, "levels.yaml")
	require.NoError(t, os.WriteFile(levels, []byte(`
classes:
  small: {size: 10, speed: 100, health: 1, color: lime, label: s}
  big: {size: 20, speed: 100, health: 5, color: orange, label: b}
  boss: {size: 30, speed: 100, health: 9, color: red, label: B}
levels:
  - {name: Solo, clear: all, small: 4}
`), 0o644))

	cfgPath := filepath.Join(dir, "oneshot.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"levels_file = \""+filepath.ToSlash(levels)+"\"\n[logging]\nlevel = \"error\"\n"), 0o644))
	t.Setenv(config.EnvPath, cfgPath)

	env, err := launch.Load("")
	require.NoError(t, err)
	defer env.Close()

	require.Len(t, env.Roster.Levels, 1)
	assert.Equal(t, "Solo", env.Roster.Levels[0].Name)
	assert.Equal(t, "error", env.Config.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(config.EnvPath, "")

	_, err := launch.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfgPath := filepath.Join(t.TempDir(), "oneshot.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("levels_file = \"/nonexistent/levels.yaml\"\n"), 0o644))
	_, err = launch.Load(cfgPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
