package game_test

import (
	"testing"

	"github.com/plus3/oneshot/config"
	"github.com/plus3/oneshot/engine"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/geom"
	"github.com/plus3/oneshot/platform"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

type harness struct {
	World *game.World
	Input *platform.Scripted
	Sched *engine.Scheduler[*game.World]
}

func newHarness(t testing.TB, mutate ...func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(cfg)
	}
	require.NoError(t, cfg.Validate())

	in := platform.NewScripted()
	w := game.NewWorld(cfg, game.DefaultRoster(), game.Services{
		Input:  in,
		Random: platform.NewSeededRandom(1),
	})
	return &harness{World: w, Input: in, Sched: game.NewScheduler(w, nil)}
}

// playing puts the world straight into level 1 with no countdown and an empty
// arena.
func (h *harness) playing() *harness {
	h.World.Screen = game.ScreenPlaying
	h.World.Level = 0
	h.World.Countdown = 0
	return h
}

func (h *harness) step() {
	h.Sched.Once(tick)
	h.Input.Advance()
}

func (h *harness) stepN(n int) {
	for range n {
		h.step()
	}
}

// stepUntil runs frames until done returns true and reports how many it took.
func (h *harness) stepUntil(t testing.TB, limit int, done func() bool) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		h.step()
		if done() {
			return i
		}
	}
	t.Fatalf("condition not reached within %d frames", limit)
	return 0
}

// anchor spawns a stationary small enemy in a far corner so a level is not
// cleared by an empty arena.
func (h *harness) anchor(t testing.TB) *game.Enemy {
	t.Helper()
	_, e, ok := h.World.SpawnEnemy(game.ClassSmall, geom.V(100, 100))
	require.True(t, ok)
	e.ChangeTimer = 1e6
	return e
}

func (h *harness) enemyShot(pos, vel geom.Vec2) {
	_, p, _ := h.World.Bullets.Acquire()
	*p = game.Projectile{Pos: pos, Vel: vel, Owner: game.OwnerEnemy, Kind: game.Basic{}}
}

func projectiles(w *game.World) []game.Projectile {
	var out []game.Projectile
	for _, p := range w.Bullets.All() {
		out = append(out, *p)
	}
	return out
}
