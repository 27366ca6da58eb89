package game_test

import (
	"math"
	"testing"

	"github.com/plus3/oneshot/config"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestShrapnelFanSpacing(t *testing.T) {
	h := newHarness(t)
	w := h.World
	at := geom.V(300, 250)

	require.Equal(t, 8, w.SpawnShrapnelFan(at))

	speed := w.Config.Weapons.ShrapnelSpeed
	i := 0
	for _, s := range w.Shrapnel.All() {
		angle := float64(i) * math.Pi / 4
		assert.Equal(t, at, s.Pos)
		assert.InDelta(t, math.Sin(angle)*float64(speed), s.Vel.X, 1e-3, "piece %d", i)
		assert.InDelta(t, math.Cos(angle)*float64(speed), s.Vel.Y, 1e-3, "piece %d", i)
		assert.InDelta(t, speed, s.Vel.Len(), 1e-3)
		assert.Equal(t, w.Config.Weapons.ShrapnelLife, s.Life)
		i++
	}
	assert.Equal(t, 8, i)
}

func TestShrapnelFanConstrainedPool(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.Pools.Shrapnel = 5 })
	w := h.World

	w.Shrapnel.Acquire()
	w.Shrapnel.Acquire()

	assert.Equal(t, 3, w.SpawnShrapnelFan(geom.V(0, 0)))
	assert.Equal(t, 5, w.Shrapnel.Len())
	assert.Equal(t, int64(5), w.Shrapnel.Stats().Drops, "the rest of the fan is dropped")

	var indices []uint32
	var first geom.Vec2
	for h, s := range w.Shrapnel.All() {
		if h.Index() >= 2 {
			indices = append(indices, h.Index())
			if h.Index() == 2 {
				first = s.Vel
			}
		}
	}
	assert.Equal(t, []uint32{2, 3, 4}, indices, "free slots are filled first-found")
	assert.InDelta(t, w.Config.Weapons.ShrapnelSpeed, first.Y, 1e-3, "the fan starts straight down")
}

func TestShrapnelFanProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(0, 20).Draw(rt, "capacity")
		occupied := rapid.IntRange(0, capacity).Draw(rt, "occupied")

		h := newHarness(t, func(c *config.Config) { c.Pools.Shrapnel = capacity })
		w := h.World
		for range occupied {
			w.Shrapnel.Acquire()
		}

		got := w.SpawnShrapnelFan(geom.V(10, 10))
		want := min(8, capacity-occupied)
		if got != want {
			rt.Fatalf("spawned %d pieces with %d free slots, want %d", got, capacity-occupied, want)
		}
		if w.Shrapnel.Len() != occupied+want {
			rt.Fatalf("pool holds %d, want %d", w.Shrapnel.Len(), occupied+want)
		}
	})
}

func TestShrapnelAndExplosionsExpire(t *testing.T) {
	h := newHarness(t)
	w := h.World

	w.SpawnShrapnelFan(geom.V(500, 300))
	require.True(t, w.SpawnExplosion(geom.V(500, 300)))

	w.UpdateShrapnel(0.2)
	w.UpdateExplosions(0.2)
	assert.Equal(t, 8, w.Shrapnel.Len())
	assert.Equal(t, 1, w.Explosions.Len())

	for _, s := range w.Shrapnel.All() {
		assert.InDelta(t, 350*0.2, geom.Dist(s.Pos, geom.V(500, 300)), 1e-3)
	}

	w.UpdateShrapnel(0.1)
	w.UpdateExplosions(0.1)
	assert.Equal(t, 0, w.Shrapnel.Len())
	assert.Equal(t, 1, w.Explosions.Len())

	w.UpdateExplosions(0.1)
	assert.Equal(t, 0, w.Explosions.Len())
}

func TestExplosionPoolFullDropsSilently(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.Pools.Explosions = 1 })
	w := h.World

	assert.True(t, w.SpawnExplosion(geom.V(1, 1)))
	assert.False(t, w.SpawnExplosion(geom.V(2, 2)))
	assert.Equal(t, 1, w.Explosions.Len())
}

func TestShrapnelKillsOnContact(t *testing.T) {
	h := newHarness(t).playing()
	w := h.World
	h.anchor(t)

	_, e, _ := w.SpawnEnemy(game.ClassSmall, geom.V(500, 300))
	e.ChangeTimer = 1e6
	w.SpawnShrapnelFan(geom.V(500, 300))

	w.ResolveCollisions(tick)
	assert.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, 7, w.Shrapnel.Len(), "the piece that hit is consumed")
}
