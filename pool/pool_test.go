package pool_test

import (
	"testing"

	"github.com/plus3/oneshot/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type Particle struct {
	X, Y float32
	Life float32
}

func TestHandleEncoding(t *testing.T) {
	h := pool.NewHandle(42, 7)
	assert.Equal(t, uint32(42), h.Index())
	assert.Equal(t, uint32(7), h.Generation())

	h = pool.NewHandle(0xFFFFFFFF, 0xFFFFFFFF)
	assert.Equal(t, uint32(0xFFFFFFFF), h.Index())
	assert.Equal(t, uint32(0xFFFFFFFF), h.Generation())
}

func TestAcquireFirstFree(t *testing.T) {
	p := pool.New[Particle](4)

	h0, v0, ok := p.Acquire()
	require.True(t, ok)
	v0.Life = 1
	h1, _, ok := p.Acquire()
	require.True(t, ok)
	h2, _, ok := p.Acquire()
	require.True(t, ok)

	assert.Equal(t, uint32(0), h0.Index())
	assert.Equal(t, uint32(1), h1.Index())
	assert.Equal(t, uint32(2), h2.Index())
	assert.Equal(t, 3, p.Len())

	require.True(t, p.Release(h1))

	h3, v3, ok := p.Acquire()
	require.True(t, ok)
	assert.Equal(t, uint32(1), h3.Index(), "lowest free slot is reused first")
	assert.Equal(t, Particle{}, *v3, "recycled slot is zeroed")
	assert.NotEqual(t, h1, h3, "recycled slot gets a new generation")
}

func TestAcquireFullPoolDrops(t *testing.T) {
	p := pool.New[Particle](2)

	_, _, ok := p.Acquire()
	require.True(t, ok)
	_, _, ok = p.Acquire()
	require.True(t, ok)

	h, v, ok := p.Acquire()
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, pool.Handle(0), h)

	stats := p.Stats()
	assert.Equal(t, 2, stats.Capacity)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, int64(2), stats.Acquires)
	assert.Equal(t, int64(1), stats.Drops)
	assert.Equal(t, 0, p.Free())
}

func TestReleaseStaleHandle(t *testing.T) {
	p := pool.New[Particle](1)

	h, _, _ := p.Acquire()
	assert.True(t, p.Release(h))
	assert.False(t, p.Release(h), "double release is ignored")

	h2, v2, _ := p.Acquire()
	v2.Life = 3
	assert.False(t, p.Release(h), "stale handle cannot release the recycled slot")
	assert.True(t, p.Active(h2))

	got, ok := p.Get(h2)
	require.True(t, ok)
	assert.Equal(t, float32(3), got.Life)

	_, ok = p.Get(h)
	assert.False(t, ok)
}

func TestReleaseOutOfRange(t *testing.T) {
	p := pool.New[Particle](1)
	assert.False(t, p.Release(pool.NewHandle(5, 0)))
	_, ok := p.Get(pool.NewHandle(5, 0))
	assert.False(t, ok)
}

func TestAllSkipsInactiveAndAllowsRelease(t *testing.T) {
	p := pool.New[Particle](5)
	for i := range 5 {
		_, v, _ := p.Acquire()
		v.Life = float32(i)
	}

	for h, v := range p.All() {
		if int(v.Life)%2 == 1 {
			p.Release(h)
		}
	}

	var lives []float32
	for _, v := range p.All() {
		lives = append(lives, v.Life)
	}
	assert.Equal(t, []float32{0, 2, 4}, lives)
	assert.Equal(t, 3, p.Len())
}

func TestAllEarlyExit(t *testing.T) {
	p := pool.New[Particle](3)
	for range 3 {
		p.Acquire()
	}

	seen := 0
	for range p.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestReset(t *testing.T) {
	p := pool.New[Particle](3)
	h, _, _ := p.Acquire()
	p.Acquire()

	p.Reset()
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Active(h))
	assert.Equal(t, 2, p.Stats().HighWater, "high-water mark survives a reset")
}

func TestZeroCapacity(t *testing.T) {
	p := pool.New[Particle](0)
	_, _, ok := p.Acquire()
	assert.False(t, ok)
	assert.Equal(t, 0, p.Cap())
}

// The model tracks which indices should be active; the pool must agree after
// any sequence of acquires and releases, and no index is ever handed out twice
// while it is live.
func TestPoolProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 32).Draw(t, "capacity")
		p := pool.New[Particle](capacity)

		live := map[uint32]pool.Handle{}
		var stale []pool.Handle

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for range steps {
			if rapid.Bool().Draw(t, "acquire") {
				h, _, ok := p.Acquire()
				if len(live) == capacity {
					if ok {
						t.Fatalf("acquire succeeded on a full pool")
					}
					continue
				}
				if !ok {
					t.Fatalf("acquire failed with %d of %d slots live", len(live), capacity)
				}
				if _, dup := live[h.Index()]; dup {
					t.Fatalf("slot %d handed out twice", h.Index())
				}
				for i := uint32(0); i < h.Index(); i++ {
					if _, used := live[i]; !used {
						t.Fatalf("slot %d skipped while free", i)
					}
				}
				live[h.Index()] = h
				continue
			}

			if len(stale) > 0 && rapid.Bool().Draw(t, "stale") {
				h := stale[rapid.IntRange(0, len(stale)-1).Draw(t, "staleIdx")]
				if p.Release(h) {
					t.Fatalf("stale handle %v released a slot", h)
				}
				continue
			}

			if len(live) == 0 {
				continue
			}
			var indices []uint32
			for i := range uint32(capacity) {
				if _, ok := live[i]; ok {
					indices = append(indices, i)
				}
			}
			idx := indices[rapid.IntRange(0, len(indices)-1).Draw(t, "release")]
			h := live[idx]
			if !p.Release(h) {
				t.Fatalf("release of live slot %d failed", idx)
			}
			delete(live, idx)
			stale = append(stale, h)
		}

		if p.Len() != len(live) {
			t.Fatalf("pool reports %d live, model has %d", p.Len(), len(live))
		}
		for h := range p.All() {
			if live[h.Index()] != h {
				t.Fatalf("iterated handle %v not in model", h)
			}
		}
	})
}

func BenchmarkAcquireRelease(b *testing.B) {
	p := pool.New[Particle](600)
	for range 599 {
		p.Acquire()
	}

	b.ResetTimer()
	for range b.N {
		h, _, _ := p.Acquire()
		p.Release(h)
	}
}
