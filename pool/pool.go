// Package pool provides a fixed-capacity arena of reusable slots addressed by
// generational index handles.
//
// Acquire scans linearly for the first inactive slot. At the capacities used by
// the game (a few hundred slots at most) the O(n) scan is cheaper than keeping a
// free list in sync, and it keeps allocation order deterministic: the lowest
// free index is always handed out first. When the pool is full the request is
// dropped and counted; nothing is queued.
package pool

import "iter"

// Handle addresses a slot. The generation guards against releasing a slot that
// has since been recycled for a different entity.
type Handle uint64

// NewHandle creates a Handle from a slot index and generation.
func NewHandle(index uint32, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index.
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// Generation extracts the generation the slot had when the handle was issued.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Pool is a fixed-capacity slot arena for values of type T.
type Pool[T any] struct {
	items       []T
	active      []bool
	generations []uint32
	count       int

	highWater int
	acquires  int64
	drops     int64
}

// New creates a pool with the given capacity. Capacity is fixed for the
// lifetime of the pool.
func New[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		items:       make([]T, capacity),
		active:      make([]bool, capacity),
		generations: make([]uint32, capacity),
	}
}

// Acquire activates the first inactive slot and returns its handle and a
// pointer to its zeroed value. ok is false when every slot is in use.
func (p *Pool[T]) Acquire() (Handle, *T, bool) {
	for i, used := range p.active {
		if used {
			continue
		}

		var zero T
		p.items[i] = zero
		p.active[i] = true
		p.count++
		p.acquires++
		if p.count > p.highWater {
			p.highWater = p.count
		}

		return NewHandle(uint32(i), p.generations[i]), &p.items[i], true
	}

	p.drops++
	return 0, nil, false
}

// Release deactivates the slot addressed by h. Stale handles and slots that are
// already inactive are ignored and false is returned.
func (p *Pool[T]) Release(h Handle) bool {
	idx := int(h.Index())
	if idx >= len(p.active) {
		return false
	}
	if !p.active[idx] || p.generations[idx] != h.Generation() {
		return false
	}

	p.active[idx] = false
	p.generations[idx]++
	var zero T
	p.items[idx] = zero
	p.count--
	return true
}

// Get returns the value for an active slot.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	idx := int(h.Index())
	if idx >= len(p.active) {
		return nil, false
	}
	if !p.active[idx] || p.generations[idx] != h.Generation() {
		return nil, false
	}
	return &p.items[idx], true
}

// Active reports whether the handle refers to a live slot.
func (p *Pool[T]) Active(h Handle) bool {
	_, ok := p.Get(h)
	return ok
}

// All iterates active slots in ascending index order. Releasing the current
// slot from inside the loop is allowed.
func (p *Pool[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := range p.active {
			if !p.active[i] {
				continue
			}
			if !yield(NewHandle(uint32(i), p.generations[i]), &p.items[i]) {
				return
			}
		}
	}
}

// Len returns the number of active slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// Free returns the number of inactive slots.
func (p *Pool[T]) Free() int {
	return len(p.items) - p.count
}

// Reset releases every active slot. Outstanding handles become stale.
func (p *Pool[T]) Reset() {
	var zero T
	for i := range p.active {
		if p.active[i] {
			p.active[i] = false
			p.generations[i]++
			p.items[i] = zero
		}
	}
	p.count = 0
}

// Stats describes pool occupancy and pressure.
type Stats struct {
	Capacity  int
	Active    int
	HighWater int
	Acquires  int64
	Drops     int64
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Capacity:  len(p.items),
		Active:    p.count,
		HighWater: p.highWater,
		Acquires:  p.acquires,
		Drops:     p.drops,
	}
}
