package pool_test

import (
	"fmt"

	"github.com/plus3/oneshot/pool"
)

// ExamplePool shows the acquire/iterate/release cycle used for short-lived
// entities such as explosions.
func ExamplePool() {
	type Explosion struct {
		Timer float32
	}

	explosions := pool.New[Explosion](2)

	for _, timer := range []float32{0.4, 0.2, 0.3} {
		_, e, ok := explosions.Acquire()
		if !ok {
			fmt.Println("pool full, explosion dropped")
			continue
		}
		e.Timer = timer
	}

	for h, e := range explosions.All() {
		e.Timer -= 0.25
		if e.Timer <= 0 {
			explosions.Release(h)
		}
	}

	fmt.Println("active:", explosions.Len())
	fmt.Println("drops:", explosions.Stats().Drops)
	// Output:
	// pool full, explosion dropped
	// active: 1
	// drops: 1
}
