package debugui

import (
	"github.com/plus3/oneshot/engine"
	"github.com/plus3/oneshot/game"
)

// Attach registers the debug panels on the game scheduler. Register it last
// so its widgets see the frame's final state.
func Attach(w *game.World, sched *engine.Scheduler[*game.World]) *System[*game.World] {
	sys := &System[*game.World]{
		Items: []Item{
			{Render: NewPerformanceStats(sched, 120).Render},
			{Render: NewRunInspector(w).Render},
		},
	}
	sched.Register(sys)
	return sys
}
