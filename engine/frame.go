package engine

// Frame carries everything a system may touch during one tick.
type Frame[W any] struct {
	DeltaTime float64
	Commands  *Commands
	World     W
}

// Dt returns the frame delta as float32, the precision the simulation runs at.
func (f *Frame[W]) Dt() float32 {
	return float32(f.DeltaTime)
}

func newFrame[W any](dt float64, world W, commands *Commands) *Frame[W] {
	return &Frame[W]{
		DeltaTime: dt,
		Commands:  commands,
		World:     world,
	}
}
