package engine

// System is one step of the per-frame pipeline. Systems run in the order they
// were registered and receive the shared world through the frame; any state a
// system needs between frames lives on the system value itself.
type System[W any] interface {
	Execute(frame *Frame[W])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[W any] func(frame *Frame[W])

func (f SystemFunc[W]) Execute(frame *Frame[W]) {
	f(frame)
}
