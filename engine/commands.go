package engine

// Commands buffers work that must run after every system has executed for the
// current frame, such as overlay draw callbacks or stopping the host loop.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn for execution at the end of the frame. Functions run in the
// order they were queued.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued functions.
func (c *Commands) Pending() int {
	return len(c.defers)
}

// Flush runs all queued functions and resets the buffer. Functions queued
// while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
