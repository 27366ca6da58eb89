package platform

import "github.com/kamstrup/intmap"

// Scripted is an Input whose presses are scheduled per frame ahead of time.
// Held keys stay down until released. The owner calls Advance once per frame,
// after the simulation has consumed the frame's input.
type Scripted struct {
	frame   int
	presses *intmap.Map[int, []Key]
	held    *intmap.Set[Key]
}

// NewScripted creates an empty script positioned at frame 0.
func NewScripted() *Scripted {
	return &Scripted{
		presses: intmap.New[int, []Key](64),
		held:    intmap.NewSet[Key](int(keyCount)),
	}
}

// Frame returns the current frame number.
func (s *Scripted) Frame() int {
	return s.frame
}

// PressAt schedules key presses on a future (or the current) frame.
func (s *Scripted) PressAt(frame int, keys ...Key) {
	existing, _ := s.presses.Get(frame)
	s.presses.Put(frame, append(existing, keys...))
}

// Press schedules key presses on the current frame.
func (s *Scripted) Press(keys ...Key) {
	s.PressAt(s.frame, keys...)
}

// Hold marks keys as held until Release.
func (s *Scripted) Hold(keys ...Key) {
	for _, k := range keys {
		s.held.Add(k)
	}
}

// Release lifts held keys.
func (s *Scripted) Release(keys ...Key) {
	for _, k := range keys {
		s.held.Del(k)
	}
}

// ReleaseAll lifts every held key.
func (s *Scripted) ReleaseAll() {
	s.held.Clear()
}

// Advance moves to the next frame and forgets the presses of the current one.
func (s *Scripted) Advance() {
	s.presses.Del(s.frame)
	s.frame++
}

func (s *Scripted) Pressed(k Key) bool {
	keys, ok := s.presses.Get(s.frame)
	if !ok {
		return false
	}
	for _, pressed := range keys {
		if pressed == k {
			return true
		}
	}
	return false
}

func (s *Scripted) Down(k Key) bool {
	return s.held.Has(k) || s.Pressed(k)
}
