// Package debugui provides a Dear ImGui overlay for the game: scheduler
// timing, pool occupancy and the current run, with a few live cheats.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/oneshot/engine"
)

// Item holds a Dear ImGui render function submitted every frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes the input capture state and defers every item's render
// function until the game systems have run.
type System[W any] struct {
	Items []Item
	Input InputState
}

func (s *System[W]) Execute(frame *engine.Frame[W]) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}

func (s *System[W]) Name() string {
	return "debugui"
}

// KeyboardCaptured reports whether the last frame's widgets own the keyboard.
func (s *System[W]) KeyboardCaptured() bool {
	return s.Input.WantCaptureKeyboard
}
