package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"

	"github.com/plus3/oneshot/platform"
)

// DefaultHoldTimeout is how long a key counts as held after its last press.
// Terminals report no key releases, only the auto-repeat of a held key, and
// the first repeat usually comes 250-600ms after the press.
const DefaultHoldTimeout = 500 * time.Millisecond

// Keyboard turns tcell key events into platform.Input. Presses are edges for
// the frame they arrive in; Down is emulated from the last press time.
//
// A press only counts as a new edge when the key is not already held, so
// HoldTimeout trades two things: taps closer together than it merge into one
// press, and a key whose first auto-repeat comes later than it registers a
// second press.
type Keyboard struct {
	HoldTimeout time.Duration

	now       func() time.Time
	pressed   *intmap.Set[platform.Key]
	lastPress *intmap.Map[platform.Key, int64]
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		HoldTimeout: DefaultHoldTimeout,
		now:         time.Now,
		pressed:     intmap.NewSet[platform.Key](16),
		lastPress:   intmap.New[platform.Key, int64](16),
	}
}

// Handle records a key event. It reports false for keys the game ignores.
func (kb *Keyboard) Handle(ev *tcell.EventKey) bool {
	k, ok := translate(ev)
	if !ok {
		return false
	}
	if !kb.held(k) {
		kb.pressed.Add(k)
	}
	kb.lastPress.Put(k, ev.When().UnixNano())
	return true
}

// Advance ends the frame: this frame's presses are forgotten.
func (kb *Keyboard) Advance() {
	kb.pressed.Clear()
}

func (kb *Keyboard) Pressed(k platform.Key) bool {
	return kb.pressed.Has(k)
}

func (kb *Keyboard) Down(k platform.Key) bool {
	return kb.pressed.Has(k) || kb.held(k)
}

func (kb *Keyboard) held(k platform.Key) bool {
	last, ok := kb.lastPress.Get(k)
	if !ok {
		return false
	}
	return kb.now().UnixNano()-last < int64(kb.HoldTimeout)
}

func translate(ev *tcell.EventKey) (platform.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return platform.KeyUp, true
	case tcell.KeyDown:
		return platform.KeyDown, true
	case tcell.KeyEnter:
		return platform.KeyEnter, true
	case tcell.KeyEsc:
		return platform.KeyEscape, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'w', 'W':
		return platform.KeyW, true
	case 'a', 'A':
		return platform.KeyA, true
	case 's', 'S':
		return platform.KeyS, true
	case 'd', 'D':
		return platform.KeyD, true
	case 'e', 'E':
		return platform.KeyE, true
	case 'm', 'M':
		return platform.KeyM, true
	case ' ':
		return platform.KeySpace, true
	case '0':
		return platform.KeyZero, true
	case '1':
		return platform.KeyOne, true
	case '2':
		return platform.KeyTwo, true
	case '3':
		return platform.KeyThree, true
	case '4':
		return platform.KeyFour, true
	}
	return 0, false
}
