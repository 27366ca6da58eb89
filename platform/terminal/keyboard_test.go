package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/oneshot/platform"
)

func TestKeyboardPressAndHold(t *testing.T) {
	kb := NewKeyboard()
	base := time.Now()
	offset := time.Duration(0)
	kb.now = func() time.Time { return base.Add(offset) }

	assert.True(t, kb.Handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.True(t, kb.Pressed(platform.KeyW))
	assert.True(t, kb.Down(platform.KeyW))

	kb.Advance()
	assert.False(t, kb.Pressed(platform.KeyW), "presses last one frame")
	assert.True(t, kb.Down(platform.KeyW), "held until the timeout")

	assert.True(t, kb.Handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.False(t, kb.Pressed(platform.KeyW), "auto-repeat is not a new press")

	offset = time.Second
	assert.False(t, kb.Down(platform.KeyW))
}

func TestKeyboardTranslation(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want platform.Key
	}{
		{tcell.KeyUp, 0, platform.KeyUp},
		{tcell.KeyDown, 0, platform.KeyDown},
		{tcell.KeyEnter, 0, platform.KeyEnter},
		{tcell.KeyEsc, 0, platform.KeyEscape},
		{tcell.KeyRune, 'E', platform.KeyE},
		{tcell.KeyRune, 'm', platform.KeyM},
		{tcell.KeyRune, ' ', platform.KeySpace},
		{tcell.KeyRune, '0', platform.KeyZero},
		{tcell.KeyRune, '4', platform.KeyFour},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			kb := NewKeyboard()
			assert.True(t, kb.Handle(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)))
			assert.True(t, kb.Pressed(tt.want))
		})
	}

	kb := NewKeyboard()
	assert.False(t, kb.Handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, kb.Handle(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)))
}

func TestKeyboardHoldTimeoutBridgesRepeatDelay(t *testing.T) {
	tests := []struct {
		name      string
		timeout   time.Duration
		wantPress bool
	}{
		{"timeout longer than repeat delay", 500 * time.Millisecond, false},
		{"timeout shorter than repeat delay", 150 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeyboard()
			kb.HoldTimeout = tt.timeout
			base := time.Now()
			offset := time.Duration(0)
			kb.now = func() time.Time { return base.Add(offset) }

			kb.Handle(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
			kb.Advance()

			// First auto-repeat of a held key.
			offset = 400 * time.Millisecond
			kb.Handle(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
			assert.Equal(t, tt.wantPress, kb.Pressed(platform.KeyA))
			assert.True(t, kb.Down(platform.KeyA))
		})
	}
}
