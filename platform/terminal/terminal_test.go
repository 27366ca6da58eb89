package terminal_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/oneshot/config"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/platform"
	"github.com/plus3/oneshot/platform/terminal"
)

func newTerminal(t *testing.T) (tcell.SimulationScreen, *game.World, *terminal.Keyboard) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)

	kb := terminal.NewKeyboard()
	w := game.NewWorld(config.Default(), game.DefaultRoster(), game.Services{
		Input:  kb,
		Random: platform.NewSeededRandom(1),
	})
	return screen, w, kb
}

func screenText(screen tcell.SimulationScreen) string {
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	for i, c := range cells {
		if i > 0 && i%width == 0 {
			b.WriteByte('\n')
		}
		if len(c.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return b.String()
}

func TestRunUntilEscape(t *testing.T) {
	screen, w, kb := newTerminal(t)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEsc, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, terminal.Run(ctx, screen, w, kb, 120))

	assert.Equal(t, game.ScreenLevelSelect, w.Screen)
	assert.Contains(t, screenText(screen), "SELECT LEVEL")
}

func TestRunUntilMenuQuit(t *testing.T) {
	screen, w, kb := newTerminal(t)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, terminal.Run(ctx, screen, w, kb, 120))
	assert.True(t, w.Quit)
}

func TestRunStopsOnCancel(t *testing.T) {
	screen, w, kb := newTerminal(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, terminal.Run(ctx, screen, w, kb, 60), context.Canceled)
	assert.Equal(t, game.ScreenMenu, w.Screen)
}

func TestRunUntilCtrlC(t *testing.T) {
	screen, w, kb := newTerminal(t)
	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, terminal.Run(ctx, screen, w, kb, 120))

	assert.Equal(t, game.MenuShop, w.MenuSel, "the frame that saw Ctrl-C still ran")
	assert.False(t, w.Quit)
}
