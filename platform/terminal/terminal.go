// Package terminal hosts the game in a text terminal through tcell. The world
// is rasterised onto the character grid, scaled to the terminal size.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/oneshot/engine"
	"github.com/plus3/oneshot/game"
	"github.com/plus3/oneshot/platform"
)

const maxDelta = 0.1

// Screen presents a Canvas on a tcell screen. It implements
// platform.Renderer and platform.FrameRenderer.
type Screen struct {
	*Canvas
	screen tcell.Screen
}

func NewScreen(s tcell.Screen, worldW, worldH float32) *Screen {
	cols, rows := s.Size()
	return &Screen{Canvas: NewCanvas(worldW, worldH, cols, rows), screen: s}
}

// BeginFrame follows terminal resizes.
func (s *Screen) BeginFrame() {
	cols, rows := s.screen.Size()
	if c, r := s.Canvas.Size(); c != cols || r != rows {
		s.Canvas.Resize(cols, rows)
	}
}

// EndFrame copies the canvas to the terminal and shows it.
func (s *Screen) EndFrame() {
	cols, rows := s.Canvas.Size()
	for row := range rows {
		for col := range cols {
			ch, fg, bg := s.Canvas.Cell(col, row)
			if ch == 0 {
				ch = ' '
			}
			style := tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(bg))
			s.screen.SetContent(col, row, ch, nil, style)
		}
	}
	s.screen.Show()
}

func rgb(c platform.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run drives w on screen at fps until ctx ends, the player quits from the
// menu, or Escape or Ctrl-C is pressed. kb must be the world's input.
func Run(ctx context.Context, screen tcell.Screen, w *game.World, kb *Keyboard, fps int) error {
	if fps <= 0 {
		fps = 60
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	h := &host{events: events, kb: kb, screen: screen, stop: stop}
	sched := engine.NewScheduler(w)
	sched.MaxDelta = maxDelta
	sched.Register(&eventSystem{h})
	game.RegisterSystems(sched, NewScreen(screen, w.Width, w.Height))
	sched.Register(&frameEndSystem{h})

	sched.Run(runCtx, time.Second/time.Duration(fps))
	if err := ctx.Err(); err != nil {
		return err
	}
	w.Log.Info("terminal closed",
		zap.Int64("frames", sched.Stats().Frames),
		zap.Bool("quit", w.Quit))
	return nil
}

// host is the terminal state shared by the systems that bracket the
// game systems in each frame.
type host struct {
	events <-chan tcell.Event
	kb     *Keyboard
	screen tcell.Screen
	stop   context.CancelFunc

	closing bool
}

// eventSystem feeds pending terminal events to the keyboard before the game
// reads its input.
type eventSystem struct{ *host }

func (s *eventSystem) Name() string { return "terminal-events" }

func (s *eventSystem) Execute(*engine.Frame[*game.World]) {
	if s.drain() {
		s.closing = true
	}
}

// frameEndSystem ages the keyboard and stops the loop once the frame that
// asked for it has been drawn.
type frameEndSystem struct{ *host }

func (s *frameEndSystem) Name() string { return "terminal-frame-end" }

func (s *frameEndSystem) Execute(frame *engine.Frame[*game.World]) {
	s.kb.Advance()
	if s.closing || frame.World.Quit {
		frame.Commands.Defer(s.stop)
	}
}

// drain consumes pending events without blocking and reports whether the
// host should stop after this frame.
func (s *host) drain() bool {
	stop := false
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return true
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					stop = true
					continue
				}
				s.kb.Handle(ev)
				if s.kb.Pressed(platform.KeyEscape) {
					stop = true
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return stop
		}
	}
}
