// Package term runs the snake game directly on a tcell screen with an
// explicit poll and tick loop, flushing only the characters that changed.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Sounds plays the game's audio cues.
type Sounds interface {
	PlayEat()
	PlayReset()
}

// Options configures a Runner. Zero values are usable.
type Options struct {
	Logger *log.Logger
	Sounds Sounds
}

// Runner drives one game on a tcell screen.
type Runner struct {
	screen  tcell.Screen
	game    *snake.Game
	buf     *core.Screen // Frame being composed
	shown   *core.Screen // What the terminal currently displays
	surface *snake.ScreenSurface
	queue   core.EventQueue
	sounds  Sounds
	logger  *log.Logger
	paused  bool // Terminal too small for the board
}

// NewRunner creates a runner on an initialized screen.
func NewRunner(screen tcell.Screen, game *snake.Game, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Runner{
		screen: screen,
		game:   game,
		sounds: opts.Sounds,
		logger: logger,
	}
	r.resize()
	return r
}

// Run opens the terminal, plays until a quit key or ctx is done, then
// restores the terminal.
func Run(ctx context.Context, game *snake.Game, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return NewRunner(screen, game, opts).Loop(ctx)
}

// Loop polls input in a background goroutine and advances the game on a
// fixed ticker. It returns when the game reports Quit or ctx is done.
func (r *Runner) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go r.forwardEvents(ctx, done, events)

	ticker := time.NewTicker(time.Second / time.Duration(r.game.TickRate()))
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.pollEvents(events)
			if res := r.Tick(); res.Quit {
				return nil
			}
		}
	}
}

// forwardEvents sends terminal events to events until the screen is
// finalized or the loop stops. A send never outlives the loop.
func (r *Runner) forwardEvents(ctx context.Context, done <-chan struct{}, events chan<- tcell.Event) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		case <-done:
			return
		}
	}
}

// pollEvents drains every pending terminal event without blocking.
func (r *Runner) pollEvents(events <-chan tcell.Event) {
	for {
		select {
		case ev := <-events:
			r.HandleEvent(ev)
		default:
			return
		}
	}
}

// HandleEvent queues key presses for the next tick and applies resizes
// right away.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e, ok := translateKey(ev.Key(), ev.Rune()); ok {
			r.queue.Push(e)
		}
	case *tcell.EventResize:
		r.resize()
		r.screen.Sync()
	}
}

// Tick advances the game one step and redraws. While the terminal is too
// small only quit is honored.
func (r *Runner) Tick() snake.StepResult {
	events := r.queue.Drain()

	if r.paused {
		for _, e := range events {
			if e.Kind == core.EventQuit {
				return snake.StepResult{Quit: true}
			}
		}
		r.draw()
		return snake.StepResult{}
	}

	res := r.game.Step(events)
	if res.Quit {
		return res
	}
	if res.Ate && r.sounds != nil {
		r.sounds.PlayEat()
	}
	if res.Reset {
		r.logger.Debug("snake reset", "resets", r.game.Snapshot().Resets)
		if r.sounds != nil {
			r.sounds.PlayReset()
		}
	}
	r.draw()
	return res
}

// resize matches the buffers to the terminal and schedules a full repaint.
func (r *Runner) resize() {
	w, h := r.screen.Size()
	r.buf = core.NewScreen(w, h)
	r.shown = nil
	colors := r.game.Config().Colors
	r.surface = snake.NewScreenSurface(r.buf, r.game.Board(), colors.Border.RGB(), colors.Background.RGB())
	r.paused = !r.surface.Layout().Fits()
	r.game.RequestRepaint()
	r.screen.Clear()
}

// draw renders the game into the buffer and flushes it.
func (r *Runner) draw() {
	if r.paused {
		r.buf.Clear()
		needW, needH := snake.CompactSize(r.game.Board())
		r.buf.DrawTextCentered(r.buf.Height()/2-1, "Terminal too small")
		r.buf.DrawTextCentered(r.buf.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, r.buf.Width(), r.buf.Height()))
		r.buf.DrawTextCentered(r.buf.Height()/2+1, "q to quit")
		// Board must repaint fully once it fits again.
		r.game.RequestRepaint()
	} else {
		r.game.Render(r.surface)
		r.surface.DrawFrame(r.game.Status())
	}
	r.flush()
}

// flush copies changed glyphs to the terminal.
func (r *Runner) flush() {
	full := r.shown == nil || r.shown.Width() != r.buf.Width() || r.shown.Height() != r.buf.Height()
	if full {
		r.shown = core.NewScreen(r.buf.Width(), r.buf.Height())
	}

	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			g := r.buf.GetGlyph(x, y)
			if !full && g == r.shown.GetGlyph(x, y) {
				continue
			}
			r.screen.SetContent(x, y, g.Rune, nil, styleFor(g))
			r.shown.SetGlyph(x, y, g)
		}
	}
	r.screen.Show()
}

// styleFor converts a glyph's colors to a tcell style.
func styleFor(g core.Glyph) tcell.Style {
	if !g.Colored {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.
		Foreground(rgb(g.Fg)).
		Background(rgb(g.Bg))
}

func rgb(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// translateKey maps a tcell key to a game event: arrows and WASD steer,
// Esc, Ctrl+C and q quit.
func translateKey(k tcell.Key, ch rune) (core.Event, bool) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.QuitEvent(), true
	case tcell.KeyUp:
		return core.KeyEvent(core.KeyUp), true
	case tcell.KeyDown:
		return core.KeyEvent(core.KeyDown), true
	case tcell.KeyLeft:
		return core.KeyEvent(core.KeyLeft), true
	case tcell.KeyRight:
		return core.KeyEvent(core.KeyRight), true
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return core.QuitEvent(), true
		case 'w', 'W':
			return core.KeyEvent(core.KeyUp), true
		case 's', 'S':
			return core.KeyEvent(core.KeyDown), true
		case 'a', 'A':
			return core.KeyEvent(core.KeyLeft), true
		case 'd', 'D':
			return core.KeyEvent(core.KeyRight), true
		}
	}
	return core.Event{Kind: core.EventNone}, false
}
