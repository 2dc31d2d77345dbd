package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newSimRunner(t *testing.T, w, h int) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)

	game, err := snake.New(config.Default(), 5)
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	return NewRunner(sim, game, Options{}), sim
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want core.Event
		ok   bool
	}{
		{"up", tcell.KeyUp, 0, core.KeyEvent(core.KeyUp), true},
		{"down", tcell.KeyDown, 0, core.KeyEvent(core.KeyDown), true},
		{"left", tcell.KeyLeft, 0, core.KeyEvent(core.KeyLeft), true},
		{"right", tcell.KeyRight, 0, core.KeyEvent(core.KeyRight), true},
		{"w", tcell.KeyRune, 'w', core.KeyEvent(core.KeyUp), true},
		{"A", tcell.KeyRune, 'A', core.KeyEvent(core.KeyLeft), true},
		{"s", tcell.KeyRune, 's', core.KeyEvent(core.KeyDown), true},
		{"d", tcell.KeyRune, 'd', core.KeyEvent(core.KeyRight), true},
		{"esc", tcell.KeyEscape, 0, core.QuitEvent(), true},
		{"ctrl+c", tcell.KeyCtrlC, 0, core.QuitEvent(), true},
		{"q", tcell.KeyRune, 'q', core.QuitEvent(), true},
		{"x", tcell.KeyRune, 'x', core.Event{}, false},
		{"enter", tcell.KeyEnter, 0, core.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.key, tt.ch)
			if got != tt.want || ok != tt.ok {
				t.Errorf("translateKey() = %+v, %v; expected %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTickDrawsBoard(t *testing.T) {
	r, sim := newSimRunner(t, 80, 30)
	if r.game.Apple().Position() == (core.Cell{X: 16, Y: 13}) {
		t.Skip("apple sits on the first move target")
	}

	r.queue.Push(core.KeyEvent(core.KeyDown))
	if res := r.Tick(); res.Quit {
		t.Fatal("unexpected quit")
	}

	// 66x26 frame centered on 80x30.
	if ch, _, _, _ := sim.GetContent(7, 2); ch != '┌' {
		t.Errorf("frame corner = %q, expected ┌", ch)
	}

	// Head moved from (16,12) to (16,13).
	head := r.game.Snake().Head()
	if head != (core.Cell{X: 16, Y: 13}) {
		t.Fatalf("Head() = %v", head)
	}
	x, y := 8+head.X*2, 3+head.Y
	left, _, style, _ := sim.GetContent(x, y)
	right, _, _, _ := sim.GetContent(x+1, y)
	if left != '▏' || right != '▕' {
		t.Errorf("head glyphs = %q%q", left, right)
	}
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("head background = %v, expected snake green", bg)
	}

	// Vacated start cell is cleared.
	if ch, _, _, _ := sim.GetContent(8+16*2, 3+12); ch != ' ' {
		t.Errorf("old head cell = %q, expected cleared", ch)
	}
}

func TestTooSmallPauses(t *testing.T) {
	r, sim := newSimRunner(t, 30, 10)
	start := r.game.Snake().Head()

	r.queue.Push(core.KeyEvent(core.KeyUp))
	r.Tick()
	if r.game.Snake().Head() != start {
		t.Error("game advanced while paused")
	}

	sim.SetSize(80, 30)
	r.HandleEvent(tcell.NewEventResize(80, 30))
	r.Tick()
	if r.game.Snake().Head() == start {
		t.Error("game should resume after resize")
	}
}

func TestQuitWhilePaused(t *testing.T) {
	r, _ := newSimRunner(t, 30, 10)
	r.queue.Push(core.QuitEvent())
	if !r.Tick().Quit {
		t.Error("quit should be honored while paused")
	}
}

func TestQuitStopsGame(t *testing.T) {
	r, _ := newSimRunner(t, 80, 30)
	start := r.game.Snake().Head()

	r.queue.Push(core.QuitEvent())
	if !r.Tick().Quit {
		t.Fatal("expected Quit")
	}
	if r.game.Snake().Head() != start {
		t.Error("snake moved on quit")
	}
}

func TestStyleFor(t *testing.T) {
	if styleFor(core.Glyph{Rune: 'x'}) != tcell.StyleDefault {
		t.Error("uncolored glyph should use the default style")
	}
	fg, bg, _ := styleFor(core.Glyph{Rune: 'x', Fg: core.RGB{R: 1, G: 2, B: 3}, Bg: core.RGB{R: 255, G: 255, B: 255}, Colored: true}).Decompose()
	if fg != tcell.NewRGBColor(1, 2, 3) || bg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("styleFor() = fg %v bg %v", fg, bg)
	}
}

func TestTickDrawsCompactBoardOnStandardTerminal(t *testing.T) {
	r, sim := newSimRunner(t, 80, 24)
	if !r.surface.Layout().Compact() {
		t.Fatal("expected the compact layout on 80x24")
	}
	start := r.game.Snake().Head()

	r.Tick()

	head := r.game.Snake().Head()
	if head == start {
		t.Fatal("game did not advance on 80x24")
	}

	// 66x14 frame centered on 80x24: cells start at (8, 6).
	if ch, _, _, _ := sim.GetContent(7, 5); ch != '┌' {
		t.Errorf("frame corner = %q, expected ┌", ch)
	}
	ch, _, style, _ := sim.GetContent(8+head.X*2, 6+head.Y/2)
	if ch != '▀' {
		t.Errorf("head glyph = %q, expected ▀", ch)
	}
	fg, bg, _ := style.Decompose()
	green := tcell.NewRGBColor(0, 255, 0)
	if (head.Y%2 == 0 && fg != green) || (head.Y%2 == 1 && bg != green) {
		t.Errorf("head half not green: fg %v bg %v", fg, bg)
	}
}

func TestForwardEventsStopsWhenLoopEnds(t *testing.T) {
	r, sim := newSimRunner(t, 80, 30)

	events := make(chan tcell.Event) // Nobody reads.
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		r.forwardEvents(context.Background(), done, events)
		close(finished)
	}()

	if err := sim.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatalf("PostEvent() failed: %v", err)
	}
	close(done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("forwardEvents blocked on a send after the loop stopped")
	}
}

func TestForwardEventsStopsOnCancel(t *testing.T) {
	r, sim := newSimRunner(t, 80, 30)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event)
	finished := make(chan struct{})
	go func() {
		r.forwardEvents(ctx, make(chan struct{}), events)
		close(finished)
	}()

	if err := sim.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		t.Fatalf("PostEvent() failed: %v", err)
	}
	cancel()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("forwardEvents blocked on a send after cancel")
	}
}
