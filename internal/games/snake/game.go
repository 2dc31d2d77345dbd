// Package snake implements the Snake game: a snake moving on a wrapping
// grid, eating apples to grow and resetting in place when it bites itself.
// The package has no terminal dependencies; front ends feed it input
// events once per tick and give it a Surface to draw on.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Title is the display name of the game.
const Title = "Snake"

// StepResult describes what happened during one tick.
type StepResult struct {
	Quit  bool // A quit event was received; nothing else was updated
	Ate   bool // The head landed on the apple
	Reset bool // The snake was reset to the center
}

// Game owns the board, snake and apple and advances them one tick at a time.
type Game struct {
	cfg   config.Config
	board Board
	rng   *rand.Rand
	snake *Snake
	apple *Apple

	tick        uint64
	applesEaten int
	resets      int
	best        int  // Longest length reached since start
	repaint     bool // Next Render paints the whole board
}

// New creates a game from a validated config. The seed drives apple
// placement so identical seeds and inputs replay identically.
func New(cfg config.Config, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := BoardFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		board:   board,
		rng:     rand.New(rand.NewSource(seed)),
		repaint: true,
	}
	g.snake = NewSnake(board, cfg.Colors.Snake.RGB())
	g.apple, err = NewApple(board, cfg.Colors.Apple.RGB(), g.rng, g.snake.Occupied())
	if err != nil {
		return nil, fmt.Errorf("snake: cannot place apple: %w", err)
	}
	g.best = g.snake.Length()
	return g, nil
}

// Step advances the game by one tick: apply input, move, then resolve the
// apple and self-collision.
func (g *Game) Step(events []core.Event) StepResult {
	var res StepResult

	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			res.Quit = true
			return res
		case core.EventKeyDown:
			if d, ok := DirectionForKey(ev.Key); ok {
				g.snake.UpdateDirection(d)
			}
		}
	}

	g.tick++
	g.snake.Move()

	switch {
	case g.snake.Head() == g.apple.Position():
		res.Ate = true
		g.applesEaten++
		g.snake.Grow()
		g.best = max(g.best, g.snake.Length())
		err := g.apple.RandomizePosition(g.snake.Occupied())
		if errors.Is(err, ErrNoFreeCell) {
			// The body filled the board: start over.
			g.resetSnake()
			res.Reset = true
		}
	case g.snake.SelfCollided():
		g.resetSnake()
		res.Reset = true
	}

	return res
}

// resetSnake resets the snake in place. The apple only moves if it sits on
// the center cell the snake restarts from.
func (g *Game) resetSnake() {
	g.snake.Reset()
	g.resets++
	g.repaint = true

	if _, taken := g.snake.Occupied()[g.apple.Position()]; taken {
		// Cannot fail: the snake holds one cell of a board of at least nine.
		_ = g.apple.RandomizePosition(g.snake.Occupied())
	}
}

// Render draws the current state. The first frame and the frame after a
// reset repaint the whole board; other frames clear the dropped tail and
// redraw the apple and the snake.
func (g *Game) Render(dst Surface) {
	bg := g.cfg.Colors.Background.RGB()

	if g.repaint {
		dst.FillRect(g.board.Bounds(), bg)
		g.repaint = false
	} else if tail, ok := g.snake.DroppedTail(); ok {
		clearCell(dst, g.board, tail, bg)
	}

	for _, d := range g.drawables() {
		d.Render(dst)
	}
}

// RequestRepaint makes the next Render paint the whole board, e.g. after
// the front end resized or cleared its buffer.
func (g *Game) RequestRepaint() {
	g.repaint = true
}

// drawables lists the entities in paint order.
func (g *Game) drawables() []Drawable {
	return []Drawable{g.apple, g.snake}
}

// Board returns the playfield.
func (g *Game) Board() Board { return g.board }

// Snake returns the snake.
func (g *Game) Snake() *Snake { return g.snake }

// Apple returns the apple.
func (g *Game) Apple() *Apple { return g.apple }

// Config returns the config the game was built with.
func (g *Game) Config() config.Config { return g.cfg }

// TickRate returns the configured moves per second.
func (g *Game) TickRate() int { return g.cfg.Speed }

// Status returns the HUD line.
func (g *Game) Status() string {
	return fmt.Sprintf("%s · length %d · best %d", Title, g.snake.Length(), g.best)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Apples: %d, Resets: %d\n", g.tick, g.applesEaten, g.resets)
	fmt.Fprintf(&b, "Snake len: %d/%d, Direction: %s\n", len(g.snake.positions), g.snake.Length(), g.snake.Direction())
	fmt.Fprintf(&b, "Head: %v, Apple: %v\n", g.snake.Head(), g.apple.Position())
	return b.String()
}
