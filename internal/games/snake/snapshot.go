package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Length      int // Target length
	SnakeLen    int // Cells currently held
	Head        core.Cell
	Dir         Direction
	Apple       core.Cell
	ApplesEaten int
	Resets      int
	Best        int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Length:      g.snake.Length(),
		SnakeLen:    len(g.snake.positions),
		Head:        g.snake.Head(),
		Dir:         g.snake.Direction(),
		Apple:       g.apple.Position(),
		ApplesEaten: g.applesEaten,
		Resets:      g.resets,
		Best:        g.best,
	}
}
