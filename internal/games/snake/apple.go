package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoFreeCell is returned when every cell of the board is occupied.
var ErrNoFreeCell = errors.New("snake: no free cell for apple")

// maxRejections bounds rejection sampling before falling back to picking
// among the enumerated free cells.
const maxRejections = 64

// Apple is a single cell the snake can eat.
type Apple struct {
	board    Board
	color    core.RGB
	rng      *rand.Rand
	position core.Cell
}

// NewApple creates an apple placed on a cell not in occupied.
func NewApple(board Board, color core.RGB, rng *rand.Rand, occupied map[core.Cell]struct{}) (*Apple, error) {
	a := &Apple{board: board, color: color, rng: rng}
	if err := a.RandomizePosition(occupied); err != nil {
		return nil, err
	}
	return a, nil
}

// RandomizePosition moves the apple to a uniformly random cell not in
// occupied. The apple is left unchanged when the board is full.
func (a *Apple) RandomizePosition(occupied map[core.Cell]struct{}) error {
	if len(occupied) >= a.board.Size() {
		return ErrNoFreeCell
	}

	for range maxRejections {
		c := core.Cell{
			X: a.rng.Intn(a.board.Width()),
			Y: a.rng.Intn(a.board.Height()),
		}
		if _, taken := occupied[c]; !taken {
			a.position = c
			return nil
		}
	}

	// Dense board: draw among the free cells directly.
	free := make([]core.Cell, 0, a.board.Size()-len(occupied))
	for _, c := range a.board.Cells() {
		if _, taken := occupied[c]; !taken {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return ErrNoFreeCell
	}
	a.position = free[a.rng.Intn(len(free))]
	return nil
}

// Position returns the apple's cell.
func (a *Apple) Position() core.Cell {
	return a.position
}

// Render draws the apple.
func (a *Apple) Render(dst Surface) {
	drawCell(dst, a.board, a.position, a.color)
}
