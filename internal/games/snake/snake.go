package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered sequence of occupied cells, head first.
type Snake struct {
	board     Board
	color     core.RGB
	positions []core.Cell // Head at index 0
	length    int         // Target body length
	direction Direction
	next      Direction // Buffered direction for next move
	hasNext   bool

	// Tail cell dropped by the last Move, for the renderer to clear.
	dropped    core.Cell
	hasDropped bool
}

// NewSnake creates a snake of length 1 at the board center heading right.
func NewSnake(board Board, color core.RGB) *Snake {
	s := &Snake{board: board, color: color}
	s.Reset()
	return s
}

// Reset puts the snake back to its initial state in place.
func (s *Snake) Reset() {
	s.length = 1
	s.positions = []core.Cell{s.board.Center()}
	s.direction = DirRight
	s.hasNext = false
	s.hasDropped = false
}

// UpdateDirection requests a direction change for the next move.
// It is rejected if d reverses the current direction.
func (s *Snake) UpdateDirection(d Direction) bool {
	if d.IsOpposite(s.direction) {
		return false
	}
	s.next = d
	s.hasNext = true
	return true
}

// Move advances the snake by exactly one cell.
func (s *Snake) Move() {
	if s.hasNext {
		s.direction = s.next
		s.hasNext = false
	}

	head := s.board.Wrap(s.Head(), s.direction)
	s.positions = slices.Insert(s.positions, 0, head)

	s.hasDropped = false
	if len(s.positions) > s.length {
		last := len(s.positions) - 1
		s.dropped = s.positions[last]
		s.hasDropped = true
		s.positions = s.positions[:last]
	}
}

// Grow lengthens the snake by one; the tail is kept on the next move.
func (s *Snake) Grow() {
	s.length++
}

// SelfCollided reports whether the head overlaps the body. The two cells
// nearest the head are skipped: with one-cell steps and no reversal they
// can never be hit.
func (s *Snake) SelfCollided() bool {
	if len(s.positions) <= 2 {
		return false
	}
	return slices.Contains(s.positions[2:], s.Head())
}

// DroppedTail returns the cell vacated by the last move, if any.
func (s *Snake) DroppedTail() (core.Cell, bool) {
	return s.dropped, s.hasDropped
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.positions[0]
}

// Positions returns a copy of the body, head first.
func (s *Snake) Positions() []core.Cell {
	return slices.Clone(s.positions)
}

// Length returns the target body length.
func (s *Snake) Length() int {
	return s.length
}

// Direction returns the current movement direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Occupied returns a freshly built set of the cells held by the body.
func (s *Snake) Occupied() map[core.Cell]struct{} {
	set := make(map[core.Cell]struct{}, len(s.positions))
	for _, p := range s.positions {
		set[p] = struct{}{}
	}
	return set
}

// Render draws every segment. Erasing the dropped tail is left to the
// game, which must do it before the apple is drawn.
func (s *Snake) Render(dst Surface) {
	for _, p := range s.positions {
		drawCell(dst, s.board, p, s.color)
	}
}
