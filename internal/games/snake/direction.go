package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit vector for d. Y grows downwards.
func (d Direction) Vector() core.Cell {
	switch d {
	case DirUp:
		return core.Cell{X: 0, Y: -1}
	case DirDown:
		return core.Cell{X: 0, Y: 1}
	case DirLeft:
		return core.Cell{X: -1, Y: 0}
	default:
		return core.Cell{X: 1, Y: 0}
	}
}

// IsOpposite reports whether o is the exact reverse of d.
func (d Direction) IsOpposite(o Direction) bool {
	return d.Vector().Neg() == o.Vector()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionForKey maps a steering key to a direction.
func DirectionForKey(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyUp:
		return DirUp, true
	case core.KeyDown:
		return DirDown, true
	case core.KeyLeft:
		return DirLeft, true
	case core.KeyRight:
		return DirRight, true
	}
	return 0, false
}
