package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board is the fixed-size discrete playfield. It owns coordinate wrapping;
// there are no walls.
type Board struct {
	width    int // Columns
	height   int // Rows
	cellSize int // Pixels per cell edge
}

// NewBoard creates a board of width x height cells.
func NewBoard(width, height, cellSize int) (Board, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return Board{}, fmt.Errorf("snake: invalid board %dx%d (cell %d)", width, height, cellSize)
	}
	return Board{width: width, height: height, cellSize: cellSize}, nil
}

// BoardFromConfig builds the board described by a validated config.
func BoardFromConfig(cfg config.Config) (Board, error) {
	return NewBoard(cfg.GridWidth(), cfg.GridHeight(), cfg.Grid.CellSize)
}

// Width returns the number of columns.
func (b Board) Width() int { return b.width }

// Height returns the number of rows.
func (b Board) Height() int { return b.height }

// CellSize returns the edge length of one cell in pixels.
func (b Board) CellSize() int { return b.cellSize }

// Size returns the total number of cells.
func (b Board) Size() int { return b.width * b.height }

// Center returns the starting cell of the snake.
func (b Board) Center() core.Cell {
	return core.Cell{X: b.width / 2, Y: b.height / 2}
}

// Contains reports whether c lies on the board.
func (b Board) Contains(c core.Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// Wrap moves c one step in direction d, wrapping around the edges.
// In pixel terms this is ((px + dx*CELL) mod WIDTH, (py + dy*CELL) mod HEIGHT).
func (b Board) Wrap(c core.Cell, d Direction) core.Cell {
	next := c.Add(d.Vector())
	return core.Cell{
		X: core.Mod(next.X, b.width),
		Y: core.Mod(next.Y, b.height),
	}
}

// Pixel returns the pixel-space top-left corner of c.
func (b Board) Pixel(c core.Cell) (int, int) {
	return c.X * b.cellSize, c.Y * b.cellSize
}

// CellAt returns the cell containing pixel (px, py).
func (b Board) CellAt(px, py int) core.Cell {
	return core.Cell{X: px / b.cellSize, Y: py / b.cellSize}
}

// CellRect returns the pixel rectangle covered by c.
func (b Board) CellRect(c core.Cell) core.Rect {
	x, y := b.Pixel(c)
	return core.NewRect(x, y, b.cellSize, b.cellSize)
}

// Bounds returns the pixel rectangle of the whole board.
func (b Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.width*b.cellSize, b.height*b.cellSize)
}

// Cells returns every cell in row-major order.
func (b Board) Cells() []core.Cell {
	cells := make([]core.Cell, 0, b.Size())
	for y := range b.height {
		for x := range b.width {
			cells = append(cells, core.Cell{X: x, Y: y})
		}
	}
	return cells
}
