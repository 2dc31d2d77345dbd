package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Surface is the drawing target. Rectangles are in board pixels.
type Surface interface {
	// DrawCell fills r with fill and outlines it with the surface's
	// fixed border color.
	DrawCell(r core.Rect, fill core.RGB)

	// FillRect fills r with no border.
	FillRect(r core.Rect, fill core.RGB)
}

// Drawable is anything that can put itself on a Surface.
type Drawable interface {
	Render(dst Surface)
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Apple)(nil)
)

// drawCell paints grid cell c in fill color.
func drawCell(dst Surface, b Board, c core.Cell, fill core.RGB) {
	dst.DrawCell(b.CellRect(c), fill)
}

// clearCell repaints grid cell c with the background color.
func clearCell(dst Surface, b Board, c core.Cell, background core.RGB) {
	dst.FillRect(b.CellRect(c), background)
}
