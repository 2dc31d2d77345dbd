package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal geometry: one grid cell is two columns wide and one row tall,
// and the board sits inside a one-character frame. Terminals too short for
// that stack two grid rows per character with a half block.
const (
	columnsPerCell = 2
	frameSize      = 1
	halfBlock      = '▀'
)

// Layout places a board on a terminal screen.
type Layout struct {
	board   Board
	originX int  // Screen column of cell (0, 0)
	originY int  // Screen row of cell (0, 0)
	compact bool // Two grid rows per terminal row
	fits    bool
}

// NewLayout centers board on a screenW x screenH terminal, switching to
// the compact layout when the full one does not fit.
func NewLayout(board Board, screenW, screenH int) Layout {
	l := Layout{board: board}
	needW, needH := RequiredSize(board)
	if screenW < needW || screenH < needH {
		l.compact = true
		needW, needH = CompactSize(board)
	}
	l.fits = screenW >= needW && screenH >= needH
	l.originX = max((screenW-needW)/2, 0) + frameSize
	l.originY = max((screenH-needH)/2, 0) + frameSize
	return l
}

// RequiredSize returns the terminal size needed to show the board with
// one row per grid row.
func RequiredSize(board Board) (int, int) {
	return board.Width()*columnsPerCell + 2*frameSize, board.Height() + 2*frameSize
}

// CompactSize returns the smallest terminal that can show the board.
func CompactSize(board Board) (int, int) {
	return board.Width()*columnsPerCell + 2*frameSize, (board.Height()+1)/2 + 2*frameSize
}

// Fits reports whether the terminal is large enough for the board.
func (l Layout) Fits() bool {
	return l.fits
}

// Compact reports whether half blocks are in use.
func (l Layout) Compact() bool {
	return l.compact
}

// Frame returns the screen rectangle of the frame around the board.
func (l Layout) Frame() core.Rect {
	w, h := RequiredSize(l.board)
	if l.compact {
		w, h = CompactSize(l.board)
	}
	return core.NewRect(l.originX-frameSize, l.originY-frameSize, w, h)
}

// ScreenSurface draws board pixels onto a terminal screen buffer.
type ScreenSurface struct {
	screen     *core.Screen
	layout     Layout
	border     core.RGB
	background core.RGB

	// Compact layout only: last fill of every board cell, row-major.
	// A half block shows two cells, so painting one needs its neighbour.
	fills []core.RGB
}

var _ Surface = (*ScreenSurface)(nil)

// NewScreenSurface creates a surface for board on screen with the given
// fixed border and background colors.
func NewScreenSurface(screen *core.Screen, board Board, border, background core.RGB) *ScreenSurface {
	s := &ScreenSurface{
		screen:     screen,
		layout:     NewLayout(board, screen.Width(), screen.Height()),
		border:     border,
		background: background,
	}
	if s.layout.compact {
		s.fills = make([]core.RGB, board.Size())
		for i := range s.fills {
			s.fills[i] = background
		}
	}
	return s
}

// Layout returns the placement in use.
func (s *ScreenSurface) Layout() Layout {
	return s.layout
}

// DrawFrame draws the frame in the border color with title on its top edge.
func (s *ScreenSurface) DrawFrame(title string) {
	frame := s.layout.Frame()
	s.screen.DrawBox(frame, s.border, s.background)
	if title != "" {
		label := fmt.Sprintf(" %s ", title)
		if len([]rune(label)) <= frame.W-4 {
			s.screen.DrawTextColored(frame.X+2, frame.Y, label, s.border, s.background)
		}
	}
}

// DrawCell fills r and marks its left and right edges with thin bars in
// the border color. A terminal row cannot show top and bottom borders,
// and the compact layout shows no border at all.
func (s *ScreenSurface) DrawCell(r core.Rect, fill core.RGB) {
	s.eachCell(r, func(c core.Cell) {
		if s.layout.compact {
			s.paintHalf(c, fill)
			return
		}
		x, y := s.screenPos(c)
		s.screen.SetGlyph(x, y, core.Glyph{Rune: '▏', Fg: s.border, Bg: fill, Colored: true})
		s.screen.SetGlyph(x+1, y, core.Glyph{Rune: '▕', Fg: s.border, Bg: fill, Colored: true})
	})
}

// FillRect paints r with fill.
func (s *ScreenSurface) FillRect(r core.Rect, fill core.RGB) {
	s.eachCell(r, func(c core.Cell) {
		if s.layout.compact {
			s.paintHalf(c, fill)
			return
		}
		x, y := s.screenPos(c)
		for dx := range columnsPerCell {
			s.screen.SetGlyph(x+dx, y, core.Glyph{Rune: ' ', Fg: fill, Bg: fill, Colored: true})
		}
	})
}

// paintHalf records the fill of c and redraws the half block shared with
// its vertical neighbour: upper cell in the foreground, lower in the
// background. The lower half of the last row of an odd board is background.
func (s *ScreenSurface) paintHalf(c core.Cell, fill core.RGB) {
	b := s.layout.board
	s.fills[c.Y*b.Width()+c.X] = fill

	top := c.Y &^ 1
	upper := s.fills[top*b.Width()+c.X]
	lower := s.background
	if top+1 < b.Height() {
		lower = s.fills[(top+1)*b.Width()+c.X]
	}

	x, y := s.screenPos(core.Cell{X: c.X, Y: top})
	g := core.Glyph{Rune: halfBlock, Fg: upper, Bg: lower, Colored: true}
	for dx := range columnsPerCell {
		s.screen.SetGlyph(x+dx, y, g)
	}
}

// screenPos returns the screen position of the left column of c.
func (s *ScreenSurface) screenPos(c core.Cell) (int, int) {
	y := c.Y
	if s.layout.compact {
		y /= 2
	}
	return s.layout.originX + c.X*columnsPerCell, s.layout.originY + y
}

// eachCell calls fn with every board cell r covers.
func (s *ScreenSurface) eachCell(r core.Rect, fn func(c core.Cell)) {
	b := s.layout.board
	size := b.CellSize()
	start := b.CellAt(max(r.X, 0), max(r.Y, 0))
	x1 := (r.Right() + size - 1) / size
	y1 := (r.Bottom() + size - 1) / size

	for cy := start.Y; cy < min(y1, b.Height()); cy++ {
		for cx := start.X; cx < min(x1, b.Width()); cx++ {
			fn(core.Cell{X: cx, Y: cy})
		}
	}
}
