package core

import (
	"strings"
)

// Glyph is one character cell of the screen buffer.
// When Colored is false the front end draws it with the terminal defaults.
type Glyph struct {
	Rune    rune
	Fg, Bg  RGB
	Colored bool
}

var blank = Glyph{Rune: ' '}

// Screen is a 2D character buffer with per-cell colors.
// Games draw into it; each front end decides how to put it on a terminal.
type Screen struct {
	width  int
	height int
	cells  [][]Glyph
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Glyph, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Glyph, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	copyW, copyH := min(s.width, width), min(s.height, height)

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := range copyH {
		copy(s.cells[y][:copyW], old[y][:copyW])
	}
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetGlyph(x, y, Glyph{Rune: r})
}

// SetGlyph places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetGlyph(x, y int, g Glyph) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = g
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetGlyph(x, y).Rune
}

// GetGlyph returns the glyph at the given position, or a blank glyph when
// out of bounds.
func (s *Screen) GetGlyph(x, y int) Glyph {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to
// the screen.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextColored writes a colored string starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, fg, bg RGB) {
	i := 0
	for _, r := range text {
		s.SetGlyph(x+i, y, Glyph{Rune: r, Fg: fg, Bg: bg, Colored: true})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawBox draws a box outline using box-drawing characters in the given
// colors.
func (s *Screen) DrawBox(r Rect, fg, bg RGB) {
	put := func(x, y int, ch rune) {
		s.SetGlyph(x, y, Glyph{Rune: ch, Fg: fg, Bg: bg, Colored: true})
	}

	put(r.X, r.Y, '┌')
	put(r.Right()-1, r.Y, '┐')
	put(r.X, r.Bottom()-1, '└')
	put(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		put(x, r.Y, '─')
		put(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		put(r.X, y, '│')
		put(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, g := range s.cells[y] {
		sb.WriteRune(g.Rune)
	}
	return sb.String()
}
