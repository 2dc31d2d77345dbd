package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	borderCyan = core.RGB{R: 93, G: 216, B: 228}
	bgBlack    = core.RGB{}
)

func smallBoard(t *testing.T) Board {
	t.Helper()
	b, err := NewBoard(4, 3, 20)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(defaultBoard(t))
	if w != 66 || h != 26 {
		t.Errorf("RequiredSize() = %dx%d, expected 66x26", w, h)
	}
}

func TestCompactSize(t *testing.T) {
	w, h := CompactSize(defaultBoard(t))
	if w != 66 || h != 14 {
		t.Errorf("CompactSize() = %dx%d, expected 66x14", w, h)
	}
}

func TestLayout(t *testing.T) {
	b := smallBoard(t) // needs 10x5, or 10x4 compact

	tests := []struct {
		name    string
		w, h    int
		fits    bool
		compact bool
		frame   core.Rect
	}{
		{"exact", 10, 5, true, false, core.NewRect(0, 0, 10, 5)},
		{"centered", 20, 11, true, false, core.NewRect(5, 3, 10, 5)},
		{"compact", 10, 4, true, true, core.NewRect(0, 0, 10, 4)},
		{"too narrow", 9, 5, false, true, core.NewRect(0, 0, 10, 4)},
		{"too short", 10, 3, false, true, core.NewRect(0, 0, 10, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(b, tt.w, tt.h)
			if l.Fits() != tt.fits {
				t.Errorf("Fits() = %v, expected %v", l.Fits(), tt.fits)
			}
			if l.Compact() != tt.compact {
				t.Errorf("Compact() = %v, expected %v", l.Compact(), tt.compact)
			}
			if f := l.Frame(); f != tt.frame {
				t.Errorf("Frame() = %+v, expected %+v", f, tt.frame)
			}
		})
	}
}

func TestDefaultBoardFitsStandardTerminal(t *testing.T) {
	// 80x24 minus one footer row.
	l := NewLayout(defaultBoard(t), 80, 23)
	if !l.Fits() || !l.Compact() {
		t.Errorf("Fits() = %v, Compact() = %v; expected a compact fit", l.Fits(), l.Compact())
	}
}

func TestCompactSurfaceStacksRows(t *testing.T) {
	b := smallBoard(t)
	screen := core.NewScreen(10, 4)
	surf := NewScreenSurface(screen, b, borderCyan, bgBlack)
	if !surf.Layout().Compact() {
		t.Fatal("expected the compact layout")
	}

	green, red, blue := core.RGB{G: 255}, core.RGB{R: 255}, core.RGB{B: 255}
	surf.FillRect(b.Bounds(), bgBlack)
	surf.DrawCell(b.CellRect(core.Cell{X: 1, Y: 0}), green)
	surf.DrawCell(b.CellRect(core.Cell{X: 1, Y: 1}), red)
	surf.DrawCell(b.CellRect(core.Cell{X: 2, Y: 2}), blue)

	tests := []struct {
		name   string
		x, y   int
		fg, bg core.RGB
	}{
		{"empty pair", 1, 1, bgBlack, bgBlack},
		{"upper and lower", 3, 1, green, red},
		{"upper and lower right column", 4, 1, green, red},
		{"odd last row", 5, 2, blue, bgBlack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := screen.GetGlyph(tt.x, tt.y)
			if g.Rune != '▀' || g.Fg != tt.fg || g.Bg != tt.bg || !g.Colored {
				t.Errorf("glyph (%d,%d) = %+v, expected ▀ fg %v bg %v", tt.x, tt.y, g, tt.fg, tt.bg)
			}
		})
	}

	// Clearing the lower cell keeps the upper one.
	surf.FillRect(b.CellRect(core.Cell{X: 1, Y: 1}), bgBlack)
	if g := screen.GetGlyph(3, 1); g.Fg != green || g.Bg != bgBlack {
		t.Errorf("after clearing lower half: %+v", g)
	}
}

func TestScreenSurfaceDrawCell(t *testing.T) {
	b := smallBoard(t)
	screen := core.NewScreen(10, 5)
	surf := NewScreenSurface(screen, b, borderCyan, bgBlack)
	green := core.RGB{G: 255}

	surf.DrawCell(b.CellRect(core.Cell{X: 2, Y: 1}), green)

	// Cell (2,1) lands at column 1+2*2=5, row 1+1=2.
	left, right := screen.GetGlyph(5, 2), screen.GetGlyph(6, 2)
	if left.Rune != '▏' || right.Rune != '▕' {
		t.Errorf("glyphs = %q%q, expected ▏▕", left.Rune, right.Rune)
	}
	for _, g := range []core.Glyph{left, right} {
		if g.Fg != borderCyan || g.Bg != green || !g.Colored {
			t.Errorf("glyph colors = %+v, expected border on fill", g)
		}
	}
	if screen.GetGlyph(4, 2).Colored || screen.GetGlyph(7, 2).Colored {
		t.Error("neighbouring columns should be untouched")
	}
}

func TestScreenSurfaceFillRect(t *testing.T) {
	b := smallBoard(t)
	screen := core.NewScreen(10, 5)
	surf := NewScreenSurface(screen, b, borderCyan, bgBlack)

	surf.FillRect(b.Bounds(), bgBlack)

	for y := 1; y <= 3; y++ {
		for x := 1; x <= 8; x++ {
			g := screen.GetGlyph(x, y)
			if g.Rune != ' ' || !g.Colored || g.Bg != bgBlack {
				t.Fatalf("glyph (%d,%d) = %+v, expected background", x, y, g)
			}
		}
	}
	if screen.GetGlyph(0, 0).Colored || screen.GetGlyph(9, 4).Colored {
		t.Error("frame area should not be filled")
	}
}

func TestScreenSurfaceClipsToBoard(t *testing.T) {
	b := smallBoard(t)
	screen := core.NewScreen(10, 5)
	surf := NewScreenSurface(screen, b, borderCyan, bgBlack)

	surf.FillRect(core.NewRect(-40, -40, 400, 400), core.RGB{R: 255, G: 255, B: 255})

	if screen.GetGlyph(0, 0).Colored || screen.GetGlyph(9, 0).Colored {
		t.Error("fill leaked onto the frame")
	}
}

func TestDrawFrame(t *testing.T) {
	b := smallBoard(t)
	screen := core.NewScreen(12, 5)
	surf := NewScreenSurface(screen, b, borderCyan, bgBlack)

	surf.DrawFrame("S")

	if got := screen.Row(0); got != " ┌─ S ────┐ " {
		t.Errorf("top edge = %q", got)
	}
	if got := screen.Row(4); got != " └────────┘ " {
		t.Errorf("bottom edge = %q", got)
	}
	if g := screen.GetGlyph(1, 2); g.Rune != '│' || g.Fg != borderCyan {
		t.Errorf("left edge = %+v", g)
	}
}
