package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// runStyle identifies a run of glyphs sharing the same colors.
type runStyle struct {
	fg, bg  core.RGB
	colored bool
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[runStyle]lipgloss.Style)
	styleFor := func(rs runStyle) lipgloss.Style {
		if st, ok := styles[rs]; ok {
			return st
		}
		st := r.NewStyle()
		if rs.colored {
			st = st.Foreground(lipgloss.Color(rs.fg.Hex())).Background(lipgloss.Color(rs.bg.Hex()))
		}
		styles[rs] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			g := s.GetGlyph(x, y)
			start := runStyle{fg: g.Fg, bg: g.Bg, colored: g.Colored}

			var run strings.Builder
			for x < s.Width() {
				g = s.GetGlyph(x, y)
				if (runStyle{fg: g.Fg, bg: g.Bg, colored: g.Colored}) != start {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			if !start.colored {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
