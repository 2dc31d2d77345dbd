package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()
	game, err := snake.New(config.Default(), 99)
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	return NewModel(game, width, height, Options{
		Renderer:      lipgloss.NewRenderer(io.Discard),
		ScreenshotDir: t.TempDir(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, 80, 30)
	start := m.game.Snake().Head()

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if got := m.game.Snake().Head(); got != (core.Cell{X: start.X + 1, Y: start.Y}) {
		t.Errorf("Head() = %v after one tick, expected one cell right of %v", got, start)
	}
}

func TestKeysApplyOnNextTick(t *testing.T) {
	m := newTestModel(t, 80, 30)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.game.Snake().Direction() != snake.DirRight {
		t.Fatal("direction changed before the tick")
	}
	if m.queue.Len() != 1 {
		t.Fatalf("queue length = %d, expected 1", m.queue.Len())
	}

	m, _ = update(t, m, TickMsg{})
	if m.game.Snake().Direction() != snake.DirUp {
		t.Errorf("Direction() = %s, expected up", m.game.Snake().Direction())
	}
	if m.queue.Len() != 0 {
		t.Error("queue should be drained by the tick")
	}
}

func TestQuitKey(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runeKey('q'),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(t, 80, 30)
		m, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%q: expected a quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: command did not quit", msg.String())
		}
		if m.View() != "" {
			t.Errorf("%q: view should be empty after quitting", msg.String())
		}
	}
}

func TestTooSmallPausesGame(t *testing.T) {
	m := newTestModel(t, 40, 10)
	start := m.game.Snake().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg{})

	if m.game.Snake().Head() != start {
		t.Error("game advanced while the board did not fit")
	}
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected the too-small overlay")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = update(t, m, TickMsg{})
	if m.game.Snake().Head() == start {
		t.Error("game should resume after the terminal grows")
	}
	if m.game.Snake().Direction() != snake.DirRight {
		t.Error("keys pressed while paused should be dropped")
	}
}

func TestViewShowsBoardAndStatus(t *testing.T) {
	m := newTestModel(t, 80, 30)
	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) < 29 {
		t.Fatalf("view has %d lines, expected at least 29", len(lines))
	}
	if !strings.Contains(lines[1], "Snake · length 1 · best 1") {
		t.Errorf("frame top = %q, expected the status title", lines[1])
	}
	if !strings.Contains(view, "▏▕") {
		t.Error("view should contain the snake cell glyphs")
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("footer = %q, expected help", lines[len(lines)-1])
	}
}

func TestScreenshot(t *testing.T) {
	m := newTestModel(t, 80, 30)
	m.View()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(m.shotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != m.screen.String() {
		t.Error("screenshot does not match the screen")
	}
}

func TestDefaultGamePlaysOnStandardTerminal(t *testing.T) {
	m := newTestModel(t, 80, 24)
	start := m.game.Snake().Head()

	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	if got := m.game.Snake().Head(); got != (core.Cell{X: start.X + 5, Y: start.Y}) {
		t.Errorf("Head() = %v after 5 ticks, expected five cells right of %v", got, start)
	}

	view := m.View()
	if strings.Contains(view, "Terminal too small") {
		t.Fatal("80x24 should fit the default board")
	}
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, expected 24", len(lines))
	}
	// 66x14 frame centered in 23 rows.
	if !strings.Contains(lines[4], "Snake · length") {
		t.Errorf("frame top = %q, expected the status title", lines[4])
	}
	if !strings.Contains(view, "▀") {
		t.Error("compact board should use half blocks")
	}
}
