package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpRows is the height reserved below the board for the help footer.
const helpRows = 1

// Sounds plays the game's audio cues.
type Sounds interface {
	PlayEat()
	PlayReset()
}

// Options configures a Model. Zero values are usable.
type Options struct {
	Logger        *log.Logger
	Renderer      *lipgloss.Renderer
	Sounds        Sounds
	ScreenshotDir string // Defaults to ~/.snake/screenshots
}

// Model is the Bubble Tea model running one snake game.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	surface  *snake.ScreenSurface
	queue    *core.EventQueue
	keys     KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	sounds   Sounds
	logger   *log.Logger
	shotDir  string
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for game on a width x height terminal.
func NewModel(game *snake.Game, width, height int, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Styles.ShortKey = renderer.NewStyle().Foreground(lipgloss.Color(game.Config().Colors.Border.RGB().Hex()))

	m := Model{
		game:     game,
		queue:    &core.EventQueue{},
		keys:     DefaultKeyMap(),
		help:     h,
		renderer: renderer,
		sounds:   opts.Sounds,
		logger:   logger,
		shotDir:  opts.ScreenshotDir,
	}
	m.resize(width, height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues steering keys for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Debug("quit requested", "key", msg.String())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	if k, ok := m.keys.SteeringKey(msg); ok {
		m.queue.Push(core.KeyEvent(k))
	}
	return m, nil
}

// resize rebuilds the screen and layout for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	rows := max(height-m.footerHeight(), 0)
	if m.screen == nil {
		m.screen = core.NewScreen(width, rows)
	} else {
		m.screen.Resize(width, rows)
		m.screen.Clear()
	}
	colors := m.game.Config().Colors
	m.surface = snake.NewScreenSurface(m.screen, m.game.Board(), colors.Border.RGB(), colors.Background.RGB())
	m.game.RequestRepaint()
}

func (m Model) footerHeight() int {
	if m.help.ShowAll {
		rows := 0
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
		return rows
	}
	return helpRows
}

// handleTick advances the game unless the board does not fit.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.surface.Layout().Fits() {
		// Paused until the terminal grows; keys pressed meanwhile are dropped.
		m.queue.Drain()
		return m, tickCmd(m.game.TickRate())
	}

	res := m.game.Step(m.queue.Drain())
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if res.Ate && m.sounds != nil {
		m.sounds.PlayEat()
	}
	if res.Reset {
		m.logger.Debug("snake reset", "resets", m.game.Snapshot().Resets)
		if m.sounds != nil {
			m.sounds.PlayReset()
		}
	}

	return m, tickCmd(m.game.TickRate())
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.surface.Layout().Fits() {
		needW, needH := snake.CompactSize(m.game.Board())
		msg := fmt.Sprintf("Terminal too small\nneed %dx%d, have %dx%d", needW, needH+m.footerHeight(), m.width, m.height)
		return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.game.Render(m.surface)
	m.surface.DrawFrame(m.game.Status())

	return RenderScreen(m.renderer, m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game *snake.Game, width, height int, opts Options) error {
	model := NewModel(game, width, height, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
