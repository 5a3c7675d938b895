package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Model is the Bubble Tea model running one invaders game.
type Model struct {
	game     *invaders.Game
	sched    *TeaScheduler
	screen   *core.Screen
	surface  *CellSurface
	holds    *HoldTracker
	keys     KeyMap
	help     help.Model
	now      func() time.Time
	quitting bool
}

// NewModel binds game to a terminal screen of the configured size and starts it.
// The game must have been created with sched as its scheduler.
func NewModel(game *invaders.Game, sched *TeaScheduler, rc core.RuntimeConfig, holdWindow time.Duration) (Model, error) {
	cfg := game.Config()
	screen := core.NewScreen(max(rc.ScreenW, 1), max(rc.ScreenH-1, 1))
	surface := NewCellSurface(screen, cfg.Arena.SurfaceWidth, cfg.Arena.SurfaceHeight)

	if err := game.Initialise(surface); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	game.SetDebug(rc.Debug)
	if err := game.Start(); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	h := help.New()
	h.Width = screen.Width()

	return Model{
		game:    game,
		sched:   sched,
		screen:  screen,
		surface: surface,
		holds:   NewHoldTracker(holdWindow),
		keys:    DefaultKeyMap(),
		help:    h,
		now:     time.Now,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.sched.Next()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.game.Mute(invaders.MuteToggle)
		return m, nil
	case key.Matches(msg, m.keys.Debug):
		m.game.SetDebug(!m.game.Debug())
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	k, ok := m.keys.GameKey(msg)
	if !ok {
		return m, nil
	}

	switch k {
	case core.KeyLeft, core.KeyRight:
		// Terminals never report releases, so direction keys are held
		// while repeats keep arriving.
		if !m.holds.Press(k, m.now()) {
			return m, nil
		}
		opposite := core.KeyLeft
		if k == core.KeyLeft {
			opposite = core.KeyRight
		}
		if m.holds.Release(opposite) {
			m.game.KeyUp(opposite)
		}
		m.game.KeyDown(k)
	default:
		m.game.KeyDown(k)
		m.game.KeyUp(k)
	}

	return m, nil
}

// handleMouse maps mouse presses and drags to touch gestures.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := m.surface.LogicalX(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.game.TouchStart()
		m.game.TouchMove(x)
	case tea.MouseActionMotion:
		m.game.TouchMove(x)
	case tea.MouseActionRelease:
		m.game.TouchEnd()
	}

	return m, nil
}

// handleResize processes window resize events.
// The last row is kept for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
	m.screen.Clear()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases expired holds and advances the game.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	for _, k := range m.holds.Expire(msg.Time) {
		m.game.KeyUp(k)
	}
	return m, m.sched.Fire(msg)
}

// saveScreenshot writes the current frame as plain text under ~/.invaders/screenshots.
func (m Model) saveScreenshot() error {
	dir := filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	name := fmt.Sprintf("invaders_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var kind invaders.StateKind
	if top := m.game.Current(); top != nil {
		kind = top.Kind()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys.helpFor(kind))),
	)
}

// Run starts the Bubble Tea program for game.
func Run(game *invaders.Game, sched *TeaScheduler, rc core.RuntimeConfig, holdWindow time.Duration) error {
	model, err := NewModel(game, sched, rc, holdWindow)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to steer, click to fire
	)

	_, err = p.Run()
	game.Stop()
	return err
}
