package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snakelab/gridsnake/internal/core"
	"github.com/snakelab/gridsnake/internal/snake"
)

// Model is the Bubble Tea model that runs the snake game. It maps keys to
// semantic actions, drives frames, and displays the rendered screen buffer;
// all game rules live in the snake package.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastFrame  time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight reserves the bottom screen row for the help footer.
func gameHeight(screenH int) int {
	return core.Max(1, screenH-1)
}

// Init initializes the model and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.config.ScreenW,
		ScreenH:  gameHeight(m.config.ScreenH),
		TickRate: m.config.TickRate,
		Seed:     m.config.Seed,
	})
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input onto the current frame's actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
		// Ignore unbound keys
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, gameHeight(msg.Height))

	// Reinitialize the game with new dimensions unless it already ended
	if !m.gameState.GameOver {
		m.game.Reset(core.RuntimeConfig{
			ScreenW:  msg.Width,
			ScreenH:  gameHeight(msg.Height),
			TickRate: m.config.TickRate,
			Seed:     time.Now().UnixNano(),
		})
	}

	return m, nil
}

// handleTick runs one frame of the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	result := m.game.Step(m.inputFrame, elapsed)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *snake.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
