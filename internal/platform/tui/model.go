package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-colorhunt/internal/core"
	"github.com/vovakirdan/tui-colorhunt/internal/registry"
)

// helpHeight is the number of rows reserved under the game for the help line.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
// Update is the only place game state changes, so countdown seconds,
// animation frames and input are applied one at a time.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	state    core.GameState
	clockGen int // Current countdown chain; older ClockMsgs are stale
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = core.Max(cfg.ScreenH-helpHeight, 0)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		state:  core.GameState{Waiting: true}, // Games open on their start screen
	}
	m.keys.SetPhase(m.state)
	return m
}

// Init shows the game's start screen and starts the animation loop.
// The countdown starts only when play does.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed)
	return frameCmd(m.config.FrameRate)
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

	case ClockMsg:
		return m.handleClock(msg)

	case FrameMsg:
		m.game.Animate()
		return m, frameCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame, quit := m.keys.MapKey(msg)
	if quit || (frame.Has(core.ActionDecline) && m.state.GameOver) {
		m.logger.Info("player quit", "game", m.game.ID(), "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	}
	if frame.Empty() {
		return m, nil
	}
	return m.apply(frame)
}

// handleMouse turns a left click on a button into a guess.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	choice, ok := m.game.HitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	frame := core.NewInputFrame()
	frame.SetChoice(choice)
	return m.apply(frame)
}

// apply feeds one input frame to the game and starts the countdown
// when a session begins.
func (m Model) apply(frame core.InputFrame) (tea.Model, tea.Cmd) {
	before := m.state
	res := m.game.Step(frame)
	m.state = res.State
	m.keys.SetPhase(m.state)

	if frame.Has(core.ActionGuess) && before.Running() {
		m.logger.Debug("guess", "choice", frame.Choice, "score", before.Score, "new_score", m.state.Score)
	}

	if res.Started {
		m.clockGen++
		m.logger.Info("session started", "game", m.game.ID(), "seconds", m.state.SecondsLeft)
		return m, clockCmd(m.clockGen)
	}
	return m, nil
}

// handleClock applies one countdown second.
func (m Model) handleClock(msg ClockMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.clockGen || !m.state.Running() {
		return m, nil
	}

	res := m.game.Tick()
	m.state = res.State
	m.keys.SetPhase(m.state)

	if res.Ended {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score)
		return m, nil
	}
	return m, clockCmd(m.clockGen)
}

// handleResize processes window resize events without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Buttons are clickable
	)

	_, err := p.Run()
	return err
}
