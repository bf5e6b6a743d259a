package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-run/internal/core"
	"github.com/vovakirdan/zombie-run/internal/platform/journal"
	"github.com/vovakirdan/zombie-run/internal/registry"
	"github.com/vovakirdan/zombie-run/internal/storage"
)

// defaultHoldTicks keeps a direction held across terminal key-repeat gaps.
const defaultHoldTicks = 8

// Options configures a terminal game session.
type Options struct {
	Store     *storage.Store // Optional; nil plays without persistence
	Logger    *log.Logger    // Optional; nil discards log output
	Player    string         // Name stored with saved scores
	HoldTicks int            // Ticks a left/right press counts as held
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	journal   *journal.Journal
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	hold      HoldState
	jump      bool // Jump pressed since the last tick
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Keep a nil *storage.Store out of the interface
	var saver journal.ScoreSaver
	if opts.Store != nil {
		saver = opts.Store
	}
	holdTicks := opts.HoldTicks
	if holdTicks <= 0 {
		holdTicks = defaultHoldTicks
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		journal: journal.New(game.ID(), opts.Player, saver, logger),
		logger:  logger,
		config:  cfg,
		keys:    NewKeyMapper(),
		hold:    NewHoldState(holdTicks),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		m.jump = true
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action)
	}

	return m, nil
}

// handleResize keeps the round going at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick builds this tick's input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if m.jump {
		frame.Set(core.ActionJump)
		m.jump = false
	}
	m.hold.Apply(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State
	for _, e := range result.Events {
		if e.Kind == core.EventGameOver {
			m.hold.Release()
		}
	}
	m.journal.Record(result.Events)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".zombierun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
