package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/banana-grove/internal/core"
)

// startGameMsg asks the session to enter the game screen.
type startGameMsg struct{}

func startGame() tea.Msg { return startGameMsg{} }

// SessionModel manages the full session flow: menu -> game -> menu.
type SessionModel struct {
	game      Game
	config    core.RuntimeConfig
	logger    *log.Logger
	runID     string
	menu      MenuModel
	gameModel *GameModel
	started   bool
	inGame    bool
	skipMenu  bool
	lastScore int
	quitting  bool
}

// SessionOption customises a SessionModel.
type SessionOption func(*SessionModel)

// WithSessionLogger sets the logger. Each session tags its lines with a run id.
func WithSessionLogger(l *log.Logger) SessionOption {
	return func(m *SessionModel) { m.logger = l }
}

// WithoutMenu starts the session directly in the game.
func WithoutMenu() SessionOption {
	return func(m *SessionModel) { m.skipMenu = true }
}

// NewSessionModel creates a new session model.
func NewSessionModel(game Game, cfg core.RuntimeConfig, opts ...SessionOption) SessionModel {
	m := SessionModel{
		game:      game,
		config:    cfg,
		runID:     uuid.NewString(),
		lastScore: -1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.logger = m.logger.With("run", m.runID)
	m.menu = NewMenuModel(game.Title(), cfg.ScreenW, cfg.ScreenH, m.lastScore)
	return m
}

// RunID returns the identifier attached to this session's log lines.
func (m SessionModel) RunID() string {
	return m.runID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID())
	if m.skipMenu {
		return startGame
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if _, ok := msg.(startGameMsg); ok {
		return m.enterGame()
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// enterGame builds the game on first use and resumes it afterwards.
func (m SessionModel) enterGame() (tea.Model, tea.Cmd) {
	if !m.started {
		cfg := m.config
		cfg.ScreenH = gameHeight(cfg.ScreenH)
		m.game.Reset(cfg)
		m.started = true
		m.logger.Info("game started", "seed", cfg.Seed)
	} else {
		m.game.Resize(m.config.ScreenW, gameHeight(m.config.ScreenH))
		m.game.Start()
		m.logger.Info("game resumed from menu")
	}

	gameModel := NewGameModel(m.game, m.config, m.logger)
	m.gameModel = &gameModel
	m.inGame = true
	return m, m.gameModel.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// A tick left over from the game screen.
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		m.logger.Info("session ended")
		return m, tea.Quit
	}

	if m.menu.Selected() != nil {
		return m.enterGame()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.lastScore = m.gameModel.FinalScore()
		m.inGame = false
		m.gameModel = nil
		m.menu = NewMenuModel(m.game.Title(), m.config.ScreenW, m.config.ScreenH, m.lastScore)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		m.logger.Info("session ended")
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}

// InGame reports whether the game screen is showing.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts ...SessionOption) error {
	model := NewSessionModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
