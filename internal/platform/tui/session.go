package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow of one player: menu -> game or
// scoreboard -> menu. It is used locally and for every SSH connection.
type SessionModel struct {
	store    *storage.Store
	settings config.SnakeConfig
	runtime  core.RuntimeConfig
	player   string
	logger   *log.Logger

	current    screenKind
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, settings config.SnakeConfig, rt core.RuntimeConfig, player string, logger *log.Logger) SessionModel {
	if player == "" {
		player = settings.Player
	}
	return SessionModel{
		store:    store,
		settings: settings,
		runtime:  rt,
		player:   player,
		logger:   logger,
		menu:     NewMenuModel(store, settings, player, rt.ScreenW, rt.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}
	m.settings = m.menu.Settings()

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsPlay():
		m.game = NewGameModel(GameOptions{
			Settings: m.settings,
			Player:   m.player,
			Runtime:  m.runtime,
			Store:    m.store,
			Logger:   m.logger,
		})
		m.current = screenGame
		return m, m.game.Init()

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.player, m.runtime.ScreenW, m.runtime.ScreenH)
		m.current = screenScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sm
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// toMenu rebuilds the menu so profile and missions reflect the last game.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.settings, m.player, m.runtime.ScreenW, m.runtime.ScreenH)
	m.current = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Settings returns the settings as last changed in the menu.
func (m SessionModel) Settings() config.SnakeConfig {
	return m.settings
}

// RunSession runs the interactive menu flow until the user quits and returns
// the settings chosen in the menu.
func RunSession(store *storage.Store, settings config.SnakeConfig, rt core.RuntimeConfig, player string, logger *log.Logger) (config.SnakeConfig, error) {
	p := tea.NewProgram(NewSessionModel(store, settings, rt, player, logger), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return settings, err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Settings(), nil
	}
	return settings, nil
}
