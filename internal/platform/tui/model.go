package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Settings  config.SnakeConfig
	Player    string
	Runtime   core.RuntimeConfig // Screen size and frame rate; Seed overrides Settings.Seed when set
	Store     *storage.Store     // Optional; nil disables rankings
	Logger    *log.Logger        // Optional; nil discards
	Clock     func() time.Time   // Optional; defaults to time.Now
	QuitOnEnd bool               // Quit the program on back instead of reporting it
}

// GameModel hosts one snake session at a time: it turns frame messages into
// wall-clock deltas, forwards input as turn and pause requests, and hands
// the finished session over to storage once.
type GameModel struct {
	opts   GameOptions
	game   *snake.Game
	screen *core.Screen
	keys   *KeyMapper
	help   help.Model

	loop      uint64
	lastFrame time.Time
	recorded  bool
	result    *storage.SessionResult
	recordErr error

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts its first session.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Player == "" {
		opts.Player = opts.Settings.Player
	}

	m := GameModel{
		opts:   opts,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:   NewKeyMapper(),
		help:   help.New(),
		loop:   newLoopID(),
	}
	m.newSession()
	return m
}

// newSession replaces the current game wholesale.
func (m *GameModel) newSession() {
	cfg := m.opts.Settings.Engine()
	switch {
	case m.opts.Runtime.Seed != 0:
		cfg.Seed = m.opts.Runtime.Seed
	case cfg.Seed == 0:
		cfg.Seed = m.opts.Clock().UnixNano()
	}

	m.game = snake.New(cfg)
	m.lastFrame = time.Time{}
	m.recorded = false
	m.result = nil
	m.recordErr = nil

	m.opts.Logger.Debug("session started",
		"player", m.opts.Player,
		"mode", cfg.WallMode,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"tick_rate", cfg.TickRate,
		"seed", cfg.Seed,
	)
}

// Game returns the running session.
func (m GameModel) Game() *snake.Game {
	return m.game
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.loop, m.opts.Runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		m.handleFrame(msg.At)
		return m, frameCmd(m.loop, m.opts.Runtime.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input. Turns are buffered by the engine and
// applied on the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if d, ok := action.Direction(); ok {
		m.game.RequestTurn(d)
		return m, nil
	}

	phase := m.game.Phase()
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionRestart:
		if phase == snake.PhaseOver {
			m.newSession()
		}
	case core.ActionBack:
		if phase == snake.PhaseRunning {
			m.game.SetPaused(true)
			return m, nil
		}
		m.backToMenu = true
		if m.opts.QuitOnEnd {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleFrame feeds the time since the previous frame to the engine.
func (m *GameModel) handleFrame(now time.Time) {
	var delta time.Duration
	if !m.lastFrame.IsZero() {
		delta = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	res := m.game.Tick(delta)
	for _, e := range res.Events {
		m.logEvent(e)
	}

	if res.Phase == snake.PhaseOver && !m.recorded {
		m.recorded = true
		m.record()
	}
}

func (m *GameModel) logEvent(e snake.Event) {
	switch e.Kind {
	case snake.EventDied:
		m.opts.Logger.Debug("snake died", "cause", e.Cause, "at", e.At)
	case snake.EventEffectApplied, snake.EventEffectExpired:
		m.opts.Logger.Debug(e.Kind.String(), "effect", e.Effect.Kind, "until", e.Effect.Until)
	default:
		m.opts.Logger.Debug(e.Kind.String(), "item", e.Item.Type, "pos", e.Item.Position, "at", e.At)
	}
}

// record hands the finished session to storage.
func (m *GameModel) record() {
	sum := m.game.Snapshot().Summary()
	logger := m.opts.Logger.With("player", m.opts.Player)

	if m.opts.Store == nil {
		logger.Info("game over", "score", sum.Score, "length", sum.Length, "cause", sum.Cause)
		return
	}

	res, err := m.opts.Store.RecordSession(m.opts.Player, sum, m.opts.Clock())
	if err != nil {
		m.recordErr = err
		logger.Error("cannot record session", "error", err)
		return
	}
	m.result = res

	logger.Info("game over",
		"score", sum.Score,
		"length", sum.Length,
		"cause", sum.Cause,
		"rank", res.Rank,
	)
	for _, a := range res.NewAchievements {
		logger.Info("achievement unlocked", "id", a.ID)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("snake_%s.txt", m.opts.Clock().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// statusLine describes the hand-off result after game over, or shows help.
func (m GameModel) statusLine() string {
	switch {
	case m.recordErr != nil:
		return errorStyle.Render("Score not saved: " + m.recordErr.Error())
	case m.result != nil:
		parts := []string{fmt.Sprintf("Rank #%d", m.result.Rank)}
		if m.result.NewBest {
			parts = append(parts, "new personal best")
		}
		for _, a := range m.result.NewAchievements {
			parts = append(parts, "unlocked "+a.Title)
		}
		for _, ms := range m.result.CompletedMissions {
			parts = append(parts, "mission "+ms.Title)
		}
		return statusStyle.Render(strings.Join(parts, " | ")) + helpStyle.Render("  r: restart  esc: menu")
	}
	return helpStyle.Render(m.help.View(m.keys.Keys()))
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays sessions until the user leaves. It returns true when the user
// asked for the menu rather than quitting.
func Run(opts GameOptions) (backToMenu bool, err error) {
	opts.QuitOnEnd = true
	p := tea.NewProgram(NewGameModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
