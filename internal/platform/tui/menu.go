package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/missions"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Menu entries, top to bottom.
const (
	menuPlay = iota
	menuWallMode
	menuSpeed
	menuScores
	menuQuit
	menuCount
)

// MenuModel is the main menu: start a game, pick the wall mode and speed,
// open the scoreboard.
type MenuModel struct {
	settings  config.SnakeConfig
	player    string
	store     *storage.Store
	profile   storage.Profile
	missions  []missions.Mission
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	play           bool
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates a new menu model. Profile and missions are loaded
// from store when one is given.
func NewMenuModel(store *storage.Store, settings config.SnakeConfig, player string, width, height int) MenuModel {
	m := MenuModel{
		settings:  settings,
		player:    player,
		store:     store,
		profile:   storage.Profile{Player: player},
		missions:  missions.DefaultMissions(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if p, err := store.Profile(player); err == nil {
			m.profile = p
		}
		if ms, err := store.Missions(player); err == nil {
			m.missions = ms
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + menuCount - 1) % menuCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % menuCount

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionScoreboard:
		m.openScoreboard = true

	case MenuActionSelect:
		switch m.cursor {
		case menuPlay:
			m.play = true
		case menuWallMode, menuSpeed:
			m.cycle(1)
		case menuScores:
			m.openScoreboard = true
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// cycle steps the option under the cursor.
func (m *MenuModel) cycle(step int) {
	switch m.cursor {
	case menuWallMode:
		mode, _ := core.ParseWallMode(m.settings.WallMode)
		i := slices.Index(core.WallModes, mode)
		n := len(core.WallModes)
		m.settings.WallMode = core.WallModes[(i+step+n)%n].String()

	case menuSpeed:
		i := slices.Index(config.SpeedPresets, m.speedPreset())
		n := len(config.SpeedPresets)
		if i < 0 {
			i = slices.Index(config.SpeedPresets, config.SpeedNormal)
		}
		preset := config.SpeedPresets[(i+step+n)%n]
		//nolint:errcheck // Presets come from the list above
		config.ApplySpeedPreset(&m.settings, preset)
	}
}

// speedPreset returns the preset matching the current tick rate, or "" for
// a custom rate.
func (m MenuModel) speedPreset() config.SpeedPreset {
	for _, p := range config.SpeedPresets {
		if rate, _ := config.TickRateForPreset(p); rate == m.settings.TickRate {
			return p
		}
	}
	return ""
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")

	mode, _ := core.ParseWallMode(m.settings.WallMode)
	speed := string(m.speedPreset())
	if speed == "" {
		speed = fmt.Sprintf("custom (%d/s)", m.settings.TickRate)
	}

	entries := [menuCount]string{
		menuPlay:     "Play",
		menuWallMode: fmt.Sprintf("Walls: < %s >", mode.Title()),
		menuSpeed:    fmt.Sprintf("Speed: < %s >", speed),
		menuScores:   "High scores",
		menuQuit:     "Quit",
	}
	for i, e := range entries {
		line := "  " + e
		if i == m.cursor {
			line = cursorStyle.Render("> " + e)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("%s  -  best %d  -  %d games",
		m.player, m.profile.HighScore, m.profile.GamesPlayed)), m.width))
	b.WriteString("\n\n")

	for _, ms := range m.missions {
		mark := "[ ]"
		if ms.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %-16s %d/%d", mark, ms.Title, min(ms.Current, ms.Target), ms.Target)
		b.WriteString(centerText(dimStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Settings returns the settings as changed in the menu.
func (m MenuModel) Settings() config.SnakeConfig {
	return m.settings
}

// WantsPlay returns true if user started a game.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
