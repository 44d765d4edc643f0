package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestGameModel(settings config.SnakeConfig, store *storage.Store) GameModel {
	return NewGameModel(GameOptions{
		Settings: settings,
		Player:   "tester",
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 30, FrameRate: 60, Seed: 42},
		Store:    store,
		Clock:    func() time.Time { return t0 },
	})
}

func frame(t *testing.T, m GameModel, at time.Time) GameModel {
	t.Helper()
	next, _ := m.Update(FrameMsg{At: at, Loop: m.loop})
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("s"), core.ActionDown},
		{runes("h"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause},
		{runes("r"), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestFramesDriveTicks(t *testing.T) {
	m := newTestGameModel(config.DefaultSnakeConfig(), nil)

	m = frame(t, m, t0)
	if got := m.Game().Snapshot().Tick; got != 0 {
		t.Fatalf("first frame should not tick, got %d ticks", got)
	}

	m = frame(t, m, t0.Add(50*time.Millisecond))
	if got := m.Game().Snapshot().Tick; got != 0 {
		t.Errorf("half an interval should not tick, got %d ticks", got)
	}

	m = frame(t, m, t0.Add(100*time.Millisecond))
	snap := m.Game().Snapshot()
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, want 1", snap.Tick)
	}
	if snap.Elapsed != 100*time.Millisecond {
		t.Errorf("Elapsed = %v, want 100ms", snap.Elapsed)
	}
}

func TestStaleFrameIgnored(t *testing.T) {
	m := newTestGameModel(config.DefaultSnakeConfig(), nil)

	next, cmd := m.Update(FrameMsg{At: t0, Loop: m.loop + 1})
	if cmd != nil {
		t.Error("a stale frame must not schedule another frame")
	}
	if got := next.(GameModel).lastFrame; !got.IsZero() {
		t.Errorf("stale frame was consumed at %v", got)
	}
}

func TestPauseAndBack(t *testing.T) {
	m := newTestGameModel(config.DefaultSnakeConfig(), nil)

	m, _ = press(t, m, runes("p"))
	if m.Game().Phase() != snake.PhasePaused {
		t.Fatalf("Phase = %v, want paused", m.Game().Phase())
	}
	m, _ = press(t, m, runes("p"))
	if m.Game().Phase() != snake.PhaseRunning {
		t.Fatalf("Phase = %v, want running", m.Game().Phase())
	}

	// Esc pauses a running game first, then leaves.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() || m.Game().Phase() != snake.PhasePaused {
		t.Fatalf("first esc: back = %v, phase = %v", m.BackToMenu(), m.Game().Phase())
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("second esc should go back to the menu")
	}
	if cmd != nil {
		t.Error("embedded game should not quit the program")
	}
}

func TestTurnKeyIsBuffered(t *testing.T) {
	m := newTestGameModel(config.DefaultSnakeConfig(), nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Game().Snapshot().Heading; got != core.DirRight {
		t.Errorf("heading changed before the tick: %v", got)
	}

	m = frame(t, m, t0)
	m = frame(t, m, t0.Add(100*time.Millisecond))
	if got := m.Game().Snapshot().Heading; got != core.DirDown {
		t.Errorf("Heading = %v, want down", got)
	}
}

func TestGameOverRecordsOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	settings := config.DefaultSnakeConfig()
	settings.Grid = config.GridConfig{Width: 5, Height: 5}
	m := newTestGameModel(settings, store)

	// The snake starts at x=2 heading right and must leave a 5 wide grid
	// within three ticks.
	at := t0
	m = frame(t, m, at)
	for i := 0; i < 20 && m.Game().Phase() != snake.PhaseOver; i++ {
		at = at.Add(200 * time.Millisecond)
		m = frame(t, m, at)
	}
	if m.Game().Phase() != snake.PhaseOver {
		t.Fatal("snake should have hit the wall")
	}

	// More frames after game over must not record again.
	for range 5 {
		at = at.Add(200 * time.Millisecond)
		m = frame(t, m, at)
	}

	if m.result == nil {
		t.Fatalf("session not recorded, error: %v", m.recordErr)
	}
	if m.result.Rank != 1 {
		t.Errorf("Rank = %d, want 1", m.result.Rank)
	}

	p, err := store.Profile("tester")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", p.GamesPlayed)
	}

	// Restart starts a fresh session that may be recorded again.
	m, _ = press(t, m, runes("r"))
	if m.Game().Phase() != snake.PhaseRunning || m.recorded {
		t.Errorf("restart: phase = %v, recorded = %v", m.Game().Phase(), m.recorded)
	}

	// The same seed and frame timing replay the first game, so the score
	// only ties the earlier best.
	first := p.HighScore
	at = at.Add(time.Second)
	m = frame(t, m, at)
	for i := 0; i < 20 && m.Game().Phase() != snake.PhaseOver; i++ {
		at = at.Add(200 * time.Millisecond)
		m = frame(t, m, at)
	}
	if m.result == nil {
		t.Fatalf("second session not recorded, error: %v", m.recordErr)
	}
	if got := m.Game().Snapshot().Score; got != first {
		t.Fatalf("replayed score = %d, want %d", got, first)
	}
	if m.result.NewBest || strings.Contains(m.statusLine(), "new personal best") {
		t.Errorf("a tied score was reported as a new personal best: %q", m.statusLine())
	}
}
