package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderBoard(t *testing.T) {
	g := newQuietGame(core.WallNormal)
	placeItem(g, ItemBomb, core.Point{X: 0, Y: 0})

	w, h := MinScreenSize(30, 20)
	screen := core.NewScreen(w, h)
	g.Render(screen)

	// Board border starts right below the HUD; cell (x, y) is at (x+1, y+3).
	if got := screen.Get(0, hudRows); got != '┌' {
		t.Errorf("border corner = %q, want '┌'", got)
	}
	if got := screen.GetCell(1, hudRows+1); got.Rune != 'X' || got.Color != core.ColorMagenta {
		t.Errorf("bomb cell = %+v", got)
	}
	head := screen.GetCell(15+1, 10+hudRows+1)
	if head.Rune != 'O' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", head)
	}
	if got := screen.Get(14+1, 10+hudRows+1); got != 'o' {
		t.Errorf("body cell = %q, want 'o'", got)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newQuietGame(core.WallNormal)
	screen := core.NewScreen(40, 12)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small overlay")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newQuietGame(core.WallNormal)
	screen := core.NewScreen(80, 30)

	g.SetPaused(true)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("expected the pause overlay")
	}

	g.SetPaused(false)
	g.snake.kill()
	g.cause = CauseSelfCollision
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("expected the game over overlay")
	}
}

func TestRenderEffects(t *testing.T) {
	g := newQuietGame(core.WallNormal)
	g.effects = append(g.effects, ActiveEffect{Kind: EffectSlow, Until: 2500 * time.Millisecond})

	w, h := MinScreenSize(30, 20)
	screen := core.NewScreen(w, h)
	g.Render(screen)

	if !strings.Contains(screen.Row(h-1), "slow 2.5s") {
		t.Errorf("effects line = %q", screen.Row(h-1))
	}
}
