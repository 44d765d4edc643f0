package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rows used above and below the board.
const (
	hudRows    = 2 // Status line and separator
	footerRows = 1 // Active effects
)

// Glyph is how a board element is drawn.
type Glyph struct {
	Rune  rune
	Color core.Color
}

var itemGlyphs = [itemTypeCount]Glyph{
	ItemApple:      {'*', core.ColorRed},
	ItemBonus:      {'$', core.ColorYellow},
	ItemBomb:       {'X', core.ColorMagenta},
	ItemSlow:       {'~', core.ColorCyan},
	ItemInvincible: {'+', core.ColorOrange},
}

// GlyphFor returns the glyph of an item type.
func GlyphFor(t ItemType) Glyph {
	return itemGlyphs[t]
}

// MinScreenSize returns the screen needed to draw a width x height board.
func MinScreenSize(width, height int) (w, h int) {
	return width + 2, height + 2 + hudRows + footerRows
}

// Render draws the session to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(g.Snapshot(), dst)
}

// Render draws a snapshot: HUD, bordered board, effects line and any
// pause or game over overlay.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()
	renderHUD(s, dst)

	needW, needH := MinScreenSize(s.Width, s.Height)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	// Board origin, border included
	ox := (dst.Width() - needW) / 2
	oy := hudRows + (dst.Height()-needH)/2
	dst.DrawBox(core.NewRect(ox, oy, s.Width+2, s.Height+2), borderColor(s.WallMode))

	cell := func(p core.Point, r rune, c core.Color) {
		dst.SetColor(ox+1+p.X, oy+1+p.Y, r, c)
	}

	for _, p := range s.Obstacles {
		cell(p, '#', core.ColorGray)
	}
	for _, it := range s.Items {
		gl := GlyphFor(it.Type)
		cell(it.Position, gl.Rune, gl.Color)
	}

	bodyColor := core.ColorGreen
	headColor := core.ColorBrightGreen
	if s.HasEffect(EffectInvincible) {
		headColor = core.ColorYellow
	}
	if !s.Alive {
		bodyColor, headColor = core.ColorGray, core.ColorRed
	}
	for i := len(s.Body) - 1; i > 0; i-- {
		cell(s.Body[i], 'o', bodyColor)
	}
	if len(s.Body) > 0 {
		cell(s.Body[0], 'O', headColor)
	}

	renderEffects(s, dst, oy+s.Height+2)

	switch s.Phase {
	case PhaseOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d  Length %d  (%s)", s.Score, s.Length, s.Cause))
	case PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func borderColor(m core.WallMode) core.Color {
	switch m {
	case core.WallWrap:
		return core.ColorBlue
	case core.WallObstacles:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// renderHUD draws the top status bar.
func renderHUD(s Snapshot, dst *core.Screen) {
	hud := fmt.Sprintf(" Snake (%s) - Score: %d  Length: %d  Apples: %d  Time: %s",
		s.WallMode.Title(), s.Score, s.Length, s.ApplesEaten, formatClock(s.Elapsed.Milliseconds()))
	dst.DrawText(0, 0, hud, core.ColorDefault)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderEffects lists active effects with their remaining time.
func renderEffects(s Snapshot, dst *core.Screen, y int) {
	if len(s.Effects) == 0 {
		return
	}
	parts := make([]string, len(s.Effects))
	for i, e := range s.Effects {
		parts[i] = fmt.Sprintf("%s %.1fs", e.Kind, e.Remaining.Seconds())
	}
	dst.DrawTextCentered(y, strings.Join(parts, "  "), core.ColorCyan)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(r, ' ')
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextCentered(r.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(r.Y+3, line2, core.ColorDefault)
}

// formatClock renders milliseconds as m:ss.
func formatClock(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
