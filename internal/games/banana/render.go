package banana

import (
	"fmt"

	"github.com/vovakirdan/banana-grove/internal/core"
	"github.com/vovakirdan/banana-grove/internal/grove"
)

// Glyphs
const (
	glyphTree   = '♣'
	glyphBanana = ')'
	glyphSnake  = 'S'
	glyphMonkey = '@'
	glyphHome   = '^'
)

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderOverlay(dst, "Cannot start the grove", "Check the configuration")
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight))
	g.renderNodes(dst)
	g.renderActor(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "A snake! Game Over", fmt.Sprintf("Score %d - R restart, M menu", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	level := g.session.Level()
	rewards := 0
	for _, n := range level.Nodes() {
		if n.HasReward() {
			rewards++
		}
	}

	hud := fmt.Sprintf(" Banana Grove — Score: %d  Level: %d  Bananas: %d/%d",
		g.score, level.LevelIndex(), level.RevealedRewardCount(), rewards)
	dst.DrawText(0, 0, hud)
	dst.DrawTextColored(1, 0, g.Title(), core.ColorYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderNodes draws every tree with its content when visible.
func (g *Game) renderNodes(dst *core.Screen) {
	for _, n := range g.session.Level().Nodes() {
		sp, ok := g.sprites[n.ID()]
		if !ok {
			continue
		}

		glyph, color := rune(glyphTree), core.ColorGreen
		if n.ContentVisible() || g.showContents {
			if n.HasReward() {
				glyph, color = glyphBanana, core.ColorYellow
			} else {
				glyph, color = glyphSnake, core.ColorRed
			}
		}
		dst.SetColored(sp.x, sp.y, glyph, color)

		if n.ID() == g.selected && !g.gameOver {
			dst.SetColored(sp.x-1, sp.y, '[', core.ColorCyan)
			dst.SetColored(sp.x+1, sp.y, ']', core.ColorCyan)
		}
	}
}

// renderActor draws the monkey and its home.
func (g *Game) renderActor(dst *core.Screen) {
	a := g.session.Actor()
	hx, hy := g.layout.ToScreen(a.Home())
	ax, ay := g.layout.ToScreen(a.Position())

	if a.Phase() != grove.PhaseIdle || hx != ax || hy != ay {
		dst.SetColored(hx, hy, glyphHome, core.ColorGray)
	}
	dst.SetColored(ax, ay, glyphMonkey, core.ColorOrange)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
