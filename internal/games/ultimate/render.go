package ultimate

import (
	"fmt"
	"math"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/entity"
)

// Render draws the current phase.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorDarkGray)

	if g.phase == PhaseMenu {
		g.renderMenu(dst)
		return
	}

	g.renderWorld(dst)
	g.renderHUD(dst)
	if g.phase != PhasePlaying {
		dst.DrawText(g.phase.String(), 340, 280, core.ColorBrightWhite)
	}
}

func (g *Game) renderMenu(dst core.Canvas) {
	dst.DrawText("COLLECTOR ULTIMATE", 220, 160, core.ColorBrightYellow)
	dst.DrawText(fmt.Sprintf("High Score: %d", g.highScore), 260, 280, core.ColorWhite)
	dst.DrawText("Press ENTER to start", 200, 400, core.ColorBrightGreen)
}

func (g *Game) renderWorld(dst core.Canvas) {
	for i := range g.items {
		it := &g.items[i]
		if !it.Collected {
			dst.DrawTexture(it.Texture, it.Pos.X, it.Pos.Y)
		}
	}

	g.arena.Each(func(_ entity.Handle, e *entity.Entity) {
		if e.Kind != entity.KindPlayer {
			dst.DrawTexture(e.Texture, e.Pos.X, e.Pos.Y)
		}
	})

	// Player on top of enemies, particles on top of everything
	p := g.playerEntity()
	dst.DrawTexture(p.Texture, p.Pos.X, p.Pos.Y)
	g.fx.Draw(dst)
}

func (g *Game) renderHUD(dst core.Canvas) {
	p := g.playerEntity().Player

	top := fmt.Sprintf("Score: %d  Coins: %d  Lives: %d  Time: %d",
		p.Score, p.Coins, p.Lives, int(math.Ceil(g.timer)))
	dst.DrawText(top, 10, 10, core.ColorWhite)

	status := p.Status.String()
	if p.Status != entity.StatusNormal {
		status = fmt.Sprintf("%s %.1fs", status, p.PowerUpTimer)
	}
	bottom := fmt.Sprintf("Status: %s  High: %d", status, g.highScore)
	dst.DrawText(bottom, 10, 570, statusColor(p.Status))
}

func statusColor(s entity.Status) core.Color {
	switch s {
	case entity.StatusSpeedBoost:
		return core.ColorBrightGreen
	case entity.StatusInvincible:
		return core.ColorBrightBlue
	case entity.StatusFrozen:
		return core.ColorCyan
	default:
		return core.ColorGray
	}
}
