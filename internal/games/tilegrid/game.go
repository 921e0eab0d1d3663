// Package tilegrid is the first prototype: a sprite that steps one tile
// at a time across a 20x15 grid, facing the way it last moved.
package tilegrid

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Facing textures, keyed by the movement key that selects them.
const (
	TextureUp    = "pacman_w"
	TextureLeft  = "pacman_a"
	TextureDown  = "pacman_s"
	TextureRight = "pacman_d"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the tile-stepping demo.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.TileGridConfig

	pos    core.Vec2
	facing string
	tick   uint64
}

// New creates a new Tile Grid game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tilegrid", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tilegrid" }

// Title returns the display name.
func (g *Game) Title() string { return "Tile Grid" }

// Description returns the menu blurb.
func (g *Game) Description() string { return "Step a sprite tile by tile" }

// Reset places the sprite at the start tile facing up.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTileGrid(configPath)
	if err != nil {
		cfg = config.DefaultTileGridConfig()
	}
	g.cfg = cfg

	g.pos = core.V(cfg.Start.X, cfg.Start.Y)
	g.facing = TextureUp
	g.tick = 0
}

// Step moves one tile per held key, checked in the order left, right,
// down, up. A key whose step would leave the grid is ignored. Each
// accepted step also turns the sprite, so the last one wins.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	tile := float64(g.cfg.Grid.TileSize)
	maxX := float64((g.cfg.Grid.TilesX - 1) * g.cfg.Grid.TileSize)
	maxY := float64((g.cfg.Grid.TilesY - 1) * g.cfg.Grid.TileSize)

	if in.Has(core.ActionLeft) && g.pos.X > 0 {
		g.pos.X -= tile
		g.facing = TextureLeft
	}
	if in.Has(core.ActionRight) && g.pos.X < maxX {
		g.pos.X += tile
		g.facing = TextureRight
	}
	if in.Has(core.ActionDown) && g.pos.Y < maxY {
		g.pos.Y += tile
		g.facing = TextureDown
	}
	if in.Has(core.ActionUp) && g.pos.Y > 0 {
		g.pos.Y -= tile
		g.facing = TextureUp
	}

	return core.StepResult{State: g.State()}
}

// Render draws the grid, the sprite and the frame rate label.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorDarkGray)

	ts := float64(g.cfg.Grid.TileSize)
	for y := 0; y < g.cfg.Grid.TilesY; y++ {
		for x := 0; x < g.cfg.Grid.TilesX; x++ {
			dst.DrawRectLines(float64(x)*ts, float64(y)*ts, ts, ts, core.ColorGray)
		}
	}

	dst.DrawTexture(g.runtime.Texture(g.facing, g.cfg.Grid.TileSize), g.pos.X, g.pos.Y)

	tps := g.runtime.TickRate
	if tps <= 0 {
		tps = 60
	}
	dst.DrawText(fmt.Sprintf("%d FPS", tps), g.cfg.FPSLabel.X, g.cfg.FPSLabel.Y, core.ColorBrightGreen)
}

// State returns the current game state. The demo has no score and never ends.
func (g *Game) State() core.GameState {
	return core.GameState{}
}

// Position returns the sprite's top-left corner in world pixels.
func (g *Game) Position() core.Vec2 { return g.pos }

// Facing returns the current texture name.
func (g *Game) Facing() string { return g.facing }
