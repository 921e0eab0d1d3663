// Package collector is the second prototype: free movement clamped to the
// grid, coins to pick up and a patrolling enemy.
package collector

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/entity"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// Game implements Coin Collector.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.CollectorConfig
	rng     *rand.Rand
	tick    uint64

	player entity.Entity
	patrol entity.Entity
	coins  []entity.Item
	bounds entity.Bounds
}

// New creates a new Coin Collector game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("collector", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "collector" }

// Title returns the display name.
func (g *Game) Title() string { return "Coin Collector" }

// Description returns the menu blurb.
func (g *Game) Description() string { return "Grab the coins, dodge the patrol" }

// Reset starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCollector(configPath)
	if err != nil {
		cfg = config.DefaultCollectorConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCollectorPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0

	grid := cfg.Grid
	g.bounds = entity.GridBounds(grid.TileSize, grid.TilesX, grid.TilesY)

	g.player = entity.NewPlayer(
		core.V(cfg.Player.Start.X, cfg.Player.Start.Y),
		runtime.Texture("player", grid.TileSize),
		cfg.Player.Speed,
		0,
	)

	p := cfg.Patrol
	g.patrol = entity.NewPatrol(
		core.V(p.Start.X, p.Start.Y),
		runtime.Texture("patrol", grid.TileSize),
		core.V(p.Dir.X, p.Dir.Y),
		p.Speed,
		entity.Bounds{MinX: p.MinX, MaxX: p.MaxX, MinY: p.MinY, MaxY: p.MaxY},
	)

	coinTex := runtime.Texture("coin", grid.TileSize)
	g.coins = g.coins[:0]
	for _, pos := range entity.FreeTiles(g.rng, grid.TileSize, grid.TilesX, grid.TilesY, cfg.Coins.Count, g.player.Rect()) {
		g.coins = append(g.coins, entity.Item{Kind: entity.ItemCoin, Pos: pos, Texture: coinTex})
	}
}

// Step advances the round by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	g.tick++

	next := entity.Move(g.player.Pos, in, g.player.Player.Speed)
	next = g.bounds.Clamp(next)
	g.player.Player.Moving = next != g.player.Pos
	g.player.Pos = next

	entity.Update(&g.patrol, entity.Context{DT: g.runtime.FrameSeconds()})

	var events []core.Event
	playerRect := g.player.Rect()
	for i := range g.coins {
		c := &g.coins[i]
		if !c.Collect(playerRect) {
			continue
		}
		g.player.Player.Score += g.cfg.Coins.Points
		g.player.Player.Coins++
		events = append(events, core.Event{
			Kind:  core.EventItemCollected,
			Sound: "coin",
			Pos:   c.Rect().Center(),
		})
	}

	// Touching the patrol has no consequence in this prototype.

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws coins, the patrol, the player and the HUD.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorDarkGray)

	for i := range g.coins {
		if !g.coins[i].Collected {
			dst.DrawTexture(g.coins[i].Texture, g.coins[i].Pos.X, g.coins[i].Pos.Y)
		}
	}
	dst.DrawTexture(g.patrol.Texture, g.patrol.Pos.X, g.patrol.Pos.Y)
	dst.DrawTexture(g.player.Texture, g.player.Pos.X, g.player.Pos.Y)

	left := entity.Remaining(g.coins)
	hud := fmt.Sprintf("Score: %d  Coins left: %d", g.player.Player.Score, left)
	dst.DrawText(hud, 10, 10, core.ColorWhite)
	if left == 0 && len(g.coins) > 0 {
		dst.DrawText("All coins collected!  R to play again", 10, 560, core.ColorBrightGreen)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.player.Player.Score}
}

// Coins returns how many coins the player has picked up this round.
func (g *Game) Coins() int {
	return g.player.Player.Coins
}
