// Package ultimate is the third prototype: a title screen, a timed session
// with patrolling and chasing enemies, power-ups, particles and a high
// score read from disk.
package ultimate

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/entity"
	"github.com/vovakirdan/grid-arcade/internal/particles"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Player walk cycle textures, indexed by animation frame.
var walkTextures = []string{"player", "player_alt"}

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

// Game implements Collector Ultimate.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.UltimateConfig
	rng     *rand.Rand

	phase     Phase
	tick      uint64
	timer     float64 // Session seconds left, never below zero
	highScore int

	arena   *entity.Arena
	player  entity.Handle
	enemies []entity.Handle
	items   []entity.Item
	fx      *particles.System
}

// New creates a new Collector Ultimate game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("ultimate", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "ultimate" }

// Title returns the display name.
func (g *Game) Title() string { return "Collector Ultimate" }

// Description returns the menu blurb.
func (g *Game) Description() string { return "Coins, power-ups and enemies against the clock" }

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadUltimate(configPath)
	if err != nil {
		cfg = config.DefaultUltimateConfig()
	}
	if difficultyPreset != "" {
		config.ApplyUltimatePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.highScore = runtime.HighScore
	if g.arena == nil {
		g.arena = entity.NewArena(1 + len(cfg.Patrols) + len(cfg.Chasers))
	}
	g.fx = particles.New(g.particleConfig(), runtime.Seed)

	g.phase = PhaseMenu
	g.tick = 0
	g.resetSession()
}

func (g *Game) particleConfig() particles.Config {
	pc := particles.DefaultConfig()
	p := g.cfg.Particles
	pc.AlphaDecay = p.AlphaDecay
	pc.Shrink = p.Shrink
	pc.MinSize = p.MinSize
	pc.MaxSize = p.MaxSize
	pc.MaxSpeed = p.MaxSpeed
	return pc
}

// resetSession restores every session variable to its configured default.
func (g *Game) resetSession() {
	cfg := g.cfg
	tile := cfg.Grid.TileSize

	g.arena.Reset()
	g.enemies = g.enemies[:0]
	g.fx.Clear()
	g.timer = cfg.Session.Timer

	g.player = g.arena.Add(entity.NewPlayer(
		core.V(cfg.Player.Start.X, cfg.Player.Start.Y),
		g.runtime.Texture(walkTextures[0], tile),
		cfg.Player.Speed,
		cfg.Player.Lives,
	))

	patrolTex := g.runtime.Texture("patrol", tile)
	for _, p := range cfg.Patrols {
		g.enemies = append(g.enemies, g.arena.Add(entity.NewPatrol(
			core.V(p.Start.X, p.Start.Y),
			patrolTex,
			core.V(p.Dir.X, p.Dir.Y),
			p.Speed,
			entity.Bounds{MinX: p.MinX, MaxX: p.MaxX, MinY: p.MinY, MaxY: p.MaxY},
		)))
	}
	chaserTex := g.runtime.Texture("chaser", tile)
	for _, c := range cfg.Chasers {
		g.enemies = append(g.enemies, g.arena.Add(entity.NewChaser(
			core.V(c.Start.X, c.Start.Y), chaserTex, c.Speed,
		)))
	}

	g.spawnItems()
}

// spawnItems scatters coins and power-ups on distinct free tiles.
// Power-ups cycle through speed, shield and freeze.
func (g *Game) spawnItems() {
	grid := g.cfg.Grid
	powerUps := []entity.ItemKind{entity.ItemSpeedBoost, entity.ItemShield, entity.ItemFreeze}

	kinds := make([]entity.ItemKind, 0, g.cfg.Coins.Count+g.cfg.PowerUps.Count)
	for i := 0; i < g.cfg.Coins.Count; i++ {
		kinds = append(kinds, entity.ItemCoin)
	}
	for i := 0; i < g.cfg.PowerUps.Count; i++ {
		kinds = append(kinds, powerUps[i%len(powerUps)])
	}

	avoid := []core.RectF{g.playerEntity().Rect()}
	g.arena.Each(func(_ entity.Handle, e *entity.Entity) {
		if e.Kind != entity.KindPlayer {
			avoid = append(avoid, e.Rect())
		}
	})

	tiles := entity.FreeTiles(g.rng, grid.TileSize, grid.TilesX, grid.TilesY, len(kinds), avoid...)
	g.items = g.items[:0]
	for i, pos := range tiles {
		kind := kinds[i]
		g.items = append(g.items, entity.Item{
			Kind:    kind,
			Pos:     pos,
			Texture: g.runtime.Texture(kind.String(), grid.TileSize),
		})
	}
}

// playerEntity returns the live player. The handle is only replaced by
// resetSession, so it always resolves.
func (g *Game) playerEntity() *entity.Entity {
	e, _ := g.arena.Get(g.player)
	return e
}

// Step advances the game by one frame according to the current phase.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			g.resetSession()
			g.phase = PhasePlaying
		}
		return core.StepResult{State: g.State()}
	case PhasePlaying:
		events := g.stepPlaying(in)
		return core.StepResult{State: g.State(), Events: events}
	default:
		// Paused, game over and shop have no behavior yet.
		return core.StepResult{State: g.State()}
	}
}

func (g *Game) stepPlaying(in core.InputFrame) []core.Event {
	dt := g.runtime.FrameSeconds()
	player := g.playerEntity()

	entity.Update(player, entity.Context{
		Input:           in,
		DT:              dt,
		AnimEvery:       g.cfg.Player.AnimEvery,
		AnimFrames:      len(walkTextures),
		SpeedMultiplier: g.cfg.PowerUps.SpeedMultiplier,
	})
	frame := player.Player.Frame % len(walkTextures)
	player.Texture = g.runtime.Texture(walkTextures[frame], g.cfg.Grid.TileSize)

	enemyCtx := entity.Context{Target: player.Pos, DT: dt}
	for _, h := range g.enemies {
		if e, ok := g.arena.Get(h); ok {
			entity.Update(e, enemyCtx)
		}
	}

	events := g.collectItems(player)

	// Enemy contact has no defined response; lives and invincibility are
	// tracked but nothing consumes them yet.

	g.fx.Update()

	g.timer -= dt
	if g.timer < 0 {
		g.timer = 0
	}
	return events
}

func (g *Game) collectItems(player *entity.Entity) []core.Event {
	var events []core.Event
	rect := player.Rect()
	p := &player.Player

	for i := range g.items {
		it := &g.items[i]
		if !it.Collect(rect) {
			continue
		}
		center := it.Rect().Center()

		if it.Kind == entity.ItemCoin {
			p.Score += g.cfg.Coins.Points
			p.Coins++
			g.fx.Spawn(center, g.cfg.Coins.Particles)
			events = append(events, core.Event{Kind: core.EventItemCollected, Sound: "coin", Pos: center})
			continue
		}

		entity.ApplyPowerUp(p, it.Kind.Status(), g.cfg.PowerUps.Duration)
		g.fx.Spawn(center, g.cfg.PowerUps.Particles)
		events = append(events, core.Event{Kind: core.EventPowerUp, Sound: "powerup", Pos: center})
	}
	return events
}

// State returns the current game state. Only the playing phase has a
// score; the session never ends on its own.
func (g *Game) State() core.GameState {
	state := core.GameState{
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
	if g.phase != PhaseMenu && g.arena != nil {
		if p := g.playerEntity(); p != nil {
			state.Score = p.Player.Score
		}
	}
	return state
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Coins returns the coins collected this session.
func (g *Game) Coins() int {
	if g.arena == nil || g.phase == PhaseMenu {
		return 0
	}
	return g.playerEntity().Player.Coins
}
