package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/grid-arcade/internal/applog"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// World size in pixels. Games lay out their grids in this space.
const (
	WorldWidth  = 800
	WorldHeight = 600
)

// SoundPlayer plays named sound effects. *audio.SoundManager satisfies it.
type SoundPlayer interface {
	Play(name string)
}

// Options carries the services the runner reports to. Every field is optional.
type Options struct {
	Images ImageSource
	Sounds SoundPlayer
	Store  *storage.Store
	Logger *log.Logger
	Player string
}

// KeyState reports keyboard state. The ebiten implementation reads the
// live keyboard; tests substitute their own.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Held keys map to movement every frame; the rest fire once per press.
var (
	heldBindings = map[core.Action][]ebiten.Key{
		core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
		core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
		core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	}
	pressBindings = map[core.Action][]ebiten.Key{
		core.ActionConfirm: {ebiten.KeyEnter},
		core.ActionBack:    {ebiten.KeyEscape, ebiten.KeyB},
		core.ActionPause:   {ebiten.KeyP},
		core.ActionRestart: {ebiten.KeyR},
		core.ActionQuit:    {ebiten.KeyQ},
	}
)

// ReadInput builds the input frame for one tick.
func ReadInput(keys KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	for action, ks := range heldBindings {
		for _, k := range ks {
			if keys.Pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, ks := range pressBindings {
		for _, k := range ks {
			if keys.JustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}

// Runner adapts a registry game to ebiten.Game.
type Runner struct {
	game      registry.Game
	config    core.RuntimeConfig
	opts      Options
	keys      KeyState
	canvas    *Canvas
	sessionID string
	state     core.GameState
	ticks     int
	done      bool
}

// NewRunner resets the game and prepares it for the window loop.
func NewRunner(game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.ScreenW = WorldWidth
	cfg.ScreenH = WorldHeight
	if opts.Logger == nil {
		opts.Logger = applog.Discard()
	}

	r := &Runner{
		game:      game,
		config:    cfg,
		opts:      opts,
		keys:      ebitenKeys{},
		canvas:    NewCanvas(opts.Images),
		sessionID: uuid.NewString(),
	}
	game.Reset(cfg)
	r.opts.Logger.Info("game started", "game", game.ID(), "session", r.sessionID, "seed", cfg.Seed)
	return r
}

// Update advances the game one tick. Quit or back ends the run.
func (r *Runner) Update() error {
	if r.done {
		return ebiten.Termination
	}

	in := ReadInput(r.keys)
	if in.Has(core.ActionQuit) || in.Has(core.ActionBack) {
		r.finish()
		return ebiten.Termination
	}

	result := r.game.Step(in)
	r.state = result.State
	r.ticks++

	for _, ev := range result.Events {
		if ev.Sound != "" && r.opts.Sounds != nil {
			r.opts.Sounds.Play(ev.Sound)
		}
	}
	return nil
}

// Draw renders the game onto the window.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.Target(screen)
	r.game.Render(r.canvas)
}

// Layout fixes the logical screen to the world size; ebiten scales it to
// the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	return WorldWidth, WorldHeight
}

// finish records the session once, if anything was scored.
func (r *Runner) finish() {
	if r.done {
		return
	}
	r.done = true

	sess := storage.Session{
		GameID: r.game.ID(),
		Player: r.opts.Player,
		Score:  r.state.Score,
		Ticks:  r.ticks,
	}
	if cc, ok := r.game.(interface{ Coins() int }); ok {
		sess.Coins = cc.Coins()
	}
	r.opts.Logger.Info("game ended", "game", sess.GameID, "session", r.sessionID, "score", sess.Score, "ticks", sess.Ticks)

	if r.opts.Store == nil || sess.Score <= 0 {
		return
	}
	if _, err := r.opts.Store.SaveSession(sess); err != nil {
		r.opts.Logger.Error("could not save session", "session", r.sessionID, "error", err)
	}
}

// Run opens an 800x600 window and plays the game until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	r := NewRunner(game, cfg, opts)

	ebiten.SetWindowSize(WorldWidth, WorldHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Grid Arcade - %s", game.Title()))
	ebiten.SetTPS(r.config.TickRate)

	err := ebiten.RunGame(r)
	// Closing the window skips Update, so record the session here too.
	r.finish()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

var _ ebiten.Game = (*Runner)(nil)
