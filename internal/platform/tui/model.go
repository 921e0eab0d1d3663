package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/grid-arcade/internal/applog"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// SoundPlayer plays named sound effects. *audio.SoundManager satisfies it.
type SoundPlayer interface {
	Play(name string)
}

// coinCounter is implemented by games that track collected coins.
type coinCounter interface {
	Coins() int
}

// Options carries the services a game model reports to. Every field is optional.
type Options struct {
	Store  *storage.Store
	Sounds SoundPlayer
	Logger *log.Logger
	Player string // Recorded with the session; SSH user or local user name
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return applog.Discard()
	}
	return o.Logger
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	sessionID  string
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	ticks      int
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		sessionID:  uuid.NewString(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.logger().Info("game started",
		"game", m.game.ID(),
		"session", m.sessionID,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has a fixed size; a smaller terminal just clips it.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys arrive as repeats
// while held, so each press marks the action for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.finish()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick runs one simulation step and realizes its events.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++

	for _, ev := range result.Events {
		if ev.Sound != "" && m.opts.Sounds != nil {
			m.opts.Sounds.Play(ev.Sound)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// finish records the session once, if anything was scored.
func (m *GameModel) finish() {
	if m.saved {
		return
	}
	m.saved = true

	logger := m.opts.logger()
	sess := m.Session()
	logger.Info("game ended",
		"game", sess.GameID,
		"session", m.sessionID,
		"score", sess.Score,
		"ticks", sess.Ticks,
	)

	if m.opts.Store == nil || sess.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveSession(sess); err != nil {
		logger.Error("could not save session", "session", m.sessionID, "error", err)
	}
}

// Session returns the session record for the game played so far.
func (m GameModel) Session() storage.Session {
	sess := storage.Session{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Ticks:  m.ticks,
	}
	if cc, ok := m.game.(coinCounter); ok {
		sess.Coins = cc.Coins()
	}
	return sess
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	RenderCanvas(m.game.Render, m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.logger().Warn("screenshot failed", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderCanvas(m.game.Render, m.screen)
}

// SessionID returns the unique ID of this play session.
func (m GameModel) SessionID() string {
	return m.sessionID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or backs out.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
