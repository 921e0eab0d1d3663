package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// stepGame scores a point and a coin sound for every frame with Right held.
type stepGame struct {
	frames []core.InputFrame
	score  int
	resets int
}

func (g *stepGame) ID() string    { return "zz_tui_step" }
func (g *stepGame) Title() string { return "Step Game" }
func (g *stepGame) Description() string {
	return "Scores while moving right"
}

func (g *stepGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.score = 0
	g.frames = nil
}

func (g *stepGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	var events []core.Event
	if in.Has(core.ActionRight) {
		g.score++
		events = append(events, core.Event{Kind: core.EventItemCollected, Sound: "coin"})
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *stepGame) Render(dst core.Canvas) {
	dst.Clear(core.ColorDefault)
	dst.DrawText("STEP GAME", 0, 0, core.ColorWhite)
}

func (g *stepGame) State() core.GameState { return core.GameState{Score: g.score} }

func (g *stepGame) Coins() int { return g.score }

func init() {
	registry.Register("zz_tui_step", func() registry.Game { return &stepGame{} })
}

type soundLog struct{ played []string }

func (s *soundLog) Play(name string) { s.played = append(s.played, name) }

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 40
	cfg.ScreenH = 15
	cfg.Seed = 7
	return cfg
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGameModelInputLastsOneTick(t *testing.T) {
	game := &stepGame{}
	sounds := &soundLog{}
	m := NewGameModel(game, testConfig(), Options{Sounds: sounds})
	m.Init()

	m, _ = update(t, m, runeKey("d"))
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	if len(game.frames) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.frames))
	}
	if !game.frames[0].Has(core.ActionRight) {
		t.Error("first tick should see the key press")
	}
	if game.frames[1].Has(core.ActionRight) {
		t.Error("input should be cleared after the tick")
	}
	if len(sounds.played) != 1 || sounds.played[0] != "coin" {
		t.Errorf("played = %v, want [coin]", sounds.played)
	}
	if m.Session().Ticks != 2 {
		t.Errorf("ticks = %d, want 2", m.Session().Ticks)
	}
}

func TestGameModelQuitSavesSession(t *testing.T) {
	store := openStore(t)
	game := &stepGame{}
	m := NewGameModel(game, testConfig(), Options{Store: store, Player: "alice"})
	m.Init()

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, runeKey("d"))
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	m, cmd := update(t, m, runeKey("q"))
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	entries, err := store.TopScores("zz_tui_step", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 saved session, got %d", len(entries))
	}
	e := entries[0]
	if e.Score != 3 || e.Coins != 3 || e.Ticks != 3 || e.Player != "alice" {
		t.Errorf("saved %+v", e)
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	m := NewGameModel(&stepGame{}, testConfig(), Options{Store: store})
	m.Init()
	m, _ = update(t, m, TickMsg(time.Now()))
	update(t, m, runeKey("q"))

	entries, err := store.TopScores("zz_tui_step", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("zero score should not be saved, got %d entries", len(entries))
	}
}

func TestGameModelBack(t *testing.T) {
	m := NewGameModel(&stepGame{}, testConfig(), Options{})
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("esc should go back")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}

	// Ticks after leaving do not step the game.
	_, cmd = update(t, m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick loop should stop after back")
	}

	standalone := NewGameModel(&stepGame{}, testConfig(), Options{})
	standalone.standalone = true
	_, cmd = update(t, standalone, runeKey("b"))
	if !isQuit(cmd) {
		t.Error("standalone back should quit")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&stepGame{}, testConfig(), Options{})
	m.Init()
	if !strings.Contains(m.View(), "STEP GAME") {
		t.Errorf("view missing game text:\n%s", m.View())
	}
	if m.SessionID() == "" {
		t.Error("session ID should be set")
	}
	other := NewGameModel(&stepGame{}, testConfig(), Options{})
	if other.SessionID() == m.SessionID() {
		t.Error("session IDs should be unique")
	}
}

func TestGameModelZeroSeedReplaced(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	m := NewGameModel(&stepGame{}, cfg, Options{})
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawTextColored(0, 0, "Score", core.ColorBrightYellow)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	if !strings.Contains(out, "Score") || !strings.Contains(out, "plain") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 1 newline, got %d", got)
	}
}
