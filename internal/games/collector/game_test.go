package collector

import (
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/entity"
)

func newGame(seed int64) *Game {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345)
	g2 := newGame(12345)

	for i := range g1.coins {
		if g1.coins[i].Pos != g2.coins[i].Pos {
			t.Fatalf("Coin %d placed differently: %v vs %v", i, g1.coins[i].Pos, g2.coins[i].Pos)
		}
	}

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch {
		case i%200 < 100:
			input.Set(core.ActionRight)
			input.Set(core.ActionDown)
		default:
			input.Set(core.ActionLeft)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestCoinPlacement(t *testing.T) {
	g := newGame(7)
	if len(g.coins) != g.cfg.Coins.Count {
		t.Fatalf("Expected %d coins, got %d", g.cfg.Coins.Count, len(g.coins))
	}

	seen := make(map[core.Vec2]bool)
	start := g.player.Rect()
	for _, c := range g.coins {
		if seen[c.Pos] {
			t.Errorf("Two coins on tile %v", c.Pos)
		}
		seen[c.Pos] = true
		if c.Rect().Intersects(start) {
			t.Errorf("Coin %v placed under the player", c.Pos)
		}
	}
}

func TestMovementClampedToGrid(t *testing.T) {
	g := newGame(1)
	g.coins = nil

	for i := 0; i < 100; i++ {
		g.Step(core.InputOf(core.ActionLeft, core.ActionUp))
	}
	if g.player.Pos != core.V(0, 0) {
		t.Errorf("Expected clamp at (0,0), got %v", g.player.Pos)
	}

	for i := 0; i < 1000; i++ {
		g.Step(core.InputOf(core.ActionRight, core.ActionDown))
	}
	if g.player.Pos != core.V(760, 560) {
		t.Errorf("Expected clamp at (760,560), got %v", g.player.Pos)
	}
}

func TestDiagonalMovesFullSpeedOnBothAxes(t *testing.T) {
	g := newGame(1)
	g.coins = nil
	start := g.player.Pos
	speed := g.cfg.Player.Speed

	g.Step(core.InputOf(core.ActionRight, core.ActionDown))
	want := core.V(start.X+speed, start.Y+speed)
	if g.player.Pos != want {
		t.Errorf("Position = %v, want %v", g.player.Pos, want)
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	g := newGame(1)
	g.coins = []entity.Item{{
		Kind:    entity.ItemCoin,
		Pos:     g.player.Pos,
		Texture: core.PlaceholderTexture("coin", 40),
	}}

	res := g.Step(core.NewInputFrame())
	if res.State.Score != g.cfg.Coins.Points {
		t.Errorf("Score = %d, want %d", res.State.Score, g.cfg.Coins.Points)
	}
	if len(res.Events) != 1 || res.Events[0].Sound != "coin" {
		t.Errorf("Expected one coin sound event, got %+v", res.Events)
	}

	for i := 0; i < 10; i++ {
		res = g.Step(core.NewInputFrame())
		if len(res.Events) != 0 {
			t.Fatalf("Frame %d: collected coin fired again: %+v", i, res.Events)
		}
	}
	if res.State.Score != g.cfg.Coins.Points {
		t.Errorf("Score changed after re-overlap: %d", res.State.Score)
	}
	if g.Snapshot().Coins != 1 || g.Snapshot().CoinsLeft != 0 {
		t.Errorf("Unexpected coin counters: %+v", g.Snapshot())
	}
}

func TestPatrolBouncesBetweenBounds(t *testing.T) {
	g := newGame(1)
	g.coins = nil
	speed := g.patrol.Patrol.Speed

	flips := 0
	dir := g.patrol.Patrol.Dir.X
	for i := 0; i < 2000; i++ {
		g.Step(core.NewInputFrame())
		x := g.patrol.Pos.X
		if x < 40-speed || x > 760+speed {
			t.Fatalf("Frame %d: patrol at %v left bounds by more than one step", i, x)
		}
		if g.patrol.Patrol.Dir.X != dir {
			flips++
			dir = g.patrol.Patrol.Dir.X
			if x >= 40 && x <= 760 {
				t.Fatalf("Frame %d: flipped at %v without crossing a bound", i, x)
			}
		}
	}
	if flips < 2 {
		t.Errorf("Expected several bounces, got %d", flips)
	}
}

func TestRestart(t *testing.T) {
	g := newGame(3)
	for i := 0; i < 30; i++ {
		g.Step(core.InputOf(core.ActionRight))
	}
	g.Step(core.InputOf(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.PlayerX != 40 || snap.PlayerY != 40 {
		t.Errorf("Restart did not reset: %+v", snap)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newGame(1)
	screen := core.NewScreen(60, 15)
	g.Render(core.NewCellCanvas(screen, 20, 40))

	row := screen.Row(0)
	if want := "Score: 0  Coins left: 10"; len(row) < len(want) || row[:len(want)] != want {
		t.Errorf("HUD row = %q", row)
	}
}
