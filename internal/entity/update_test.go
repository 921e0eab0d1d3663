package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func baseContext(in core.InputFrame) Context {
	return Context{
		Input:           in,
		DT:              1.0 / 60.0,
		AnimEvery:       2,
		AnimFrames:      3,
		SpeedMultiplier: 2,
	}
}

func TestUpdateDispatchesOnKind(t *testing.T) {
	player := NewPlayer(core.V(400, 300), core.Texture{W: 40, H: 40}, 5, 3)
	patrol := NewPatrol(core.V(100, 100), core.Texture{}, core.V(1, 0), 2, Bounds{MinX: 40, MaxX: 760})
	chaser := NewChaser(core.V(0, 0), core.Texture{}, 1)

	ctx := baseContext(core.InputOf(core.ActionRight))
	ctx.Target = core.V(10, 0)

	Update(&player, ctx)
	Update(&patrol, ctx)
	Update(&chaser, ctx)

	assert.Equal(t, core.V(405, 300), player.Pos)
	assert.Equal(t, core.V(102, 100), patrol.Pos)
	assert.Equal(t, core.V(1, 0), chaser.Pos)
}

func TestPlayerAnimationAdvancesOnlyWhileMoving(t *testing.T) {
	p := NewPlayer(core.V(0, 0), core.Texture{}, 5, 3)

	idle := baseContext(core.NewInputFrame())
	for i := 0; i < 10; i++ {
		Update(&p, idle)
	}
	assert.Equal(t, 0, p.Player.Frame)
	assert.False(t, p.Player.Moving)

	moving := baseContext(core.InputOf(core.ActionDown))
	for i := 0; i < 6; i++ {
		Update(&p, moving)
	}
	// AnimEvery=2, AnimFrames=3: six moving frames step three times and wrap.
	assert.Equal(t, 0, p.Player.Frame)
	Update(&p, moving)
	Update(&p, moving)
	assert.Equal(t, 1, p.Player.Frame)
}

func TestPowerUpSpeedAndDecay(t *testing.T) {
	p := NewPlayer(core.V(0, 0), core.Texture{}, 5, 3)
	ApplyPowerUp(&p.Player, StatusSpeedBoost, 0.04)

	ctx := baseContext(core.InputOf(core.ActionRight))
	Update(&p, ctx)
	assert.Equal(t, 10.0, p.Pos.X, "speed boost doubles speed")
	assert.Equal(t, StatusSpeedBoost, p.Player.Status)

	Update(&p, ctx)
	Update(&p, ctx)
	assert.Equal(t, StatusNormal, p.Player.Status, "timer ran out after 3 frames of 1/60s")
	assert.Equal(t, 0.0, p.Player.PowerUpTimer)

	x := p.Pos.X
	Update(&p, ctx)
	assert.Equal(t, x+5, p.Pos.X)
}

func TestFrozenPlayerDoesNotMove(t *testing.T) {
	p := NewPlayer(core.V(50, 50), core.Texture{}, 5, 3)
	ApplyPowerUp(&p.Player, StatusFrozen, 1)

	Update(&p, baseContext(core.InputOf(core.ActionUp, core.ActionLeft)))
	assert.Equal(t, core.V(50, 50), p.Pos)
	assert.False(t, p.Player.Moving)
}

func TestItemCollectIsIdempotent(t *testing.T) {
	coin := Item{Kind: ItemCoin, Pos: core.V(80, 80), Texture: core.Texture{W: 40, H: 40}}
	player := core.RectAt(core.V(90, 90), 40, 40)

	assert.True(t, coin.Collect(player))
	assert.False(t, coin.Collect(player), "second overlap must not collect again")
	assert.Equal(t, 0, Remaining([]Item{coin}))

	far := Item{Kind: ItemCoin, Pos: core.V(400, 400), Texture: core.Texture{W: 40, H: 40}}
	assert.False(t, far.Collect(player))
	assert.False(t, far.Collected)
}

func TestItemKindStatus(t *testing.T) {
	assert.False(t, ItemCoin.IsPowerUp())
	assert.Equal(t, StatusSpeedBoost, ItemSpeedBoost.Status())
	assert.Equal(t, StatusInvincible, ItemShield.Status())
	assert.Equal(t, StatusFrozen, ItemFreeze.Status())
}

func TestFreeTilesDistinctAndAvoiding(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	avoid := core.RectAt(core.V(400, 300), 40, 40)

	tiles := FreeTiles(rng, 40, 20, 15, 50, avoid)
	assert.Len(t, tiles, 50)

	seen := make(map[core.Vec2]bool)
	for _, p := range tiles {
		assert.False(t, seen[p], "duplicate tile %v", p)
		seen[p] = true
		assert.False(t, core.RectAt(p, 40, 40).Intersects(avoid), "tile %v overlaps avoided rect", p)
		assert.Zero(t, int(p.X)%40)
		assert.Zero(t, int(p.Y)%40)
	}
}

func TestFreeTilesExhaustsGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tiles := FreeTiles(rng, 40, 2, 2, 10)
	assert.Len(t, tiles, 4)
}
