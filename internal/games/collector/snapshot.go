package collector

import "github.com/vovakirdan/grid-arcade/internal/entity"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Coins     int
	CoinsLeft int
	PlayerX   float64
	PlayerY   float64
	PatrolX   float64
	PatrolDir float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.player.Player.Score,
		Coins:     g.player.Player.Coins,
		CoinsLeft: entity.Remaining(g.coins),
		PlayerX:   g.player.Pos.X,
		PlayerY:   g.player.Pos.Y,
		PatrolX:   g.patrol.Pos.X,
		PatrolDir: g.patrol.Patrol.Dir.X,
	}
}
