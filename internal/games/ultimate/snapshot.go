package ultimate

import "github.com/vovakirdan/grid-arcade/internal/entity"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Phase     Phase
	Tick      uint64
	Score     int
	Coins     int
	Lives     int
	Timer     float64
	Status    entity.Status
	PlayerX   float64
	PlayerY   float64
	ItemsLeft int
	Particles int
	Enemies   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.playerEntity()
	return Snapshot{
		Phase:     g.phase,
		Tick:      g.tick,
		Score:     p.Player.Score,
		Coins:     p.Player.Coins,
		Lives:     p.Player.Lives,
		Timer:     g.timer,
		Status:    p.Player.Status,
		PlayerX:   p.Pos.X,
		PlayerY:   p.Pos.Y,
		ItemsLeft: entity.Remaining(g.items),
		Particles: g.fx.Len(),
		Enemies:   len(g.enemies),
	}
}
