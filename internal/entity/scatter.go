package entity

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// FreeTiles picks up to n distinct grid tiles in random order and returns
// their top-left corners. Tiles overlapping any avoid rectangle are skipped.
func FreeTiles(rng *rand.Rand, tileSize, tilesX, tilesY, n int, avoid ...core.RectF) []core.Vec2 {
	if n <= 0 || tileSize <= 0 {
		return nil
	}

	ts := float64(tileSize)
	out := make([]core.Vec2, 0, n)
	for _, idx := range rng.Perm(tilesX * tilesY) {
		pos := core.V(float64(idx%tilesX)*ts, float64(idx/tilesX)*ts)
		if blocked(core.RectAt(pos, ts, ts), avoid) {
			continue
		}
		out = append(out, pos)
		if len(out) == n {
			break
		}
	}
	return out
}

func blocked(r core.RectF, avoid []core.RectF) bool {
	for _, a := range avoid {
		if r.Intersects(a) {
			return true
		}
	}
	return false
}
