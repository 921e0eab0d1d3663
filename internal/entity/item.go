package entity

import "github.com/vovakirdan/grid-arcade/internal/core"

// ItemKind identifies a collectible.
type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemSpeedBoost
	ItemShield
	ItemFreeze
)

// String returns the item name, which doubles as its texture name.
func (k ItemKind) String() string {
	switch k {
	case ItemCoin:
		return "coin"
	case ItemSpeedBoost:
		return "speed"
	case ItemShield:
		return "shield"
	case ItemFreeze:
		return "freeze"
	default:
		return "unknown"
	}
}

// Status returns the player status granted by a power-up item.
func (k ItemKind) Status() Status {
	switch k {
	case ItemSpeedBoost:
		return StatusSpeedBoost
	case ItemShield:
		return StatusInvincible
	case ItemFreeze:
		return StatusFrozen
	default:
		return StatusNormal
	}
}

// IsPowerUp reports whether the item grants a status.
func (k ItemKind) IsPowerUp() bool {
	return k.Status() != StatusNormal
}

// Item is a collectible placed on the grid.
type Item struct {
	Kind      ItemKind
	Pos       core.Vec2
	Texture   core.Texture
	Collected bool
}

// Rect returns the texture-sized collision rectangle.
func (it *Item) Rect() core.RectF {
	w, h := it.Texture.Size()
	return core.RectAt(it.Pos, w, h)
}

// Collect marks the item collected if it overlaps the player rectangle.
// It returns true only on the frame the item is first collected.
func (it *Item) Collect(player core.RectF) bool {
	if it.Collected || !it.Rect().Intersects(player) {
		return false
	}
	it.Collected = true
	return true
}

// Remaining counts uncollected items.
func Remaining(items []Item) int {
	n := 0
	for i := range items {
		if !items[i].Collected {
			n++
		}
	}
	return n
}
