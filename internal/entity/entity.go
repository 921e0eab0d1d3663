// Package entity models the movable, drawable actors of the grid games as a
// tagged variant stored in an index arena. Behaviour is selected by the Kind
// tag in Update rather than by method dispatch.
package entity

import "github.com/vovakirdan/grid-arcade/internal/core"

// Kind tags which variant payload of an Entity is meaningful.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindPatrol      // Walks at constant velocity, reflects at fixed bounds
	KindChaser      // Re-aims at its target every frame
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPatrol:
		return "patrol"
	case KindChaser:
		return "chaser"
	default:
		return "unknown"
	}
}

// Status is a timed effect on the player.
type Status int

const (
	StatusNormal Status = iota
	StatusSpeedBoost
	StatusInvincible
	StatusFrozen
)

// String returns the HUD label for the status.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "NORMAL"
	case StatusSpeedBoost:
		return "SPEED_BOOST"
	case StatusInvincible:
		return "INVINCIBLE"
	case StatusFrozen:
		return "FROZEN"
	default:
		return "UNKNOWN"
	}
}

// Bounds is an axis-aligned region. An axis whose Min >= Max is unbounded.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// GridBounds returns the positions a tile-sized sprite may occupy on a grid.
func GridBounds(tileSize, tilesX, tilesY int) Bounds {
	return Bounds{
		MinX: 0,
		MaxX: float64((tilesX - 1) * tileSize),
		MinY: 0,
		MaxY: float64((tilesY - 1) * tileSize),
	}
}

// HasX reports whether the x axis is bounded.
func (b Bounds) HasX() bool { return b.MinX < b.MaxX }

// HasY reports whether the y axis is bounded.
func (b Bounds) HasY() bool { return b.MinY < b.MaxY }

// Clamp restricts pos to the bounded axes.
func (b Bounds) Clamp(pos core.Vec2) core.Vec2 {
	if b.HasX() {
		pos.X = core.ClampF(pos.X, b.MinX, b.MaxX)
	}
	if b.HasY() {
		pos.Y = core.ClampF(pos.Y, b.MinY, b.MaxY)
	}
	return pos
}

// PlayerState is the payload of a KindPlayer entity.
type PlayerState struct {
	Speed        float64 // Pixels per frame per held axis
	Frame        int     // Current animation frame
	FrameCounter int     // Frames since the last animation step
	Moving       bool    // Whether input moved the player this frame
	Status       Status
	PowerUpTimer float64 // Seconds left on Status
	Coins        int
	Score        int
	Lives        int
}

// PatrolState is the payload of a KindPatrol entity.
type PatrolState struct {
	Dir    core.Vec2 // Per-axis direction, usually components in {-1, 0, 1}
	Speed  float64
	Bounds Bounds
}

// ChaseState is the payload of a KindChaser entity.
type ChaseState struct {
	Speed float64
}

// Entity is one actor. Only the payload matching Kind is used.
type Entity struct {
	Kind    Kind
	Pos     core.Vec2
	Texture core.Texture

	Player PlayerState
	Patrol PatrolState
	Chase  ChaseState
}

// NewPlayer creates a player entity.
func NewPlayer(pos core.Vec2, tex core.Texture, speed float64, lives int) Entity {
	return Entity{
		Kind:    KindPlayer,
		Pos:     pos,
		Texture: tex,
		Player: PlayerState{
			Speed:  speed,
			Status: StatusNormal,
			Lives:  lives,
		},
	}
}

// NewPatrol creates a patrolling enemy.
func NewPatrol(pos core.Vec2, tex core.Texture, dir core.Vec2, speed float64, bounds Bounds) Entity {
	return Entity{
		Kind:    KindPatrol,
		Pos:     pos,
		Texture: tex,
		Patrol:  PatrolState{Dir: dir, Speed: speed, Bounds: bounds},
	}
}

// NewChaser creates a pursuing enemy.
func NewChaser(pos core.Vec2, tex core.Texture, speed float64) Entity {
	return Entity{
		Kind:    KindChaser,
		Pos:     pos,
		Texture: tex,
		Chase:   ChaseState{Speed: speed},
	}
}

// Rect returns the texture-sized collision rectangle.
func (e *Entity) Rect() core.RectF {
	w, h := e.Texture.Size()
	return core.RectAt(e.Pos, w, h)
}
