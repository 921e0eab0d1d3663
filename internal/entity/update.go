package entity

import "github.com/vovakirdan/grid-arcade/internal/core"

// Context carries everything an update needs for one frame.
type Context struct {
	Input  core.InputFrame
	Target core.Vec2 // Chase target, normally the player position
	DT     float64   // Seconds per frame

	AnimEvery       int     // Frames per animation step while moving
	AnimFrames      int     // Animation frames in the cycle
	SpeedMultiplier float64 // Applied while StatusSpeedBoost is active
}

// Update advances e by one frame, dispatching on its Kind.
func Update(e *Entity, ctx Context) {
	switch e.Kind {
	case KindPlayer:
		updatePlayer(e, ctx)
	case KindPatrol:
		e.Pos = StepPatrol(e.Pos, &e.Patrol)
	case KindChaser:
		// Coincident positions leave the chaser where it is.
		e.Pos, _ = StepChase(e.Pos, ctx.Target, e.Chase.Speed)
	}
}

// EffectiveSpeed returns the player's per-frame speed under its status.
func EffectiveSpeed(p PlayerState, boost float64) float64 {
	switch p.Status {
	case StatusFrozen:
		return 0
	case StatusSpeedBoost:
		if boost > 0 {
			return p.Speed * boost
		}
	}
	return p.Speed
}

func updatePlayer(e *Entity, ctx Context) {
	p := &e.Player

	next := Move(e.Pos, ctx.Input, EffectiveSpeed(*p, ctx.SpeedMultiplier))
	p.Moving = next != e.Pos
	e.Pos = next

	if p.Moving && ctx.AnimEvery > 0 && ctx.AnimFrames > 0 {
		p.FrameCounter++
		if p.FrameCounter >= ctx.AnimEvery {
			p.FrameCounter = 0
			p.Frame = (p.Frame + 1) % ctx.AnimFrames
		}
	}

	if p.Status != StatusNormal {
		p.PowerUpTimer -= ctx.DT
		if p.PowerUpTimer <= 0 {
			p.PowerUpTimer = 0
			p.Status = StatusNormal
		}
	}
}

// ApplyPowerUp puts the player under status for duration seconds,
// replacing any active effect.
func ApplyPowerUp(p *PlayerState, status Status, duration float64) {
	p.Status = status
	p.PowerUpTimer = duration
	if status == StatusNormal || duration <= 0 {
		p.Status = StatusNormal
		p.PowerUpTimer = 0
	}
}
