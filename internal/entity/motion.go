package entity

import "github.com/vovakirdan/grid-arcade/internal/core"

// Move applies held directional input to pos: each held key adds ±speed to
// its axis. Diagonals are not normalized, so two keys move speed on both
// axes; opposite keys cancel.
func Move(pos core.Vec2, in core.InputFrame, speed float64) core.Vec2 {
	if in.Has(core.ActionLeft) {
		pos.X -= speed
	}
	if in.Has(core.ActionRight) {
		pos.X += speed
	}
	if in.Has(core.ActionUp) {
		pos.Y -= speed
	}
	if in.Has(core.ActionDown) {
		pos.Y += speed
	}
	return pos
}

// StepPatrol advances a patrol walk by one frame and reflects the direction
// on any bounded axis whose new position crossed a bound. The position is
// not clamped, so it overshoots by at most one frame of motion.
func StepPatrol(pos core.Vec2, p *PatrolState) core.Vec2 {
	pos = pos.Add(p.Dir.Scale(p.Speed))
	if p.Bounds.HasX() && (pos.X < p.Bounds.MinX || pos.X > p.Bounds.MaxX) {
		p.Dir.X = -p.Dir.X
	}
	if p.Bounds.HasY() && (pos.Y < p.Bounds.MinY || pos.Y > p.Bounds.MaxY) {
		p.Dir.Y = -p.Dir.Y
	}
	return pos
}

// StepChase moves pos exactly speed units toward target. When the two
// coincide there is no direction: pos is returned unchanged together with
// core.ErrDegenerateVector.
func StepChase(pos, target core.Vec2, speed float64) (core.Vec2, error) {
	dir, err := target.Sub(pos).Normalize()
	if err != nil {
		return pos, err
	}
	return pos.Add(dir.Scale(speed)), nil
}
