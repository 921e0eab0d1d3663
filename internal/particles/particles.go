// Package particles implements short-lived visual effects: bursts of
// fading, shrinking dots spawned at a point.
package particles

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Particle is one dot of an effect.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Color core.Color
	Alpha float64 // 1 at spawn, removed once it reaches 0
	Size  float64 // Radius in world pixels
}

// Config defines the spawn ranges and lifetime model.
type Config struct {
	AlphaDecay float64 // Subtracted from alpha each update
	Shrink     float64 // Size multiplier each update
	MinSize    float64
	MaxSize    float64
	MaxSpeed   float64 // Per-axis velocity range is [-MaxSpeed, MaxSpeed]
	Palette    []core.Color
}

// DefaultConfig returns the standard burst settings.
func DefaultConfig() Config {
	return Config{
		AlphaDecay: 0.02,
		Shrink:     0.95,
		MinSize:    2,
		MaxSize:    6,
		MaxSpeed:   3,
		Palette: []core.Color{
			core.ColorBrightYellow,
			core.ColorOrange,
			core.ColorBrightRed,
			core.ColorBrightMagenta,
			core.ColorBrightCyan,
		},
	}
}

// System owns all live particles.
type System struct {
	cfg       Config
	rng       *rand.Rand
	particles []Particle
}

// New creates a particle system. The seed makes spawns reproducible.
func New(cfg Config, seed int64) *System {
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultConfig().Palette
	}
	if cfg.AlphaDecay <= 0 {
		cfg.AlphaDecay = DefaultConfig().AlphaDecay
	}
	if cfg.MaxSize < cfg.MinSize {
		cfg.MaxSize = cfg.MinSize
	}
	return &System{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		particles: make([]Particle, 0, 128),
	}
}

// Spawn appends exactly count particles at pos.
func (s *System) Spawn(pos core.Vec2, count int) {
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, Particle{
			Pos:   pos,
			Vel:   core.V(s.spread(s.cfg.MaxSpeed), s.spread(s.cfg.MaxSpeed)),
			Color: s.cfg.Palette[s.rng.Intn(len(s.cfg.Palette))],
			Alpha: 1,
			Size:  s.cfg.MinSize + s.rng.Float64()*(s.cfg.MaxSize-s.cfg.MinSize),
		})
	}
}

// spread returns a uniform value in [-max, max].
func (s *System) spread(max float64) float64 {
	return (s.rng.Float64()*2 - 1) * max
}

// Update advances every particle by one frame and drops the ones that
// have faded out. Survivors keep their relative order.
func (s *System) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Alpha -= s.cfg.AlphaDecay
		p.Size *= s.cfg.Shrink
		if p.Alpha <= 0 {
			continue
		}
		alive = append(alive, p)
	}
	// Clear the tail so dropped particles do not linger in the backing array.
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = Particle{}
	}
	s.particles = alive
}

// Draw renders each particle as a filled circle faded by its alpha.
func (s *System) Draw(dst core.Canvas) {
	for _, p := range s.particles {
		dst.DrawCircle(p.Pos.X, p.Pos.Y, p.Size, p.Color, p.Alpha)
	}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Clear removes all particles.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Particles returns the live particles. The slice is only valid until the
// next Spawn or Update.
func (s *System) Particles() []Particle {
	return s.particles
}
