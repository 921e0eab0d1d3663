// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// GridConfig describes the world canvas and its tile grid.
type GridConfig struct {
	TileSize int `yaml:"tile_size"`
	TilesX   int `yaml:"tiles_x"`
	TilesY   int `yaml:"tiles_y"`
}

// Width returns the world width in pixels.
func (g GridConfig) Width() int { return g.TileSize * g.TilesX }

// Height returns the world height in pixels.
func (g GridConfig) Height() int { return g.TileSize * g.TilesY }

// Point is a world position in pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TileGridConfig contains all configuration for the Tile Grid demo.
type TileGridConfig struct {
	Grid     GridConfig `yaml:"grid"`
	Start    Point      `yaml:"start"`
	FPSLabel Point      `yaml:"fps_label"`
}

// CollectorConfig contains all configuration for Coin Collector.
type CollectorConfig struct {
	Grid   GridConfig      `yaml:"grid"`
	Player CollectorPlayer `yaml:"player"`
	Coins  CoinConfig      `yaml:"coins"`
	Patrol PatrolConfig    `yaml:"patrol"`
}

// CollectorPlayer defines player parameters for Coin Collector.
type CollectorPlayer struct {
	Start Point   `yaml:"start"`
	Speed float64 `yaml:"speed"` // Pixels per frame per held key
}

// CoinConfig defines how coins are placed and scored.
type CoinConfig struct {
	Count     int `yaml:"count"`
	Points    int `yaml:"points"`
	Particles int `yaml:"particles"` // Burst size on pickup (ultimate only)
}

// PatrolConfig defines a patrolling enemy. A zero Min/Max pair leaves that
// axis unbounded.
type PatrolConfig struct {
	Start Point   `yaml:"start"`
	Dir   Point   `yaml:"dir"`
	Speed float64 `yaml:"speed"`
	MinX  float64 `yaml:"min_x"`
	MaxX  float64 `yaml:"max_x"`
	MinY  float64 `yaml:"min_y"`
	MaxY  float64 `yaml:"max_y"`
}

// ChaserConfig defines a pursuing enemy.
type ChaserConfig struct {
	Start Point   `yaml:"start"`
	Speed float64 `yaml:"speed"`
}

// UltimateConfig contains all configuration for Collector Ultimate.
type UltimateConfig struct {
	Grid      GridConfig     `yaml:"grid"`
	Player    UltimatePlayer `yaml:"player"`
	Session   SessionConfig  `yaml:"session"`
	Coins     CoinConfig     `yaml:"coins"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Patrols   []PatrolConfig `yaml:"patrols"`
	Chasers   []ChaserConfig `yaml:"chasers"`
	Particles ParticleConfig `yaml:"particles"`
}

// UltimatePlayer defines player parameters for Collector Ultimate.
type UltimatePlayer struct {
	Start     Point   `yaml:"start"`
	Speed     float64 `yaml:"speed"`
	Lives     int     `yaml:"lives"`
	AnimEvery int     `yaml:"anim_every"` // Frames per walk-cycle step
}

// SessionConfig defines per-session limits.
type SessionConfig struct {
	Timer float64 `yaml:"timer"` // Seconds
}

// PowerUpConfig defines power-up items and their effects.
type PowerUpConfig struct {
	Count           int     `yaml:"count"`
	Duration        float64 `yaml:"duration"` // Seconds
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	Particles       int     `yaml:"particles"`
}

// ParticleConfig defines the particle lifetime model.
type ParticleConfig struct {
	AlphaDecay float64 `yaml:"alpha_decay"`
	Shrink     float64 `yaml:"shrink"`
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	MaxSpeed   float64 `yaml:"max_speed"`
}
