package config

import (
	_ "embed"
)

//go:embed defaults/tilegrid.yaml
var defaultTileGridYAML []byte

//go:embed defaults/collector.yaml
var defaultCollectorYAML []byte

//go:embed defaults/ultimate.yaml
var defaultUltimateYAML []byte

// DefaultGrid returns the 800x600 canvas split into 40px tiles.
func DefaultGrid() GridConfig {
	return GridConfig{
		TileSize: 40,
		TilesX:   20,
		TilesY:   15,
	}
}

// DefaultTileGridConfig returns the default Tile Grid configuration.
func DefaultTileGridConfig() TileGridConfig {
	return TileGridConfig{
		Grid:     DefaultGrid(),
		Start:    Point{X: 40, Y: 40},
		FPSLabel: Point{X: 30, Y: 30},
	}
}

// DefaultCollectorConfig returns the default Coin Collector configuration.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Grid: DefaultGrid(),
		Player: CollectorPlayer{
			Start: Point{X: 40, Y: 40},
			Speed: 4,
		},
		Coins: CoinConfig{
			Count:  10,
			Points: 10,
		},
		Patrol: PatrolConfig{
			Start: Point{X: 40, Y: 280},
			Dir:   Point{X: 1, Y: 0},
			Speed: 3,
			MinX:  40,
			MaxX:  760,
		},
	}
}

// DefaultUltimateConfig returns the default Collector Ultimate configuration.
func DefaultUltimateConfig() UltimateConfig {
	return UltimateConfig{
		Grid: DefaultGrid(),
		Player: UltimatePlayer{
			Start:     Point{X: 400, Y: 300},
			Speed:     5,
			Lives:     3,
			AnimEvery: 8,
		},
		Session: SessionConfig{
			Timer: 120,
		},
		Coins: CoinConfig{
			Count:     15,
			Points:    10,
			Particles: 20,
		},
		PowerUps: PowerUpConfig{
			Count:           3,
			Duration:        5,
			SpeedMultiplier: 2,
			Particles:       30,
		},
		Patrols: []PatrolConfig{
			{Start: Point{X: 40, Y: 120}, Dir: Point{X: 1, Y: 0}, Speed: 3, MinX: 40, MaxX: 760},
			{Start: Point{X: 720, Y: 440}, Dir: Point{X: -1, Y: 0}, Speed: 2, MinX: 40, MaxX: 760},
		},
		Chasers: []ChaserConfig{
			{Start: Point{X: 40, Y: 520}, Speed: 1.5},
		},
		Particles: ParticleConfig{
			AlphaDecay: 0.02,
			Shrink:     0.95,
			MinSize:    2,
			MaxSize:    6,
			MaxSpeed:   3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tilegrid":
		return defaultTileGridYAML
	case "collector":
		return defaultCollectorYAML
	case "ultimate":
		return defaultUltimateYAML
	default:
		return nil
	}
}
