package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "" and false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// enemySpeedScale returns the multiplier applied to enemy speeds.
func enemySpeedScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyCollectorPreset modifies the config based on a difficulty preset.
func ApplyCollectorPreset(cfg *CollectorConfig, preset DifficultyPreset) {
	cfg.Patrol.Speed *= enemySpeedScale(preset)
}

// ApplyUltimatePreset modifies the config based on a difficulty preset.
func ApplyUltimatePreset(cfg *UltimateConfig, preset DifficultyPreset) {
	scale := enemySpeedScale(preset)
	for i := range cfg.Patrols {
		cfg.Patrols[i].Speed *= scale
	}
	for i := range cfg.Chasers {
		cfg.Chasers[i].Speed *= scale
	}

	// Adjust session limits based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Session.Timer = 180
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Session.Timer = 90
		cfg.PowerUps.Duration /= 2
	}
}
