package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTileGrid loads Tile Grid configuration.
// Search order: customPath -> ~/.arcade/configs/tilegrid.yaml -> ./configs/tilegrid.yaml -> embedded default
func LoadTileGrid(customPath string) (TileGridConfig, error) {
	return load("tilegrid", customPath, defaultTileGridYAML, DefaultTileGridConfig)
}

// LoadCollector loads Coin Collector configuration.
// Search order: customPath -> ~/.arcade/configs/collector.yaml -> ./configs/collector.yaml -> embedded default
func LoadCollector(customPath string) (CollectorConfig, error) {
	return load("collector", customPath, defaultCollectorYAML, DefaultCollectorConfig)
}

// LoadUltimate loads Collector Ultimate configuration.
// Search order: customPath -> ~/.arcade/configs/ultimate.yaml -> ./configs/ultimate.yaml -> embedded default
func LoadUltimate(customPath string) (UltimateConfig, error) {
	return load("ultimate", customPath, defaultUltimateYAML, DefaultUltimateConfig)
}

// load resolves a game's config. Files are decoded over the hardcoded
// defaults, so a file only needs the keys it overrides.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := decodeFile(userCfgPath, defaults); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := decodeFile(filepath.Join("configs", filename), defaults); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads an optional config file. Missing or malformed files are skipped.
func decodeFile[T any](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults(), false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
