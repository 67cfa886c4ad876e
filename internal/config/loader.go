package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the config directories.
const FileName = "skyhop.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.skyhop/configs/skyhop.yaml -> ./configs/skyhop.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// normalize replaces values that would make the simulation divide by zero
// or draw nothing. Other values are taken as given.
func (c *GameConfig) normalize() {
	def := DefaultConfig()
	if c.Obstacles.SpawnInterval <= 0 {
		c.Obstacles.SpawnInterval = def.Obstacles.SpawnInterval
	}
	if len(c.Obstacles.Palette) == 0 {
		c.Obstacles.Palette = def.Obstacles.Palette
	}
	if c.Surface.CellWidth <= 0 {
		c.Surface.CellWidth = def.Surface.CellWidth
	}
	if c.Surface.CellHeight <= 0 {
		c.Surface.CellHeight = def.Surface.CellHeight
	}
	if c.Persistence.HighScoreKey == "" {
		c.Persistence.HighScoreKey = def.Persistence.HighScoreKey
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "", PresetEasy, PresetNormal, PresetHard, PresetClassic:
		return p, nil
	default:
		return "", fmt.Errorf("unknown preset %q (want easy, normal, hard or classic)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Obstacles.Gap *= 1.2
		cfg.Obstacles.Speed *= 0.8
	case PresetHard:
		cfg.Obstacles.Gap *= 0.8
		cfg.Obstacles.Speed *= 1.5
	case PresetClassic:
		classic := ClassicConfig()
		cfg.Obstacles.Gap = classic.Obstacles.Gap
		cfg.Obstacles.MinOffset = classic.Obstacles.MinOffset
		cfg.Obstacles.MaxOffset = classic.Obstacles.MaxOffset
		cfg.Obstacles.Speed = classic.Obstacles.Speed
	}
}
