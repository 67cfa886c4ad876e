package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultYAML []byte

// DefaultPalette is the obstacle palette of the original game.
var DefaultPalette = []string{"#4CAF50", "#8BC34A", "#CDDC39", "#FFC107", "#FF9800"}

// DefaultConfig returns the default configuration, tuned for a terminal
// play area of roughly 640x384 pixels.
func DefaultConfig() GameConfig {
	return GameConfig{
		Entity: EntityConfig{
			X:       50,
			Width:   30,
			Height:  30,
			Gravity: 0.2,
			Lift:    -7,
		},
		Obstacles: ObstacleConfig{
			Width:         50,
			Gap:           150,
			Speed:         1.0,
			SpawnInterval: 120,
			MinOffset:     40,
			MaxOffset:     40,
			Palette:       append([]string(nil), DefaultPalette...),
		},
		Render: RenderConfig{
			HueRate:         0.1,
			HueOffset:       60,
			Saturation:      0.7,
			TopLightness:    0.7,
			BottomLightness: 0.85,
			EntityColor:     "#FFFF00",
			EyeColor:        "#000000",
			EyeRadius:       3,
			OutlineColor:    "#333333",
			OutlineWidth:    2,
			ScoreColor:      "#000000",
			ScoreX:          10,
			ScoreY:          30,
			ScoreLabel:      "Score: ",
		},
		Surface: SurfaceConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Persistence: PersistenceConfig{
			HighScoreKey: "flappyBirdHighScore",
		},
	}
}

// ClassicConfig returns the browser-sized parameters of the original game
// (gap 380 with 70px offsets), suited to tall play areas such as the window
// front end.
func ClassicConfig() GameConfig {
	cfg := DefaultConfig()
	cfg.Obstacles.Gap = 380
	cfg.Obstacles.MinOffset = 70
	cfg.Obstacles.MaxOffset = 70
	return cfg
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultYAML
}
