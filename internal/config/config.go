// Package config provides YAML-based game configuration loading and
// difficulty presets for skyhop.
package config

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	Entity      EntityConfig      `yaml:"entity"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Render      RenderConfig      `yaml:"render"`
	Surface     SurfaceConfig     `yaml:"surface"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// EntityConfig defines the player-controlled entity.
type EntityConfig struct {
	X       float64 `yaml:"x"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // Added to velocity every frame
	Lift    float64 `yaml:"lift"`    // Velocity set by a lift action (negative = up)
}

// ObstacleConfig defines obstacle pair geometry and timing.
type ObstacleConfig struct {
	Width         float64  `yaml:"width"`
	Gap           float64  `yaml:"gap"`
	Speed         float64  `yaml:"speed"`          // Pixels moved left per frame
	SpawnInterval int      `yaml:"spawn_interval"` // Frames between spawns
	MinOffset     float64  `yaml:"min_offset"`     // Minimum distance from the top to the gap
	MaxOffset     float64  `yaml:"max_offset"`     // Minimum distance from the bottom to the gap
	Palette       []string `yaml:"palette"`
}

// RenderConfig defines purely cosmetic drawing parameters.
type RenderConfig struct {
	HueRate         float64 `yaml:"hue_rate"`   // Degrees of hue per frame
	HueOffset       float64 `yaml:"hue_offset"` // Hue distance between gradient stops
	Saturation      float64 `yaml:"saturation"`
	TopLightness    float64 `yaml:"top_lightness"`
	BottomLightness float64 `yaml:"bottom_lightness"`
	EntityColor     string  `yaml:"entity_color"`
	EyeColor        string  `yaml:"eye_color"`
	EyeRadius       float64 `yaml:"eye_radius"`
	OutlineColor    string  `yaml:"outline_color"`
	OutlineWidth    float64 `yaml:"outline_width"`
	ScoreColor      string  `yaml:"score_color"`
	ScoreX          float64 `yaml:"score_x"`
	ScoreY          float64 `yaml:"score_y"`
	ScoreLabel      string  `yaml:"score_label"`
}

// SurfaceConfig maps terminal cells to play-area pixels.
type SurfaceConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// PersistenceConfig defines where the high score lives.
type PersistenceConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy    Preset = "easy"
	PresetNormal  Preset = "normal"
	PresetHard    Preset = "hard"
	PresetClassic Preset = "classic"
)
