package game

import (
	"fmt"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Params holds the resolved, immutable game parameters.
type Params struct {
	EntityX      float64
	EntityWidth  float64
	EntityHeight float64
	Gravity      float64
	Lift         float64

	ObstacleWidth float64
	Gap           float64
	Speed         float64
	SpawnInterval int
	MinOffset     float64
	MaxOffset     float64
	Palette       []core.Color

	Render RenderParams
}

// RenderParams holds cosmetic drawing parameters.
type RenderParams struct {
	HueRate         float64
	HueOffset       float64
	Saturation      float64
	TopLightness    float64
	BottomLightness float64

	EntityColor  core.Color
	EyeColor     core.Color
	EyeRadius    float64
	OutlineColor core.Color
	OutlineWidth float64

	ScoreColor core.Color
	ScorePos   core.Point
	ScoreLabel string
}

// NewParams resolves a YAML configuration into game parameters.
func NewParams(cfg config.GameConfig) (Params, error) {
	palette := make([]core.Color, 0, len(cfg.Obstacles.Palette))
	for _, hex := range cfg.Obstacles.Palette {
		c, err := core.ParseHex(hex)
		if err != nil {
			return Params{}, fmt.Errorf("game: palette: %w", err)
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		return Params{}, fmt.Errorf("game: palette is empty")
	}

	r := cfg.Render
	rp := RenderParams{
		HueRate:         r.HueRate,
		HueOffset:       r.HueOffset,
		Saturation:      r.Saturation,
		TopLightness:    r.TopLightness,
		BottomLightness: r.BottomLightness,
		EyeRadius:       r.EyeRadius,
		OutlineWidth:    r.OutlineWidth,
		ScorePos:        core.Point{X: r.ScoreX, Y: r.ScoreY},
		ScoreLabel:      r.ScoreLabel,
	}
	for _, c := range []struct {
		hex string
		dst *core.Color
	}{
		{r.EntityColor, &rp.EntityColor},
		{r.EyeColor, &rp.EyeColor},
		{r.OutlineColor, &rp.OutlineColor},
		{r.ScoreColor, &rp.ScoreColor},
	} {
		parsed, err := core.ParseHex(c.hex)
		if err != nil {
			return Params{}, fmt.Errorf("game: render: %w", err)
		}
		*c.dst = parsed
	}

	return Params{
		EntityX:       cfg.Entity.X,
		EntityWidth:   cfg.Entity.Width,
		EntityHeight:  cfg.Entity.Height,
		Gravity:       cfg.Entity.Gravity,
		Lift:          cfg.Entity.Lift,
		ObstacleWidth: cfg.Obstacles.Width,
		Gap:           cfg.Obstacles.Gap,
		Speed:         cfg.Obstacles.Speed,
		SpawnInterval: max(cfg.Obstacles.SpawnInterval, 1),
		MinOffset:     cfg.Obstacles.MinOffset,
		MaxOffset:     cfg.Obstacles.MaxOffset,
		Palette:       palette,
		Render:        rp,
	}, nil
}

// DefaultParams returns parameters for the default configuration.
func DefaultParams() Params {
	p, err := NewParams(config.DefaultConfig())
	if err != nil {
		panic(err)
	}
	return p
}
