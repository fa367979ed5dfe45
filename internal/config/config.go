// Package config handles lightquery configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lightscene/internal/engine/lighting"
)

// ErrInvalidBounds is returned when a light slot count is negative.
var ErrInvalidBounds = errors.New("light slot bounds must not be negative")

// Config holds all settings.
type Config struct {
	Lighting LightingConfig `yaml:"lighting"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LightingConfig holds the shader light slot bounds per light category.
type LightingConfig struct {
	Point       lighting.SlotBounds `yaml:"point"`
	Directional lighting.SlotBounds `yaml:"directional"`
}

// SceneConfig holds the scene to load on startup.
type SceneConfig struct {
	Path string `yaml:"path"` // glTF file with KHR_lights_punctual lights
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Lighting: LightingConfig{
			Point:       lighting.Fixed(lighting.MaxPointLights),
			Directional: lighting.Fixed(lighting.MaxDirectionalLights),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be fixed up at use time.
// Min above Max is allowed: results are padded up to Min after truncation.
func (c *Config) Validate() error {
	bounds := map[string]lighting.SlotBounds{
		"point":       c.Lighting.Point,
		"directional": c.Lighting.Directional,
	}
	for name, b := range bounds {
		if b.Min < 0 || b.Max < 0 {
			return fmt.Errorf("lighting.%s %+v: %w", name, b, ErrInvalidBounds)
		}
	}
	return nil
}
