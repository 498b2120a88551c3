// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/user/blinkdecode/pkg/orchestrator"
	"github.com/user/blinkdecode/pkg/pipeline"
	"github.com/user/blinkdecode/pkg/stages/classify"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for blinkdecode.
type Config struct {
	// Sampling
	StartFrame int          `yaml:"start_frame"`
	EndFrame   int          `yaml:"end_frame"`
	Region     RegionConfig `yaml:"region"`

	// Classification
	WindowRadius int `yaml:"window_radius"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// RegionConfig is the sample rectangle in normalized coordinates.
type RegionConfig struct {
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
}

// Defaults returns a Config with default values: the whole frame, no
// frame-range bounds and the standard smoothing radius.
func Defaults() Config {
	return Config{
		StartFrame: pipeline.NoBound,
		EndFrame:   pipeline.NoBound,
		Region: RegionConfig{
			X0: 0,
			Y0: 0,
			X1: 1,
			Y1: 1,
		},
		WindowRadius: classify.DefaultWindowRadius,
		DebugDir:     "./debug",
		LogLevel:     "info",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c Config) Validate() error {
	if c.Region.X1 <= c.Region.X0 || c.Region.Y1 <= c.Region.Y0 {
		return fmt.Errorf("region must have positive area: (%g,%g)-(%g,%g)",
			c.Region.X0, c.Region.Y0, c.Region.X1, c.Region.Y1)
	}
	if c.WindowRadius <= 0 {
		return fmt.Errorf("window radius must be positive: %d", c.WindowRadius)
	}
	if c.StartFrame != pipeline.NoBound && c.StartFrame < 0 {
		return fmt.Errorf("start frame must be -1 or non-negative: %d", c.StartFrame)
	}
	if c.EndFrame != pipeline.NoBound && c.EndFrame < 0 {
		return fmt.Errorf("end frame must be -1 or non-negative: %d", c.EndFrame)
	}
	return nil
}

// ToOrchestratorConfig converts the configuration into the orchestrator's
// run configuration for the given video file.
func (c Config) ToOrchestratorConfig(videoPath string) orchestrator.Config {
	return orchestrator.Config{
		VideoPath: videoPath,
		Region: pipeline.Region{
			X0: c.Region.X0,
			Y0: c.Region.Y0,
			X1: c.Region.X1,
			Y1: c.Region.Y1,
		},
		Range: pipeline.FrameRange{
			Start: c.StartFrame,
			End:   c.EndFrame,
		},
		WindowRadius: c.WindowRadius,
	}
}
