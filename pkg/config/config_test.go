package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/blinkdecode/pkg/pipeline"
	"github.com/user/blinkdecode/pkg/stages/classify"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.StartFrame != pipeline.NoBound || cfg.EndFrame != pipeline.NoBound {
		t.Errorf("frame bounds = (%d, %d), want unbounded", cfg.StartFrame, cfg.EndFrame)
	}
	if cfg.Region != (RegionConfig{X0: 0, Y0: 0, X1: 1, Y1: 1}) {
		t.Errorf("region = %+v, want full frame", cfg.Region)
	}
	if cfg.WindowRadius != classify.DefaultWindowRadius {
		t.Errorf("window radius = %d, want %d", cfg.WindowRadius, classify.DefaultWindowRadius)
	}
	if cfg.Debug {
		t.Error("debug enabled by default")
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("debug dir = %q, want ./debug", cfg.DebugDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`
start_frame: 30
end_frame: 300
region:
  x0: 0.4
  y0: 0.4
  x1: 0.6
  y1: 0.6
window_radius: 5
debug: true
log_level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.StartFrame != 30 || cfg.EndFrame != 300 {
		t.Errorf("frame bounds = (%d, %d), want (30, 300)", cfg.StartFrame, cfg.EndFrame)
	}
	if cfg.Region != (RegionConfig{X0: 0.4, Y0: 0.4, X1: 0.6, Y1: 0.6}) {
		t.Errorf("region = %+v, want (0.4,0.4)-(0.6,0.6)", cfg.Region)
	}
	if cfg.WindowRadius != 5 {
		t.Errorf("window radius = %d, want 5", cfg.WindowRadius)
	}
	if !cfg.Debug {
		t.Error("debug not loaded")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}

	// Unset keys keep their defaults.
	if cfg.DebugDir != "./debug" {
		t.Errorf("debug dir = %q, want default", cfg.DebugDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil {
		t.Error("Load() succeeded for a missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("region: ["), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load() succeeded for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty region", func(c *Config) { c.Region.X1 = c.Region.X0 }, true},
		{"inverted region", func(c *Config) { c.Region = RegionConfig{X0: 1, Y0: 0, X1: 0, Y1: 1} }, true},
		{"zero window radius", func(c *Config) { c.WindowRadius = 0 }, true},
		{"negative start frame", func(c *Config) { c.StartFrame = -2 }, true},
		{"negative end frame", func(c *Config) { c.EndFrame = -5 }, true},
		{"explicit bounds", func(c *Config) { c.StartFrame = 0; c.EndFrame = 100 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.StartFrame = 30
	cfg.EndFrame = 300
	cfg.Region = RegionConfig{X0: 0.4, Y0: 0.4, X1: 0.6, Y1: 0.6}
	cfg.WindowRadius = 5

	oc := cfg.ToOrchestratorConfig("signal.mp4")

	if oc.VideoPath != "signal.mp4" {
		t.Errorf("video path = %q, want signal.mp4", oc.VideoPath)
	}
	if oc.Range != (pipeline.FrameRange{Start: 30, End: 300}) {
		t.Errorf("range = %+v, want (30, 300)", oc.Range)
	}
	if oc.Region != (pipeline.Region{X0: 0.4, Y0: 0.4, X1: 0.6, Y1: 0.6}) {
		t.Errorf("region = %+v, want (0.4,0.4)-(0.6,0.6)", oc.Region)
	}
	if oc.WindowRadius != 5 {
		t.Errorf("window radius = %d, want 5", oc.WindowRadius)
	}
}
