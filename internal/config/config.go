package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devang-m/graphlay/internal/layout"
)

const (
	DefaultViewWidth     = 1280.0
	DefaultViewHeight    = 800.0
	DefaultDt            = 1.0
	DefaultFrameRate     = 60
	DefaultMaxFrames     = 1200
	DefaultAnchorSpacing = 320.0
	DefaultSeed          = 42
)

// Config gathers everything the CLI needs to drive a layout run: the
// force constants plus view, pacing, and anchor parameters.
type Config struct {
	ViewWidth     float64       `yaml:"view_width"`
	ViewHeight    float64       `yaml:"view_height"`
	Dt            float64       `yaml:"dt"`
	FrameRate     int           `yaml:"frame_rate"`
	MaxFrames     int           `yaml:"max_frames"`
	AnchorSpacing float64       `yaml:"anchor_spacing"`
	Seed          int64         `yaml:"seed"`
	Params        layout.Params `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		ViewWidth:     DefaultViewWidth,
		ViewHeight:    DefaultViewHeight,
		Dt:            DefaultDt,
		FrameRate:     DefaultFrameRate,
		MaxFrames:     DefaultMaxFrames,
		AnchorSpacing: DefaultAnchorSpacing,
		Seed:          DefaultSeed,
		Params:        layout.DefaultParams(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
