package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

// Presets are named parameter sets for common layout textures.
var Presets = map[string]*Config{
	"default": preset(func(c *Config) {}),
	"compact": preset(func(c *Config) {
		c.Params.NodeGap = 70
		c.Params.BoundsPadding = 24
		c.AnchorSpacing = 240
	}),
	"airy": preset(func(c *Config) {
		c.Params.NodeGap = 150
		c.Params.RepulsionK = 1800
		c.AnchorSpacing = 440
	}),
	"dense": preset(func(c *Config) {
		c.Params.NodeGap = 80
		c.Params.CollisionIters = 4
		c.Params.AnchorK = 0.035
		c.AnchorSpacing = 260
	}),
	"slow-cool": preset(func(c *Config) {
		c.Params.SpringK = 0.05
		c.Params.VelocityDamping = 0.8
		c.MaxFrames = 2400
	}),
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
