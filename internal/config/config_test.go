package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.ViewWidth <= 0 || cfg.ViewHeight <= 0 {
		t.Error("view dimensions should be positive")
	}
	if cfg.Params.NodeGap <= 0 {
		t.Error("node gap should be positive")
	}
	if cfg.Params.CollisionIters < 1 {
		t.Error("expected at least one collision pass by default")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("compact")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.NodeGap != 70 {
		t.Errorf("expected node gap 70, got %f", cfg.Params.NodeGap)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["default"] || !seen["airy"] {
		t.Errorf("missing expected presets in %v", names)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")

	cfg := DefaultConfig()
	cfg.Params.NodeGap = 123
	cfg.Seed = 77
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Params.NodeGap != 123 {
		t.Errorf("node gap did not round-trip, got %f", loaded.Params.NodeGap)
	}
	if loaded.Seed != 77 {
		t.Errorf("seed did not round-trip, got %d", loaded.Seed)
	}
}
