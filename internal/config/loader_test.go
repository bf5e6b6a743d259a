package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadZombies("")
	if err != nil {
		t.Fatalf("LoadZombies() failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultZombiesConfig()) {
		t.Errorf("embedded YAML and DefaultZombiesConfig() disagree:\n yaml: %+v\n code: %+v", cfg, DefaultZombiesConfig())
	}
}

func TestLoadZombiesCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  delay_ms: 1500\nphysics:\n  jump_impulse: -900\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadZombies(path)
	if err != nil {
		t.Fatalf("LoadZombies() failed: %v", err)
	}

	if cfg.Spawn.DelayMs != 1500 {
		t.Errorf("DelayMs = %v, expected 1500", cfg.Spawn.DelayMs)
	}
	if cfg.Physics.JumpImpulse != -900 {
		t.Errorf("JumpImpulse = %v, expected -900", cfg.Physics.JumpImpulse)
	}
	// Untouched keys keep defaults
	if cfg.Physics.PlayerGravity != 800 {
		t.Errorf("PlayerGravity = %v, expected default 800", cfg.Physics.PlayerGravity)
	}
	if cfg.Spawn.StarEvery != 10 {
		t.Errorf("StarEvery = %v, expected default 10", cfg.Spawn.StarEvery)
	}
}

func TestLoadZombiesErrors(t *testing.T) {
	if _, err := LoadZombies(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawn: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadZombies(path)
	if err == nil {
		t.Error("expected error for malformed config")
	}
	if cfg.Spawn.DelayMs != 2000 {
		t.Errorf("malformed config should return defaults, got delay %v", cfg.Spawn.DelayMs)
	}
}

func TestLoadZombiesUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".zombierun", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "zombies.yaml"), []byte("spawn:\n  star_every: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadZombies("")
	if err != nil {
		t.Fatalf("LoadZombies() failed: %v", err)
	}
	if cfg.Spawn.StarEvery != 5 {
		t.Errorf("StarEvery = %d, expected user override 5", cfg.Spawn.StarEvery)
	}
}

func TestApplyZombiesPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{"", false, 0},
		{DifficultyFixed, false, 0},
		{DifficultyEasy, true, 0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultZombiesConfig()
			ApplyZombiesPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}
