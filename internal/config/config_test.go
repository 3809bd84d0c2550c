package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("game:\n  win_tile: 4096\nssh:\n  idle_timeout: 5m\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.WinTile != 4096 {
		t.Errorf("WinTile = %d, want 4096", cfg.Game.WinTile)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.SSH.IdleTimeout)
	}
	// Untouched fields keep defaults
	if cfg.Game.SpawnFourPercent != 10 || cfg.UI.TickRate != 30 || cfg.SSH.Address != ":23234" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() of missing custom file should fail")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".term2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  tick_rate: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.UI.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.UI.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"win tile not power of two", func(c *Config) { c.Game.WinTile = 1000 }},
		{"win tile too small", func(c *Config) { c.Game.WinTile = 2 }},
		{"win tile reachable by opening spawns", func(c *Config) { c.Game.WinTile = 4 }},
		{"four percent negative", func(c *Config) { c.Game.SpawnFourPercent = -1 }},
		{"four percent above 100", func(c *Config) { c.Game.SpawnFourPercent = 101 }},
		{"tick rate zero", func(c *Config) { c.UI.TickRate = 0 }},
		{"gesture distance zero", func(c *Config) { c.UI.Gesture.MinDistance = 0 }},
		{"gesture ratio below one", func(c *Config) { c.UI.Gesture.DominanceRatio = 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game:\n  win_tile: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() = %v, want ErrInvalidConfig", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.term2048/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".term2048", "scores.db"); got != want {
		t.Errorf("ExpandHome = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
