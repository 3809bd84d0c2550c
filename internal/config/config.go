// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/term2048/internal/engine"
)

// ErrInvalidConfig is wrapped by every Validate error.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GameConfig holds engine rules.
type GameConfig struct {
	WinTile          int `yaml:"win_tile"`
	SpawnFourPercent int `yaml:"spawn_four_percent"` // Chance a new tile is a 4
}

// UIConfig holds terminal host settings.
type UIConfig struct {
	TickRate int           `yaml:"tick_rate"`
	Gesture  GestureConfig `yaml:"gesture"`
}

// GestureConfig controls how a mouse drag becomes a move.
type GestureConfig struct {
	MinDistance    int     `yaml:"min_distance"`    // Cells along the dominant axis
	DominanceRatio float64 `yaml:"dominance_ratio"` // Dominant axis must be this many times the other
}

// StorageConfig holds the score database location.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig holds the SSH server settings.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Auto-generated when empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if c.Game.WinTile < engine.MinWinTile || !engine.IsPowerOfTwo(c.Game.WinTile) {
		return fmt.Errorf("%w: game.win_tile %d is not a power of two >= %d", ErrInvalidConfig, c.Game.WinTile, engine.MinWinTile)
	}
	if c.Game.SpawnFourPercent < 0 || c.Game.SpawnFourPercent > 100 {
		return fmt.Errorf("%w: game.spawn_four_percent %d outside [0, 100]", ErrInvalidConfig, c.Game.SpawnFourPercent)
	}
	if c.UI.TickRate <= 0 {
		return fmt.Errorf("%w: ui.tick_rate must be positive", ErrInvalidConfig)
	}
	if c.UI.Gesture.MinDistance < 1 {
		return fmt.Errorf("%w: ui.gesture.min_distance must be at least 1", ErrInvalidConfig)
	}
	if c.UI.Gesture.DominanceRatio < 1 {
		return fmt.Errorf("%w: ui.gesture.dominance_ratio must be at least 1", ErrInvalidConfig)
	}
	return nil
}
