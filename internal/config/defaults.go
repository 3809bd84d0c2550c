package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			WinTile:          2048,
			SpawnFourPercent: 10,
		},
		UI: UIConfig{
			TickRate: 30,
			Gesture: GestureConfig{
				MinDistance:    3,
				DominanceRatio: 2.0,
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.term2048/scores.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
