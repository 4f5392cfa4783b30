package config

import (
	_ "embed"

	"github.com/vovakirdan/snake-tui/internal/game"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration: 40x30 grid at 10 ticks per
// second with audio on.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  game.DefaultWidth,
			Height: game.DefaultHeight,
		},
		Speed: SpeedConfig{
			TickRate: game.DefaultTickRate,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		Theme: ThemeConfig{
			Head: "O",
			Body: "o",
			Food: "●",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
