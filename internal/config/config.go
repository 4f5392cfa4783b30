// Package config provides YAML-based configuration loading for the snake
// game: grid dimensions, tick rate, and audio preferences.
package config

import (
	"github.com/vovakirdan/snake-tui/internal/game"
)

// Config is the full game configuration surface.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
	Audio AudioConfig `yaml:"audio"`
	Theme ThemeConfig `yaml:"theme"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the simulation timing.
type SpeedConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation steps per second
}

// AudioConfig defines audio preferences.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 - 1.0
}

// ThemeConfig defines the glyphs drawn for game entities. Only the first
// rune of each value is used.
type ThemeConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// Normalize clamps out-of-range values back to defaults so a hand-edited
// config file cannot produce an unplayable game.
func (c *Config) Normalize() {
	if c.Grid.Width < 2 {
		c.Grid.Width = game.DefaultWidth
	}
	if c.Grid.Height < 2 {
		c.Grid.Height = game.DefaultHeight
	}
	if c.Speed.TickRate <= 0 {
		c.Speed.TickRate = game.DefaultTickRate
	}
	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	}
	if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}
	if c.Theme.Head == "" {
		c.Theme.Head = "O"
	}
	if c.Theme.Body == "" {
		c.Theme.Body = "o"
	}
	if c.Theme.Food == "" {
		c.Theme.Food = "●"
	}
}

// GameConfig converts the file configuration into the game's
// construction-time parameters.
func (c Config) GameConfig(seed int64) game.Config {
	return game.Config{
		Width:    c.Grid.Width,
		Height:   c.Grid.Height,
		TickRate: c.Speed.TickRate,
		Seed:     seed,
	}
}
