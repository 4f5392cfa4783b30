package game

// Default grid and timing parameters.
const (
	DefaultWidth    = 40
	DefaultHeight   = 30
	DefaultTickRate = 10
)

// Config contains construction-time parameters for a Game.
// Grid size and tick rate are fixed for the lifetime of the game;
// there is no runtime reconfiguration.
type Config struct {
	Width    int   // Grid width in cells
	Height   int   // Grid height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means seed from the clock at construction
}

// DefaultConfig returns a Config with the standard 40x30 grid at 10 Hz.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		TickRate: DefaultTickRate,
	}
}

// withDefaults replaces zero or nonsensical values with defaults.
// The grid must be at least 2x2 so the initial snake and food can coexist.
func (c Config) withDefaults() Config {
	if c.Width < 2 {
		c.Width = DefaultWidth
	}
	if c.Height < 2 {
		c.Height = DefaultHeight
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}
