// snake is a terminal snake game.
//
// Usage:
//
//	snake play            - Start the game
//	snake config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 10)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Snake is a terminal rendition of the classic arcade game: steer the
snake to the food, grow one cell per meal, and avoid the walls and
your own body.

Controls:
  Arrows/WASD - Steer
  Space       - Restart (after game over)
  M           - Toggle music
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --fps 15
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
