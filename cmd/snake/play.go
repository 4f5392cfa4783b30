package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-tui/internal/audio"
	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/game"
	"github.com/vovakirdan/snake-tui/internal/platform/tui"
)

var (
	flagMute bool
	flagGrid string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start a snake session in the current terminal.

The game runs at a fixed simulation rate regardless of terminal size.
Configuration is read from --config, ~/.snake/config.yaml or
./configs/snake.yaml, falling back to built-in defaults.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable all audio")
	playCmd.Flags().StringVar(&flagGrid, "grid", "", "Grid size override, e.g. 40x30")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "snake",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Speed.TickRate = flagFPS
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagGrid != "" {
		var w, h int
		if _, err := fmt.Sscanf(flagGrid, "%dx%d", &w, &h); err != nil || w < 2 || h < 2 {
			logger.Error("invalid --grid value, expected WxH with both at least 2", "grid", flagGrid)
			os.Exit(1)
		}
		cfg.Grid.Width = w
		cfg.Grid.Height = h
	}

	// Terminal size for the initial frame; resizes arrive as messages later.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	g := game.New(cfg.GameConfig(flagSeed))

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Init(); err != nil {
		// The game is fully playable without a sound device.
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer player.Close()

	if err := tui.Run(g, player, tui.NewTheme(cfg.Theme), width, height); err != nil {
		logger.Error("game exited with error", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", g.Score())
}
