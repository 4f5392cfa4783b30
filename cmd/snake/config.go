package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-tui/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the same way 'snake play' does and print
the result as YAML. Useful as a starting point for ~/.snake/config.yaml.

With --default, print the built-in configuration file verbatim instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Speed.TickRate = flagFPS
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
