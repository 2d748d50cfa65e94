package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.flappy/configs/flappy.yaml or pass it with --config to
change field size, physics, obstacles or the tick period.

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
