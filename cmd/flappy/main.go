// flappy is a gated-obstacle flyer played in the terminal.
//
// Usage:
//
//	flappy play              - Play locally
//	flappy serve             - Start SSH server for remote play
//	flappy runs              - List journaled runs
//	flappy replay <id>       - Re-simulate a journaled run
//	flappy config            - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML
//	--seed <value>      - RNG seed for the first run
//	--db <path>         - Run journal path (default: ~/.flappy/runs.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the gaps in your terminal",
	Long: `Flappy is a terminal game: your flyer falls under gravity, every
flap lifts it, and it must pass through the gaps of scrolling obstacles.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  runs     - List journaled runs
  replay   - Re-simulate a journaled run
  config   - Print the default configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy runs --table
  flappy replay 17`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the first run (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadOptions reads the game configuration selected by --config.
func loadOptions() (game.Options, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return game.Options{}, err
	}
	return game.OptionsFromConfig(cfg), nil
}

// newLogger creates a logger at the level selected by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
