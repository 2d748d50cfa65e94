package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled run",
	Long: `Replay a run from the journal without a terminal UI.

The run's seed and jump ticks are fed through a fresh session on a manual
clock. The command reports whether the replay reproduces the recorded
score, tick count and cause. The configuration in effect must match the
one the run was played with.

Examples:
  flappy replay 17
  flappy replay 17 --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	entry, err := store.Run(id)
	if err != nil {
		return err
	}

	snap, err := game.Verify(opts, entry.RunSummary)
	fmt.Printf("Run %d by %s (seed %d)\n", entry.ID, entry.Player, entry.Seed)
	fmt.Printf("  recorded: score %d, %d ticks, %s\n", entry.Score, entry.Ticks, entry.Cause)
	fmt.Printf("  replayed: score %d, %d ticks, %s\n", snap.Score, snap.Tick, snap.Cause)

	if errors.Is(err, game.ErrReplayDiverged) {
		return fmt.Errorf("run %d: %w", id, err)
	}
	if err != nil {
		return err
	}
	fmt.Println("  replay matches")
	return nil
}
