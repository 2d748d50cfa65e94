package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsPlayer string
	flagRunsTable  bool
	flagRunsPrune  time.Duration
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Long: `Display the most recently finished runs, newest first.

The journal records how each run went so it can be replayed; it is not
ranked. Use the ID with 'flappy replay'.

Examples:
  flappy runs
  flappy runs --player alice --limit 50
  flappy runs --table
  flappy runs --prune 720h`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.Flags().StringVar(&flagRunsPlayer, "player", "", "Only show runs by this player")
	runsCmd.Flags().BoolVar(&flagRunsTable, "table", false, "Browse runs in an interactive table")
	runsCmd.Flags().DurationVar(&flagRunsPrune, "prune", 0, "Delete runs that ended longer ago than this, then list")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run journal: %w", err)
	}
	defer store.Close()

	if flagRunsPrune > 0 {
		n, pruneErr := store.DeleteRuns(time.Now().Add(-flagRunsPrune))
		if pruneErr != nil {
			return pruneErr
		}
		fmt.Printf("Pruned %d runs\n\n", n)
	}

	runs, err := store.RecentRuns(flagRunsPlayer, flagRunsLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	if flagRunsTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRunsTable(runs, width, height)
	}

	fmt.Println("Run journal")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to record the first run!")
		return nil
	}

	fmt.Printf("  %-6s  %-12s  %-6s  %-7s  %-6s  %-9s  %s\n", "ID", "Player", "Score", "Ticks", "Jumps", "Cause", "Ended")
	fmt.Printf("  %-6s  %-12s  %-6s  %-7s  %-6s  %-9s  %s\n", "--", "------", "-----", "-----", "-----", "-----", "-----")

	for _, r := range runs {
		fmt.Printf("  %-6d  %-12s  %-6d  %-7d  %-6d  %-9s  %s\n",
			r.ID, r.Player, r.Score, r.Ticks, len(r.Jumps), r.Cause, r.EndedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
