package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagScoresPlain  bool
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and run history",
	Long: `Display the stored high score and past runs.

In a terminal this opens an interactive table; tab switches between the
best and the most recent runs. --plain prints a static list instead.

Examples:
  skyhop scores
  skyhop scores --plain --recent --limit 20
  skyhop scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain list instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list with --plain")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the high score and run history")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	key := cfg.Persistence.HighScoreKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := resetScores(store, key); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		rt := terminalRuntime()
		if err := tui.RunScoreboard(store, key, rt.ScreenW, rt.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, key); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func resetScores(store *storage.Store, key string) error {
	if err := store.ClearHighScore(key); err != nil {
		return err
	}
	return store.ClearRuns(key)
}

func printScores(store *storage.Store, key string) error {
	high, err := store.HighScore(key)
	if err != nil {
		return err
	}

	var runs []storage.Run
	if flagScoresRecent {
		runs, err = store.RecentRuns(key, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(key, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Score: %d\n", high)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyhop play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-16s  %s\n", "Rank", "Score", "Frames", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-8s  %-16s  %s\n", "----", "-----", "------", "----", "---")

	for i, r := range runs {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-16s  %s\n", i+1, r.Score, r.Frames, dateStr, r.ID)
	}

	stats, err := store.Stats(key)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %.1f  Best: %d\n", stats.Runs, stats.AvgScore, stats.Best)
	}
	return nil
}
