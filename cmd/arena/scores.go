package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top scores and round statistics for the specified mode.

Examples:
  arena scores classic
  arena scores duel --limit 20
  arena scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "Show recently played rounds",
	Long: `Display the most recently saved rounds across all modes.

Examples:
  arena rounds
  arena rounds --limit 5`,
	Args: cobra.NoArgs,
	Run:  runRounds,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
	roundsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, args []string) {
	modeID := args[0]

	mode, err := registry.Get(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'arena list' to see available modes.")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(modeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", mode.Title)
		return
	}

	scores, err := store.TopScores(modeID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", mode.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-14s  %s\n", "Rank", "Player", "Score", "Death", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-14s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-6d  %-14s  %s\n",
			i+1, entry.Player, entry.Score, entry.Cause, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.ModeStats(modeID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Rounds: %d   Average: %.1f   Apples: %d\n",
		stats.HighScore, stats.Rounds, stats.AvgScore, stats.Apples)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runRounds(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	rounds, err := store.RecentRounds(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	fmt.Printf("  %-36s  %-8s  %-6s  %-6s  %-8s  %s\n", "Round", "Mode", "Ticks", "Apples", "Interval", "Date")
	for _, r := range rounds {
		fmt.Printf("  %-36s  %-8s  %-6d  %-6d  %-8s  %s\n",
			r.RoundID, r.ModeID, r.Ticks, r.Apples, r.FinalInterval, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
