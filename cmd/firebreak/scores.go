package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firebreak/internal/games/firebreak"
	"github.com/vovakirdan/firebreak/internal/registry"
	"github.com/vovakirdan/firebreak/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best results",
	Long: `Display the best results for a mode, ranked by houses saved.

Modes:
  firebreak         - Generated boards (default)
  firebreak_levels  - Level campaign

Examples:
  firebreak scores
  firebreak scores firebreak_levels --level 03
  firebreak scores --limit 20
  firebreak scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagLevel, "level", "", "Only show results for one level")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := firebreak.IDGenerated
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagLevel != "" && len(args) == 0 {
		gameID = firebreak.IDCampaign
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintf(os.Stderr, "Use %q or %q.\n", firebreak.IDGenerated, firebreak.IDCampaign)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitf("creating game: %v", err)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			exitf("clearing scores: %v", err)
		}
		fmt.Printf("Cleared all results for %s.\n", title)
		return
	}

	var scores []storage.ScoreEntry
	if flagLevel != "" {
		scores, err = store.LevelScores(gameID, flagLevel, flagScoresLimit)
		title += " - level " + flagLevel
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("Best Results - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'firebreak play' to set the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-5s  %-22s  %s\n", "Rank", "Houses", "Swaps", "Board", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-22s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		houses := fmt.Sprintf("%d/%d", entry.Score, entry.InitialHouses)
		board := fmt.Sprintf("%dx%d seed %d", entry.Width, entry.Height, entry.Seed)
		if entry.Level != "" {
			board = "level " + entry.Level
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7s  %-5d  %-22s  %s\n", i+1, houses, entry.Swaps, board, dateStr)
	}

	// Aggregates across every stored result of the mode
	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Best: %d  Average: %.1f  Houses saved: %.0f%%  Total swaps: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.SavedRate*100, stats.TotalSwaps)
	}
}
