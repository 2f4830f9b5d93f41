package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firebreak/internal/games/firebreak"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level pack",
	Long: `Shows the levels of the built-in pack, or of --levels-dir when given.

Examples:
  firebreak levels
  firebreak levels --levels-dir ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	pack, err := firebreak.LoadLevels(flagLevelsDir)
	if err != nil {
		exitf("%v", err)
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range pack {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Board", "Target", "Name")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "----")

	for _, lvl := range pack {
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Printf("  %-*s  %-7s  %-6d  %s\n", maxIDLen, lvl.ID, size, lvl.MinHouses, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'firebreak play --level <id>' to play a level.")
}
