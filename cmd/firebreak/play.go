package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firebreak/internal/games/firebreak"
	"github.com/vovakirdan/firebreak/internal/platform/tui"
	"github.com/vovakirdan/firebreak/internal/registry"
	"github.com/vovakirdan/firebreak/internal/storage"
)

var (
	flagCampaign bool
	flagLevel    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start playing Firebreak.

Without flags a board is generated from --seed (or the clock). With
--campaign the level pack is played in order; clearing a level unlocks the
next one. --level starts from a specific level.

Controls:
  Arrows/WASD   - Move cursor
  Space/Enter   - Select tile, then a neighbour to swap
  Mouse click   - Select or swap the clicked tile
  Esc           - Clear selection
  S             - Skip a turn (fire still spreads)
  N             - Let the fire spread without moving
  U             - Undo
  P             - Pause
  R             - Restart
  B             - Back to menu (when paused or over)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 6x6 board, unlimited undo
  normal - 8x8 board, unlimited undo
  hard   - 12x10 board, 3 undos deep

Examples:
  firebreak play
  firebreak play --seed 42 --width 10 --height 10
  firebreak play --difficulty hard
  firebreak play --campaign
  firebreak play --level 03
  firebreak play --config ./my-firebreak.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagCampaign, "campaign", false, "Play through the level pack")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to play (see 'firebreak levels')")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := runtimeConfig()
	if err != nil {
		exitf("%v", err)
	}

	gameID := firebreak.IDGenerated
	if flagCampaign || flagLevel != "" {
		gameID = firebreak.IDCampaign
		cfg.Level = flagLevel
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		exitf("creating game: %v", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
