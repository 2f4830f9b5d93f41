// firebreak is a terminal tile puzzle: swap tiles to starve the fire and
// keep as many houses standing as you can.
//
// Usage:
//
//	firebreak play            - Play a generated board
//	firebreak play --campaign - Play through the level pack
//	firebreak levels          - List the level pack
//	firebreak board           - Print a generated board
//	firebreak replay <moves>  - Apply a move script to a board
//	firebreak menu            - Start menu to pick a mode interactively
//	firebreak serve           - Start SSH server for remote play
//	firebreak scores          - Show best results
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 30)
//	--seed <value>       - Set board seed for reproducible boards
//	--width, --height    - Board size
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Board preset: easy, normal, hard
//	--levels-dir <path>  - Load levels from a directory instead of the built-in pack
//	--db <path>          - Set database path (default: ~/.firebreak/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/firebreak/internal/config"
	"github.com/vovakirdan/firebreak/internal/core"
	// Import the game to register it
	_ "github.com/vovakirdan/firebreak/internal/games/firebreak"
	"github.com/vovakirdan/firebreak/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagWidth      int
	flagHeight     int
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "firebreak",
	Short: "Firebreak - hold the fire line in your terminal",
	Long: `Firebreak is a tile puzzle played in the terminal. Swap neighbouring
tiles to build firebreaks; after every move the fire spreads to every
flammable tile next to it. Your score is the number of houses left standing.

Available commands:
  play     - Play a generated board or the level campaign
  levels   - List the level pack
  board    - Print a generated board for a seed
  replay   - Apply a move script to a board and print the result
  menu     - Interactive mode and level picker
  serve    - Start SSH server for remote play
  scores   - View best results

Examples:
  firebreak play --seed 42
  firebreak play --campaign
  firebreak board --seed 42 --glyphs
  firebreak replay --seed 42 "0,1>0,2" skip
  firebreak serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if os.Getenv("NO_COLOR") != "" {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Board seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.firebreak/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in tiles (0 = use config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in tiles (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Board preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of level files (default: built-in pack)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the session config: config file, then difficulty
// preset, then flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	fc, err := config.LoadFirebreak(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParseDifficulty(flagDifficulty)
		if !ok {
			return core.RuntimeConfig{}, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
		config.ApplyFirebreakPreset(&fc, preset)
	}

	cfg := core.DefaultConfig()
	fc.ApplyTo(&cfg)

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagWidth > 0 {
		cfg.BoardW = flagWidth
	}
	if flagHeight > 0 {
		cfg.BoardH = flagHeight
	}
	cfg.Seed = flagSeed
	cfg.FixedSeed = flagSeed != 0
	cfg.LevelsDir = flagLevelsDir

	cfg.ScreenW, cfg.ScreenH = terminalSize()
	return cfg, nil
}

// terminalSize returns the current terminal size, or 80x24 when stdout is
// not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
