package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/firebreak/internal/games/firebreak/core"
)

var flagScript string

var replayCmd = &cobra.Command{
	Use:   "replay [moves...]",
	Short: "Apply a move script to a board",
	Long: `Apply moves to a starting board without the UI and print the result.

Moves are given as arguments, or one per line in --file (blank lines and
lines starting with # are ignored). Each move is one of:
  r,c>r,c   swap two neighbouring tiles
  skip      pass the turn (the fire still spreads)
  undo      take back the last move

The board comes from --seed/--width/--height or --level, as in 'firebreak board'.

Examples:
  firebreak replay --seed 42 "0,1>0,2" "3,3>3,4" skip
  firebreak replay --level 01 --file solution.txt -v`,
	Run: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&flagScript, "file", "f", "", "Read moves from a file")
	replayCmd.Flags().StringVar(&flagLevel, "level", "", "Start from a level's board")
}

func runReplay(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "replay"})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	moves := args
	if flagScript != "" {
		fromFile, err := readScript(flagScript)
		if err != nil {
			exitf("%v", err)
		}
		moves = append(moves, fromFile...)
	}

	b, label, err := startingBoard()
	if err != nil {
		exitf("%v", err)
	}

	cfg, err := runtimeConfig()
	if err != nil {
		exitf("%v", err)
	}
	e := engine.NewEngineFromBoard(b, engine.Options{HistoryLimit: cfg.HistoryLimit})
	logger.Debug("start", "board", label, "houses", e.Score())

	if err := applyMoves(e, moves, logger); err != nil {
		exitf("%v", err)
	}

	st := e.Stats()
	fmt.Println(label)
	fmt.Println()
	fmt.Println(e.Board().String())
	fmt.Println()
	fmt.Printf("Houses: %d/%d  Swaps: %d  Turns: %d  Fires: %d  Contained: %t\n",
		st.Houses, st.InitialHouses, st.SwapsMade, st.Turns, st.Fires, engine.FireContained(e.Board()))
}

// applyMoves plays a move script on the engine. A swap the engine refuses
// stops the replay with an error naming the move.
func applyMoves(e *engine.Engine, moves []string, logger *log.Logger) error {
	for i, s := range moves {
		if strings.EqualFold(strings.TrimSpace(s), "undo") {
			if !e.Undo() {
				logger.Warn("nothing to undo", "n", i+1)
			}
			logger.Debug("undo", "n", i+1, "houses", e.Score())
			continue
		}

		m, err := engine.ParseMove(s)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if m.IsSwap() {
			if err := e.Swap(m.From, m.To); err != nil {
				return fmt.Errorf("move %d: %w", i+1, err)
			}
		} else {
			e.Skip()
		}

		st := e.Stats()
		logger.Debug("move", "n", i+1, "move", m.String(), "houses", st.Houses, "fires", st.Fires)
	}
	return nil
}

// readScript reads one move per line, skipping blanks and # comments.
func readScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open move script: %w", err)
	}
	defer f.Close()

	var moves []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		moves = append(moves, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read move script: %w", err)
	}
	return moves, nil
}
