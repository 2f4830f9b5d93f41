package firebreak

import "github.com/vovakirdan/firebreak/internal/games/firebreak/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string // "generated" or "campaign"
	Level     int    // 1-indexed, 0 on generated boards
	Seed      int64
	Score     int
	Houses    int
	Swaps     int
	Turns     int
	Cursor    core.Pos
	Selection string
	BoardHash uint64
	Board     string
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Seed:   g.seed,
		Score:  g.score(),
		Cursor: g.cursor,
		State:  state,
	}
	if len(g.levels) > 0 {
		snap.Level = g.levelIndex + 1
	}
	if g.engine != nil {
		st := g.engine.Stats()
		b := g.engine.Board()
		snap.Houses = st.Houses
		snap.Swaps = st.SwapsMade
		snap.Turns = st.Turns
		snap.Selection = g.engine.Selection().String()
		snap.BoardHash = b.Hash()
		snap.Board = b.String()
	}
	return snap
}
