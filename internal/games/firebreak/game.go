// Package firebreak provides the Firebreak tile puzzle for the platform.
// It adapts the pure engine in the core package to the registry.Game
// interface: cursor and mouse input, animation pacing, end-of-game rules
// and the level campaign live here.
package firebreak

import (
	"fmt"

	platformcore "github.com/vovakirdan/firebreak/internal/core"
	"github.com/vovakirdan/firebreak/internal/games/firebreak/core"
	"github.com/vovakirdan/firebreak/internal/games/firebreak/levels"
	"github.com/vovakirdan/firebreak/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeGenerated Mode = "generated"
	ModeCampaign  Mode = "campaign"
)

// Registry IDs for the two modes.
const (
	IDGenerated = "firebreak"
	IDCampaign  = "firebreak_levels"
)

// Game implements the Firebreak puzzle.
type Game struct {
	mode   Mode
	engine *core.Engine
	cfg    platformcore.RuntimeConfig
	seed   int64

	// Campaign state
	levels     []levels.Level
	levelIndex int
	banked     int // Houses saved on cleared levels

	cursor core.Pos
	status string

	tick         uint64
	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool
	tooSmall     bool
	loadErr      error

	// Layout
	screenW   int
	screenH   int
	cellW     int
	hudHeight int
	board     platformcore.Rect // Screen area holding the tiles
}

func init() {
	registry.Register(IDGenerated, func() registry.Game {
		return New()
	})
	registry.Register(IDCampaign, func() registry.Game {
		return NewCampaign()
	})
}

// New creates a game on generated boards.
func New() *Game {
	return &Game{mode: ModeGenerated, cellW: 2, hudHeight: 2}
}

// NewCampaign creates a game that plays through the level pack.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign, cellW: 2, hudHeight: 2}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeCampaign {
		return IDCampaign
	}
	return IDGenerated
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "Firebreak (Levels)"
	}
	return "Firebreak"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if cfg.BoardW <= 0 {
		cfg.BoardW = 8
	}
	if cfg.BoardH <= 0 {
		cfg.BoardH = 8
	}
	if cfg.FrameTicks <= 0 {
		cfg.FrameTicks = 1
	}
	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.banked = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.loadErr = nil
	g.levels = nil
	g.levelIndex = 0
	g.engine = nil
	g.status = ""

	if g.mode == ModeCampaign || cfg.Level != "" {
		if err := g.loadLevels(); err != nil {
			g.loadErr = err
			g.gameOver = true
			return
		}
		g.loadLevel()
		return
	}

	e, err := core.NewEngine(cfg.BoardW, cfg.BoardH, cfg.Seed, g.engineOptions())
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.engine = e
	g.seed = cfg.Seed
	g.cursor = core.P(0, 0)
	g.calculateLayout()
}

func (g *Game) engineOptions() core.Options {
	opts := core.Options{HistoryLimit: g.cfg.HistoryLimit}
	if g.cfg.EndWhenContained {
		opts.Completion = core.FireContained
	}
	return opts
}

// loadLevels fills g.levels. In campaign mode that is the whole pack,
// starting at cfg.Level if given; otherwise only the requested level.
func (g *Game) loadLevels() error {
	all, err := LoadLevels(g.cfg.LevelsDir)
	if err != nil {
		return err
	}

	start := 0
	if g.cfg.Level != "" {
		start = -1
		for i, lvl := range all {
			if lvl.ID == g.cfg.Level {
				start = i
				break
			}
		}
		if start < 0 {
			return fmt.Errorf("level not found: %s", g.cfg.Level)
		}
	}

	if g.mode == ModeCampaign {
		g.levels = all
		g.levelIndex = start
	} else {
		g.levels = []levels.Level{all[start]}
		g.levelIndex = 0
	}
	return nil
}

// loadLevel starts the level at levelIndex.
func (g *Game) loadLevel() {
	lvl := g.levels[g.levelIndex]
	b, err := lvl.Board()
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}

	g.engine = core.NewEngineFromBoard(b, g.engineOptions())
	g.seed = lvl.Seed
	g.levelCleared = false
	g.cursor = core.P(0, 0)
	g.status = lvl.Name
	g.calculateLayout()
}

// currentLevel returns the level being played, if any.
func (g *Game) currentLevel() *levels.Level {
	if g.levelIndex < 0 || g.levelIndex >= len(g.levels) {
		return nil
	}
	return &g.levels[g.levelIndex]
}

// calculateLayout centers the board below the HUD and checks that it fits.
func (g *Game) calculateLayout() {
	if g.engine == nil {
		return
	}

	boardW := g.engine.Width() * g.cellW
	boardH := g.engine.Height()

	// HUD on top, status and controls at the bottom, one border cell around.
	neededW := boardW + 4
	neededH := g.hudHeight + boardH + 2 + 2

	if g.screenW < neededW || g.screenH < neededH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	availH := g.screenH - g.hudHeight - 2
	top := g.hudHeight + (availH-(boardH+2))/2
	g.board = platformcore.NewRect((g.screenW-boardW)/2, top+1, boardW, boardH)
}

// Resize adapts the layout to a new screen size, keeping the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.cfg.ScreenW = width
	g.cfg.ScreenH = height
	g.calculateLayout()
}

// cellAt maps a screen cell to a board position.
func (g *Game) cellAt(x, y int) (core.Pos, bool) {
	if g.tooSmall || !g.board.Contains(x, y) {
		return core.Pos{}, false
	}
	return core.P(y-g.board.Y, (x-g.board.X)/g.cellW), true
}

// Step advances the game by one frame.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.engine != nil && !g.paused && g.tick%uint64(g.cfg.FrameTicks) == 0 {
		g.engine.Animate()
	}

	if g.gameOver || g.engine == nil || g.paused || g.tooSmall {
		return g.result()
	}

	if g.levelCleared {
		if input.Has(platformcore.ActionSelect) || len(input.Clicks) > 0 {
			g.levelIndex++
			g.loadLevel()
		}
		return g.result()
	}

	g.processInput(input)
	return g.result()
}

// processInput applies one frame of player input to the engine.
func (g *Game) processInput(input platformcore.InputFrame) {
	g.moveCursor(input)

	if input.Has(platformcore.ActionCancel) {
		g.engine.ClearSelection()
		g.status = "selection cleared"
	}
	if input.Has(platformcore.ActionSelect) {
		g.selectAt(g.cursor)
	}
	for _, c := range input.Clicks {
		if g.gameOver || g.levelCleared {
			break
		}
		if p, ok := g.cellAt(c.X, c.Y); ok {
			g.cursor = p
			g.selectAt(p)
		}
	}
	if g.gameOver || g.levelCleared {
		return
	}

	if input.Has(platformcore.ActionSkip) {
		g.engine.Skip()
		g.status = "turn skipped, the fire spreads"
		g.checkEnd()
	}
	if input.Has(platformcore.ActionUndo) && !g.gameOver {
		if g.engine.Undo() {
			g.status = "move undone"
		} else {
			g.status = "nothing to undo"
		}
	}
	if input.Has(platformcore.ActionAdvance) && !g.gameOver {
		g.engine.Advance()
		g.status = "the fire spreads"
		g.checkEnd()
	}
}

func (g *Game) moveCursor(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionUp) {
		g.cursor.Row--
	}
	if input.Has(platformcore.ActionDown) {
		g.cursor.Row++
	}
	if input.Has(platformcore.ActionLeft) {
		g.cursor.Col--
	}
	if input.Has(platformcore.ActionRight) {
		g.cursor.Col++
	}
	g.cursor.Row = platformcore.Clamp(g.cursor.Row, 0, g.engine.Height()-1)
	g.cursor.Col = platformcore.Clamp(g.cursor.Col, 0, g.engine.Width()-1)
}

// selectAt feeds a select event to the engine and reports what it did.
func (g *Game) selectAt(p core.Pos) {
	before := g.engine.Tile(p).Type
	switch g.engine.HandleSelect(p) {
	case core.IntentSelect, core.IntentRetarget:
		g.status = fmt.Sprintf("selected %s at %s", before, p)
	case core.IntentDeselect:
		g.status = "selection cleared"
	case core.IntentReject:
		g.status = fmt.Sprintf("both tiles are %s, pick a different one", before)
	case core.IntentSwap:
		g.status = fmt.Sprintf("swapped into %s, the fire spreads", p)
		g.checkEnd()
	}
}

// checkEnd finishes the game or level once the completion rule holds.
func (g *Game) checkEnd() {
	if !g.engine.IsComplete() {
		return
	}

	score := g.engine.Score()
	lvl := g.currentLevel()
	if g.mode != ModeCampaign || lvl == nil {
		g.gameOver = true
		g.status = fmt.Sprintf("fire contained with %d of %d houses standing", score, g.engine.InitialHouses())
		return
	}

	if !lvl.Cleared(score) {
		g.gameOver = true
		g.status = fmt.Sprintf("level failed: %d houses standing, %d needed", score, lvl.MinHouses)
		return
	}

	g.banked += score
	if g.levelIndex+1 >= len(g.levels) {
		g.won = true
		g.gameOver = true
		g.status = "all levels cleared"
		return
	}
	g.levelCleared = true
	g.status = fmt.Sprintf("%s cleared with %d houses", lvl.Name, score)
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{State: g.State(), Status: g.status}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// score is the standing house count, plus banked houses in campaign mode.
// Once a campaign level is decided its houses are either banked or lost.
func (g *Game) score() int {
	if g.engine == nil {
		return g.banked
	}
	if g.mode == ModeCampaign {
		if g.levelCleared || g.gameOver {
			return g.banked
		}
		return g.banked + g.engine.Score()
	}
	return g.engine.Score()
}

// Report describes the game for the scores database.
func (g *Game) Report() platformcore.Report {
	r := platformcore.Report{Score: g.score(), Seed: g.seed}
	if g.engine != nil {
		st := g.engine.Stats()
		r.InitialHouses = st.InitialHouses
		r.Swaps = st.SwapsMade
		r.Turns = st.Turns
		r.Width = g.engine.Width()
		r.Height = g.engine.Height()
	}
	if lvl := g.currentLevel(); lvl != nil {
		r.Level = lvl.ID
	}
	return r
}

// Err returns the error that kept the game from starting, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// LoadLevels returns the levels under dir sorted by ID, or the built-in
// pack when dir is empty.
func LoadLevels(dir string) ([]levels.Level, error) {
	loader := levels.NewEmbeddedLoader()
	if dir != "" {
		loader = levels.NewLoader(dir)
	}

	all, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no levels in %s", loader.Root)
	}
	return all, nil
}
