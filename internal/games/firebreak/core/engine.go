package core

import "fmt"

// Options configures an Engine.
type Options struct {
	// HistoryLimit caps the undo stack depth. 0 means unbounded.
	HistoryLimit int
	// Completion is the end-of-game predicate behind IsComplete.
	// When nil the engine never reports completion.
	Completion CompletionRule
}

// Stats are derived from the live board and the move log.
type Stats struct {
	SwapsMade     int // Swaps still in effect (undo takes them back)
	Turns         int // Swaps and skips still on the undo stack
	InitialHouses int // Houses on the board at reset
	Houses        int // Houses standing now; this is the score
	Fires         int
	Forest        int // Trees and pines
}

// Engine owns one game session: the live board, the selection, the undo
// stack and the swap counter. It is not safe for concurrent use; run one
// engine per session.
type Engine struct {
	board         *Board
	sel           Selection
	history       *History
	swaps         int
	initialHouses int
	seed          int64
	opts          Options
}

// NewEngine creates an engine with a generated w×h board for seed.
func NewEngine(w, h int, seed int64, opts Options) (*Engine, error) {
	e := &Engine{opts: opts, history: NewHistory(opts.HistoryLimit)}
	if err := e.Reset(w, h, seed); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineFromBoard creates an engine that starts from a copy of b.
func NewEngineFromBoard(b *Board, opts Options) *Engine {
	e := &Engine{opts: opts, history: NewHistory(opts.HistoryLimit)}
	e.Load(b)
	return e
}

// Reset regenerates the board from seed and clears the selection, the
// undo stack and the swap counter. On invalid dimensions the engine is
// left as it was.
func (e *Engine) Reset(w, h int, seed int64) error {
	b, err := Generate(w, h, NewRNG(seed))
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	e.start(b)
	e.seed = seed
	return nil
}

// Load restarts the session on a copy of b.
func (e *Engine) Load(b *Board) {
	e.start(b.Clone())
	e.seed = 0
}

func (e *Engine) start(b *Board) {
	e.board = b
	e.sel = NoneSelected()
	e.history.Clear()
	e.swaps = 0
	e.initialHouses = b.Count(TileHouse)
}

// HandleSelect feeds a select event through the selection rules. Positions
// off the board are ignored. Returns what the event did.
func (e *Engine) HandleSelect(p Pos) Intent {
	next, intent := Transition(e.sel, p, e.board)
	if intent == IntentSwap {
		from, _ := e.sel.Pos()
		e.applySwap(from, p)
	}
	e.sel = next
	return intent
}

// Swap swaps two adjacent tiles of different types, records the move and
// lets the fire spread. It is the checked entry point for callers that
// bypass HandleSelect; a pair the selection rules would refuse returns
// ErrInvalidArgument and leaves the game untouched. The selection is not
// changed.
func (e *Engine) Swap(a, b Pos) error {
	if !e.board.InBounds(a) || !e.board.InBounds(b) {
		return fmt.Errorf("%w: swap %s>%s out of bounds", ErrInvalidArgument, a, b)
	}
	if !Adjacent(a, b) {
		return fmt.Errorf("%w: swap %s>%s not adjacent", ErrInvalidArgument, a, b)
	}
	if e.board.At(a).SameType(e.board.At(b)) {
		return fmt.Errorf("%w: swap %s>%s same tile type %s", ErrInvalidArgument, a, b, e.board.TypeAt(a))
	}
	e.applySwap(a, b)
	return nil
}

// applySwap assumes the swap preconditions hold.
func (e *Engine) applySwap(a, b Pos) {
	e.history.Push(e.board, SwapMove(a, b))

	ta, tb := e.board.At(a), e.board.At(b)
	if ta.Type.Extinguishing() || tb.Type.Extinguishing() {
		// Water soaks its partner: both cells end up as water.
		e.board.Set(a, NewTile(TileWater))
		e.board.Set(b, NewTile(TileWater))
	} else {
		e.board.Set(a, tb)
		e.board.Set(b, ta)
	}
	e.swaps++

	e.Advance()
}

// Skip passes the turn. The board is unchanged except that fire spreads.
func (e *Engine) Skip() {
	e.history.Push(e.board, SkipMove())
	e.Advance()
}

// Undo restores the board to the snapshot taken before the last move and
// takes back its swap, if it was one. Returns false when there is nothing
// to undo. The selection is left alone.
func (e *Engine) Undo() bool {
	entry, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.board = entry.Board
	if entry.Move.IsSwap() {
		e.swaps--
	}
	return true
}

// Advance runs one fire-spread tick without recording a move.
func (e *Engine) Advance() {
	e.board = Spread(e.board)
}

// Score returns the number of houses still standing.
func (e *Engine) Score() int {
	return e.board.Count(TileHouse)
}

// IsComplete evaluates the configured completion rule.
func (e *Engine) IsComplete() bool {
	if e.opts.Completion == nil {
		return false
	}
	return e.opts.Completion(e.board)
}

// SetCompletion replaces the completion rule.
func (e *Engine) SetCompletion(rule CompletionRule) {
	e.opts.Completion = rule
}

// Board returns a copy of the live board. Changes to it do not reach the
// engine.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Tile returns the live tile at p.
func (e *Engine) Tile(p Pos) Tile {
	return e.board.At(p)
}

// Width returns the board width.
func (e *Engine) Width() int {
	return e.board.w
}

// Height returns the board height.
func (e *Engine) Height() int {
	return e.board.h
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	return e.sel
}

// ClearSelection drops the current selection.
func (e *Engine) ClearSelection() {
	e.sel = NoneSelected()
}

// SwapsMade returns the number of swaps still in effect.
func (e *Engine) SwapsMade() int {
	return e.swaps
}

// InitialHouses returns the house count captured at reset.
func (e *Engine) InitialHouses() int {
	return e.initialHouses
}

// Seed returns the seed of the current board, or 0 for a loaded layout.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Moves returns the moves still on the undo stack, oldest first.
func (e *Engine) Moves() []Move {
	return e.history.Moves()
}

// CanUndo reports whether Undo would do anything.
func (e *Engine) CanUndo() bool {
	return e.history.Len() > 0
}

// Stats returns the derived game statistics.
func (e *Engine) Stats() Stats {
	counts := e.board.CountByType()
	return Stats{
		SwapsMade:     e.swaps,
		Turns:         e.history.Len(),
		InitialHouses: e.initialHouses,
		Houses:        counts[TileHouse],
		Fires:         counts[TileFire],
		Forest:        counts[TileTree] + counts[TilePine],
	}
}

// Animate advances tile animation frames. Only cosmetic state changes.
func (e *Engine) Animate() {
	e.board.Animate()
}
