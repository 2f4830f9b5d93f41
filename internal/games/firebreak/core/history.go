package core

import (
	"fmt"
	"strconv"
	"strings"
)

// MoveKind distinguishes the two move records.
type MoveKind uint8

const (
	MoveSwap MoveKind = iota
	MoveSkip
)

// Move is one entry in the move log: a swap between two positions, or a
// skipped turn.
type Move struct {
	Kind MoveKind
	From Pos // Valid only for MoveSwap
	To   Pos // Valid only for MoveSwap
}

// SwapMove returns a swap record.
func SwapMove(from, to Pos) Move {
	return Move{Kind: MoveSwap, From: from, To: to}
}

// SkipMove returns a skip record.
func SkipMove() Move {
	return Move{Kind: MoveSkip}
}

// IsSwap reports whether the move is a swap.
func (m Move) IsSwap() bool {
	return m.Kind == MoveSwap
}

// String returns the move notation: "r,c>r,c" for a swap, "skip" otherwise.
func (m Move) String() string {
	if m.Kind == MoveSkip {
		return "skip"
	}
	return m.From.String() + ">" + m.To.String()
}

// ParseMove reads the notation produced by Move.String.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "skip") {
		return SkipMove(), nil
	}
	from, to, ok := strings.Cut(s, ">")
	if !ok {
		return Move{}, fmt.Errorf("move %q: expected \"r,c>r,c\" or \"skip\"", s)
	}
	a, err := parsePos(from)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	b, err := parsePos(to)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	return SwapMove(a, b), nil
}

// ParsePos reads a "row,col" position.
func ParsePos(s string) (Pos, error) {
	return parsePos(s)
}

func parsePos(s string) (Pos, error) {
	rs, cs, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Pos{}, fmt.Errorf("position %q: expected \"row,col\"", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: bad row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: bad col: %w", s, err)
	}
	return P(r, c), nil
}

// HistoryEntry pairs the board as it was just before a move with that move.
type HistoryEntry struct {
	Board *Board
	Move  Move
}

// History is the undo stack. Entries hold deep copies, so later changes to
// the live board never leak into them.
type History struct {
	entries []HistoryEntry
	limit   int
}

// NewHistory creates an undo stack. A limit <= 0 means unbounded; otherwise
// the oldest entries are dropped once the limit is reached.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a snapshot of b together with the move about to be applied.
func (h *History) Push(b *Board, m Move) {
	if h.limit > 0 && len(h.entries) >= h.limit {
		drop := len(h.entries) - h.limit + 1
		copy(h.entries, h.entries[drop:])
		h.entries = h.entries[:len(h.entries)-drop]
	}
	h.entries = append(h.entries, HistoryEntry{Board: b.Clone(), Move: m})
}

// Pop removes and returns the most recent entry.
// Returns false if the stack is empty.
func (h *History) Pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = HistoryEntry{}
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Limit returns the configured depth cap (0 = unbounded).
func (h *History) Limit() int {
	return h.limit
}

// Clear drops all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Moves returns the recorded moves, oldest first.
func (h *History) Moves() []Move {
	moves := make([]Move, len(h.entries))
	for i, e := range h.entries {
		moves[i] = e.Move
	}
	return moves
}
