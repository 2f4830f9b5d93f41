package core

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Pos is a board position. Row increases downward, Col to the right.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns the move-notation form "row,col".
func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Add returns the position offset by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Adjacent reports whether two positions are orthogonal neighbours:
// exactly one coordinate differs, and by exactly one.
func Adjacent(a, b Pos) bool {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// orthogonal lists the four neighbour offsets (up, right, down, left).
var orthogonal = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Board is a fixed-size grid of tiles stored in row-major order:
// index = row*W + col. Every cell always holds a tile.
type Board struct {
	w     int
	h     int
	cells []Tile
}

// NewBoard creates a board filled with empty tiles.
// Returns ErrInvalidArgument for non-positive dimensions.
func NewBoard(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidArgument, w, h)
	}
	b := &Board{w: w, h: h, cells: make([]Tile, w*h)}
	for i := range b.cells {
		b.cells[i] = NewTile(TileEmpty)
	}
	return b, nil
}

// ParseBoard builds a board from text rows of tile chars (see TileInfo.Char).
// Whitespace inside a row is ignored; all rows must have the same width.
func ParseBoard(rows []string) (*Board, error) {
	parsed := make([][]TileType, 0, len(rows))
	for i, row := range rows {
		row = strings.Join(strings.Fields(row), "")
		if row == "" {
			continue
		}
		types := make([]TileType, 0, len(row))
		for _, r := range row {
			t, ok := TileTypeFromChar(r)
			if !ok {
				return nil, fmt.Errorf("%w: row %d: unknown tile %q", ErrInvalidArgument, i, r)
			}
			types = append(types, t)
		}
		if len(parsed) > 0 && len(types) != len(parsed[0]) {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d",
				ErrInvalidArgument, i, len(types), len(parsed[0]))
		}
		parsed = append(parsed, types)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidArgument)
	}

	b, err := NewBoard(len(parsed[0]), len(parsed))
	if err != nil {
		return nil, err
	}
	for r, types := range parsed {
		for c, t := range types {
			b.cells[r*b.w+c] = NewTile(t)
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed layouts in tests and built-ins.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// index converts a position to a flat array index.
func (b *Board) index(p Pos) int {
	return p.Row*b.w + p.Col
}

// InBounds returns true if the position is on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.h && p.Col >= 0 && p.Col < b.w
}

// At returns the tile at p. Out-of-bounds positions read as an empty tile.
func (b *Board) At(p Pos) Tile {
	if !b.InBounds(p) {
		return NewTile(TileEmpty)
	}
	return b.cells[b.index(p)]
}

// TypeAt returns the tile type at p.
func (b *Board) TypeAt(p Pos) TileType {
	return b.At(p).Type
}

// Set replaces the tile at p. Out-of-bounds positions are ignored.
func (b *Board) Set(p Pos, t Tile) {
	if b.InBounds(p) {
		b.cells[b.index(p)] = t
	}
}

// Neighbors returns the in-bounds orthogonal neighbours of p.
// Edge cells have fewer than four; there is no wraparound.
func (b *Board) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range orthogonal {
		n := p.Add(d[0], d[1])
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Positions returns all positions in row-major order.
func (b *Board) Positions() []Pos {
	out := make([]Pos, 0, b.w*b.h)
	for r := 0; r < b.h; r++ {
		for c := 0; c < b.w; c++ {
			out = append(out, P(r, c))
		}
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{w: b.w, h: b.h, cells: cells}
}

// Count returns the number of tiles of the given type.
func (b *Board) Count(t TileType) int {
	n := 0
	for _, cell := range b.cells {
		if cell.Type == t {
			n++
		}
	}
	return n
}

// CountByType returns tile counts for every type present.
func (b *Board) CountByType() map[TileType]int {
	counts := make(map[TileType]int)
	for _, cell := range b.cells {
		counts[cell.Type]++
	}
	return counts
}

// Equal reports whether two boards have the same size and the same tile
// type in every cell. Animation state is ignored.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.w != other.w || b.h != other.h {
		return false
	}
	for i, cell := range b.cells {
		if cell.Type != other.cells[i].Type {
			return false
		}
	}
	return true
}

// Hash returns a hash of the board's tile types for determinism checks.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%dx%d:", b.w, b.h)
	buf := make([]byte, len(b.cells))
	for i, cell := range b.cells {
		buf[i] = byte(cell.Type)
	}
	h.Write(buf)
	return h.Sum64()
}

// Animate advances the cosmetic frame of every tile by one tick.
func (b *Board) Animate() {
	for i := range b.cells {
		b.cells[i].Animate()
	}
}

// String renders the board as rows of tile chars, the format ParseBoard reads.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.w*b.h + b.h)
	for r := 0; r < b.h; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.w; c++ {
			sb.WriteRune(b.cells[r*b.w+c].Type.Info().Char)
		}
	}
	return sb.String()
}
