package core

// Spread runs one fire-spread tick and returns the next board.
// Every flammable tile with at least one burning orthogonal neighbour
// becomes fresh fire; all other tiles carry over untouched, animation
// state included. Neighbours are always read from b, never from the
// board being built, so the result does not depend on scan order.
func Spread(b *Board) *Board {
	next := b.Clone()
	for r := 0; r < b.h; r++ {
		for c := 0; c < b.w; c++ {
			p := P(r, c)
			if !b.At(p).Type.Flammable() {
				continue
			}
			if burningNeighbor(b, p) {
				next.Set(p, NewTile(TileFire))
			}
		}
	}
	return next
}

// burningNeighbor reports whether any orthogonal neighbour of p is on fire.
func burningNeighbor(b *Board, p Pos) bool {
	for _, d := range orthogonal {
		n := p.Add(d[0], d[1])
		if b.InBounds(n) && b.cells[b.index(n)].Type == TileFire {
			return true
		}
	}
	return false
}

// Threatened returns the flammable positions that the next tick would ignite.
func Threatened(b *Board) []Pos {
	var out []Pos
	for _, p := range b.Positions() {
		if b.At(p).Type.Flammable() && burningNeighbor(b, p) {
			out = append(out, p)
		}
	}
	return out
}

// CompletionRule decides whether a game has reached an end state.
type CompletionRule func(b *Board) bool

// FireContained is complete once fire can no longer spread: no flammable
// tile touches a burning one.
func FireContained(b *Board) bool {
	return len(Threatened(b)) == 0
}

// AllHousesLost is complete once no house is left standing.
func AllHousesLost(b *Board) bool {
	return b.Count(TileHouse) == 0
}
