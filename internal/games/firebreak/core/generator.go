package core

// Generate builds a w×h board, drawing each tile type uniformly from the
// catalog in row-major order. The same seed and size always give the same
// board.
func Generate(w, h int, rng *RNG) (*Board, error) {
	b, err := NewBoard(w, h)
	if err != nil {
		return nil, err
	}

	types := AllTileTypes()
	for i := range b.cells {
		b.cells[i] = NewTile(types[rng.Intn(len(types))])
	}
	return b, nil
}

// GenerateSeeded is Generate with a fresh RNG scoped to this one board.
func GenerateSeeded(w, h int, seed int64) (*Board, error) {
	return Generate(w, h, NewRNG(seed))
}
