// Package core provides the game-state engine for Firebreak.
// This package is UI-agnostic and deterministic: it never reads input,
// renders, logs or touches the clock.
package core

import "strings"

// TileType identifies a tile kind. The numeric order is the catalog order
// the board generator indexes into, so it must never be reshuffled.
type TileType uint8

const (
	TileFire TileType = iota
	TileWater
	TileMountain
	TileTree
	TilePine
	TileHouse
	TileEmpty
	TileAsh
	TileTypeCount // Sentinel value for iteration
)

// Category groups tile types by how they take part in fire spread.
type Category uint8

const (
	CategoryNeutral Category = iota
	CategoryFlammable
	CategoryExtinguishing
	CategoryHazard
)

// String returns the string representation of a category.
func (c Category) String() string {
	switch c {
	case CategoryNeutral:
		return "neutral"
	case CategoryFlammable:
		return "flammable"
	case CategoryExtinguishing:
		return "extinguishing"
	case CategoryHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Tint is a display hint for front ends. It carries no gameplay meaning.
type Tint uint8

const (
	TintDefault Tint = iota
	TintRed
	TintOrange
	TintBlue
	TintGreen
	TintBrightGreen
	TintYellow
	TintGray
	TintWhite
)

// TileInfo is one catalog entry.
type TileInfo struct {
	Type     TileType
	Name     string
	Category Category
	Glyph    string // Emoji form
	Char     rune   // ASCII form, also used by text layouts and level files
	Tint     Tint
	// Frames lists the ASCII animation cycle. Single-frame tiles are static.
	Frames []rune
	// FrameTicks is how many animation ticks each frame is held for.
	FrameTicks int
}

// catalog is indexed by TileType.
var catalog = [TileTypeCount]TileInfo{
	TileFire:     {Type: TileFire, Name: "fire", Category: CategoryHazard, Glyph: "🔥", Char: 'F', Tint: TintRed, Frames: []rune{'^', '*', '^', 'w'}, FrameTicks: 8},
	TileWater:    {Type: TileWater, Name: "water", Category: CategoryExtinguishing, Glyph: "🌊", Char: 'W', Tint: TintBlue, Frames: []rune{'~', '-', '~', '='}, FrameTicks: 15},
	TileMountain: {Type: TileMountain, Name: "mountain", Category: CategoryNeutral, Glyph: "⛰️", Char: 'M', Tint: TintGray, Frames: []rune{'A'}, FrameTicks: 1},
	TileTree:     {Type: TileTree, Name: "tree", Category: CategoryFlammable, Glyph: "🌳", Char: 'T', Tint: TintGreen, Frames: []rune{'T'}, FrameTicks: 1},
	TilePine:     {Type: TilePine, Name: "pine", Category: CategoryFlammable, Glyph: "🌲", Char: 'P', Tint: TintBrightGreen, Frames: []rune{'Y'}, FrameTicks: 1},
	TileHouse:    {Type: TileHouse, Name: "house", Category: CategoryFlammable, Glyph: "🏠", Char: 'H', Tint: TintYellow, Frames: []rune{'H'}, FrameTicks: 1},
	TileEmpty:    {Type: TileEmpty, Name: "empty", Category: CategoryNeutral, Glyph: "  ", Char: '.', Tint: TintDefault, Frames: []rune{'.'}, FrameTicks: 1},
	TileAsh:      {Type: TileAsh, Name: "ash", Category: CategoryNeutral, Glyph: "🌫️", Char: 'A', Tint: TintWhite, Frames: []rune{','}, FrameTicks: 1},
}

// Info returns the catalog entry for a tile type.
// Unknown types resolve to the empty tile.
func (t TileType) Info() TileInfo {
	if t >= TileTypeCount {
		return catalog[TileEmpty]
	}
	return catalog[t]
}

// String returns the catalog name of the tile type.
func (t TileType) String() string {
	if t >= TileTypeCount {
		return "unknown"
	}
	return catalog[t].Name
}

// Category returns the gameplay category of the tile type.
func (t TileType) Category() Category {
	return t.Info().Category
}

// Flammable reports whether the tile catches fire from a burning neighbour.
func (t TileType) Flammable() bool {
	return t.Category() == CategoryFlammable
}

// Extinguishing reports whether the tile is water.
func (t TileType) Extinguishing() bool {
	return t.Category() == CategoryExtinguishing
}

// AllTileTypes returns every tile type in catalog order.
func AllTileTypes() []TileType {
	types := make([]TileType, TileTypeCount)
	for i := range types {
		types[i] = TileType(i)
	}
	return types
}

// ParseTileType resolves a catalog name or ASCII char (case-insensitive).
func ParseTileType(s string) (TileType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, info := range catalog {
		if s == info.Name || s == strings.ToLower(string(info.Char)) {
			return info.Type, true
		}
	}
	return TileEmpty, false
}

// TileTypeFromChar resolves the ASCII char used in text layouts.
func TileTypeFromChar(r rune) (TileType, bool) {
	return ParseTileType(string(r))
}

// Tile is a single board cell. Type fully determines gameplay; Frame and
// FrameCounter are cosmetic and only the animation code advances them.
type Tile struct {
	Type         TileType
	Frame        int
	FrameCounter int
}

// NewTile returns a fresh tile of the given type with default animation state.
func NewTile(t TileType) Tile {
	return Tile{Type: t}
}

// SameType reports whether two tiles have the same gameplay identity.
func (t Tile) SameType(other Tile) bool {
	return t.Type == other.Type
}

// Char returns the ASCII rune for the tile's current animation frame.
func (t Tile) Char() rune {
	info := t.Type.Info()
	if len(info.Frames) == 0 {
		return info.Char
	}
	return info.Frames[t.Frame%len(info.Frames)]
}

// Animate advances the tile's cosmetic frame by one animation tick.
// Gameplay state is never touched.
func (t *Tile) Animate() {
	info := t.Type.Info()
	if len(info.Frames) <= 1 {
		return
	}
	t.FrameCounter++
	if t.FrameCounter >= info.FrameTicks {
		t.FrameCounter = 0
		t.Frame = (t.Frame + 1) % len(info.Frames)
	}
}
