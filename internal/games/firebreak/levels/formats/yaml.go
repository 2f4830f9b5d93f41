// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/firebreak/internal/games/firebreak/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
//
// A level is either procedural (seed plus size) or hand-made (rows of tile
// chars, see core.ParseBoard). When rows are present they win and size is
// taken from them.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Seed      int64             `yaml:"seed,omitempty"`
	Size      YAMLSize          `yaml:"size,omitempty"`
	Rows      []string          `yaml:"rows,omitempty"`
	MinHouses int               `yaml:"min_houses,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID        string
	Name      string
	Seed      int64
	Width     int
	Height    int
	Rows      []string
	MinHouses int // Houses that must survive for the level to count as cleared
	Metadata  map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("missing id")
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Seed:      yl.Seed,
		Width:     yl.Size.W,
		Height:    yl.Size.H,
		MinHouses: yl.MinHouses,
		Metadata:  yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	if level.MinHouses <= 0 {
		level.MinHouses = 1
	}

	if len(yl.Rows) > 0 {
		b, err := core.ParseBoard(yl.Rows)
		if err != nil {
			return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
		}
		level.Rows = yl.Rows
		level.Width = b.Width()
		level.Height = b.Height()
		return level, nil
	}

	if level.Width <= 0 || level.Height <= 0 {
		return Level{}, fmt.Errorf("level %s: needs rows or a positive size, got %dx%d",
			yl.ID, level.Width, level.Height)
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Board builds the starting board described by the level.
func (l *Level) Board() (*core.Board, error) {
	if len(l.Rows) > 0 {
		return core.ParseBoard(l.Rows)
	}
	return core.GenerateSeeded(l.Width, l.Height, l.Seed)
}
