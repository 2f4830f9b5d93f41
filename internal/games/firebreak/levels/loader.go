// Package levels provides level loading functionality for Firebreak.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/firebreak/internal/games/firebreak/core"
	"github.com/vovakirdan/firebreak/internal/games/firebreak/levels/formats"
)

//go:embed pack/*.yaml
var packFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	Seed      int64
	Width     int
	Height    int
	Rows      []string
	MinHouses int
	Metadata  map[string]string
	FilePath  string
}

// Procedural reports whether the board comes from the generator.
func (l *Level) Procedural() bool {
	return len(l.Rows) == 0
}

// Board builds a fresh starting board for the level.
func (l *Level) Board() (*core.Board, error) {
	f := formats.Level{Rows: l.Rows, Width: l.Width, Height: l.Height, Seed: l.Seed}
	b, err := f.Board()
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return b, nil
}

// Cleared reports whether a finished board with the given score clears the level.
func (l *Level) Cleared(score int) bool {
	return score >= l.MinHouses
}

// Loader handles loading levels from a file system tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader that reads level files under a directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewEmbeddedLoader creates a loader over the built-in level pack.
func NewEmbeddedLoader() *Loader {
	sub, err := fs.Sub(packFS, "pack")
	if err != nil {
		// pack/ is compiled in; Sub only fails on an invalid name.
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file by its path inside the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{
		ID:        parsed.ID,
		Name:      parsed.Name,
		Seed:      parsed.Seed,
		Width:     parsed.Width,
		Height:    parsed.Height,
		Rows:      parsed.Rows,
		MinHouses: parsed.MinHouses,
		Metadata:  parsed.Metadata,
		FilePath:  filepath.Join(l.Root, filepath.FromSlash(p)),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Builtin returns the embedded level pack.
func Builtin() []Level {
	levels, err := NewEmbeddedLoader().LoadAll()
	if err != nil {
		return nil
	}
	return levels
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
