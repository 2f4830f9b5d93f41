package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/firebreak/internal/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Point HOME and the working directory somewhere empty so only the
	// embedded file is found.
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	cfg, err := LoadFirebreak("")
	if err != nil {
		t.Fatalf("LoadFirebreak failed: %v", err)
	}
	if cfg != DefaultFirebreakConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultFirebreakConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fb.yaml", `
board:
  width: 5
history:
  limit: 4
rules:
  end_when_contained: false
`)
	cfg, err := LoadFirebreak(path)
	if err != nil {
		t.Fatalf("LoadFirebreak failed: %v", err)
	}
	if cfg.Board.Width != 5 || cfg.History.Limit != 4 || cfg.Rules.EndWhenContained {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Board.Height != 8 || cfg.TickRate != 30 || cfg.Animation.FrameTicks != 1 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFirebreak(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := writeFile(t, dir, "bad.yaml", "board: [1, 2")
	if _, err := LoadFirebreak(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	chdir(t, dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, "configs", "firebreak.yaml", "tick_rate: 12\n")

	cfg, err := LoadFirebreak("")
	if err != nil {
		t.Fatalf("LoadFirebreak failed: %v", err)
	}
	if cfg.TickRate != 12 {
		t.Errorf("TickRate = %d, want 12 from ./configs", cfg.TickRate)
	}
}

func TestNormalized(t *testing.T) {
	cfg := FirebreakConfig{
		Board:     BoardConfig{Width: -1, Height: 0},
		History:   HistoryConfig{Limit: -5},
		Animation: AnimationConfig{FrameTicks: 0},
	}.normalized()

	def := DefaultFirebreakConfig()
	if cfg.Board != def.Board || cfg.History.Limit != 0 || cfg.Animation != def.Animation || cfg.TickRate != def.TickRate {
		t.Errorf("normalized = %+v", cfg)
	}
}

func TestApplyTo(t *testing.T) {
	cfg := DefaultFirebreakConfig()
	cfg.Board.Width = 10
	cfg.History.Limit = 2
	cfg.Animation.FrameTicks = 3

	rc := core.DefaultConfig()
	cfg.ApplyTo(&rc)

	if rc.BoardW != 10 || rc.BoardH != 8 || rc.HistoryLimit != 2 || rc.FrameTicks != 3 || !rc.EndWhenContained {
		t.Errorf("runtime config = %+v", rc)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		name      string
		preset    string
		w, h, lim int
	}{
		{"default is normal", "", 8, 8, 0},
		{"easy", "easy", 6, 6, 0},
		{"hard", "hard", 12, 10, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := ParseDifficulty(tc.preset)
			if !ok {
				t.Fatalf("ParseDifficulty(%q) failed", tc.preset)
			}
			cfg := DefaultFirebreakConfig()
			ApplyFirebreakPreset(&cfg, p)
			if cfg.Board.Width != tc.w || cfg.Board.Height != tc.h || cfg.History.Limit != tc.lim {
				t.Errorf("cfg = %+v", cfg)
			}
		})
	}

	if _, ok := ParseDifficulty("insane"); ok {
		t.Error("unknown preset accepted")
	}
}
