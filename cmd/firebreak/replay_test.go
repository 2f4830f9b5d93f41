package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	engine "github.com/vovakirdan/firebreak/internal/games/firebreak/core"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestApplyMoves(t *testing.T) {
	e := engine.NewEngineFromBoard(engine.MustParseBoard("FT.H"), engine.Options{})

	if err := applyMoves(e, []string{"0,1>0,2", "skip"}, quietLogger()); err != nil {
		t.Fatalf("applyMoves: %v", err)
	}
	if got := e.Board().String(); got != "F.TH" {
		t.Errorf("board = %q, want %q", got, "F.TH")
	}

	st := e.Stats()
	if st.SwapsMade != 1 || st.Turns != 2 || st.Houses != 1 {
		t.Errorf("stats = %+v, want 1 swap, 2 turns, 1 house", st)
	}

	if err := applyMoves(e, []string{"undo", "UNDO"}, quietLogger()); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := e.Board().String(); got != "FT.H" {
		t.Errorf("board after undo = %q, want %q", got, "FT.H")
	}
	if e.SwapsMade() != 0 {
		t.Errorf("swaps after undo = %d, want 0", e.SwapsMade())
	}
}

func TestApplyMovesRejects(t *testing.T) {
	tests := []struct {
		name    string
		move    string
		invalid bool // Wraps engine.ErrInvalidArgument
	}{
		{"not adjacent", "0,0>0,2", true},
		{"same cell", "0,0>0,0", true},
		{"out of bounds", "0,3>0,4", true},
		{"bad notation", "0,0-0,1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.NewEngineFromBoard(engine.MustParseBoard("FT.H"), engine.Options{})
			err := applyMoves(e, []string{"skip", tt.move}, quietLogger())
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, engine.ErrInvalidArgument) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidArgument) = %v, want %v (%v)", !tt.invalid, tt.invalid, err)
			}
			if e.Stats().Turns != 1 {
				t.Errorf("turns = %d, want 1 (only the skip applied)", e.Stats().Turns)
			}
		})
	}
}

func TestReadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.txt")
	script := "# opening\n0,1>0,2\n\n  skip  \nundo\n"
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := readScript(path)
	if err != nil {
		t.Fatalf("readScript: %v", err)
	}
	want := []string{"0,1>0,2", "skip", "undo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readScript = %q, want %q", got, want)
	}

	if _, err := readScript(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGlyphBoard(t *testing.T) {
	got := glyphBoard(engine.MustParseBoard("FH", "W."))
	want := "🔥🏠\n🌊  "
	if got != want {
		t.Errorf("glyphBoard = %q, want %q", got, want)
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":       "23234",
		"0.0.0.0:2222": "2222",
		"localhost":    "localhost",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, want %q", addr, got, want)
		}
	}
}
