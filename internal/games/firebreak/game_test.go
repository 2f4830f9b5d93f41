package firebreak

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/firebreak/internal/core"
	"github.com/vovakirdan/firebreak/internal/games/firebreak/core"
	"github.com/vovakirdan/firebreak/internal/registry"
)

const seed42Board = "AMTPMPTH\nAMT..WT.\n.AT.FHMM\nHHWM..PF\nAP.WW.MW\nTMFFP.AH\nH.TFP.TM\nPTTWA.WP"

func testConfig(seed int64) platformcore.RuntimeConfig {
	cfg := platformcore.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// press steps the game once with the given actions held.
func press(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDGenerated, IDCampaign} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
	g, err := registry.Create(IDCampaign)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != IDCampaign {
		t.Errorf("ID() = %q, want %q", g.ID(), IDCampaign)
	}
}

func TestResetGeneratesSeededBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	snap := g.Snapshot()
	if snap.Board != seed42Board {
		t.Fatalf("board =\n%s\nwant\n%s", snap.Board, seed42Board)
	}
	if snap.Score != 6 || snap.Houses != 6 {
		t.Errorf("score = %d, houses = %d, want 6", snap.Score, snap.Houses)
	}
	if snap.State != StatePlaying {
		t.Errorf("state = %s, want playing", snap.State)
	}
	if g.State().GameOver {
		t.Error("fresh game should not be over")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(1337)
	cfg.EndWhenContained = false

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	script := [][]platformcore.Action{
		{platformcore.ActionSelect},
		{platformcore.ActionRight},
		{platformcore.ActionSelect},
		{platformcore.ActionDown},
		{platformcore.ActionSkip},
		{platformcore.ActionSelect},
		{platformcore.ActionDown},
		{platformcore.ActionSelect},
		{platformcore.ActionUndo},
		{platformcore.ActionAdvance},
	}
	for i := 0; i < 60; i++ {
		var actions []platformcore.Action
		if i%5 == 0 && i/5 < len(script) {
			actions = script[i/5]
		}
		press(g1, actions...)
		press(g2, actions...)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestCursorClamped(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	press(g, platformcore.ActionUp, platformcore.ActionLeft)
	if got := g.Snapshot().Cursor; got != core.P(0, 0) {
		t.Errorf("cursor = %s, want 0,0", got)
	}

	for i := 0; i < 20; i++ {
		press(g, platformcore.ActionDown, platformcore.ActionRight)
	}
	if got := g.Snapshot().Cursor; got != core.P(7, 7) {
		t.Errorf("cursor = %s, want 7,7", got)
	}
}

func TestKeyboardSwapAndUndo(t *testing.T) {
	cfg := testConfig(42)
	cfg.EndWhenContained = false
	g := New()
	g.Reset(cfg)

	press(g, platformcore.ActionSelect)
	if got := g.Snapshot().Selection; got != "0,0" {
		t.Fatalf("selection = %q, want 0,0", got)
	}

	press(g, platformcore.ActionRight)
	res := press(g, platformcore.ActionSelect)
	if !strings.Contains(res.Status, "swapped") {
		t.Errorf("status = %q, want a swap message", res.Status)
	}

	snap := g.Snapshot()
	if snap.Swaps != 1 || snap.Turns != 1 {
		t.Errorf("swaps = %d, turns = %d, want 1, 1", snap.Swaps, snap.Turns)
	}
	if !strings.HasPrefix(snap.Board, "MA") {
		t.Errorf("row 0 = %q, want it to start with MA", strings.SplitN(snap.Board, "\n", 2)[0])
	}

	press(g, platformcore.ActionUndo)
	snap = g.Snapshot()
	if snap.Board != seed42Board {
		t.Errorf("undo did not restore the board:\n%s", snap.Board)
	}
	if snap.Swaps != 0 {
		t.Errorf("swaps after undo = %d, want 0", snap.Swaps)
	}
}

func TestSameTypeSwapRejected(t *testing.T) {
	cfg := testConfig(42)
	cfg.EndWhenContained = false
	g := New()
	g.Reset(cfg)

	// (0,0) and (1,0) are both ash.
	press(g, platformcore.ActionSelect)
	press(g, platformcore.ActionDown)
	res := press(g, platformcore.ActionSelect)

	snap := g.Snapshot()
	if snap.Swaps != 0 || snap.Board != seed42Board {
		t.Error("same-type pair should not swap")
	}
	if snap.Selection != "0,0" {
		t.Errorf("selection = %q, want it kept at 0,0", snap.Selection)
	}
	if !strings.Contains(res.Status, "different") {
		t.Errorf("status = %q", res.Status)
	}
}

func TestMouseClickSelectsCell(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	in := platformcore.NewInputFrame()
	in.AddClick(g.board.X+3*g.cellW+1, g.board.Y+2)
	g.Step(in)

	snap := g.Snapshot()
	if snap.Cursor != core.P(2, 3) {
		t.Errorf("cursor = %s, want 2,3", snap.Cursor)
	}
	if snap.Selection != "2,3" {
		t.Errorf("selection = %q, want 2,3", snap.Selection)
	}

	// Clicks on the frame or HUD are ignored.
	in.Clear()
	in.AddClick(g.board.X-1, g.board.Y)
	in.AddClick(0, 0)
	g.Step(in)
	if got := g.Snapshot().Selection; got != "2,3" {
		t.Errorf("selection after stray clicks = %q, want 2,3", got)
	}
}

func TestSkipCountsTurnNotSwap(t *testing.T) {
	cfg := testConfig(42)
	cfg.EndWhenContained = false
	g := New()
	g.Reset(cfg)

	press(g, platformcore.ActionSkip)
	snap := g.Snapshot()
	if snap.Swaps != 0 || snap.Turns != 1 {
		t.Errorf("swaps = %d, turns = %d, want 0, 1", snap.Swaps, snap.Turns)
	}
	if snap.Board == seed42Board {
		t.Error("skip should let the fire spread")
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	press(g, platformcore.ActionPause)
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("game should be paused")
	}
	press(g, platformcore.ActionSelect)
	if got := g.Snapshot().Selection; got != "none" {
		t.Errorf("selection while paused = %q, want none", got)
	}

	press(g, platformcore.ActionPause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestTooSmallScreen(t *testing.T) {
	cfg := testConfig(42)
	cfg.ScreenW = 10
	cfg.ScreenH = 5

	g := New()
	g.Reset(cfg)
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("state = %s, want paused_small_window", g.Snapshot().State)
	}

	press(g, platformcore.ActionSelect)
	if got := g.Snapshot().Selection; got != "none" {
		t.Errorf("selection = %q, want none while too small", got)
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state after resize = %s, want playing", g.Snapshot().State)
	}
	if g.Snapshot().Board != seed42Board {
		t.Error("resize should keep the board")
	}
}

func TestGameEndsWhenContained(t *testing.T) {
	cfg := testConfig(0)
	cfg.Level = "t2"
	cfg.LevelsDir = "testdata/levels"

	g := New()
	g.Reset(cfg)
	if err := g.Err(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	press(g, platformcore.ActionAdvance)
	st := g.State()
	if !st.GameOver {
		t.Fatal("game should end once the fire is contained")
	}
	if st.Score != 1 {
		t.Errorf("score = %d, want 1", st.Score)
	}

	r := g.Report()
	if r.Level != "t2" || r.InitialHouses != 1 || r.Width != 3 || r.Height != 1 {
		t.Errorf("report = %+v", r)
	}
}

func TestCampaignAdvancesLevels(t *testing.T) {
	g := NewCampaign()
	g.Reset(testConfig(0))
	if err := g.Err(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	snap := g.Snapshot()
	if snap.Level != 1 || snap.Houses != 3 {
		t.Fatalf("level = %d, houses = %d, want 1, 3", snap.Level, snap.Houses)
	}

	// The first spread burns the ring of trees, the second the corner house.
	press(g, platformcore.ActionAdvance)
	if g.Snapshot().State != StatePlaying {
		t.Fatalf("state after one spread = %s, want playing", g.Snapshot().State)
	}
	press(g, platformcore.ActionAdvance)

	snap = g.Snapshot()
	if snap.State != StateLevelCleared {
		t.Fatalf("state = %s, want level_cleared", snap.State)
	}
	if snap.Score != 2 {
		t.Errorf("banked score = %d, want 2", snap.Score)
	}

	// Inputs other than select wait on the cleared screen.
	press(g, platformcore.ActionSkip)
	if g.Snapshot().State != StateLevelCleared {
		t.Error("skip should not leave the cleared screen")
	}

	press(g, platformcore.ActionSelect)
	snap = g.Snapshot()
	if snap.Level != 2 || snap.State != StatePlaying {
		t.Errorf("level = %d, state = %s, want 2, playing", snap.Level, snap.State)
	}
	if snap.Swaps != 0 || snap.Turns != 0 {
		t.Error("next level should start with a fresh history")
	}
}

func TestCampaignFailure(t *testing.T) {
	cfg := testConfig(0)
	cfg.LevelsDir = "testdata/levels"

	g := NewCampaign()
	g.Reset(cfg)

	press(g, platformcore.ActionAdvance)
	snap := g.Snapshot()
	if snap.State != StateGameOver {
		t.Fatalf("state = %s, want game_over", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, want 0", snap.Score)
	}
}

func TestCampaignWin(t *testing.T) {
	cfg := testConfig(0)
	cfg.LevelsDir = "testdata/levels"
	cfg.Level = "t2"

	g := NewCampaign()
	g.Reset(cfg)

	press(g, platformcore.ActionAdvance)
	snap := g.Snapshot()
	if snap.State != StateWin {
		t.Fatalf("state = %s, want win", snap.State)
	}
	if snap.Score != 1 || !g.State().GameOver {
		t.Errorf("score = %d, game over = %v", snap.Score, g.State().GameOver)
	}
}

func TestUnknownLevel(t *testing.T) {
	cfg := testConfig(0)
	cfg.Level = "no-such-level"

	g := New()
	g.Reset(cfg)
	if g.Err() == nil {
		t.Fatal("expected an error for an unknown level")
	}
	if !g.State().GameOver {
		t.Error("game with a load error should be over")
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start game") {
		t.Error("render should show the load error")
	}
}

func TestRenderBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	press(g, platformcore.ActionSelect)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Houses: 6/6") {
		t.Errorf("HUD = %q", screen.Row(0))
	}

	cell := screen.GetCell(g.board.X, g.board.Y)
	if cell.Rune != core.NewTile(core.TileAsh).Char() {
		t.Errorf("tile (0,0) rune = %q", cell.Rune)
	}
	if !cell.Attr.Has(platformcore.AttrReverse) || !cell.Attr.Has(platformcore.AttrUnderline) {
		t.Errorf("cursor cell attr = %v, want reverse and underline", cell.Attr)
	}
	if got := screen.Get(g.board.X-1, g.board.Y-1); got != '┌' {
		t.Errorf("frame corner = %q", got)
	}
}
