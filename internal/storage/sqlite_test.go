package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, r Result) {
	t.Helper()
	if _, err := s.SaveResult(r); err != nil {
		t.Fatalf("SaveResult(%+v) failed: %v", r, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Result{GameID: "firebreak", Score: 4})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("firebreak")
	if err != nil || high != 4 {
		t.Errorf("HighScore() = %d, %v; want 4", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "firebreak", Score: 5, InitialHouses: 9, Swaps: 3, Turns: 4, Seed: 42, Width: 8, Height: 8})
	mustSave(t, store, Result{GameID: "firebreak", Score: 2, InitialHouses: 7, Swaps: 1, Seed: 43, Width: 8, Height: 8})
	mustSave(t, store, Result{GameID: "firebreak", Score: 7, InitialHouses: 7, Swaps: 6, Seed: 44, Width: 8, Height: 8})
	mustSave(t, store, Result{GameID: "firebreak_levels", Score: 3, Level: "02"})

	scores, err := store.TopScores("firebreak", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{7, 5, 2}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	second := scores[1]
	if second.InitialHouses != 9 || second.Swaps != 3 || second.Turns != 4 || second.Seed != 42 ||
		second.Width != 8 || second.Height != 8 || second.Level != "" {
		t.Errorf("round trip lost fields: %+v", second)
	}
	if second.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	levelScores, err := store.TopScores("firebreak_levels", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(levelScores) != 1 || levelScores[0].Level != "02" {
		t.Errorf("level scores = %+v", levelScores)
	}
}

func TestStoreTieBreaksOnSwaps(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "firebreak", Score: 5, Swaps: 9})
	mustSave(t, store, Result{GameID: "firebreak", Score: 5, Swaps: 2})

	scores, err := store.TopScores("firebreak", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Swaps != 2 {
		t.Errorf("fewer swaps should rank first, got %+v", scores[0])
	}
}

func TestStoreSaveRejectsEmptyGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(Result{Score: 1}); err == nil {
		t.Error("expected error for empty game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, Result{GameID: "test", Score: i})
	}

	scores, err := store.TopScores("test", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 19 {
		t.Errorf("Expected top score 19, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(scores))
	}
}

func TestStoreLevelScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "firebreak_levels", Score: 2, Level: "01"})
	mustSave(t, store, Result{GameID: "firebreak_levels", Score: 4, Level: "01"})
	mustSave(t, store, Result{GameID: "firebreak_levels", Score: 9, Level: "03"})

	scores, err := store.LevelScores("firebreak_levels", "01", 10)
	if err != nil {
		t.Fatalf("LevelScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 4 {
		t.Errorf("LevelScores = %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("empty")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	mustSave(t, store, Result{GameID: "test", Score: 3})
	mustSave(t, store, Result{GameID: "test", Score: 11})
	mustSave(t, store, Result{GameID: "test", Score: 6})

	high, err = store.HighScore("test")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 11 {
		t.Errorf("Expected high score 11, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "test", Score: 1})
	mustSave(t, store, Result{GameID: "test", Score: 2})
	mustSave(t, store, Result{GameID: "other", Score: 3})

	if err := store.ClearScores("test"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("test", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other game scores should be unaffected, got %d", len(otherScores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("firebreak")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.SavedRate != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	mustSave(t, store, Result{GameID: "firebreak", Score: 2, InitialHouses: 4, Swaps: 3})
	mustSave(t, store, Result{GameID: "firebreak", Score: 4, InitialHouses: 4, Swaps: 5})

	stats, err = store.GetGameStats("firebreak")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.TotalSwaps != 8 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.SavedRate != 0.75 {
		t.Errorf("SavedRate = %v, want 0.75", stats.SavedRate)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "firebreak", Score: 2, InitialHouses: 2})
	mustSave(t, store, Result{GameID: "firebreak_levels", Score: 1, InitialHouses: 4})

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(all))
	}
	if all["firebreak"].SavedRate != 1 || all["firebreak_levels"].SavedRate != 0.25 {
		t.Errorf("saved rates = %v, %v", all["firebreak"].SavedRate, all["firebreak_levels"].SavedRate)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
