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

func mustSave(t *testing.T, store *Store, r Result) {
	t.Helper()
	if _, err := store.SaveResult(r); err != nil {
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
	mustSave(t, store, Result{GameID: "2048", Score: 1200, MaxTile: 128, Moves: 90})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("2048")
	if err != nil || high != 1200 {
		t.Errorf("HighScore after reopen = %d, %v; want 1200", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "2048", Score: 100, MaxTile: 16, Moves: 20})
	mustSave(t, store, Result{GameID: "2048", Score: 50, MaxTile: 8, Moves: 10})
	mustSave(t, store, Result{GameID: "2048", Score: 200, MaxTile: 32, Moves: 40})
	mustSave(t, store, Result{GameID: "2048_endless", Score: 500, MaxTile: 64, Moves: 70})

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].MaxTile != 32 || scores[0].Moves != 40 {
		t.Errorf("top result fields = %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	endless, err := store.TopScores("2048_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless result, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Result{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d results, %v", len(all), err)
	}
}

func TestStoreTiesOrderedByTile(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "2048", Score: 300, MaxTile: 64})
	mustSave(t, store, Result{GameID: "2048", Score: 300, MaxTile: 128})

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].MaxTile != 128 {
		t.Errorf("tie not broken by max tile: %+v", scores)
	}
}

func TestStoreHighScoreAndBestTile(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}
	tile, err := store.BestTile("2048")
	if err != nil || tile != 0 {
		t.Errorf("BestTile() on empty = %d, %v", tile, err)
	}

	mustSave(t, store, Result{GameID: "2048", Score: 100, MaxTile: 256})
	mustSave(t, store, Result{GameID: "2048", Score: 300, MaxTile: 64})
	mustSave(t, store, Result{GameID: "2048", Score: 200, MaxTile: 128})

	if high, _ = store.HighScore("2048"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if tile, _ = store.BestTile("2048"); tile != 256 {
		t.Errorf("Expected best tile of 256, got %d", tile)
	}
}

func TestStoreSaveRejectsMissingGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(Result{Score: 10}); err == nil {
		t.Error("expected error for empty game id")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "2048", Score: 100})
	mustSave(t, store, Result{GameID: "2048", Score: 200})
	mustSave(t, store, Result{GameID: "2048_endless", Score: 300})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaign, _ := store.TopScores("2048", 10)
	if len(campaign) != 0 {
		t.Errorf("Expected 0 campaign results after clear, got %d", len(campaign))
	}

	endless, _ := store.TopScores("2048_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless results should not be affected by clearing campaign")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() on empty failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	mustSave(t, store, Result{GameID: "2048", Score: 100, MaxTile: 64, Moves: 30})
	mustSave(t, store, Result{GameID: "2048", Score: 300, MaxTile: 256, Moves: 70})

	stats, err = store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestTile != 256 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 || stats.TotalMoves != 100 {
		t.Errorf("aggregates = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Result{GameID: "2048", Score: i})
	}

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 4 || recent[2].Score != 2 {
		t.Errorf("RecentResults(3) = %+v", recent)
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
