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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, maxTile int }{
		{100, 64}, {50, 32}, {200, 128},
	} {
		if _, err := store.SaveScore("classic", s.score, s.maxTile); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different variant
	if _, err := store.SaveScore("big", 500, 256); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].MaxTile != 128 {
		t.Errorf("Expected top max tile 128, got %d", scores[0].MaxTile)
	}

	bigScores, err := store.TopScores("big", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(bigScores) != 1 {
		t.Errorf("Expected 1 big score, got %d", len(bigScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("classic", (i+1)*100, 2)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveScore("classic", 100, 32)
	store.SaveScore("classic", 300, 128)
	store.SaveScore("classic", 200, 64)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 100, 32)
	store.SaveScore("classic", 200, 64)
	store.SaveScore("big", 300, 128)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classicScores, _ := store.TopScores("classic", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	bigScores, _ := store.TopScores("big", 10)
	if len(bigScores) != 1 {
		t.Errorf("Big scores should not be affected by clearing classic")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("classic", 100, 32)
	store.SaveScore("classic", 300, 128)

	stats, err = store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
}

func TestStoreSaveLoadGame(t *testing.T) {
	store := openTestStore(t)

	// No saved game yet
	_, ok, err := store.LoadGame("classic")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if ok {
		t.Error("Expected no saved game")
	}

	snapshot := []byte(`{"gridSize":4,"tiles":[{"row":0,"col":0,"value":2}],"score":0}`)
	if err := store.SaveGame("classic", snapshot); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	loaded, ok, err := store.LoadGame("classic")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected a saved game")
	}
	if string(loaded) != string(snapshot) {
		t.Errorf("LoadGame() = %s, want %s", loaded, snapshot)
	}
}

func TestStoreSaveGameReplaces(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame("classic", []byte("first"))
	store.SaveGame("classic", []byte("second"))

	loaded, ok, err := store.LoadGame("classic")
	if err != nil || !ok {
		t.Fatalf("LoadGame() = ok=%v, err=%v", ok, err)
	}
	if string(loaded) != "second" {
		t.Errorf("Expected latest snapshot, got %s", loaded)
	}
}

func TestStoreDeleteGame(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame("classic", []byte("snapshot"))
	store.SaveGame("big", []byte("other"))

	if err := store.DeleteGame("classic"); err != nil {
		t.Fatalf("DeleteGame() failed: %v", err)
	}

	if _, ok, _ := store.LoadGame("classic"); ok {
		t.Error("Expected classic saved game to be gone")
	}
	if _, ok, _ := store.LoadGame("big"); !ok {
		t.Error("Big saved game should not be affected")
	}

	// Deleting a missing save is a no-op
	if err := store.DeleteGame("classic"); err != nil {
		t.Errorf("DeleteGame() on missing save failed: %v", err)
	}
}
