package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("ultimate", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("ultimate", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("ultimate", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("collector", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for ultimate
	scores, err := store.TopScores("ultimate", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for collector
	collectorScores, err := store.TopScores("collector", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(collectorScores) != 1 {
		t.Errorf("Expected 1 collector score, got %d", len(collectorScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("ultimate")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("ultimate", 100)
	store.SaveScore("ultimate", 300)
	store.SaveScore("ultimate", 200)

	high, err = store.HighScore("ultimate")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("ultimate", 100)
	store.SaveScore("ultimate", 200)
	store.SaveScore("collector", 300)

	// Clear only ultimate scores
	err = store.ClearScores("ultimate")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Ultimate should be empty
	ultimateScores, _ := store.TopScores("ultimate", 10)
	if len(ultimateScores) != 0 {
		t.Errorf("Expected 0 ultimate scores after clear, got %d", len(ultimateScores))
	}

	// Collector should still have scores
	collectorScores, _ := store.TopScores("collector", 10)
	if len(collectorScores) != 1 {
		t.Errorf("Collector scores should not be affected by clearing ultimate")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveSessionFields(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveSession(Session{GameID: "ultimate", Player: "alice", Score: 70, Coins: 7, Ticks: 3600})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	scores, err := store.TopScores("ultimate", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.Player != "alice" || got.Score != 70 || got.Coins != 7 || got.Ticks != 3600 {
		t.Errorf("Unexpected entry: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStorePlayerHistory(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "ultimate", Player: "alice", Score: 10})
	store.SaveSession(Session{GameID: "collector", Player: "alice", Score: 20})
	store.SaveSession(Session{GameID: "ultimate", Player: "bob", Score: 30})

	history, err := store.PlayerHistory("alice", 10)
	if err != nil {
		t.Fatalf("PlayerHistory() failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 sessions for alice, got %d", len(history))
	}
	// Most recent first
	if history[0].GameID != "collector" {
		t.Errorf("Expected most recent session first, got %+v", history[0])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "ultimate", Score: 100, Coins: 10})
	store.SaveSession(Session{GameID: "ultimate", Score: 50, Coins: 5})
	store.SaveSession(Session{GameID: "collector", Score: 40, Coins: 4})

	stats, err := store.GameStats("ultimate")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 100 || stats.TotalScore != 150 || stats.TotalCoins != 15 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 75 {
		t.Errorf("Expected avg 75, got %v", stats.AvgScore)
	}

	empty, err := store.GameStats("tilegrid")
	if err != nil {
		t.Fatalf("GameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 games, got %d", len(all))
	}
	if all["collector"] == nil || all["collector"].HighScore != 40 {
		t.Errorf("Unexpected collector stats: %+v", all["collector"])
	}
}
