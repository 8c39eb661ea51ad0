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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, round := range []struct {
		difficulty string
		score      int
		ticks      int
	}{
		{"Easy", 10, 600},
		{"Easy", 5, 300},
		{"Easy", 20, 1200},
		{"Hard", 3, 150},
	} {
		if _, err := store.SaveRound(round.difficulty, round.score, round.ticks); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.TopRounds("Easy", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Fatalf("Expected 3 easy rounds, got %d", len(rounds))
	}

	// Sorted by score descending
	if rounds[0].Score != 20 || rounds[1].Score != 10 || rounds[2].Score != 5 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
	if rounds[0].DurationTicks != 1200 {
		t.Errorf("Expected top round duration 1200, got %d", rounds[0].DurationTicks)
	}

	hardRounds, err := store.TopRounds("Hard", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(hardRounds) != 1 {
		t.Errorf("Expected 1 hard round, got %d", len(hardRounds))
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound("Medium", (i+1)*10, (i+1)*100)
	}

	rounds, err := store.TopRounds("Medium", 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}

	if rounds[0].Score != 50 || rounds[1].Score != 40 || rounds[2].Score != 30 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound("Easy", 1, 100)
	store.SaveRound("Hard", 2, 200)
	store.SaveRound("Medium", 3, 300)

	rounds, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}

	if len(rounds) != 2 {
		t.Fatalf("Expected 2 recent rounds, got %d", len(rounds))
	}

	// Most recent first
	if rounds[0].Difficulty != "Medium" || rounds[1].Difficulty != "Hard" {
		t.Errorf("Recent rounds not in insertion-reverse order: %v", rounds)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No rounds yet
	high, err := store.HighScore("Easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty difficulty, got %d", high)
	}

	store.SaveRound("Easy", 10, 100)
	store.SaveRound("Easy", 30, 300)
	store.SaveRound("Easy", 20, 200)

	high, err = store.HighScore("Easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound("Easy", 10, 100)
	store.SaveRound("Easy", 20, 200)
	store.SaveRound("Hard", 30, 300)

	if err := store.ClearRounds("Easy"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	easyRounds, _ := store.TopRounds("Easy", 10)
	if len(easyRounds) != 0 {
		t.Errorf("Expected 0 easy rounds after clear, got %d", len(easyRounds))
	}

	hardRounds, _ := store.TopRounds("Hard", 10)
	if len(hardRounds) != 1 {
		t.Errorf("Hard rounds should not be affected by clearing easy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound("Easy", 10, 500)
	store.SaveRound("Easy", 20, 1500)
	store.SaveRound("Hard", 5, 250)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	easy, ok := stats["Easy"]
	if !ok {
		t.Fatal("Missing easy stats")
	}
	if easy.RoundsCount != 2 {
		t.Errorf("Expected 2 easy rounds, got %d", easy.RoundsCount)
	}
	if easy.HighScore != 20 {
		t.Errorf("Expected easy high score 20, got %d", easy.HighScore)
	}
	if easy.AvgScore != 15 {
		t.Errorf("Expected easy average 15, got %f", easy.AvgScore)
	}
	if easy.LongestRun != 1500 {
		t.Errorf("Expected easy longest run 1500 ticks, got %d", easy.LongestRun)
	}

	if _, ok := stats["Medium"]; ok {
		t.Error("Medium stats should not exist without rounds")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
