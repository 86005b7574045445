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

func save(t *testing.T, s *Store, r GameResult) int64 {
	t.Helper()
	id, err := s.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

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

	save(t, store, GameResult{GameID: "picross_score", Mode: "Score", PuzzleID: "heart", Score: 1400, Won: true, Duration: 42})
	save(t, store, GameResult{GameID: "picross_score", Mode: "Time(Score)", PuzzleID: "heart", Score: 900})
	save(t, store, GameResult{GameID: "picross_score", Mode: "Score", PuzzleID: "sword", Score: 2100, Won: true})
	save(t, store, GameResult{GameID: "picross", Mode: "Mistakes", PuzzleID: "heart", Mistakes: 3})

	scores, err := store.TopScores("picross_score", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 2100 || scores[1].Score != 1400 || scores[2].Score != 900 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	got := scores[1]
	if got.Mode != "Score" || got.PuzzleID != "heart" || !got.Won || got.Duration != 42 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	others, err := store.TopScores("picross", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(others) != 1 || others[0].Mistakes != 3 || others[0].Won {
		t.Errorf("picross results = %+v", others)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		save(t, store, GameResult{GameID: "test", Mode: "Score", PuzzleID: "p", Score: (i + 1) * 100})
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
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("picross_score")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		save(t, store, GameResult{GameID: "picross_score", Mode: "Score", PuzzleID: "p", Score: s})
	}
	high, err = store.HighScore("picross_score")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStorePuzzleBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.PuzzleBest("heart", "Score")
	if err != nil || best != nil {
		t.Fatalf("PuzzleBest on empty store = %v, %v", best, err)
	}

	save(t, store, GameResult{GameID: "g", Mode: "Score", PuzzleID: "heart", Score: 1500, Won: false})
	save(t, store, GameResult{GameID: "g", Mode: "Score", PuzzleID: "heart", Score: 1200, Won: true, Duration: 90})
	save(t, store, GameResult{GameID: "g", Mode: "Score", PuzzleID: "heart", Score: 1200, Won: true, Duration: 30})
	save(t, store, GameResult{GameID: "g", Mode: "Torch(Score)", PuzzleID: "heart", Score: 5000, Won: true})

	best, err = store.PuzzleBest("heart", "Score")
	if err != nil {
		t.Fatal(err)
	}
	if best == nil || best.Score != 1200 || best.Duration != 30 {
		t.Errorf("PuzzleBest = %+v", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, GameResult{GameID: "picross", Mode: "Mistakes", PuzzleID: "p"})
	save(t, store, GameResult{GameID: "picross_score", Mode: "Score", PuzzleID: "p", Score: 300})

	if err := store.ClearScores("picross"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("picross", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("picross_score", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	save(t, store, GameResult{GameID: "picross", Mode: "Mistakes", PuzzleID: "a", Won: true})
	save(t, store, GameResult{GameID: "picross", Mode: "Mistakes", PuzzleID: "b"})
	save(t, store, GameResult{GameID: "picross", Mode: "Mistakes", PuzzleID: "c", Won: true})
	save(t, store, GameResult{GameID: "picross_score", Mode: "Score", PuzzleID: "a", Score: 800})

	stats, err := store.GetGameStats("picross")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 3 || stats.Wins != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if r := stats.WinRate(); r < 0.66 || r > 0.67 {
		t.Errorf("WinRate = %v", r)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all["picross_score"].HighScore != 800 {
		t.Errorf("all stats = %+v", all)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatal(err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() || empty.WinRate() != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)
	for _, p := range []string{"a", "b", "c"} {
		save(t, store, GameResult{GameID: "picross", Mode: "Mistakes", PuzzleID: p})
	}
	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].PuzzleID != "c" || recent[1].PuzzleID != "b" {
		t.Errorf("recent = %+v", recent)
	}
}
