package picross

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestMain(m *testing.M) {
	SetLogger(log.New(io.Discard))
	os.Exit(m.Run())
}

func TestNewGridCounters(t *testing.T) {
	g := NewGrid(pat("110", "011", "000"), RuleMistakes)

	if g.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", g.Size())
	}
	if g.TotalCorrect() != 4 {
		t.Errorf("TotalCorrect() = %d, want 4", g.TotalCorrect())
	}
	if g.Completed() != 0 || g.CorrectCompleted() != 0 {
		t.Errorf("fresh grid has progress: completed=%d correct=%d", g.Completed(), g.CorrectCompleted())
	}
	if !g.Block(1, 0).IsCorrect() || g.Block(2, 0).IsCorrect() {
		t.Error("Block(x, y) must index column x of row y")
	}
}

func TestNewGridPadsAndTruncatesRows(t *testing.T) {
	g := NewGrid(pat("1", "1111", "01"), RuleScore)

	want := pat("100", "111", "010")
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if g.Block(x, y).IsCorrect() != want[y][x] {
				t.Errorf("block (%d,%d) correct = %v, want %v", x, y, !want[y][x], want[y][x])
			}
		}
	}
}

func TestToggleOutOfBoundsIsIgnored(t *testing.T) {
	g := NewGrid(pat("10", "01"), RuleMistakes)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		if _, ok := g.ToggleBlock(c[0], c[1]); ok {
			t.Errorf("ToggleBlock(%d,%d) reported ok", c[0], c[1])
		}
	}
	if g.Completed() != 0 || g.Mistakes() != 0 {
		t.Errorf("out-of-bounds toggles changed state: completed=%d mistakes=%d", g.Completed(), g.Mistakes())
	}
}

func TestScoreModeRoundTrip(t *testing.T) {
	g := NewGrid(pat("11", "00"), RuleScore)
	if g.Score() != InitialScore {
		t.Fatalf("initial score = %d, want %d", g.Score(), InitialScore)
	}

	g.ToggleBlock(0, 0)
	if g.Score() != 1200 {
		t.Fatalf("after marking correct cell score = %d, want 1200", g.Score())
	}

	// Clearing a correct mark costs more than marking it earned.
	g.ToggleBlock(0, 0)
	if g.Score() != 900 {
		t.Fatalf("after clearing correct cell score = %d, want 900", g.Score())
	}
	if g.Score()-InitialScore != -100 {
		t.Errorf("round trip net = %d, want -100", g.Score()-InitialScore)
	}
}

func TestScoreModeWrongMarks(t *testing.T) {
	g := NewGrid(pat("11", "00"), RuleScore)

	g.ToggleBlock(0, 1) // wrong mark
	if g.Score() != 900 {
		t.Errorf("wrong mark score = %d, want 900", g.Score())
	}

	g.ToggleBlock(0, 1) // clearing a wrong mark is free
	if g.Score() != 900 {
		t.Errorf("clearing wrong mark changed score to %d", g.Score())
	}
	if g.Mistakes() != 0 {
		t.Errorf("score mode counted %d mistakes", g.Mistakes())
	}
	if g.IsLost() {
		t.Error("score mode must never be lost")
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	g := NewGrid(pat("0000", "0000", "0000", "0000"), RuleScore)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.ToggleBlock(x, y)
		}
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want floor of 0", g.Score())
	}
}

func TestMistakesAreMonotonic(t *testing.T) {
	g := NewGrid(pat("10", "01"), RuleMistakes)

	g.ToggleBlock(1, 0) // wrong mark
	g.ToggleBlock(1, 0) // fixing it does not refund
	if g.Mistakes() != 1 {
		t.Fatalf("mistakes = %d, want 1", g.Mistakes())
	}

	g.ToggleBlock(0, 0) // correct mark, no mistake
	g.ToggleBlock(0, 0) // clearing a correct mark is a mistake
	if g.Mistakes() != 2 {
		t.Fatalf("mistakes = %d, want 2", g.Mistakes())
	}
	if g.IsLost() {
		t.Fatal("lost before reaching MaxMistakes")
	}

	g.ToggleBlock(0, 1)
	if !g.IsLost() {
		t.Fatal("expected loss at 3 mistakes")
	}

	prev := g.Mistakes()
	for i := 0; i < 6; i++ {
		g.ToggleBlock(i%2, 1)
		if !g.IsLost() {
			t.Fatal("IsLost() flipped back to false")
		}
		if g.Mistakes() < prev {
			t.Fatalf("mistakes decreased from %d to %d", prev, g.Mistakes())
		}
		prev = g.Mistakes()
	}
}

func TestIsSolvedRejectsWrongCells(t *testing.T) {
	g := NewGrid(pat("10", "00"), RuleMistakes)

	g.ToggleBlock(1, 1) // same count, wrong cell
	if g.IsSolved() {
		t.Fatal("solved with the right count but the wrong cell")
	}
	g.ToggleBlock(1, 1)
	g.ToggleBlock(0, 0)
	if !g.IsSolved() {
		t.Fatal("expected solved")
	}
}

func TestCountersMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 30; round++ {
		size := 1 + rng.Intn(8)
		rule := Rule(rng.Intn(2))
		g := NewRandomGrid(size, rule, rng.Float64(), rng)

		for step := 0; step < 200; step++ {
			// Occasionally aim outside the grid.
			x := rng.Intn(size+2) - 1
			y := rng.Intn(size+2) - 1
			g.ToggleBlock(x, y)

			completed, correctCompleted, exact := 0, 0, true
			for yy := 0; yy < size; yy++ {
				for xx := 0; xx < size; xx++ {
					b := g.Block(xx, yy)
					if b.IsCompleted() {
						completed++
						if b.IsCorrect() {
							correctCompleted++
						}
					}
					if b.IsCompleted() != b.IsCorrect() {
						exact = false
					}
				}
			}

			if g.Completed() != completed || g.CorrectCompleted() != correctCompleted {
				t.Fatalf("counters desynced: got %d/%d, brute force %d/%d",
					g.Completed(), g.CorrectCompleted(), completed, correctCompleted)
			}
			if g.CorrectCompleted() > g.Completed() || g.CorrectCompleted() > g.TotalCorrect() {
				t.Fatalf("counter invariant broken: %d/%d/%d",
					g.CorrectCompleted(), g.Completed(), g.TotalCorrect())
			}
			if g.IsSolved() != exact {
				t.Fatalf("IsSolved() = %v, brute force = %v", g.IsSolved(), exact)
			}
		}
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(pat("11", "00"), RuleScore)
	g.ToggleBlock(0, 0)
	g.ToggleBlock(0, 1)

	g.Reset()
	if g.Completed() != 0 || g.Score() != InitialScore {
		t.Errorf("Reset left completed=%d score=%d", g.Completed(), g.Score())
	}
	if g.TotalCorrect() != 2 {
		t.Errorf("Reset changed solution: total=%d", g.TotalCorrect())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.txt")
	if err := os.WriteFile(path, []byte("2\n11\n00\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g, ok := LoadGrid(path, RuleScore)
	if !ok {
		t.Fatal("LoadGrid failed")
	}
	if g.Size() != 2 || g.TotalCorrect() != 2 {
		t.Errorf("loaded size=%d total=%d, want 2/2", g.Size(), g.TotalCorrect())
	}
}

func TestLoadFileFailureLeavesGrid(t *testing.T) {
	g := NewGrid(pat("10", "01"), RuleMistakes)
	g.ToggleBlock(0, 0)

	if g.LoadFile(filepath.Join(t.TempDir(), "missing.txt")) {
		t.Fatal("LoadFile reported success for a missing file")
	}
	if g.Size() != 2 || g.Completed() != 1 {
		t.Errorf("failed load changed grid: size=%d completed=%d", g.Size(), g.Completed())
	}
}

func TestLoadFileOversizedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.txt")
	if err := os.WriteFile(path, []byte("9223372036854775807\n1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g := NewGrid(pat("10", "01"), RuleMistakes)
	if g.LoadFile(path) {
		t.Fatal("LoadFile accepted an oversized size header")
	}
	if g.Size() != 2 {
		t.Errorf("failed load changed size to %d", g.Size())
	}
}

func TestRegenerateKeepsSize(t *testing.T) {
	g := NewGrid(pat("000", "000", "000"), RuleMistakes)
	g.Regenerate(1, rand.New(rand.NewSource(1)))

	if g.Size() != 3 || g.TotalCorrect() != 9 {
		t.Errorf("Regenerate(1) size=%d total=%d, want 3/9", g.Size(), g.TotalCorrect())
	}
}
