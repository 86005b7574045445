package leaderboard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-picross/internal/errs"
)

func TestParseCanonicalizes(t *testing.T) {
	in := strings.Join([]string{
		"alice 300",
		"bob 900",
		"garbage",
		"carol notanumber",
		"dave 300",
		"erin 1200",
		"frank 50",
		"gina 700",
		"too many fields 3",
		"",
	}, "\n")

	b, err := Parse(strings.NewReader(in), 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{"erin", 1200},
		{"bob", 900},
		{"gina", 700},
		{"alice", 300},
		{"dave", 300},
	}
	if diff := cmp.Diff(want, b.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "none.txt"), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(b.Entries) != 0 || b.Size() != DefaultSize {
		t.Errorf("board = %+v size %d", b.Entries, b.Size())
	}
}

func TestSubmitRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "board.txt")

	scores := []struct {
		name  string
		score int
	}{
		{"a", 100}, {"b", 500}, {"c", 300}, {"d", 200}, {"e", 400}, {"f", 50},
	}
	for _, s := range scores {
		if _, _, err := Submit(path, 5, s.name, s.score); err != nil {
			t.Fatalf("Submit(%s): %v", s.name, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "b 500\ne 400\nc 300\nd 200\na 100\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}

	b, placed, err := Submit(path, 5, "g", 450)
	if err != nil || !placed {
		t.Fatalf("Submit(g) placed=%v err=%v", placed, err)
	}
	if b.Entries[1] != (Entry{"g", 450}) || len(b.Entries) != 5 {
		t.Errorf("entries = %+v", b.Entries)
	}

	_, placed, err = Submit(path, 5, "h", 10)
	if err != nil || placed {
		t.Errorf("low score placed=%v err=%v", placed, err)
	}
}

func TestTieKeepsEarlierEntry(t *testing.T) {
	b := New(2)
	b.Insert("first", 100)
	b.Insert("second", 100)
	placed, _ := b.Insert("third", 100)
	if placed {
		t.Error("a tie at the cut should not displace earlier entries")
	}
	if diff := cmp.Diff([]Entry{{"first", 100}, {"second", 100}}, b.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if b.Qualifies(100) || !b.Qualifies(101) {
		t.Error("Qualifies should require beating the last entry")
	}
}

func TestDuplicateEntryAtCutNotPlaced(t *testing.T) {
	b := New(2)
	b.Insert("amy", 500)
	b.Insert("bob", 300)

	placed, err := b.Insert("bob", 300)
	if err != nil {
		t.Fatal(err)
	}
	if placed {
		t.Error("repeat of the last entry reported as placed")
	}
	if diff := cmp.Diff([]Entry{{"amy", 500}, {"bob", 300}}, b.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRejectsBadNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	for _, name := range []string{"", "two words", "tab\there"} {
		_, _, err := Submit(path, 5, name, 100)
		if !errors.Is(err, errs.ErrLeaderboard) {
			t.Errorf("Submit(%q) = %v, want ErrLeaderboard", name, err)
		}
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rejected submit should not create the file")
	}
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := New(5).Save(filepath.Join(blocker, "board.txt"))
	if !errors.Is(err, errs.ErrLeaderboard) {
		t.Errorf("Save under a file = %v, want ErrLeaderboard", err)
	}
}
