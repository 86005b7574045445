package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-picross/internal/errs"
	"github.com/vovakirdan/tui-picross/internal/levels"
	"github.com/vovakirdan/tui-picross/internal/picross"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuiltinLevels(t *testing.T) {
	ids, err := levels.Builtin().ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	want := []string{"creeper", "heart", "potion", "spider", "sword", "torch"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("builtin ids mismatch (-want +got):\n%s", diff)
	}

	all, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	for _, lvl := range all {
		if len(lvl.Pattern) != lvl.Size {
			t.Errorf("%s: %d rows, size %d", lvl.ID, len(lvl.Pattern), lvl.Size)
		}
		g := lvl.NewGrid(picross.RuleMistakes)
		if g.TotalCorrect() == 0 {
			t.Errorf("%s has an empty solution", lvl.ID)
		}
	}
}

func TestBuiltinHeart(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("heart")
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Name != "Heart" || lvl.Size != 5 {
		t.Errorf("heart = %q size %d", lvl.Name, lvl.Size)
	}
	if lvl.Metadata["difficulty"] != "easy" {
		t.Errorf("metadata = %v", lvl.Metadata)
	}
	h := picross.HintsFromPattern(lvl.Pattern)
	if diff := cmp.Diff([]int{1, 1}, h.Row(0)); diff != "" {
		t.Errorf("row 0 hint mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, h.Row(4)); diff != "" {
		t.Errorf("row 4 hint mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "id: bravo\nrows:\n  - \"#.\"\n  - \".#\"\n")
	writeFile(t, dir, "nested/a.txt", "2\n11\n00\n")
	writeFile(t, dir, "broken.yaml", "id: broken\nrows:\n  - \"###\"\n  - \"#\"\n")
	writeFile(t, dir, "notes.md", "# not a level\n")

	loader := levels.NewLoader(dir)
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("loaded %d levels, want 2", len(all))
	}
	if all[0].ID != "a" || all[1].ID != "bravo" {
		t.Errorf("ids = %q, %q", all[0].ID, all[1].ID)
	}
	if all[1].Name != "bravo" {
		t.Errorf("name should default to id, got %q", all[1].Name)
	}

	wantA := [][]bool{{true, true}, {false, false}}
	if diff := cmp.Diff(wantA, all[0].Pattern); diff != "" {
		t.Errorf("text pattern mismatch (-want +got):\n%s", diff)
	}
	if all[0].FilePath != filepath.Join(dir, "nested", "a.txt") && all[0].FilePath != dir+"/nested/a.txt" {
		t.Errorf("FilePath = %q", all[0].FilePath)
	}
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "rows:\n  - \"##\"\n")

	loader := levels.NewLoader(dir)
	if _, err := loader.LoadByID("missing"); !errors.Is(err, errs.ErrLevelLoad) {
		t.Errorf("LoadByID(missing) = %v, want ErrLevelLoad", err)
	}
	if _, err := loader.LoadFile("bad.yaml"); !errors.Is(err, errs.ErrLevelLoad) {
		t.Errorf("LoadFile(bad.yaml) = %v, want ErrLevelLoad", err)
	}
	if _, err := loader.LoadFile("nope.yaml"); !errors.Is(err, errs.ErrLevelLoad) {
		t.Errorf("LoadFile(nope.yaml) = %v, want ErrLevelLoad", err)
	}
	if _, err := levels.NewLoader(filepath.Join(dir, "absent")).LoadAll(); !errors.Is(err, errs.ErrLevelLoad) {
		t.Errorf("LoadAll on missing dir = %v, want ErrLevelLoad", err)
	}
}

func TestReadFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "cross.grid", "3\n010\n111\n010\n")
	lvl, err := levels.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.ID != "cross" || lvl.Size != 3 {
		t.Errorf("level = %q size %d", lvl.ID, lvl.Size)
	}
	if g := lvl.NewGrid(picross.RuleScore); g.TotalCorrect() != 5 {
		t.Errorf("TotalCorrect = %d, want 5", g.TotalCorrect())
	}
}
