package formats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseYAML(t *testing.T) {
	data := []byte("id: t\nname: Tee\nrows:\n  - \"###\"\n  - \".1.\"\n  - \".x.\"\n")
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]bool{
		{true, true, true},
		{false, true, false},
		{false, true, false},
	}
	if diff := cmp.Diff(want, lvl.Pattern); diff != "" {
		t.Errorf("pattern mismatch (-want +got):\n%s", diff)
	}
	if lvl.ID != "t" || lvl.Name != "Tee" || lvl.Size != 3 {
		t.Errorf("level = %+v", lvl)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"no rows":    "id: empty\n",
		"not square": "rows:\n  - \"##\"\n  - \"#\"\n",
		"bad yaml":   "rows: [\n",
	}
	for name, in := range tests {
		if _, err := ParseYAML([]byte(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseText(t *testing.T) {
	lvl, err := ParseText([]byte("2\n10\n01\n"), "diag")
	if err != nil {
		t.Fatal(err)
	}
	if lvl.ID != "diag" || lvl.Size != 2 {
		t.Errorf("level = %+v", lvl)
	}
	if _, err := ParseText([]byte("0\n"), "zero"); err == nil {
		t.Error("expected error for empty grid")
	}
	if _, err := ParseText([]byte("x\n"), "junk"); err == nil {
		t.Error("expected error for bad size")
	}
}
