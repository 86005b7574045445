// Package leaderboard keeps the best scores in a plain-text file, one
// "<name> <score>" entry per line, best first.
package leaderboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-picross/internal/errs"
)

// DefaultSize is the number of entries kept.
const DefaultSize = 5

// Entry is one leaderboard line.
type Entry struct {
	Name  string
	Score int
}

// Board is a sorted, truncated list of entries.
type Board struct {
	Entries []Entry
	size    int
}

// New returns an empty board keeping size entries (DefaultSize if size <= 0).
func New(size int) *Board {
	if size <= 0 {
		size = DefaultSize
	}
	return &Board{size: size}
}

// Size returns the number of entries the board keeps.
func (b *Board) Size() int { return b.size }

// Parse reads entries from r. Malformed lines are skipped.
func Parse(r io.Reader, size int) (*Board, error) {
	b := New(size)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		b.Entries = append(b.Entries, Entry{Name: fields[0], Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.KindLeaderboard, err, "reading leaderboard")
	}
	b.canonicalize()
	return b, nil
}

// Load reads the board at path. A missing file yields an empty board.
func Load(path string, size int) (*Board, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(size), nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.KindLeaderboard, err, "opening %s", path)
	}
	defer f.Close()
	return Parse(f, size)
}

// Insert adds an entry and keeps the board sorted and truncated.
// It reports whether the entry made the board.
func (b *Board) Insert(name string, score int) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	placed := b.Qualifies(score)
	b.Entries = append(b.Entries, Entry{Name: name, Score: score})
	b.canonicalize()
	return placed, nil
}

// Qualifies reports whether score would make the board. Ties with the
// last entry do not, since the earlier entry keeps its place.
func (b *Board) Qualifies(score int) bool {
	if len(b.Entries) < b.size {
		return true
	}
	return score > b.Entries[len(b.Entries)-1].Score
}

// Write writes the board in file format.
func (b *Board) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range b.Entries {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.Name, e.Score); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes the board to path, creating parent directories.
func (b *Board) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(errs.KindLeaderboard, err, "creating %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.KindLeaderboard, err, "creating %s", path)
	}
	if err := b.Write(f); err != nil {
		f.Close()
		return errs.Wrap(errs.KindLeaderboard, err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return errs.Wrap(errs.KindLeaderboard, err, "closing %s", path)
	}
	return nil
}

// Submit loads the board at path, inserts the entry and saves it back.
func Submit(path string, size int, name string, score int) (*Board, bool, error) {
	if err := ValidateName(name); err != nil {
		return nil, false, err
	}
	b, err := Load(path, size)
	if err != nil {
		return nil, false, err
	}
	placed, err := b.Insert(name, score)
	if err != nil {
		return nil, false, err
	}
	if err := b.Save(path); err != nil {
		return nil, false, err
	}
	return b, placed, nil
}

// ValidateName rejects names that cannot round-trip through the file format.
func ValidateName(name string) error {
	if name == "" {
		return errs.New(errs.KindLeaderboard, "empty name")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errs.New(errs.KindLeaderboard, "name %q contains whitespace", name)
	}
	return nil
}

// canonicalize sorts by score descending, keeping insertion order for ties,
// and truncates to the board size.
func (b *Board) canonicalize() {
	sort.SliceStable(b.Entries, func(i, j int) bool {
		return b.Entries[i].Score > b.Entries[j].Score
	})
	if len(b.Entries) > b.size {
		b.Entries = b.Entries[:b.size]
	}
}
