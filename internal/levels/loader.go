// Package levels loads puzzle definitions from a directory or from the
// builtin pack compiled into the binary.
package levels

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-picross/internal/errs"
	"github.com/vovakirdan/tui-picross/internal/levels/formats"
	"github.com/vovakirdan/tui-picross/internal/picross"
)

//go:embed builtin
var builtinFS embed.FS

// Level is a complete puzzle definition.
type Level struct {
	ID       string
	Name     string
	Size     int
	Pattern  [][]bool
	Metadata map[string]string
	FilePath string
}

// NewGrid creates a fresh grid for the level.
func (l *Level) NewGrid(rule picross.Rule) *picross.Grid {
	return picross.NewGrid(l.Pattern, rule)
}

// Loader loads levels from a file tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for the directory root.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// Root returns the directory the loader reads from.
func (l *Loader) Root() string { return l.root }

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindLevelLoad, err, "walking %s", l.root)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file, relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, errs.Wrap(errs.KindLevelLoad, err, "reading %s", p)
	}

	stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
	parsed, err := parseByExtension(data, ext(p), stem)
	if err != nil {
		return Level{}, errs.Wrap(errs.KindLevelLoad, err, "parsing %s", p)
	}
	if parsed.ID == "" {
		parsed.ID = stem
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Size:     parsed.Size,
		Pattern:  parsed.Pattern,
		Metadata: parsed.Metadata,
		FilePath: path.Join(l.root, p),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, errs.New(errs.KindLevelLoad, "level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func ext(p string) string {
	return strings.ToLower(path.Ext(p))
}

func isSupportedExtension(e string) bool {
	for _, supported := range formats.FormatExtensions() {
		if e == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, e, stem string) (formats.Level, error) {
	switch e {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt", ".grid":
		return formats.ParseText(data, stem)
	default:
		return formats.Level{}, errs.New(errs.KindLevelLoad, "unsupported extension: %s", e)
	}
}

// ReadFile loads a level file from anywhere on disk.
func ReadFile(p string) (Level, error) {
	return NewLoader(filepath.Dir(p)).LoadFile(filepath.Base(p))
}
