// Package assets describes the sprites and sound cues available to the game.
// Modes declare the assets they need and refuse to build when any is missing.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-picross/internal/errs"
)

//go:embed manifest.yaml
var defaultManifestYAML []byte

// Catalog answers whether a named asset is available.
type Catalog interface {
	Has(name string) bool
}

// Manifest is a Catalog backed by a YAML file listing sprites and sounds.
type Manifest struct {
	Sprites []string `yaml:"sprites"`
	Sounds  []string `yaml:"sounds"`

	index map[string]struct{}
}

// Default returns the embedded manifest.
func Default() *Manifest {
	m, err := ParseManifest(defaultManifestYAML)
	if err != nil {
		// The embedded file is part of the build.
		panic(fmt.Sprintf("assets: embedded manifest is invalid: %v", err))
	}
	return m
}

// ParseManifest parses manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errs.Wrap(errs.KindAssetLoad, err, "parsing manifest")
	}
	m.buildIndex()
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindFileLoad, err, "reading manifest %s", path)
	}
	return ParseManifest(data)
}

// NewManifest builds a manifest from explicit names, mostly for tests.
func NewManifest(sprites, sounds []string) *Manifest {
	m := &Manifest{Sprites: sprites, Sounds: sounds}
	m.buildIndex()
	return m
}

func (m *Manifest) buildIndex() {
	m.index = make(map[string]struct{}, len(m.Sprites)+len(m.Sounds))
	for _, s := range m.Sprites {
		m.index["sprite:"+s] = struct{}{}
	}
	for _, s := range m.Sounds {
		m.index["sound:"+s] = struct{}{}
	}
}

// Has reports whether name ("sprite:<id>" or "sound:<id>") is listed.
func (m *Manifest) Has(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[name]
	return ok
}

// Sprite returns the catalog key of a sprite.
func Sprite(id string) string { return "sprite:" + id }

// Sound returns the catalog key of a sound cue.
func Sound(id string) string { return "sound:" + id }

// Require checks that every name is present in c.
// The returned error lists all missing names and matches errs.ErrAssetLoad.
func Require(c Catalog, owner string, names ...string) error {
	if c == nil {
		return errs.New(errs.KindAssetLoad, "%s: no asset catalog", owner)
	}
	var missing []string
	for _, n := range names {
		if !c.Has(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return errs.New(errs.KindAssetLoad, "%s: missing %s", owner, strings.Join(missing, ", "))
}
