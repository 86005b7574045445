package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the YAML structure of a level file.
//
//	id: heart
//	name: Heart
//	rows:
//	  - ".#.#."
//	  - "#####"
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level. Rows use '#' (or '1', 'x') for solution
// cells and any other character for empty ones. The grid must be square.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	size := len(yl.Rows)
	if size == 0 {
		return Level{}, fmt.Errorf("level %q has no rows", yl.ID)
	}

	pattern := make([][]bool, size)
	for y, row := range yl.Rows {
		row = strings.TrimSpace(row)
		if len(row) != size {
			return Level{}, fmt.Errorf("row %d has %d cells, want %d", y, len(row), size)
		}
		pattern[y] = make([]bool, size)
		for x := 0; x < size; x++ {
			pattern[y][x] = isFilled(row[x])
		}
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Size:     size,
		Pattern:  pattern,
		Metadata: yl.Metadata,
	}, nil
}

func isFilled(c byte) bool {
	switch c {
	case '#', '1', 'x', 'X':
		return true
	}
	return false
}
