package formats

import (
	"bytes"
	"fmt"

	"github.com/vovakirdan/tui-picross/internal/picross"
)

// ParseText parses the plain grid format: a size followed by one row string
// per line. The file carries no metadata, so the caller supplies the id.
func ParseText(data []byte, id string) (Level, error) {
	pattern, err := picross.ParseGrid(bytes.NewReader(data))
	if err != nil {
		return Level{}, fmt.Errorf("grid: %w", err)
	}
	if len(pattern) == 0 {
		return Level{}, fmt.Errorf("grid %q is empty", id)
	}
	return Level{
		ID:      id,
		Name:    id,
		Size:    len(pattern),
		Pattern: pattern,
	}, nil
}
