// Package formats provides the level file parsers.
package formats

// Level is a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Size     int
	Pattern  [][]bool
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ".grid"}
}
