package picross

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// MaxGridSize is the largest size header ParseGrid accepts.
const MaxGridSize = 64

// ParseGrid reads the text grid format: an integer size followed by size
// whitespace-separated row strings. '1' marks a solution cell; any other
// character does not. Short rows are padded and long rows truncated.
func ParseGrid(r io.Reader) ([][]bool, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading size: %w", err)
		}
		return nil, fmt.Errorf("missing size")
	}
	size, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("invalid size %q: %w", sc.Text(), err)
	}
	if size < 0 || size > MaxGridSize {
		return nil, fmt.Errorf("size %d out of range [0, %d]", size, MaxGridSize)
	}

	pattern := make([][]bool, size)
	for y := 0; y < size; y++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading row %d: %w", y, err)
			}
			return nil, fmt.Errorf("expected %d rows, got %d", size, y)
		}
		row := sc.Text()
		pattern[y] = make([]bool, size)
		for x := 0; x < size && x < len(row); x++ {
			pattern[y][x] = row[x] == '1'
		}
	}
	return pattern, nil
}

// FormatGrid writes pattern in the text grid format read by ParseGrid.
func FormatGrid(w io.Writer, pattern [][]bool) error {
	size := len(pattern)
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(size))
	sb.WriteByte('\n')
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if cellAt(pattern, x, y) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// ReadGridFile opens path and parses it with ParseGrid.
func ReadGridFile(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pattern, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pattern, nil
}

// RandomPattern draws a size x size pattern where each cell is correct with
// probability density (clamped to [0, 1]).
func RandomPattern(size int, density float64, rng *rand.Rand) [][]bool {
	if size < 0 {
		size = 0
	}
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}

	pattern := make([][]bool, size)
	for y := range pattern {
		pattern[y] = make([]bool, size)
		for x := range pattern[y] {
			pattern[y][x] = rng.Float64() < density
		}
	}
	return pattern
}
