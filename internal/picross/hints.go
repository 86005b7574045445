package picross

// Hints holds the nonogram clues for every row and column of a grid.
// A line with no correct cells has the single clue 0.
type Hints struct {
	rows [][]int
	cols [][]int
}

// CalculateHints derives the clues from the correct flags of g.
func CalculateHints(g *Grid) *Hints {
	return HintsFromPattern(g.Pattern())
}

// HintsFromPattern derives the clues from a square boolean pattern.
// The result depends only on the pattern, so calling it twice yields equal hints.
func HintsFromPattern(pattern [][]bool) *Hints {
	size := len(pattern)
	h := &Hints{
		rows: make([][]int, size),
		cols: make([][]int, size),
	}

	for y := 0; y < size; y++ {
		h.rows[y] = lineHint(size, func(i int) bool { return cellAt(pattern, i, y) })
	}
	for x := 0; x < size; x++ {
		h.cols[x] = lineHint(size, func(i int) bool { return cellAt(pattern, x, i) })
	}
	return h
}

// lineHint run-length encodes one line of n cells.
func lineHint(n int, correct func(i int) bool) []int {
	hint := make([]int, 0, n/2+1)
	run := 0
	for i := 0; i < n; i++ {
		if correct(i) {
			run++
			continue
		}
		if run > 0 {
			hint = append(hint, run)
			run = 0
		}
	}
	// Trailing run
	if run > 0 {
		hint = append(hint, run)
	}
	if len(hint) == 0 {
		hint = append(hint, 0)
	}
	return hint
}

// cellAt reads pattern[y][x], treating missing cells of ragged rows as incorrect.
func cellAt(pattern [][]bool, x, y int) bool {
	if y < 0 || y >= len(pattern) || x < 0 || x >= len(pattern[y]) {
		return false
	}
	return pattern[y][x]
}

// Rows returns the clue sequence for every row, top to bottom.
func (h *Hints) Rows() [][]int {
	return h.rows
}

// Cols returns the clue sequence for every column, left to right.
func (h *Hints) Cols() [][]int {
	return h.cols
}

// Row returns the clues of row y, or nil when out of range.
func (h *Hints) Row(y int) []int {
	if y < 0 || y >= len(h.rows) {
		return nil
	}
	return h.rows[y]
}

// Col returns the clues of column x, or nil when out of range.
func (h *Hints) Col(x int) []int {
	if x < 0 || x >= len(h.cols) {
		return nil
	}
	return h.cols[x]
}

// MaxRowWidth returns the longest row clue sequence.
// Renderers use it to reserve space left of the grid.
func (h *Hints) MaxRowWidth() int {
	return maxLen(h.rows)
}

// MaxColHeight returns the longest column clue sequence.
// Renderers use it to reserve space above the grid.
func (h *Hints) MaxColHeight() int {
	return maxLen(h.cols)
}

func maxLen(lines [][]int) int {
	longest := 0
	for _, l := range lines {
		if len(l) > longest {
			longest = len(l)
		}
	}
	return longest
}
