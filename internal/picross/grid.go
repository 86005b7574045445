package picross

import "math/rand"

// Grid is a square puzzle board.
// Blocks are stored row-major: blocks[y][x].
//
// The three counters are maintained incrementally by ToggleBlock so that
// IsSolved is O(1):
//
//	0 <= correctCompleted <= completed
//	correctCompleted <= totalCorrect
type Grid struct {
	size   int
	blocks [][]Block
	hints  *Hints
	rule   Rule

	totalCorrect     int
	completed        int
	correctCompleted int

	mistakes int
	score    int
}

// NewGrid builds a grid from a boolean pattern (pattern[y][x] == true marks
// a solution cell). The grid is len(pattern) wide; ragged rows are padded
// with incorrect cells or truncated.
func NewGrid(pattern [][]bool, rule Rule) *Grid {
	g := &Grid{rule: rule}
	g.setPattern(pattern)
	return g
}

// NewRandomGrid builds a size x size grid where each cell is independently
// correct with probability density. Density is clamped to [0, 1].
func NewRandomGrid(size int, rule Rule, density float64, rng *rand.Rand) *Grid {
	return NewGrid(RandomPattern(size, density, rng), rule)
}

// LoadGrid reads a grid file. On failure it logs the problem and returns
// an empty grid with ok == false.
func LoadGrid(path string, rule Rule) (g *Grid, ok bool) {
	g = NewGrid(nil, rule)
	return g, g.LoadFile(path)
}

// LoadFile replaces the puzzle with the contents of a grid file and resets
// all progress. A file that cannot be read or parsed is logged and the grid
// is left untouched.
func (g *Grid) LoadFile(path string) bool {
	pattern, err := ReadGridFile(path)
	if err != nil {
		logger.Warn("could not load grid file", "path", path, "error", err)
		return false
	}
	g.setPattern(pattern)
	return true
}

// Regenerate replaces the puzzle with a new random pattern of the same size
// and resets all progress.
func (g *Grid) Regenerate(density float64, rng *rand.Rand) {
	g.setPattern(RandomPattern(g.size, density, rng))
}

// setPattern installs a new solution and resets progress and bookkeeping.
func (g *Grid) setPattern(pattern [][]bool) {
	size := len(pattern)
	g.size = size
	g.blocks = make([][]Block, size)
	g.totalCorrect = 0
	for y := 0; y < size; y++ {
		g.blocks[y] = make([]Block, size)
		for x := 0; x < size; x++ {
			correct := cellAt(pattern, x, y)
			g.blocks[y][x] = NewBlock(correct)
			if correct {
				g.totalCorrect++
			}
		}
	}
	g.hints = HintsFromPattern(g.Pattern())
	g.resetProgress()
}

// Reset clears every mark and restores the initial score and mistakes.
func (g *Grid) Reset() {
	for y := range g.blocks {
		for x := range g.blocks[y] {
			g.blocks[y][x] = NewBlock(g.blocks[y][x].correct)
		}
	}
	g.resetProgress()
}

func (g *Grid) resetProgress() {
	g.completed = 0
	g.correctCompleted = 0
	g.mistakes = 0
	g.score = 0
	if g.rule == RuleScore {
		g.score = InitialScore
	}
}

// InBounds reports whether (x, y) addresses a block.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// ToggleBlock flips the mark at column x, row y and applies the grid's
// scoring rule. Out-of-range coordinates are logged and ignored.
// The returned transition lets callers report the same action elsewhere.
func (g *Grid) ToggleBlock(x, y int) (Transition, bool) {
	if !g.InBounds(x, y) {
		logger.Warn("toggle outside grid ignored", "x", x, "y", y, "size", g.size)
		return Transition{}, false
	}

	b := &g.blocks[y][x]
	t := Transition{
		Correct:      b.IsCorrect(),
		WasCompleted: b.IsCompleted(),
	}
	b.Toggle()
	t.NowCompleted = b.IsCompleted()

	switch {
	case t.Completed():
		g.completed++
		if t.Correct {
			g.correctCompleted++
		}
	case t.Uncompleted():
		g.completed--
		if t.Correct {
			g.correctCompleted--
		}
	}

	d := ApplyToggleTransition(g.rule, t)
	g.score = d.ApplyScore(g.score)
	g.mistakes += d.Mistakes

	return t, true
}

// IsSolved reports whether exactly the solution cells are marked.
// Both counters must match: marking the right number of cells is not enough.
func (g *Grid) IsSolved() bool {
	return g.completed == g.totalCorrect && g.correctCompleted == g.totalCorrect
}

// IsLost reports whether the mistakes rule has run out of lives.
// Mistakes never decrease, so once lost the grid stays lost.
func (g *Grid) IsLost() bool {
	return !g.ScoreMode() && g.mistakes >= MaxMistakes
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// Block returns the block at column x, row y.
// Out-of-range coordinates yield a zero block.
func (g *Grid) Block(x, y int) Block {
	if !g.InBounds(x, y) {
		return Block{}
	}
	return g.blocks[y][x]
}

// Hints returns the clues computed when the puzzle was built.
func (g *Grid) Hints() *Hints { return g.hints }

// Score returns the legacy single-mode score.
func (g *Grid) Score() int { return g.score }

// Mistakes returns the legacy single-mode mistake count.
func (g *Grid) Mistakes() int { return g.mistakes }

// Rule returns the scoring rule the grid applies on toggle.
func (g *Grid) Rule() Rule { return g.rule }

// ScoreMode reports whether the grid uses the score rule.
func (g *Grid) ScoreMode() bool { return g.rule == RuleScore }

// TotalCorrect returns the number of solution cells.
func (g *Grid) TotalCorrect() int { return g.totalCorrect }

// Completed returns the number of marked cells.
func (g *Grid) Completed() int { return g.completed }

// CorrectCompleted returns the number of marked solution cells.
func (g *Grid) CorrectCompleted() int { return g.correctCompleted }

// Pattern returns a copy of the solution as pattern[y][x].
func (g *Grid) Pattern() [][]bool {
	pattern := make([][]bool, g.size)
	for y := range pattern {
		pattern[y] = make([]bool, g.size)
		for x := range pattern[y] {
			pattern[y][x] = g.blocks[y][x].correct
		}
	}
	return pattern
}

// Marks returns a copy of the player's marks as marks[y][x].
func (g *Grid) Marks() [][]bool {
	marks := make([][]bool, g.size)
	for y := range marks {
		marks[y] = make([]bool, g.size)
		for x := range marks[y] {
			marks[y][x] = g.blocks[y][x].completed
		}
	}
	return marks
}
