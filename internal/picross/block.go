// Package picross provides the nonogram puzzle engine: cells, run-length
// hints, and the grid that tracks completion and scoring.
// It has no UI dependencies and never returns errors from gameplay calls;
// invalid input is logged and ignored.
package picross

// Block is a single puzzle cell.
// The correct flag is fixed when the block is created; only the completed
// mark changes during play.
type Block struct {
	correct   bool
	completed bool
}

// NewBlock creates a block that is (or is not) part of the solution.
func NewBlock(correct bool) Block {
	return Block{correct: correct}
}

// Toggle flips the player's mark on the block.
func (b *Block) Toggle() {
	b.completed = !b.completed
}

// IsCorrect reports whether the block belongs to the solution.
func (b Block) IsCorrect() bool {
	return b.correct
}

// IsCompleted reports whether the player has marked the block.
func (b Block) IsCompleted() bool {
	return b.completed
}
