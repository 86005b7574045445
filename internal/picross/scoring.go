package picross

// Rule selects how toggles are scored.
type Rule uint8

const (
	// RuleScore awards and deducts points; it never counts mistakes.
	RuleScore Rule = iota
	// RuleMistakes counts mistakes; the game is lost at MaxMistakes.
	RuleMistakes
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleScore:
		return "score"
	case RuleMistakes:
		return "mistakes"
	default:
		return "unknown"
	}
}

// Scoring constants.
const (
	InitialScore       = 1000
	PointsCorrectMark  = 200
	PenaltyWrongMark   = 100
	PenaltyUndoCorrect = 300
	MaxMistakes        = 3
)

// Transition describes what a single toggle did to one block.
type Transition struct {
	Correct      bool // Block is part of the solution
	WasCompleted bool // Mark before the toggle
	NowCompleted bool // Mark after the toggle
}

// Completed reports whether the toggle placed a mark.
func (t Transition) Completed() bool {
	return !t.WasCompleted && t.NowCompleted
}

// Uncompleted reports whether the toggle removed a mark.
func (t Transition) Uncompleted() bool {
	return t.WasCompleted && !t.NowCompleted
}

// IsMistake reports whether the toggle left a visible error on the board:
// marking a wrong cell or clearing a right one.
func (t Transition) IsMistake() bool {
	return (t.Completed() && !t.Correct) || (t.Uncompleted() && t.Correct)
}

// Delta is the bookkeeping change produced by one toggle.
type Delta struct {
	Score    int
	Mistakes int
}

// ApplyToggleTransition is the single scoring policy shared by Grid and the
// mode chain.
//
// Score rule: +200 for marking a correct cell, -100 for marking a wrong one,
// -300 for clearing a correct mark. Clearing a wrong mark is free.
// Mistakes rule: one mistake per IsMistake transition; never negative.
func ApplyToggleTransition(rule Rule, t Transition) Delta {
	switch rule {
	case RuleScore:
		switch {
		case t.Completed() && t.Correct:
			return Delta{Score: PointsCorrectMark}
		case t.Completed() && !t.Correct:
			return Delta{Score: -PenaltyWrongMark}
		case t.Uncompleted() && t.Correct:
			return Delta{Score: -PenaltyUndoCorrect}
		}
	case RuleMistakes:
		if t.IsMistake() {
			return Delta{Mistakes: 1}
		}
	}
	return Delta{}
}

// ApplyScore adds the score change to current, flooring the result at zero.
func (d Delta) ApplyScore(current int) int {
	next := current + d.Score
	if next < 0 {
		return 0
	}
	return next
}
