package mode

import (
	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/picross"
)

// ScoreMode awards points and is never lost.
type ScoreMode struct{}

// NewScoreMode creates the score base rule.
func NewScoreMode(cat assets.Catalog) (*ScoreMode, error) {
	if err := assets.Require(cat, "Score", assets.Sprite("block"), assets.Sprite("cross"), assets.Sound("place")); err != nil {
		return nil, err
	}
	return &ScoreMode{}, nil
}

func (*ScoreMode) Name() string           { return "Score" }
func (*ScoreMode) Update(*State, float64) {}
func (*ScoreMode) Lost(*State) bool       { return false }
func (*ScoreMode) MaxMistakes(*State) int { return 0 }
func (*ScoreMode) Rule() picross.Rule     { return picross.RuleScore }
func (*ScoreMode) DisplaysScore() bool    { return true }

// MistakesMode is lost after picross.MaxMistakes mistakes.
type MistakesMode struct{}

// NewMistakesMode creates the mistakes base rule.
func NewMistakesMode(cat assets.Catalog) (*MistakesMode, error) {
	err := assets.Require(cat, "Mistakes",
		assets.Sprite("block"), assets.Sprite("cross"),
		assets.Sprite("heart"), assets.Sprite("heart_empty"),
		assets.Sound("place"), assets.Sound("hurt"),
	)
	if err != nil {
		return nil, err
	}
	return &MistakesMode{}, nil
}

func (*MistakesMode) Name() string           { return "Mistakes" }
func (*MistakesMode) Update(*State, float64) {}
func (*MistakesMode) Rule() picross.Rule     { return picross.RuleMistakes }
func (*MistakesMode) DisplaysScore() bool    { return false }

// Lost reports whether the mistake limit is reached.
func (*MistakesMode) Lost(s *State) bool {
	return s.mistakes >= picross.MaxMistakes
}

// MaxMistakes returns picross.MaxMistakes.
func (*MistakesMode) MaxMistakes(*State) int { return picross.MaxMistakes }

// OnToggle plays the hurt cue for every mistake transition.
func (*MistakesMode) OnToggle(s *State, _ picross.Transition, d *picross.Delta) {
	if d.Mistakes > 0 {
		s.Emit(EventHurt, "")
	}
}
