package mode

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-picross/internal/picross"
)

// Axis selects rows or columns of hints.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCol
)

// HintLine addresses one row or column of hints.
type HintLine struct {
	Axis  Axis
	Index int
}

// State is the single copy of mode bookkeeping shared by every layer of a
// chain. Layers never keep their own score or mistake counters.
type State struct {
	score    int
	mistakes int
	gridSize int
	rule     picross.Rule
	elapsed  float64

	rng    *rand.Rand
	webs   map[HintLine]struct{}
	events []Event
}

func newState(rule picross.Rule, gridSize int, rng *rand.Rand) *State {
	s := &State{
		rule:     rule,
		gridSize: gridSize,
		rng:      rng,
		webs:     make(map[HintLine]struct{}),
	}
	if rule == picross.RuleScore {
		s.score = picross.InitialScore
	}
	return s
}

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Mistakes returns the damage taken so far, from toggles and hazards.
func (s *State) Mistakes() int { return s.mistakes }

// GridSize returns the side length of the puzzle.
func (s *State) GridSize() int { return s.gridSize }

// Rule returns the base scoring rule.
func (s *State) Rule() picross.Rule { return s.rule }

// Elapsed returns the game time seen by Update, in seconds.
func (s *State) Elapsed() float64 { return s.elapsed }

// Rand returns the chain's deterministic random source.
func (s *State) Rand() *rand.Rand { return s.rng }

// Emit queues an event.
func (s *State) Emit(kind EventKind, detail string) {
	s.events = append(s.events, Event{Kind: kind, Detail: detail})
}

// Damage adds n mistakes from a hazard.
func (s *State) Damage(n int) {
	if n <= 0 {
		return
	}
	s.mistakes += n
	s.Emit(EventHurt, "")
}

// SetMistakes overwrites the mistake count (clamped at zero).
// Lowering it is a heal.
func (s *State) SetMistakes(n int) {
	if n < 0 {
		n = 0
	}
	if n < s.mistakes {
		s.Emit(EventHeal, "")
	}
	s.mistakes = n
}

// Web covers a hint line.
func (s *State) Web(line HintLine) {
	s.webs[line] = struct{}{}
}

// Webbed reports whether a hint line is covered.
func (s *State) Webbed(line HintLine) bool {
	_, ok := s.webs[line]
	return ok
}

// Webs returns every covered line, rows first, in index order.
func (s *State) Webs() []HintLine {
	out := make([]HintLine, 0, len(s.webs))
	for l := range s.webs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Axis != out[j].Axis {
			return out[i].Axis < out[j].Axis
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// HealWebs clears every web.
func (s *State) HealWebs() {
	if len(s.webs) == 0 {
		return
	}
	s.webs = make(map[HintLine]struct{})
}

// drainEvents returns and clears the queued events.
func (s *State) drainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// randomLine picks a hint line uniformly.
func (s *State) randomLine() HintLine {
	line := HintLine{Axis: Axis(s.rng.Intn(2))}
	if s.gridSize > 0 {
		line.Index = s.rng.Intn(s.gridSize)
	}
	return line
}
