package picross

import (
	"github.com/vovakirdan/tui-picross/internal/core"
	"github.com/vovakirdan/tui-picross/internal/mode"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StateError       GameStateType = "error"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string // Chain description, e.g. "Time(Score)"
	Puzzle   string
	Size     int
	Cursor   core.Point
	Score    int
	Mistakes int
	Marks    [][]bool
	Webs     []mode.HintLine
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateError
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.lost:
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:   g.tick,
		Puzzle: g.PuzzleID(),
		Cursor: g.cursor,
		State:  state,
	}
	if g.grid != nil {
		s.Size = g.grid.Size()
		s.Marks = g.grid.Marks()
	}
	if g.chain != nil {
		s.Mode = g.chain.String()
		s.Score = g.chain.Score()
		s.Mistakes = g.chain.Mistakes()
		s.Webs = g.chain.State().Webs()
	}
	return s
}
