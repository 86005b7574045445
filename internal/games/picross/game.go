// Package picross is the playable nonogram game driven by the platform loop.
package picross

import (
	"math/rand"

	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/core"
	"github.com/vovakirdan/tui-picross/internal/mode"
	engine "github.com/vovakirdan/tui-picross/internal/picross"
	"github.com/vovakirdan/tui-picross/internal/registry"
)

// Game IDs.
const (
	IDMistakes = "picross"
	IDScore    = "picross_score"
)

// Flash durations in seconds.
const (
	hurtFlash      = 0.4
	jumpscareFlash = 1.0
)

// Game implements registry.Game for one puzzle under a mode chain.
type Game struct {
	base  mode.BaseKind
	setup Setup

	rng  *rand.Rand
	tick uint64
	dt   float64

	grid   *engine.Grid
	chain  *mode.Chain
	cursor core.Point
	err    error

	// Screen dimensions
	screenW int
	screenH int

	won      bool
	lost     bool
	paused   bool
	tooSmall bool

	hurtLeft      float64
	jumpscareLeft float64
}

// New creates a game lost after three mistakes.
func New() *Game {
	return &Game{base: mode.BaseMistakes, setup: GetSetup()}
}

// NewScore creates a game scored by points.
func NewScore() *Game {
	return &Game{base: mode.BaseScore, setup: GetSetup()}
}

func init() {
	registry.Register(IDMistakes, func() registry.Game {
		return New()
	})
	registry.Register(IDScore, func() registry.Game {
		return NewScore()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.base == mode.BaseScore {
		return IDScore
	}
	return IDMistakes
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.base == mode.BaseScore {
		return "Picross (Score)"
	}
	return "Picross"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.base == mode.BaseScore {
		return "Earn points for correct marks; wrong marks cost points"
	}
	return "Solve the puzzle before your third mistake"
}

// Configure replaces the setup used by the next Reset.
func (g *Game) Configure(s Setup) {
	g.setup = s
}

// Setup returns the setup in use.
func (g *Game) Setup() Setup { return g.setup }

// Reset starts a new puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.dt = cfg.Dt()
	g.won = false
	g.lost = false
	g.paused = false
	g.err = nil
	g.hurtLeft = 0
	g.jumpscareLeft = 0

	rule := engine.RuleMistakes
	if g.base == mode.BaseScore {
		rule = engine.RuleScore
	}
	if lvl := g.setup.Level; lvl != nil {
		g.grid = lvl.NewGrid(rule)
	} else {
		g.grid = engine.NewRandomGrid(g.setup.Preset.Size, rule, g.setup.Preset.Density, g.rng)
	}

	mc := g.setup.Modes
	mc.Base = g.base
	mc.GridSize = g.grid.Size()
	mc.Seed = cfg.Seed
	cat := g.setup.Assets
	if cat == nil {
		cat = assets.Default()
	}
	g.chain, g.err = mode.Build(mc, cat)

	n := g.grid.Size()
	g.cursor = core.Point{X: n / 2, Y: n / 2}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.grid == nil {
		return
	}
	lw, lh := g.layoutSize()
	g.tooSmall = w < lw || h < lh
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.err != nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.paused || g.over() {
		return core.StepResult{State: g.State()}
	}

	n := g.grid.Size()
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			g.cursor = g.cursor.Move(a, n)
		}
	}

	if in.Has(core.ActionToggle) {
		if t, ok := g.grid.ToggleBlock(g.cursor.X, g.cursor.Y); ok {
			g.chain.OnBlockToggled(t)
		}
	}
	if in.Has(core.ActionDrink) {
		g.chain.DrinkPotion()
	}
	if in.Has(core.ActionSquash) {
		g.chain.SquashSpider(0)
	}

	g.chain.Update(g.dt)
	g.hurtLeft = max(0, g.hurtLeft-g.dt)
	g.jumpscareLeft = max(0, g.jumpscareLeft-g.dt)

	var cues []string
	for _, ev := range g.chain.Events() {
		switch ev.Kind {
		case mode.EventHurt:
			g.hurtLeft = hurtFlash
		case mode.EventJumpscare:
			g.jumpscareLeft = jumpscareFlash
		}
		if s := ev.Kind.Sound(); s != "" {
			cues = append(cues, s)
		}
	}

	switch {
	case g.grid.IsSolved():
		g.won = true
	case g.chain.IsLost():
		g.lost = true
	}

	return core.StepResult{State: g.State(), Events: cues}
}

func (g *Game) over() bool {
	return g.won || g.lost
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.over() || g.err != nil,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
	if g.chain != nil {
		st.Score = g.chain.Score()
	}
	return st
}

// Err returns the error that prevented the mode chain from being built.
func (g *Game) Err() error { return g.err }

// Chain returns the active mode chain, or nil if it failed to build.
func (g *Game) Chain() *mode.Chain { return g.chain }

// Grid returns the board.
func (g *Game) Grid() *engine.Grid { return g.grid }

// ModeName describes the active chain, e.g. "Torch(Time(Mistakes))".
func (g *Game) ModeName() string {
	if g.chain == nil {
		return ""
	}
	return g.chain.String()
}

// Mistakes returns the mistakes counted by the chain.
func (g *Game) Mistakes() int {
	if g.chain == nil {
		return 0
	}
	return g.chain.Mistakes()
}

// Ranked reports whether the score is meaningful for a leaderboard.
func (g *Game) Ranked() bool {
	return g.chain != nil && g.chain.ShouldDisplayScore()
}

// PuzzleID names the puzzle being played.
func (g *Game) PuzzleID() string { return g.setup.PuzzleID() }

// Elapsed returns the seconds of game time played.
func (g *Game) Elapsed() float64 {
	if g.chain == nil {
		return 0
	}
	return g.chain.State().Elapsed()
}
