package picross

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/core"
	"github.com/vovakirdan/tui-picross/internal/errs"
	"github.com/vovakirdan/tui-picross/internal/levels"
	"github.com/vovakirdan/tui-picross/internal/registry"
)

// topRow is the 2x2 puzzle "11/00".
var topRow = levels.Level{
	ID:      "top",
	Name:    "Top",
	Size:    2,
	Pattern: [][]bool{{true, true}, {false, false}},
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 2, Seed: 7}
}

func newGame(t *testing.T, g *Game, lvl *levels.Level, modify func(*Setup)) *Game {
	t.Helper()
	s := DefaultSetup()
	s.Level = lvl
	if modify != nil {
		modify(&s)
	}
	g.Configure(s)
	g.Reset(testConfig())
	if err := g.Err(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDMistakes, IDScore} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestSolveScoreGame(t *testing.T) {
	lvl := topRow
	g := newGame(t, NewScore(), &lvl, nil)

	if g.cursor != (core.Point{X: 1, Y: 1}) {
		t.Fatalf("cursor starts at %+v", g.cursor)
	}
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionToggle))
	if g.State().Score != 1200 {
		t.Fatalf("score = %d, want 1200", g.State().Score)
	}
	g.Step(frame(core.ActionLeft))
	res := g.Step(frame(core.ActionToggle))

	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("state = %+v, want won", res.State)
	}
	if res.State.Score != 1400 {
		t.Errorf("score = %d, want 1400", res.State.Score)
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}

	// Input after the game ends is ignored.
	g.Step(frame(core.ActionToggle))
	if g.Grid().Completed() != 2 {
		t.Error("board changed after win")
	}
}

func TestScoreRoundTrip(t *testing.T) {
	lvl := topRow
	g := newGame(t, NewScore(), &lvl, nil)
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionToggle))
	g.Step(frame(core.ActionToggle))
	if got := g.State().Score; got != 900 {
		t.Errorf("score = %d, want 900", got)
	}
	if g.Grid().Score() != g.Chain().Score() {
		t.Errorf("grid %d and chain %d disagree", g.Grid().Score(), g.Chain().Score())
	}
}

func TestMistakesGameLost(t *testing.T) {
	lvl := topRow
	g := newGame(t, New(), &lvl, nil)

	// Cursor sits on (1,1), which is not part of the solution.
	var res core.StepResult
	for i := 0; i < 5; i++ {
		res = g.Step(frame(core.ActionToggle))
	}
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("state = %+v, want lost", res.State)
	}
	if g.Chain().Mistakes() != 3 {
		t.Errorf("mistakes = %d, want 3", g.Chain().Mistakes())
	}
	if g.Snapshot().State != StateLost {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}
}

func TestPauseFreezesTime(t *testing.T) {
	lvl := topRow
	g := newGame(t, New(), &lvl, func(s *Setup) { s.Modes.Time = true })

	g.Step(frame())
	g.Step(frame(core.ActionPause))
	before := g.Elapsed()
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionToggle))
	}
	if g.Elapsed() != before {
		t.Errorf("elapsed moved while paused: %v -> %v", before, g.Elapsed())
	}
	if g.Grid().Completed() != 0 {
		t.Error("toggle accepted while paused")
	}
	g.Step(frame(core.ActionPause))
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state after unpause = %s", g.Snapshot().State)
	}
}

func TestEndermanCues(t *testing.T) {
	lvl := topRow
	g := newGame(t, New(), &lvl, func(s *Setup) {
		s.Modes.Enderman = true
		s.Modes.Tuning.Enderman = config.EndermanConfig{AppearInterval: 1, StayDuration: 10}
	})

	g.Step(frame())
	g.Step(frame())
	res := g.Step(frame(core.ActionUp, core.ActionToggle))
	if diff := cmp.Diff([]string{"enderman_scream", "hurt"}, res.Events); diff != "" {
		t.Errorf("cues mismatch (-want +got):\n%s", diff)
	}
	if g.Chain().Mistakes() != 1 {
		t.Errorf("mistakes = %d, want 1", g.Chain().Mistakes())
	}
}

func TestModeErrorSurfaces(t *testing.T) {
	lvl := topRow
	s := DefaultSetup()
	s.Level = &lvl
	s.Assets = assets.NewManifest(nil, nil)
	g := New()
	g.Configure(s)
	g.Reset(testConfig())

	if !errors.Is(g.Err(), errs.ErrAssetLoad) {
		t.Fatalf("Err = %v, want ErrAssetLoad", g.Err())
	}
	if !g.State().GameOver {
		t.Error("a failed chain should end the game")
	}
	g.Step(frame(core.ActionToggle))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Cannot start this mode") {
		t.Error("render should explain the failure")
	}
}

func TestRender(t *testing.T) {
	lvl := topRow
	g := newGame(t, NewScore(), &lvl, func(s *Setup) { s.Modes.Time = true })

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"PICROSS - Top", "Time(Score)", "Score: 1000", "decay in"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, glyphHeart) {
		t.Error("render missing hearts")
	}
}

func TestRenderTorch(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("spider")
	if err != nil {
		t.Fatal(err)
	}
	scr := core.NewScreen(80, 30)

	dark := newGame(t, New(), &lvl, func(s *Setup) { s.Modes.Torch = true })
	dark.Render(scr)
	if !strings.ContainsRune(scr.String(), glyphDark) {
		t.Error("torch should hide distant cells")
	}

	lit := newGame(t, New(), &lvl, nil)
	lit.Render(scr)
	if strings.ContainsRune(scr.String(), glyphDark) {
		t.Error("no torch, nothing hidden")
	}
}

func TestTooSmall(t *testing.T) {
	lvl := topRow
	g := newGame(t, New(), &lvl, nil)
	g.Resize(20, 5)
	if g.Snapshot().State != StatePausedSmall || !g.State().Paused {
		t.Fatalf("state = %s", g.Snapshot().State)
	}
	g.Step(frame(core.ActionToggle))
	if g.Grid().Completed() != 0 {
		t.Error("input accepted while too small")
	}
	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state after resize = %s", g.Snapshot().State)
	}
}

func TestDeterministicRandomPuzzle(t *testing.T) {
	inputs := []core.Action{
		core.ActionToggle, core.ActionRight, core.ActionToggle, core.ActionDown,
		core.ActionToggle, core.ActionDrink, core.ActionSquash, core.ActionLeft,
	}
	run := func() Snapshot {
		g := NewScore()
		s := DefaultSetup()
		s.Preset = config.Preset{Size: 6, Density: 0.5}
		s.Modes.Time = true
		s.Modes.Spiders = true
		s.Modes.Alchemy = true
		g.Configure(s)
		g.Reset(testConfig())
		for i := 0; i < 200; i++ {
			g.Step(frame(inputs[i%len(inputs)]))
		}
		return g.Snapshot()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed diverged (-first +second):\n%s", diff)
	}
}
