package mode

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/picross"
)

func mustBuild(t *testing.T, cfg Config) *Chain {
	t.Helper()
	if cfg.GridSize == 0 {
		cfg.GridSize = 5
	}
	c, err := Build(cfg, assets.Default())
	if err != nil {
		t.Fatalf("Build(%+v) error = %v", cfg, err)
	}
	return c
}

var (
	markCorrect   = picross.Transition{Correct: true, NowCompleted: true}
	markWrong     = picross.Transition{Correct: false, NowCompleted: true}
	unmarkCorrect = picross.Transition{Correct: true, WasCompleted: true}
	unmarkWrong   = picross.Transition{Correct: false, WasCompleted: true}
)

func TestChainScoreRoundTrip(t *testing.T) {
	c := mustBuild(t, Config{Base: BaseScore, GridSize: 2})
	if c.Score() != picross.InitialScore {
		t.Fatalf("initial score = %d, want %d", c.Score(), picross.InitialScore)
	}

	c.OnBlockToggled(markCorrect)
	if c.Score() != 1200 {
		t.Fatalf("after mark = %d, want 1200", c.Score())
	}
	c.OnBlockToggled(unmarkCorrect)
	if c.Score() != 900 {
		t.Fatalf("after unmark = %d, want 900", c.Score())
	}
	if c.Mistakes() != 0 || c.IsLost() {
		t.Fatalf("score rule: mistakes=%d lost=%v", c.Mistakes(), c.IsLost())
	}
}

func TestChainMatchesGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, rule := range []picross.Rule{picross.RuleScore, picross.RuleMistakes} {
		base := BaseScore
		if rule == picross.RuleMistakes {
			base = BaseMistakes
		}
		g := picross.NewRandomGrid(4, rule, 0.5, rng)
		c := mustBuild(t, Config{Base: base, GridSize: 4})

		for i := 0; i < 200; i++ {
			tr, ok := g.ToggleBlock(rng.Intn(4), rng.Intn(4))
			if !ok {
				t.Fatal("in-bounds toggle rejected")
			}
			c.OnBlockToggled(tr)
			if c.Score() != g.Score() || c.Mistakes() != g.Mistakes() {
				t.Fatalf("%v step %d: chain (%d,%d) grid (%d,%d)",
					rule, i, c.Score(), c.Mistakes(), g.Score(), g.Mistakes())
			}
		}
	}
}

func TestMistakesBase(t *testing.T) {
	c := mustBuild(t, Config{Base: BaseMistakes})
	if c.ShouldDisplayScore() {
		t.Error("mistakes base should hide score")
	}
	if c.MaxMistakes() != 3 {
		t.Errorf("MaxMistakes = %d, want 3", c.MaxMistakes())
	}

	c.OnBlockToggled(markWrong)
	c.OnBlockToggled(unmarkWrong) // free
	c.OnBlockToggled(markCorrect) // free
	c.OnBlockToggled(unmarkCorrect)
	if c.Mistakes() != 2 || c.IsLost() {
		t.Fatalf("mistakes=%d lost=%v, want 2 false", c.Mistakes(), c.IsLost())
	}
	c.OnBlockToggled(markWrong)
	if !c.IsLost() {
		t.Fatal("expected loss at 3 mistakes")
	}

	var hurts int
	for _, ev := range c.Events() {
		if ev.Kind == EventHurt {
			hurts++
		}
	}
	if hurts != 3 {
		t.Errorf("hurt events = %d, want 3", hurts)
	}
	if len(c.Events()) != 0 {
		t.Error("Events should drain the queue")
	}
}

func TestScoreBase(t *testing.T) {
	c := mustBuild(t, Config{Base: BaseScore})
	if !c.ShouldDisplayScore() || c.MaxMistakes() != 0 {
		t.Fatalf("score base: display=%v max=%d", c.ShouldDisplayScore(), c.MaxMistakes())
	}
	for i := 0; i < 20; i++ {
		c.OnBlockToggled(markWrong)
	}
	if c.Score() != 0 {
		t.Errorf("score = %d, want floor 0", c.Score())
	}
	c.DamagePlayer(10)
	if c.IsLost() {
		t.Error("score base is never lost")
	}
	if cur, total := c.Health(); cur != 0 || total != 0 {
		t.Errorf("Health = %d/%d, want 0/0", cur, total)
	}
}

func TestChainNames(t *testing.T) {
	c := mustBuild(t, Config{Base: BaseMistakes, Time: true, Torch: true})
	if diff := cmp.Diff([]string{"Torch", "Time", "Mistakes"}, c.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if got := c.String(); got != "Torch(Time(Mistakes))" {
		t.Errorf("String = %q", got)
	}
	if c.Name() != "Torch" {
		t.Errorf("Name = %q, want Torch", c.Name())
	}
	if !c.IsTimeMode() || !c.IsTorchMode() {
		t.Error("expected time and torch flags")
	}

	bare := mustBuild(t, Config{Base: BaseScore})
	if bare.String() != "Score" || bare.Name() != "Score" {
		t.Errorf("bare chain = %q/%q", bare.String(), bare.Name())
	}
	if bare.IsTimeMode() || bare.IsTorchMode() {
		t.Error("bare chain has no flags")
	}
}

func TestSetMistakesClamps(t *testing.T) {
	c := mustBuild(t, Config{Base: BaseMistakes})
	c.DamagePlayer(2)
	c.SetMistakes(-5)
	if c.Mistakes() != 0 {
		t.Fatalf("mistakes = %d, want 0", c.Mistakes())
	}
	kinds := eventKinds(c.Events())
	if diff := cmp.Diff([]EventKind{EventHurt, EventHeal}, kinds); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestWebs(t *testing.T) {
	c := mustBuild(t, Config{Base: BaseScore})
	row := HintLine{Axis: AxisRow, Index: 1}
	col := HintLine{Axis: AxisCol, Index: 0}
	c.State().Web(col)
	c.State().Web(row)
	if !c.Webbed(row) || !c.Webbed(col) {
		t.Fatal("expected both lines webbed")
	}
	if diff := cmp.Diff([]HintLine{row, col}, c.State().Webs()); diff != "" {
		t.Errorf("Webs mismatch (-want +got):\n%s", diff)
	}
	c.HealWebs()
	if c.Webbed(row) || len(c.State().Webs()) != 0 {
		t.Error("HealWebs left webs behind")
	}
}

func TestLayerActionsWithoutLayers(t *testing.T) {
	c := mustBuild(t, Config{Base: BaseScore})
	if _, ok := c.DrinkPotion(); ok {
		t.Error("DrinkPotion without alchemy")
	}
	if c.SquashSpider(0) {
		t.Error("SquashSpider without spiders")
	}
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	c := mustBuild(t, Config{Base: BaseMistakes, Time: true})
	c.Update(0)
	c.Update(-3)
	if c.State().Elapsed() != 0 {
		t.Errorf("elapsed = %v, want 0", c.State().Elapsed())
	}
}

func eventKinds(evs []Event) []EventKind {
	out := make([]EventKind, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Kind)
	}
	return out
}
