// Package mode implements the composable win/loss rules of the game.
//
// A Chain is an ordered list of modifier layers over one base rule. All
// layers share a single State; the chain itself dispatches every call, so a
// layer only implements the hooks it cares about.
package mode

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-picross/internal/picross"
)

// Layer is one element of a chain.
type Layer interface {
	// Name identifies the layer ("Time", "Torch", ...).
	Name() string
	// Update advances the layer's timers by dt seconds.
	Update(s *State, dt float64)
}

// ToggleHook is implemented by layers that react to block toggles.
// A hook may adjust d before the chain applies it to the state.
type ToggleHook interface {
	OnToggle(s *State, t picross.Transition, d *picross.Delta)
}

// LossRule is implemented by layers that decide when the game is lost.
// The outermost LossRule in a chain wins.
type LossRule interface {
	Lost(s *State) bool
	MaxMistakes(s *State) int
}

// Base is the innermost rule of a chain.
type Base interface {
	Layer
	LossRule
	Rule() picross.Rule
	DisplaysScore() bool
}

// Chain evaluates a base rule plus modifier layers.
// layers is ordered innermost first; Update and toggle hooks run in that
// order, which is also the order renderers draw in.
type Chain struct {
	base   Base
	layers []Layer
	state  *State
}

// NewChain creates a chain. Layers are given innermost first.
func NewChain(base Base, gridSize int, rng *rand.Rand, layers ...Layer) *Chain {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Chain{
		base:   base,
		layers: layers,
		state:  newState(base.Rule(), gridSize, rng),
	}
}

// OnBlockToggled applies one player toggle to the shared state.
func (c *Chain) OnBlockToggled(t picross.Transition) {
	d := picross.ApplyToggleTransition(c.base.Rule(), t)

	if h, ok := c.base.(ToggleHook); ok {
		h.OnToggle(c.state, t, &d)
	}
	for _, l := range c.layers {
		if h, ok := l.(ToggleHook); ok {
			h.OnToggle(c.state, t, &d)
		}
	}

	c.state.score = d.ApplyScore(c.state.score)
	c.state.mistakes += d.Mistakes
}

// Update advances every layer by dt seconds, base first.
func (c *Chain) Update(dt float64) {
	if dt <= 0 {
		return
	}
	c.state.elapsed += dt
	c.base.Update(c.state, dt)
	for _, l := range c.layers {
		l.Update(c.state, dt)
	}
}

// lossRule returns the outermost layer that decides loss.
func (c *Chain) lossRule() LossRule {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if r, ok := c.layers[i].(LossRule); ok {
			return r
		}
	}
	return c.base
}

// IsLost reports whether the game is lost.
func (c *Chain) IsLost() bool {
	return c.lossRule().Lost(c.state)
}

// MaxMistakes returns the damage the player can take; 0 means unlimited.
func (c *Chain) MaxMistakes() int {
	return c.lossRule().MaxMistakes(c.state)
}

// Health returns the remaining and maximum hearts.
// Both are zero when the chain has no damage limit.
func (c *Chain) Health() (current, total int) {
	total = c.MaxMistakes()
	if total == 0 {
		return 0, 0
	}
	used := c.state.mistakes
	if t, ok := Find[*TimeMode](c); ok {
		used += t.Decayed()
	}
	current = total - used
	if current < 0 {
		current = 0
	}
	return current, total
}

// ShouldDisplayScore reports whether the HUD shows the score.
func (c *Chain) ShouldDisplayScore() bool { return c.base.DisplaysScore() }

// Score returns the current score.
func (c *Chain) Score() int { return c.state.score }

// Mistakes returns the damage taken so far.
func (c *Chain) Mistakes() int { return c.state.mistakes }

// Rule returns the base scoring rule.
func (c *Chain) Rule() picross.Rule { return c.base.Rule() }

// IsTimeMode reports whether health decays over time.
func (c *Chain) IsTimeMode() bool {
	_, ok := Find[*TimeMode](c)
	return ok
}

// IsTorchMode reports whether renderers should restrict vision.
func (c *Chain) IsTorchMode() bool {
	_, ok := Find[*TorchMode](c)
	return ok
}

// Name returns the name of the outermost layer.
func (c *Chain) Name() string {
	if len(c.layers) == 0 {
		return c.base.Name()
	}
	return c.layers[len(c.layers)-1].Name()
}

// Names returns layer names from outermost to the base.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.layers)+1)
	for i := len(c.layers) - 1; i >= 0; i-- {
		names = append(names, c.layers[i].Name())
	}
	return append(names, c.base.Name())
}

// String renders the nesting, e.g. "Torch(Time(Mistakes))".
func (c *Chain) String() string {
	names := c.Names()
	var sb strings.Builder
	for _, n := range names[:len(names)-1] {
		sb.WriteString(n)
		sb.WriteByte('(')
	}
	sb.WriteString(names[len(names)-1])
	sb.WriteString(strings.Repeat(")", len(names)-1))
	return sb.String()
}

// Layers returns the modifier layers innermost first, excluding the base.
func (c *Chain) Layers() []Layer {
	out := make([]Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// Base returns the base rule.
func (c *Chain) Base() Base { return c.base }

// State exposes the shared state to renderers.
func (c *Chain) State() *State { return c.state }

// SetMistakes overwrites the mistake count.
func (c *Chain) SetMistakes(n int) { c.state.SetMistakes(n) }

// DamagePlayer adds n mistakes from a hazard.
func (c *Chain) DamagePlayer(n int) { c.state.Damage(n) }

// HealWebs clears all webs from the hints.
func (c *Chain) HealWebs() { c.state.HealWebs() }

// Webbed reports whether a hint line is covered.
func (c *Chain) Webbed(line HintLine) bool { return c.state.Webbed(line) }

// Events returns and clears the queued events.
func (c *Chain) Events() []Event { return c.state.drainEvents() }

// DrinkPotion drinks the potion on the board, if the chain has alchemy.
func (c *Chain) DrinkPotion() (PotionKind, bool) {
	a, ok := Find[*AlchemyMode](c)
	if !ok {
		return 0, false
	}
	return a.Drink(c.state)
}

// SquashSpider removes spider i before it bites, if the chain has spiders.
func (c *Chain) SquashSpider(i int) bool {
	sp, ok := Find[*SpidersMode](c)
	if !ok {
		return false
	}
	return sp.Squash(i)
}

// Find returns the first layer of type T, searching outermost first and
// ending with the base.
func Find[T Layer](c *Chain) (T, bool) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if l, ok := c.layers[i].(T); ok {
			return l, true
		}
	}
	if l, ok := c.base.(T); ok {
		return l, true
	}
	var zero T
	return zero, false
}
