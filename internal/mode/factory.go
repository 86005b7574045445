package mode

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/errs"
)

// BaseKind names a base rule.
type BaseKind string

const (
	BaseScore    BaseKind = "score"
	BaseMistakes BaseKind = "mistakes"
)

// ParseBase parses a base rule name, ignoring case.
func ParseBase(s string) (BaseKind, error) {
	switch BaseKind(strings.ToLower(strings.TrimSpace(s))) {
	case BaseScore:
		return BaseScore, nil
	case BaseMistakes:
		return BaseMistakes, nil
	default:
		return "", errs.New(errs.KindInvalidGameMode, "unknown base rule %q", s)
	}
}

// Config selects a base rule and the modifiers layered over it.
type Config struct {
	Base       BaseKind `yaml:"base"`
	Time       bool     `yaml:"time"`
	Spiders    bool     `yaml:"spiders"`
	Alchemy    bool     `yaml:"alchemy"`
	Torch      bool     `yaml:"torch"`
	DiscoFever bool     `yaml:"disco_fever"`
	Enderman   bool     `yaml:"enderman"`

	GridSize int                `yaml:"-"`
	Seed     int64              `yaml:"-"`
	Tuning   config.ModesConfig `yaml:"-"`
}

// Modifiers returns the names of the enabled modifiers in layering order.
func (c Config) Modifiers() []string {
	var out []string
	for _, m := range []struct {
		on   bool
		name string
	}{
		{c.Time, "Time"},
		{c.Spiders, "Spiders"},
		{c.Alchemy, "Alchemy"},
		{c.Torch, "Torch"},
		{c.DiscoFever, "DiscoFever"},
		{c.Enderman, "Enderman"},
	} {
		if m.on {
			out = append(out, m.name)
		}
	}
	return out
}

// Build constructs the chain for cfg. Modifiers are always layered as
// base, Time, Spiders, Alchemy, Torch, DiscoFever, Enderman, skipping the
// disabled ones.
func Build(cfg Config, cat assets.Catalog) (*Chain, error) {
	if cfg.GridSize <= 0 {
		return nil, errs.New(errs.KindInvalidGrid, "grid size %d", cfg.GridSize)
	}

	var base Base
	switch cfg.Base {
	case BaseScore:
		b, err := NewScoreMode(cat)
		if err != nil {
			return nil, err
		}
		base = b
	case BaseMistakes:
		b, err := NewMistakesMode(cat)
		if err != nil {
			return nil, err
		}
		base = b
	default:
		return nil, errs.New(errs.KindInvalidGameMode, "unknown base rule %q", cfg.Base)
	}

	steps := []struct {
		on    bool
		build func() (Layer, error)
	}{
		{cfg.Time, func() (Layer, error) { return NewTimeMode(cfg.GridSize, cfg.Tuning.Time, cat) }},
		{cfg.Spiders, func() (Layer, error) { return NewSpidersMode(cfg.Tuning.Spiders, cat) }},
		{cfg.Alchemy, func() (Layer, error) { return NewAlchemyMode(cfg.Tuning.Alchemy, cat) }},
		{cfg.Torch, func() (Layer, error) { return NewTorchMode(cfg.Tuning.Torch, cat) }},
		{cfg.DiscoFever, func() (Layer, error) { return NewDiscoFeverMode(cfg.Tuning.Disco, cat) }},
		{cfg.Enderman, func() (Layer, error) { return NewEndermanMode(cfg.Tuning.Enderman, cat) }},
	}

	var layers []Layer
	for _, st := range steps {
		if !st.on {
			continue
		}
		l, err := st.build()
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	return NewChain(base, cfg.GridSize, rng, layers...), nil
}
