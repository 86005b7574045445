package mode

import (
	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/picross"
)

// DiscoFeverMode cycles a color palette to a beat and periodically starts a
// fever during which correct marks earn a bonus.
type DiscoFeverMode struct {
	beatInterval  float64
	paletteSize   int
	feverInterval float64
	feverDuration float64
	feverBonus    int

	beatTimer  float64
	beat       int
	feverTimer float64
	feverLeft  float64
}

// NewDiscoFeverMode creates a disco modifier.
func NewDiscoFeverMode(cfg config.DiscoConfig, cat assets.Catalog) (*DiscoFeverMode, error) {
	if err := assets.Require(cat, "DiscoFever", assets.Sprite("disco_palette"), assets.Sound("disco_beat")); err != nil {
		return nil, err
	}
	return &DiscoFeverMode{
		beatInterval:  orDefault(cfg.BeatInterval, 0.5),
		paletteSize:   orDefaultInt(cfg.PaletteSize, 6),
		feverInterval: orDefault(cfg.FeverInterval, 30),
		feverDuration: orDefault(cfg.FeverDuration, 5),
		feverBonus:    orDefaultInt(cfg.FeverBonus, 100),
	}, nil
}

func (*DiscoFeverMode) Name() string { return "DiscoFever" }

// Update advances the beat (twice as fast during fever) and the fever cycle.
func (m *DiscoFeverMode) Update(s *State, dt float64) {
	interval := m.beatInterval
	if m.InFever() {
		interval /= 2
	}
	m.beatTimer += dt
	for m.beatTimer >= interval {
		m.beatTimer -= interval
		m.beat++
	}

	if m.feverLeft > 0 {
		m.feverLeft -= dt
		if m.feverLeft <= 0 {
			m.feverLeft = 0
			s.Emit(EventFeverEnd, "")
		}
		return
	}

	m.feverTimer += dt
	if m.feverTimer >= m.feverInterval {
		m.feverTimer = 0
		m.feverLeft = m.feverDuration
		s.Emit(EventFeverStart, "")
	}
}

// OnToggle adds the fever bonus to correct marks under the score rule.
func (m *DiscoFeverMode) OnToggle(s *State, t picross.Transition, d *picross.Delta) {
	if m.InFever() && s.rule == picross.RuleScore && t.Completed() && t.Correct {
		d.Score += m.feverBonus
	}
}

// InFever reports whether a fever is running.
func (m *DiscoFeverMode) InFever() bool { return m.feverLeft > 0 }

// Beat returns the number of beats so far.
func (m *DiscoFeverMode) Beat() int { return m.beat }

// Palette returns the current palette index in [0, palette size).
func (m *DiscoFeverMode) Palette() int { return m.beat % m.paletteSize }
