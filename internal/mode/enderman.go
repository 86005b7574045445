package mode

import (
	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/picross"
)

// EndermanMode makes an enderman appear from time to time. Toggling a block
// while it is watching provokes it.
type EndermanMode struct {
	appearInterval float64
	stayDuration   float64

	timer    float64
	stayLeft float64
	present  bool
	provoked int
}

// NewEndermanMode creates an enderman modifier.
func NewEndermanMode(cfg config.EndermanConfig, cat assets.Catalog) (*EndermanMode, error) {
	err := assets.Require(cat, "Enderman",
		assets.Sprite("enderman"), assets.Sound("enderman_stare"), assets.Sound("enderman_scream"),
	)
	if err != nil {
		return nil, err
	}
	return &EndermanMode{
		appearInterval: orDefault(cfg.AppearInterval, 40),
		stayDuration:   orDefault(cfg.StayDuration, 6),
	}, nil
}

func (*EndermanMode) Name() string { return "Enderman" }

// Update moves the enderman between hidden and watching.
func (m *EndermanMode) Update(s *State, dt float64) {
	if m.present {
		m.stayLeft -= dt
		if m.stayLeft <= 0 {
			m.leave()
		}
		return
	}

	m.timer += dt
	if m.timer >= m.appearInterval {
		m.timer = 0
		m.present = true
		m.stayLeft = m.stayDuration
		s.Emit(EventEndermanAppear, "")
	}
}

// OnToggle punishes a toggle made while the enderman is watching.
func (m *EndermanMode) OnToggle(s *State, _ picross.Transition, _ *picross.Delta) {
	if !m.present {
		return
	}
	m.provoked++
	m.leave()
	s.Emit(EventJumpscare, "")
	s.Damage(1)
}

func (m *EndermanMode) leave() {
	m.present = false
	m.stayLeft = 0
	m.timer = 0
}

// Present reports whether the enderman is watching.
func (m *EndermanMode) Present() bool { return m.present }

// Provoked returns how many times the player provoked it.
func (m *EndermanMode) Provoked() int { return m.provoked }
