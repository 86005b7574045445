package mode

import (
	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
)

// DecayInterval is the default number of seconds per decayed heart.
const DecayInterval = 10.0

// HealthPool returns the number of hearts for a puzzle of the given size.
func HealthPool(gridSize int) int {
	switch {
	case gridSize <= 5:
		return 6
	case gridSize <= 8:
		return 10
	case gridSize <= 12:
		return 15
	default:
		return 20
	}
}

// TimeMode gives the player a health pool that drains over time on top of
// ordinary mistake damage. It replaces the base rule's loss condition.
type TimeMode struct {
	pool     int
	interval float64
	timer    float64
	decayed  int
}

// NewTimeMode creates a time modifier for a puzzle of the given size.
func NewTimeMode(gridSize int, cfg config.TimeConfig, cat assets.Catalog) (*TimeMode, error) {
	if err := assets.Require(cat, "Time", assets.Sprite("heart"), assets.Sprite("heart_empty"), assets.Sound("hurt")); err != nil {
		return nil, err
	}
	return &TimeMode{
		pool:     HealthPool(gridSize),
		interval: orDefault(cfg.DecayInterval, DecayInterval),
	}, nil
}

func (*TimeMode) Name() string { return "Time" }

// Update drains one heart per interval until the pool is empty.
func (m *TimeMode) Update(s *State, dt float64) {
	if m.Lost(s) {
		return
	}
	m.timer += dt
	for m.timer >= m.interval && !m.Lost(s) {
		m.timer -= m.interval
		m.decayed++
		s.Emit(EventDecay, "")
	}
}

// Lost reports whether decay plus mistakes has emptied the pool.
func (m *TimeMode) Lost(s *State) bool {
	return m.decayed+s.mistakes >= m.pool
}

// MaxMistakes returns the size of the health pool.
func (m *TimeMode) MaxMistakes(*State) int { return m.pool }

// Decayed returns the hearts lost to time.
func (m *TimeMode) Decayed() int { return m.decayed }

// UntilDecay returns the seconds until the next heart drains.
func (m *TimeMode) UntilDecay() float64 { return m.interval - m.timer }

// orDefault returns v, or def when v is not positive.
func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

// orDefaultInt returns v, or def when v is not positive.
func orDefaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
