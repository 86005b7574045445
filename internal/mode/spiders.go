package mode

import (
	"fmt"

	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
)

// Spider crawls onto a hint line and bites when its timer runs out.
type Spider struct {
	Line   HintLine
	BiteIn float64 // Seconds until the bite
}

// SpidersMode spawns spiders that damage the player and web hint lines.
type SpidersMode struct {
	spawnInterval float64
	biteDelay     float64
	maxSpiders    int

	spawnTimer float64
	spiders    []Spider
}

// NewSpidersMode creates a spiders modifier.
func NewSpidersMode(cfg config.SpidersConfig, cat assets.Catalog) (*SpidersMode, error) {
	err := assets.Require(cat, "Spiders",
		assets.Sprite("spider"), assets.Sprite("cobweb"), assets.Sound("spider_hiss"),
	)
	if err != nil {
		return nil, err
	}
	return &SpidersMode{
		spawnInterval: orDefault(cfg.SpawnInterval, 15),
		biteDelay:     orDefault(cfg.BiteDelay, 8),
		maxSpiders:    orDefaultInt(cfg.MaxSpiders, 3),
	}, nil
}

func (*SpidersMode) Name() string { return "Spiders" }

// Update advances bite timers, then spawns.
func (m *SpidersMode) Update(s *State, dt float64) {
	alive := m.spiders[:0]
	for _, sp := range m.spiders {
		sp.BiteIn -= dt
		if sp.BiteIn <= 0 {
			s.Web(sp.Line)
			s.Emit(EventSpiderBite, lineLabel(sp.Line))
			s.Damage(1)
			continue
		}
		alive = append(alive, sp)
	}
	m.spiders = alive

	m.spawnTimer += dt
	for m.spawnTimer >= m.spawnInterval {
		m.spawnTimer -= m.spawnInterval
		if len(m.spiders) >= m.maxSpiders || s.gridSize <= 0 {
			continue
		}
		sp := Spider{Line: s.randomLine(), BiteIn: m.biteDelay}
		m.spiders = append(m.spiders, sp)
		s.Emit(EventSpiderSpawn, lineLabel(sp.Line))
	}
}

// Squash removes spider i. It reports false for an invalid index.
func (m *SpidersMode) Squash(i int) bool {
	if i < 0 || i >= len(m.spiders) {
		return false
	}
	m.spiders = append(m.spiders[:i], m.spiders[i+1:]...)
	return true
}

// Spiders returns a copy of the active spiders, oldest first.
func (m *SpidersMode) Spiders() []Spider {
	out := make([]Spider, len(m.spiders))
	copy(out, m.spiders)
	return out
}

func lineLabel(l HintLine) string {
	if l.Axis == AxisRow {
		return fmt.Sprintf("row %d", l.Index)
	}
	return fmt.Sprintf("col %d", l.Index)
}
