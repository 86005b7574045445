package mode

import (
	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/picross"
)

// PotionKind identifies a potion effect.
type PotionKind uint8

const (
	PotionHealing PotionKind = iota // Removes one mistake
	PotionClarity                   // Clears all webs
	PotionFortune                   // Doubles score gains for a while
	potionKinds
)

// String returns the potion name.
func (k PotionKind) String() string {
	switch k {
	case PotionHealing:
		return "Healing"
	case PotionClarity:
		return "Clarity"
	case PotionFortune:
		return "Fortune"
	default:
		return "Unknown"
	}
}

// Potion is waiting on the board to be drunk.
type Potion struct {
	Kind PotionKind
	TTL  float64 // Seconds before it vanishes
}

// AlchemyMode spawns potions that heal, clear webs or boost scoring.
type AlchemyMode struct {
	spawnInterval   float64
	lifetime        float64
	fortuneDuration float64

	spawnTimer float64
	potion     *Potion
	fortune    float64
}

// NewAlchemyMode creates an alchemy modifier.
func NewAlchemyMode(cfg config.AlchemyConfig, cat assets.Catalog) (*AlchemyMode, error) {
	err := assets.Require(cat, "Alchemy",
		assets.Sprite("potion_healing"), assets.Sprite("potion_clarity"),
		assets.Sprite("potion_fortune"), assets.Sound("potion_drink"),
	)
	if err != nil {
		return nil, err
	}
	return &AlchemyMode{
		spawnInterval:   orDefault(cfg.SpawnInterval, 20),
		lifetime:        orDefault(cfg.Lifetime, 10),
		fortuneDuration: orDefault(cfg.FortuneDuration, 15),
	}, nil
}

func (*AlchemyMode) Name() string { return "Alchemy" }

// Update expires effects and potions, then spawns a new potion if none is out.
func (m *AlchemyMode) Update(s *State, dt float64) {
	if m.fortune > 0 {
		m.fortune -= dt
		if m.fortune < 0 {
			m.fortune = 0
		}
	}

	if m.potion != nil {
		m.potion.TTL -= dt
		if m.potion.TTL <= 0 {
			m.potion = nil
		}
	}

	m.spawnTimer += dt
	for m.spawnTimer >= m.spawnInterval {
		m.spawnTimer -= m.spawnInterval
		if m.potion != nil {
			continue
		}
		kind := PotionKind(s.rng.Intn(int(potionKinds)))
		m.potion = &Potion{Kind: kind, TTL: m.lifetime}
		s.Emit(EventPotionSpawn, kind.String())
	}
}

// Drink applies the waiting potion. It reports false when none is out.
func (m *AlchemyMode) Drink(s *State) (PotionKind, bool) {
	if m.potion == nil {
		return 0, false
	}
	kind := m.potion.Kind
	m.potion = nil
	s.Emit(EventPotionDrink, kind.String())

	switch kind {
	case PotionHealing:
		s.SetMistakes(s.mistakes - 1)
	case PotionClarity:
		s.HealWebs()
	case PotionFortune:
		m.fortune = m.fortuneDuration
	}
	return kind, true
}

// OnToggle doubles score gains while fortune is active.
func (m *AlchemyMode) OnToggle(_ *State, _ picross.Transition, d *picross.Delta) {
	if m.fortune > 0 && d.Score > 0 {
		d.Score *= 2
	}
}

// Potion returns the waiting potion, if any.
func (m *AlchemyMode) Potion() (Potion, bool) {
	if m.potion == nil {
		return Potion{}, false
	}
	return *m.potion, true
}

// FortuneLeft returns the remaining seconds of fortune.
func (m *AlchemyMode) FortuneLeft() float64 { return m.fortune }
