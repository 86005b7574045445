package mode

// EventKind identifies something front-ends may want to play or show.
type EventKind uint8

const (
	EventHurt EventKind = iota
	EventHeal
	EventDecay
	EventSpiderSpawn
	EventSpiderBite
	EventPotionSpawn
	EventPotionDrink
	EventFeverStart
	EventFeverEnd
	EventEndermanAppear
	EventJumpscare
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventHurt:
		return "Hurt"
	case EventHeal:
		return "Heal"
	case EventDecay:
		return "Decay"
	case EventSpiderSpawn:
		return "SpiderSpawn"
	case EventSpiderBite:
		return "SpiderBite"
	case EventPotionSpawn:
		return "PotionSpawn"
	case EventPotionDrink:
		return "PotionDrink"
	case EventFeverStart:
		return "FeverStart"
	case EventFeverEnd:
		return "FeverEnd"
	case EventEndermanAppear:
		return "EndermanAppear"
	case EventJumpscare:
		return "Jumpscare"
	default:
		return "Unknown"
	}
}

// Sound returns the sound cue id for the event, or "" for silent events.
func (k EventKind) Sound() string {
	switch k {
	case EventHurt, EventSpiderBite:
		return "hurt"
	case EventHeal:
		return "heal"
	case EventSpiderSpawn:
		return "spider_hiss"
	case EventPotionDrink:
		return "potion_drink"
	case EventFeverStart:
		return "disco_beat"
	case EventEndermanAppear:
		return "enderman_stare"
	case EventJumpscare:
		return "enderman_scream"
	default:
		return ""
	}
}

// Event is queued by layers and drained by the game loop.
type Event struct {
	Kind   EventKind
	Detail string
}
