// Package config provides YAML-based configuration loading for the picross
// game: modifier tunables, difficulty presets and file locations.
package config

// PicrossConfig contains all configuration for the game.
type PicrossConfig struct {
	Modes       ModesConfig       `yaml:"modes"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// ModesConfig holds the tunables of every modifier mode.
// All durations are in seconds of game time.
type ModesConfig struct {
	Time     TimeConfig     `yaml:"time"`
	Torch    TorchConfig    `yaml:"torch"`
	Spiders  SpidersConfig  `yaml:"spiders"`
	Alchemy  AlchemyConfig  `yaml:"alchemy"`
	Disco    DiscoConfig    `yaml:"disco"`
	Enderman EndermanConfig `yaml:"enderman"`
}

// TimeConfig defines health decay.
type TimeConfig struct {
	DecayInterval float64 `yaml:"decay_interval"`
}

// TorchConfig defines the visible area around the cursor.
type TorchConfig struct {
	Radius int `yaml:"radius"`
}

// SpidersConfig defines spider spawning and biting.
type SpidersConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"`
	BiteDelay     float64 `yaml:"bite_delay"`
	MaxSpiders    int     `yaml:"max_spiders"`
}

// AlchemyConfig defines potion spawning and effects.
type AlchemyConfig struct {
	SpawnInterval   float64 `yaml:"spawn_interval"`
	Lifetime        float64 `yaml:"lifetime"`
	FortuneDuration float64 `yaml:"fortune_duration"`
}

// DiscoConfig defines the beat and fever cycle.
type DiscoConfig struct {
	BeatInterval  float64 `yaml:"beat_interval"`
	PaletteSize   int     `yaml:"palette_size"`
	FeverInterval float64 `yaml:"fever_interval"`
	FeverDuration float64 `yaml:"fever_duration"`
	FeverBonus    int     `yaml:"fever_bonus"`
}

// EndermanConfig defines when the enderman shows up.
type EndermanConfig struct {
	AppearInterval float64 `yaml:"appear_interval"`
	StayDuration   float64 `yaml:"stay_duration"`
}

// DifficultyConfig maps preset names to puzzle parameters.
type DifficultyConfig struct {
	Default string            `yaml:"default"`
	Presets map[string]Preset `yaml:"presets"`
}

// Preset describes a randomly generated puzzle.
type Preset struct {
	Size    int     `yaml:"size"`
	Density float64 `yaml:"density"` // Probability that a cell is part of the solution
}

// LeaderboardConfig locates the plain-text leaderboard.
type LeaderboardConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}
