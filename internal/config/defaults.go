package config

import (
	_ "embed"
)

//go:embed defaults/picross.yaml
var defaultPicrossYAML []byte

// DefaultPicrossConfig returns the hardcoded default configuration.
// It mirrors defaults/picross.yaml.
func DefaultPicrossConfig() PicrossConfig {
	return PicrossConfig{
		Modes: ModesConfig{
			Time:  TimeConfig{DecayInterval: 10.0},
			Torch: TorchConfig{Radius: 2},
			Spiders: SpidersConfig{
				SpawnInterval: 15.0,
				BiteDelay:     8.0,
				MaxSpiders:    3,
			},
			Alchemy: AlchemyConfig{
				SpawnInterval:   20.0,
				Lifetime:        10.0,
				FortuneDuration: 15.0,
			},
			Disco: DiscoConfig{
				BeatInterval:  0.5,
				PaletteSize:   6,
				FeverInterval: 30.0,
				FeverDuration: 5.0,
				FeverBonus:    100,
			},
			Enderman: EndermanConfig{
				AppearInterval: 40.0,
				StayDuration:   6.0,
			},
		},
		Difficulty: DifficultyConfig{
			Default: "normal",
			Presets: map[string]Preset{
				"easy":   {Size: 5, Density: 0.6},
				"normal": {Size: 8, Density: 0.55},
				"hard":   {Size: 12, Density: 0.5},
				"expert": {Size: 15, Density: 0.5},
			},
		},
		Leaderboard: LeaderboardConfig{
			Path: "~/.picross/leaderboard.txt",
			Size: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPicrossYAML
}
