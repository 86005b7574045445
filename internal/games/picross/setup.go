package picross

import (
	"strconv"
	"sync"

	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/levels"
	"github.com/vovakirdan/tui-picross/internal/mode"
)

// Setup chooses the puzzle and the modifiers for the next Reset.
type Setup struct {
	// Modes selects the modifiers and their tuning. Base, GridSize and Seed
	// are filled in by the game.
	Modes mode.Config
	// Level is the puzzle to play. Nil generates a random one from Preset.
	Level  *levels.Level
	Preset config.Preset
	// Assets is checked by the modes; nil uses the embedded manifest.
	Assets assets.Catalog
}

// DefaultSetup returns a random puzzle of the default preset with no
// modifiers.
func DefaultSetup() Setup {
	cfg := config.DefaultPicrossConfig()
	preset, err := cfg.Difficulty.Preset("")
	if err != nil {
		preset = config.Preset{Size: 5, Density: 0.6}
	}
	return Setup{
		Modes:  mode.Config{Tuning: cfg.Modes},
		Preset: preset,
	}
}

// PuzzleID names the puzzle for score records.
func (s Setup) PuzzleID() string {
	if s.Level != nil {
		return s.Level.ID
	}
	return "random-" + strconv.Itoa(s.Preset.Size)
}

// Package-level default picked up by New.
var (
	setupMu      sync.Mutex
	defaultSetup = DefaultSetup()
)

// SetSetup sets the setup used by games created afterwards.
func SetSetup(s Setup) {
	setupMu.Lock()
	defer setupMu.Unlock()
	defaultSetup = s
}

// GetSetup returns the current default setup.
func GetSetup() Setup {
	setupMu.Lock()
	defer setupMu.Unlock()
	return defaultSetup
}
