package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/core"
	"github.com/vovakirdan/tui-picross/internal/leaderboard"
	"github.com/vovakirdan/tui-picross/internal/levels"
	"github.com/vovakirdan/tui-picross/internal/picross"
	"github.com/vovakirdan/tui-picross/internal/platform/tui"
	"github.com/vovakirdan/tui-picross/internal/storage"
)

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads picross.yaml following the usual search order.
func loadConfig() config.PicrossConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	return cfg
}

// loadLevels returns the builtin puzzles followed by those in --levels.
func loadLevels() []levels.Level {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		fatalf("%v", err)
	}
	if flagLevelsDir == "" {
		return lvls
	}
	extra, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		fatalf("%v", err)
	}
	return append(lvls, extra...)
}

// loadAssets reads the --assets manifest. It returns nil when the flag is
// unset so games fall back to the embedded manifest.
func loadAssets() assets.Catalog {
	if flagAssets == "" {
		return nil
	}
	m, err := assets.LoadManifest(flagAssets)
	if err != nil {
		fatalf("%v", err)
	}
	return m
}

// findLevel returns the puzzle with the given id.
func findLevel(lvls []levels.Level, id string) (*levels.Level, bool) {
	for i := range lvls {
		if lvls[i].ID == id {
			return &lvls[i], true
		}
	}
	return nil, false
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// localPlayer names the local user for the leaderboard.
func localPlayer() string {
	name := strings.Join(strings.Fields(os.Getenv("USER")), "_")
	if leaderboard.ValidateName(name) != nil {
		return "player"
	}
	return name
}

// tuiOptions says where local games are recorded.
func tuiOptions(store *storage.Store, pc config.PicrossConfig) tui.Options {
	return tui.Options{
		Store:           store,
		Player:          localPlayer(),
		LeaderboardPath: pc.Leaderboard.Path,
		LeaderboardSize: pc.Leaderboard.Size,
	}
}

// redirectEngineLog keeps grid diagnostics off the alternate screen by
// sending them to ~/.picross/picross.log. The returned func closes the file.
func redirectEngineLog() func() {
	path, err := config.ExpandHome("~/.picross/picross.log")
	if err != nil {
		return func() {}
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "picross",
	})
	if flagVerbose {
		l.SetLevel(log.DebugLevel)
	}
	picross.SetLogger(l)
	return func() { f.Close() }
}
