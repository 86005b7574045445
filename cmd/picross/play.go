package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-picross/internal/games/picross"
	"github.com/vovakirdan/tui-picross/internal/levels"
	"github.com/vovakirdan/tui-picross/internal/mode"
	"github.com/vovakirdan/tui-picross/internal/platform/tui"
	"github.com/vovakirdan/tui-picross/internal/storage"
)

var (
	flagBase     string
	flagPreset   string
	flagFile     string
	flagModifier mode.Config
)

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play a puzzle",
	Long: `Start playing a puzzle. Without a puzzle id a random puzzle is generated
from the difficulty preset.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Mark or unmark a cell
  E            - Drink potion (Alchemy)
  X            - Squash spider (Spiders)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Back (when paused or over)
  Ctrl+S       - Save screenshot
  Q/Ctrl+C     - Quit

Rules:
  mistakes  - Three wrong moves and the game is lost
  score     - Start at 1000 points; correct marks earn, wrong ones cost

Examples:
  picross play heart
  picross play --rules score --preset hard
  picross play creeper --time --spiders
  picross play --file ./my-puzzle.yaml --torch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBase, "rules", "mistakes", "Base rules: mistakes, score")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset for random puzzles")
	playCmd.Flags().StringVar(&flagFile, "file", "", "Play a puzzle file (.txt, .grid, .yaml)")
	playCmd.Flags().BoolVar(&flagModifier.Time, "time", false, "Hearts drain over time")
	playCmd.Flags().BoolVar(&flagModifier.Spiders, "spiders", false, "Spiders web hint lines")
	playCmd.Flags().BoolVar(&flagModifier.Alchemy, "alchemy", false, "Potions appear on the board")
	playCmd.Flags().BoolVar(&flagModifier.Torch, "torch", false, "Only cells near the cursor are visible")
	playCmd.Flags().BoolVar(&flagModifier.DiscoFever, "disco", false, "Disco fever bonus rounds")
	playCmd.Flags().BoolVar(&flagModifier.Enderman, "enderman", false, "Don't play while the enderman stares")
}

func runPlay(_ *cobra.Command, args []string) {
	base, err := mode.ParseBase(flagBase)
	if err != nil {
		fatalf("%v", err)
	}
	pc := loadConfig()

	setup := picross.Setup{Modes: flagModifier}
	setup.Modes.Tuning = pc.Modes
	setup.Assets = loadAssets()

	switch {
	case flagFile != "":
		lvl, err := levels.ReadFile(flagFile)
		if err != nil {
			fatalf("%v", err)
		}
		setup.Level = &lvl
	case len(args) == 1:
		lvl, ok := findLevel(loadLevels(), args[0])
		if !ok {
			fatalf("unknown puzzle %q\nRun 'picross list' to see available puzzles.", args[0])
		}
		setup.Level = lvl
	default:
		preset, err := pc.Difficulty.Preset(flagPreset)
		if err != nil {
			fatalf("%v", err)
		}
		setup.Preset = preset
	}

	game := picross.New()
	if base == mode.BaseScore {
		game = picross.NewScore()
	}
	game.Configure(setup)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	closeLog := redirectEngineLog()
	defer closeLog()

	_, runErr := tui.Run(game, tuiOptions(store, pc), runtimeConfig())
	if runErr != nil {
		fatalf("%v", runErr)
	}

	if game.Err() != nil {
		fatalf("%v", game.Err())
	}
	printPuzzleBest(store, game)
}

// printPuzzleBest reports the best recorded solve of the puzzle just played.
func printPuzzleBest(store *storage.Store, game *picross.Game) {
	if store == nil {
		return
	}
	best, err := store.PuzzleBest(game.PuzzleID(), game.ModeName())
	if err != nil || best == nil {
		return
	}
	fmt.Printf("Best %s on %s: %d points, %d mistakes, %ds\n",
		best.Mode, best.PuzzleID, best.Score, best.Mistakes, best.Duration)
}
