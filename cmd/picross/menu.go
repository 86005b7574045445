package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-picross/internal/games/picross"
	"github.com/vovakirdan/tui-picross/internal/mode"
	"github.com/vovakirdan/tui-picross/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick rules, puzzle and modifiers interactively",
	Long: `Start the setup menu. Choose the rules, a random preset or a puzzle,
and toggle any modifiers, then start. After a game ends, press Esc to
return to the menu with the same choices.

Controls:
  Up/Down/j/k       - Navigate
  Left/Right/Enter  - Change the selected row
  Tab               - Scores
  Q                 - Quit

Examples:
  picross menu
  picross menu --levels ./puzzles
  picross menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	pc := loadConfig()
	puzzles := tui.PuzzleChoices(pc, loadLevels())

	store := openStore()
	opts := tuiOptions(store, pc)

	closeLog := redirectEngineLog()
	defer closeLog()

	cat := loadAssets()
	cfg := runtimeConfig()
	var last *tui.MenuResult

	for {
		menuResult, err := tui.RunMenu(pc, puzzles, cfg, last)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(opts, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game := picross.New()
		if menuResult.Base == mode.BaseScore {
			game = picross.NewScore()
		}
		menuResult.Setup.Assets = cat
		game.Configure(menuResult.Setup)
		last = &menuResult

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, opts, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
