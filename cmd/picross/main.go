// picross is a terminal nonogram game with stackable modifier modes.
//
// Usage:
//
//	picross list                 - List games and puzzles
//	picross play [puzzle]        - Play a puzzle (random if omitted)
//	picross menu                 - Pick rules, puzzle and modifiers interactively
//	picross serve                - Start SSH server for remote play
//	picross scores [game]        - Show score history
//	picross leaderboard          - Show or submit to the leaderboard
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible puzzles
//	--db <path>      - Set database path (default: ~/.picross/scores.db)
//	--config <path>  - Use a custom picross.yaml
//	--levels <dir>   - Add a directory of puzzle files
//	--assets <path>  - Check modes against a custom asset manifest
//	--verbose        - Log debug output
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-picross/internal/games/picross"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagAssets    string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picross",
	Short: "Picross - solve nonograms in your terminal",
	Long: `Picross is a terminal nonogram game. Fill the cells the row and column
hints describe, under three-strike rules or for points, and stack modifiers
such as Time, Spiders, Alchemy, Torch, Disco Fever and Enderman on top.

Available commands:
  list         - Show games and puzzles
  play         - Play a puzzle directly
  menu         - Interactive setup menu
  serve        - Start SSH server for remote play
  scores       - View score history
  leaderboard  - View or submit to the leaderboard

Examples:
  picross list
  picross play heart
  picross play --preset hard --time --torch
  picross menu
  picross serve --ssh :2222
  picross scores picross_score`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.picross/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom picross.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra puzzle files")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset manifest (default: embedded)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(leaderboardCmd)
}
