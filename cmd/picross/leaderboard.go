package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/leaderboard"
)

var flagBoardFile string

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [name score]",
	Short: "Show or submit to the leaderboard",
	Long: `Print the leaderboard, or submit a score to it. The leaderboard keeps
the best scores of won score-rule games, one "<name> <score>" per line.

Examples:
  picross leaderboard
  picross leaderboard alex 1800
  picross leaderboard --file ./board.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or <name> <score>, got %d", len(args))
		}
		return nil
	},
	Run: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&flagBoardFile, "file", "", "Leaderboard file (default from config)")
}

func runLeaderboard(_ *cobra.Command, args []string) {
	pc := loadConfig()
	path := flagBoardFile
	if path == "" {
		path = pc.Leaderboard.Path
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		fatalf("%v", err)
	}

	var board *leaderboard.Board
	if len(args) == 2 {
		score, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			fatalf("invalid score %q", args[1])
		}
		var placed bool
		board, placed, err = leaderboard.Submit(path, pc.Leaderboard.Size, args[0], score)
		if err != nil {
			fatalf("%v", err)
		}
		if placed {
			fmt.Printf("%s entered the leaderboard with %d.\n\n", args[0], score)
		} else {
			fmt.Printf("%d is not enough for the top %d.\n\n", score, board.Size())
		}
	} else {
		board, err = leaderboard.Load(path, pc.Leaderboard.Size)
		if err != nil {
			fatalf("%v", err)
		}
	}

	fmt.Printf("Leaderboard (top %d)\n\n", board.Size())
	if len(board.Entries) == 0 {
		fmt.Println("No entries yet.")
		return
	}
	for i, e := range board.Entries {
		fmt.Printf("  %d. %-16s %d\n", i+1, e.Name, e.Score)
	}
}
