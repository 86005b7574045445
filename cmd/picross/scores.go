package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-picross/internal/registry"
	"github.com/vovakirdan/tui-picross/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show score history",
	Long: `Display the best results for a game, or the most recent results of
all games when no game is given.

Examples:
  picross scores
  picross scores picross_score
  picross scores --stats
  picross scores picross --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-game statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results of the game")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresStats:
		printStats(store)
	case len(args) == 0:
		printRecent(store)
	default:
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'picross list' to see available games.")
			store.Close()
			os.Exit(1)
		}
		if flagScoresClear {
			if err := store.ClearScores(gameID); err != nil {
				store.Close()
				fatalf("%v", err)
			}
			fmt.Printf("Cleared results for %s.\n", gameID)
			return
		}
		printTop(store, gameID)
	}
}

func printTop(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("creating game: %v", err)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fatalf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'picross play' to set the first high score!\n")
		return
	}

	printResults(scores)

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Won: %.0f%%\n", stats.HighScore, stats.GamesCount, stats.WinRate()*100)
	}
}

func printRecent(store *storage.Store) {
	results, err := store.RecentResults(flagScoresLimit)
	if err != nil {
		fatalf("retrieving scores: %v", err)
	}

	fmt.Println("Recent games")
	fmt.Println()
	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}
	printResults(results)
}

func printResults(results []storage.GameResult) {
	fmt.Printf("  %-4s  %-6s  %-4s  %-12s  %-10s  %-16s  %s\n", "Rank", "Score", "Won", "Puzzle", "Player", "Date", "Mode")
	fmt.Printf("  %-4s  %-6s  %-4s  %-12s  %-10s  %-16s  %s\n", "----", "-----", "---", "------", "------", "----", "----")
	for i, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-6d  %-4s  %-12s  %-10s  %-16s  %s\n",
			i+1, r.Score, won, r.PuzzleID, r.Player, r.CreatedAt.Format("2006-01-02 15:04"), r.Mode)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fatalf("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %6s  %6s  %6s  %8s  %s\n", "Game", "Games", "Won", "Best", "Average", "Last played")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-14s  %6d  %5.0f%%  %6d  %8.1f  %s\n",
			id, s.GamesCount, s.WinRate()*100, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
