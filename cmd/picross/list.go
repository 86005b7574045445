package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-picross/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and puzzles",
	Long:  `Shows the registered games, the difficulty presets and every puzzle found.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Description)
	}

	pc := loadConfig()
	fmt.Println()
	fmt.Println("Presets:")
	fmt.Println()
	for _, name := range pc.Difficulty.PresetNames() {
		p, err := pc.Difficulty.Preset(name)
		if err != nil {
			continue
		}
		marker := ""
		if name == pc.Difficulty.Default {
			marker = " (default)"
		}
		fmt.Printf("  %-8s  %2dx%-2d  density %.2f%s\n", name, p.Size, p.Size, p.Density, marker)
	}

	lvls := loadLevels()
	fmt.Println()
	fmt.Println("Puzzles:")
	fmt.Println()
	if len(lvls) == 0 {
		fmt.Println("  No puzzles found.")
	}
	maxIDLen = 2
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}
	for _, l := range lvls {
		fmt.Printf("  %-*s  %2dx%-2d  %s\n", maxIDLen, l.ID, l.Size, l.Size, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'picross play <puzzle>' to play a puzzle.")
}
