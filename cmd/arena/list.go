package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all game modes registered in the arena.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, m.ID, m.Title, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arena play <id>' to play a mode.")
}
