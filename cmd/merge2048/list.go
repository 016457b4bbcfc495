package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmelnik/merge2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows all registered board variants, built-in and from config.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	// Pick up custom variants from config before listing.
	//nolint:errcheck // A broken config just means built-ins only
	loadConfig()

	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-8s  %s\n", maxIDLen, "ID", "Board", "Target", "Title")
	fmt.Printf("  %-*s  %-6s  %-8s  %s\n", maxIDLen, "--", "-----", "------", "-----")

	for _, v := range variants {
		board := fmt.Sprintf("%dx%d", v.GridSize, v.GridSize)
		fmt.Printf("  %-*s  %-6s  %-8d  %s\n", maxIDLen, v.ID, board, v.WinTarget, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'merge2048 play <id>' to play a variant.")
}
