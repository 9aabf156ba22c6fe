package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode and the campaign levels.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	modes := a.reg.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return nil
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range modes {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	if a.cfg.LevelCount() > 0 {
		fmt.Println()
		fmt.Println("Campaign levels:")
		for i, lvl := range a.cfg.Campaign.Levels {
			fmt.Printf("  %2d. %-20s target %-6d p(2)=%.2f\n", i+1, lvl.Name, lvl.Target, lvl.TwoProbability)
		}
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a mode.")
	return nil
}
