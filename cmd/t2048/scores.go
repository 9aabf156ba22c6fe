package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 results for a mode (campaign by default).

Examples:
  t2048 scores
  t2048 scores 2048_endless
  t2048 scores --recent 5
  t2048 scores 2048_endless --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var (
	flagRecent int
	flagClear  bool
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores interactively",
	RunE:  runScoreboard,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list the N most recent games across all modes")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	gameID := t2048.CampaignID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !a.reg.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 't2048 list' to see available modes)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		a.logger.Info("scores cleared", "mode", gameID)
		fmt.Printf("Cleared all scores for %s.\n", a.reg.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", a.reg.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, r.Score, r.MaxTile, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Best tile: %d  Games: %d\n", stats.HighScore, stats.BestTile, stats.GamesCount)
	}

	if flagRecent > 0 {
		return printRecent(a, store, flagRecent)
	}
	return nil
}

func printRecent(a *app, store *storage.Store, n int) error {
	recent, err := store.RecentResults(n)
	if err != nil {
		return fmt.Errorf("retrieving recent games: %w", err)
	}

	fmt.Println()
	fmt.Println("Recent games:")
	for _, r := range recent {
		fmt.Printf("  %s  %-20s  %-8d  tile %d\n", r.CreatedAt.Format("2006-01-02 15:04"), a.reg.Title(r.GameID), r.Score, r.MaxTile)
	}
	return nil
}

func runScoreboard(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()
	_, err = tui.RunScoreboard(a.reg, store, rc.ScreenW, rc.ScreenH)
	return err
}
