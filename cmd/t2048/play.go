package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Without a mode, a menu picks one.

Modes:
  2048          - Campaign: reach each level's target tile
  2048_endless  - Endless: play until the board locks up

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Ctrl+Y            - Copy the board to the clipboard
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play 2048 --level 3
  t2048 play 2048_endless --seed 7
  t2048 play 2048 --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-based)")
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	rc := runtimeConfig()
	sel := tui.Selection{Level: flagLevel}

	if len(args) == 1 {
		sel.GameID = args[0]
		if !a.reg.Exists(sel.GameID) {
			return fmt.Errorf("unknown mode %q (run 't2048 list' to see available modes)", sel.GameID)
		}
	} else if flagLevel > 0 {
		sel.GameID = t2048.CampaignID
	} else {
		res, err := tui.RunMenu(a.reg, a.cfg, rc)
		if err != nil {
			return err
		}
		rc = res.Config

		if res.WantsScoreboard {
			store := a.openStore()
			if store != nil {
				defer store.Close()
			}
			_, err := tui.RunScoreboard(a.reg, store, rc.ScreenW, rc.ScreenH)
			return err
		}
		if res.Selection == nil {
			return nil
		}
		sel = *res.Selection
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	return a.play(sel, rc, store)
}
