package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-swipes/internal/games/swipes"
	"github.com/vovakirdan/binary-swipes/internal/platform/tui"
	"github.com/vovakirdan/binary-swipes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and level picker",
	Long: `Start in interactive menu mode.

Pick the campaign, a campaign starting level, or a level to practice.
After a run ends you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Esc          - Back
  Q            - Quit

Examples:
  swipes menu
  swipes menu --fps 30
  swipes menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	seeded := cfg.Seed != 0

	for {
		menuResult, err := tui.RunMenu(&app.table, cfg)
		if err != nil {
			app.logger.Error("menu failed", "error", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(scoreSource(store), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				app.logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.Quit || menuResult.GameID == "" {
			return
		}

		start := menuResult.Level
		if start < 1 {
			start = 1
		}
		swipes.SetStartLevel(start)

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			app.logger.Error("creating game", "id", menuResult.GameID, "error", err)
			continue
		}

		// A fixed --seed replays the same trees every time.
		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, runRecorder(store), cfg); err != nil {
			app.logger.Error("game loop failed", "error", err)
		}
	}
}
