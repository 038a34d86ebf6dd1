package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-swipes/internal/games/swipes"
	"github.com/vovakirdan/binary-swipes/internal/platform/tui"
	"github.com/vovakirdan/binary-swipes/internal/registry"
)

var (
	flagPractice bool
	flagLevel    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Binary Swipes",
	Long: `Start playing right away.

Controls:
  Left/A/H    - Swipe left (target is smaller)
  Right/D/L   - Swipe right (target is larger)
  Enter/Space - Continue after a result
  R           - Retry after game over
  P           - Pause
  Esc/B       - Leave (while paused or after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 25% more time at every level
  normal - The tuned level table
  hard   - 20% less time at every level
  fixed  - Normal timings, but the level never advances

Examples:
  swipes play
  swipes play --level 5
  swipes play --practice --level 7
  swipes play --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Replay one level instead of advancing")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagLevel < 1 {
		fail("level must be at least 1, got %d", flagLevel)
	}

	gameID := "swipes"
	if flagPractice {
		gameID = "swipes_practice"
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	swipes.SetStartLevel(flagLevel)
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, runRecorder(store), runtimeConfig()); err != nil {
		app.logger.Error("game loop failed", "error", err)
	}
}
