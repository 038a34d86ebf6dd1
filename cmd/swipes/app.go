package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/binary-swipes/internal/config"
	"github.com/vovakirdan/binary-swipes/internal/core"
	"github.com/vovakirdan/binary-swipes/internal/games/swipes"
	"github.com/vovakirdan/binary-swipes/internal/observability"
	"github.com/vovakirdan/binary-swipes/internal/platform/tui"
	"github.com/vovakirdan/binary-swipes/internal/storage"
)

// app holds what every command needs once flags are parsed.
var app struct {
	settings *config.Settings
	table    config.LevelTable
	logger   *log.Logger
}

// loadApp resolves settings, loads the level table and configures the
// game defaults. Runs before every subcommand.
func loadApp(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}

	table, err := config.LoadLevelTable(settings.LevelsPath)
	if err != nil {
		return err
	}

	app.settings = settings
	app.table = table
	app.logger = observability.NewLogger(settings.LogLevel, "swipes")

	swipes.SetDefaults(swipes.Options{
		Table:         &app.table,
		Preset:        settings.Preset(),
		StartLevel:    1,
		CountdownStep: time.Duration(settings.CountdownStepMs) * time.Millisecond,
		Transition:    time.Duration(settings.TransitionMs) * time.Millisecond,
		ResultDelay:   time.Duration(settings.ResultDelayMs) * time.Millisecond,
	})
	return nil
}

// openStore opens the scores database. Failure is logged and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(app.settings.DBPath)
	if err != nil {
		app.logger.Warn("could not open scores database", "path", app.settings.DBPath, "error", err)
		return nil
	}

	opts := swipes.Defaults()
	opts.HighScores = store
	swipes.SetDefaults(opts)
	return store
}

// runRecorder keeps a nil store from becoming a non-nil interface.
func runRecorder(store *storage.Store) tui.RunRecorder {
	if store == nil {
		return nil
	}
	return store
}

func scoreSource(store *storage.Store) tui.ScoreSource {
	if store == nil {
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: app.settings.FPS,
		Seed:     app.settings.Seed,
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
