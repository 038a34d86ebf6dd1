package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-swipes/internal/platform/tui"
	"github.com/vovakirdan/binary-swipes/internal/registry"
	"github.com/vovakirdan/binary-swipes/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the best runs for a game mode (default: swipes).

Examples:
  swipes scores
  swipes scores swipes_practice
  swipes scores --recent --limit 5
  swipes scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history and best score for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := "swipes"
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'swipes list' to see them", mode)
	}

	store, err := storage.Open(app.settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(mode); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared runs for %s.\n", mode)
		return nil
	}

	var runs []storage.Run
	if flagScoresRecent {
		runs, err = store.RecentRuns(mode, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(mode, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats(mode)
	if err != nil {
		return err
	}

	writeRuns(out, mode, runs, stats)
	return nil
}

func writeRuns(w io.Writer, mode string, runs []storage.Run, stats *storage.Stats) {
	if len(runs) == 0 {
		fmt.Fprintf(w, "No runs recorded for %s yet.\n\n", mode)
		fmt.Fprintln(w, "Play 'swipes play' to set the first high score!")
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("Runs - " + mode)
	tbl.AppendHeader(table.Row{"#", "Score", "Level", "Ended by", "When"})
	for i, r := range runs {
		tbl.AppendRow(table.Row{
			i + 1,
			humanize.Comma(int64(r.Score)),
			r.Level,
			tui.OutcomeLabel(r.Outcome),
			humanize.Time(r.CreatedAt),
		})
	}
	tbl.AppendFooter(table.Row{
		"",
		"best " + humanize.Comma(int64(stats.HighScore)),
		fmt.Sprintf("max %d", stats.BestLevel),
		fmt.Sprintf("%s runs", humanize.Comma(int64(stats.Runs))),
		fmt.Sprintf("avg %.1f", stats.AvgScore),
	})
	tbl.Render()

	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played %s\n", humanize.Time(stats.LastPlayed))
	}
}
