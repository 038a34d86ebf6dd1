package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/binary-swipes/internal/bst"
	"github.com/vovakirdan/binary-swipes/internal/config"
)

var flagLevelsYAML bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Print the level table in effect, after the difficulty preset is applied.

With --yaml the table is printed as YAML, ready to be edited and passed
back with --levels.

Examples:
  swipes levels
  swipes levels --difficulty easy
  swipes levels --yaml > my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		effective := config.ApplyPreset(app.table, app.settings.Preset())
		if flagLevelsYAML {
			return writeLevelsYAML(cmd.OutOrStdout(), effective)
		}
		writeLevelsTable(cmd.OutOrStdout(), effective, app.settings.Preset())
		return nil
	},
}

func init() {
	levelsCmd.Flags().BoolVar(&flagLevelsYAML, "yaml", false, "Print the table as YAML")
}

func writeLevelsYAML(w io.Writer, t config.LevelTable) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode level table: %w", err)
	}
	return enc.Close()
}

func writeLevelsTable(w io.Writer, t config.LevelTable, preset config.DifficultyPreset) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("Levels (%s)", preset))
	tbl.AppendHeader(table.Row{"Level", "Depth", "Nodes", "Range", "Approach", "Timeout"})

	row := func(label any, c config.LevelConfig) table.Row {
		return table.Row{
			label,
			c.TreeDepth,
			bst.NodeCount(c.TreeDepth),
			fmt.Sprintf("%d-%d", c.MinValue, c.MaxValue),
			c.Approach().Round(time.Millisecond),
			c.SwipeTimeout().Round(time.Millisecond),
		}
	}

	for _, c := range t.Levels {
		tbl.AppendRow(row(c.Level, c))
	}
	tbl.AppendSeparator()
	tbl.AppendRow(row(fmt.Sprintf("%d+", t.Len()+1), t.Expert))

	if !preset.Progresses() {
		tbl.AppendFooter(table.Row{"", "", "", "", "fixed:", "level never advances"})
	}
	tbl.Render()
}
