package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-swipes/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows every registered game mode. Mode IDs are used by 'scores'.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No game modes available.")
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"ID", "Title"})
	for _, g := range games {
		tbl.AppendRow(table.Row{g.ID, g.Title})
	}
	tbl.Render()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'swipes play' for the campaign or 'swipes play --practice' to practice.")
}
