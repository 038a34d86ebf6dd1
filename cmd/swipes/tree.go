package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binary-swipes/internal/bst"
	"github.com/vovakirdan/binary-swipes/internal/config"
	"github.com/vovakirdan/binary-swipes/internal/level"
)

var treeCmd = &cobra.Command{
	Use:   "tree [level]",
	Short: "Print a generated level",
	Long: `Generate the tree for a level and print it with the target path marked.

Nodes on the path are marked with *, the target with ◎. The same --seed
always produces the same tree.

Examples:
  swipes tree
  swipes tree 7
  swipes tree 3 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return fmt.Errorf("level must be a positive number, got %q", args[0])
			}
			n = v
		}

		seed := app.settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		table := config.ApplyPreset(app.table, app.settings.Preset())
		gen := level.NewGenerator(&table, rand.New(rand.NewSource(seed)))
		lvl, err := gen.Create(n)
		if err != nil {
			return err
		}

		writeLevel(cmd.OutOrStdout(), lvl, seed)
		return nil
	},
}

func writeLevel(w io.Writer, lvl *level.Level, seed int64) {
	fmt.Fprintf(w, "Level %d  seed %d  target %d  depth %d\n\n", lvl.Number, seed, lvl.Target, lvl.TreeDepth)

	onPath := make(map[int]bool, len(lvl.Path))
	for _, v := range lvl.Path {
		onPath[v] = true
	}

	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	appendNode(l, lvl.Root, "", onPath, lvl.Target)
	fmt.Fprintln(w, l.Render())

	fmt.Fprintf(w, "\nPath:   %s\n", joinInts(lvl.Path, " → "))
	fmt.Fprintf(w, "Swipes: %s\n", swipeString(lvl.Path))
	fmt.Fprintf(w, "Time:   %v approach, %v to answer\n", lvl.ApproachDuration, lvl.SwipeTimeout)
}

// appendNode adds n and its subtree, left child first.
func appendNode(l list.Writer, n *bst.Node, side string, onPath map[int]bool, target int) {
	if n == nil {
		return
	}

	label := side + strconv.Itoa(n.Value)
	switch {
	case n.Value == target:
		label += " ◎"
	case onPath[n.Value]:
		label += " *"
	}
	l.AppendItem(label)

	if n.IsLeaf() {
		return
	}
	l.Indent()
	appendNode(l, n.Left, "L ", onPath, target)
	appendNode(l, n.Right, "R ", onPath, target)
	l.UnIndent()
}

func swipeString(path []int) string {
	var b strings.Builder
	for i := 1; i < len(path); i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		if path[i] < path[i-1] {
			b.WriteString("◀")
		} else {
			b.WriteString("▶")
		}
	}
	return b.String()
}

func joinInts(vs []int, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
