// swipes is Binary Swipes for the terminal: numbers from a binary search
// tree fly toward you and you swipe left or right to reach the target.
//
// Usage:
//
//	swipes play              - Play the campaign
//	swipes menu              - Pick a mode and level interactively
//	swipes serve             - Start SSH server for remote play
//	swipes scores [mode]     - Show the best runs
//	swipes levels            - Show the level table
//	swipes tree [level]      - Print a generated level
//	swipes list              - List game modes
//
// Global flags:
//
//	--config <path>      - Settings file (default: .swipes.yaml in CWD or $HOME)
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.swipes/scores.db)
//	--difficulty <name>  - easy, normal, hard or fixed
//	--levels <path>      - Custom level table YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swipes",
	Short: "Binary Swipes - find the number before time runs out",
	Long: `Binary Swipes drops you at the root of a balanced binary search tree.
Each number flies in from the horizon; swipe left if the target is
smaller, right if it is larger. Reach the target to clear the level.

Available commands:
  play     - Play directly
  menu     - Interactive mode and level picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  levels   - Show the level table
  tree     - Print a generated level
  list     - List game modes

Examples:
  swipes play
  swipes play --practice --level 4
  swipes menu --difficulty hard
  swipes serve --addr :2222 --metrics :9100
  swipes tree 7 --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadApp(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Settings file (YAML)")
	pf.Int("fps", 60, "Tick rate (frames per second)")
	pf.Int64("seed", 0, "RNG seed (0 = random based on time)")
	pf.String("db", "~/.swipes/scores.db", "Path to scores database")
	pf.String("difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	pf.String("levels", "", "Path to a custom level table YAML")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(treeCmd)
}
