// panelpon is a terminal rendition of the classic panel-matching puzzle:
// swap blocks, line up three of the same color, and chain clears while
// the stack rises from below.
//
// Usage:
//
//	panelpon list              - List available modes
//	panelpon play <mode>       - Play a mode
//	panelpon menu              - Start menu to pick modes interactively
//	panelpon serve             - Start SSH server for remote play
//	panelpon scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.panelpon/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-panelpon/internal/games/panelpon"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "panelpon",
	Short: "Panelpon - Panel-matching puzzle in your terminal",
	Long: `Panelpon is a terminal puzzle game. The stack rises from the bottom
of the board; swap adjacent blocks to line up three or more of the same
color and clear them before the stack reaches the top.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  panelpon list
  panelpon play panelpon
  panelpon menu
  panelpon serve --ssh :2222
  panelpon scores panelpon`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.panelpon/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
