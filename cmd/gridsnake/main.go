// gridsnake is a terminal snake game.
//
// Usage:
//
//	gridsnake play           - Play in the local terminal
//	gridsnake serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "gridsnake - Snake in your terminal",
	Long: `gridsnake is a grid-based snake game for the terminal.

Steer with the arrow keys or WASD, eat the red food to grow,
and don't hit the walls or yourself.

Examples:
  gridsnake play
  gridsnake play --fps 30 --config ./my-snake.yaml
  gridsnake serve --ssh :2222`,
	// Running the bare command starts a game
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
