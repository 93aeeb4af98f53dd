package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snakelab/gridsnake/internal/config"
	"github.com/snakelab/gridsnake/internal/core"
	"github.com/snakelab/gridsnake/internal/platform/tui"
	"github.com/snakelab/gridsnake/internal/snake"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the local terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD - Steer
  P/Esc       - Pause
  R/Space     - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  gridsnake play
  gridsnake play --fps 30
  gridsnake play --config ./my-snake.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Load game configuration
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(snake.New(gameCfg), rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
