// Package config provides YAML-based game configuration loading for
// gridsnake. All values are fixed at startup; nothing is runtime-tunable.
package config

import (
	"fmt"
	"time"

	"github.com/snakelab/gridsnake/internal/core"
)

// Config contains all configuration for the snake game.
type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Snake  SnakeConfig  `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
	Render RenderConfig `yaml:"render"`
}

// ArenaConfig defines the grid dimensions in cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the snake's starting state.
type SnakeConfig struct {
	StartX           int    `yaml:"start_x"`
	StartY           int    `yaml:"start_y"`
	InitialLength    int    `yaml:"initial_length"`
	InitialDirection string `yaml:"initial_direction"`
}

// TimingConfig defines the fixed movement cadence.
type TimingConfig struct {
	MoveInterval float64 `yaml:"move_interval"` // Seconds between moves
}

// RenderConfig defines presentation-only parameters.
type RenderConfig struct {
	CellWidth int `yaml:"cell_width"` // Terminal columns per grid cell
}

// MoveInterval returns the movement interval as a duration.
func (c Config) MoveInterval() time.Duration {
	return time.Duration(c.Timing.MoveInterval * float64(time.Second))
}

// Direction parses the configured initial direction.
func (c Config) Direction() (core.Direction, error) {
	return ParseDirection(c.Snake.InitialDirection)
}

// ParseDirection converts a config string to a core.Direction.
func ParseDirection(s string) (core.Direction, error) {
	switch s {
	case "left":
		return core.DirLeft, nil
	case "up":
		return core.DirUp, nil
	case "right":
		return core.DirRight, nil
	case "down":
		return core.DirDown, nil
	default:
		return 0, fmt.Errorf("config: unknown direction %q", s)
	}
}

// Validate checks that the configuration can produce a playable game.
func (c Config) Validate() error {
	if c.Arena.Width < 4 || c.Arena.Height < 4 {
		return fmt.Errorf("config: arena %dx%d is too small (minimum 4x4)", c.Arena.Width, c.Arena.Height)
	}
	if c.Snake.InitialLength < 2 {
		return fmt.Errorf("config: initial_length %d is below the minimum of 2", c.Snake.InitialLength)
	}

	dir, err := c.Direction()
	if err != nil {
		return err
	}

	// The whole starting snake must lie inside the arena.
	bounds := core.NewBounds(c.Arena.Width, c.Arena.Height)
	dx, dy := dir.Delta()
	start := core.Cell{X: c.Snake.StartX, Y: c.Snake.StartY}
	for i := 0; i < c.Snake.InitialLength; i++ {
		cell := start.Add(-i*dx, -i*dy)
		if !bounds.Contains(cell) {
			return fmt.Errorf("config: starting snake segment (%d, %d) is outside the arena", cell.X, cell.Y)
		}
	}

	if c.Timing.MoveInterval <= 0 {
		return fmt.Errorf("config: move_interval %v must be positive", c.Timing.MoveInterval)
	}
	if c.Render.CellWidth < 1 {
		return fmt.Errorf("config: cell_width %d must be at least 1", c.Render.CellWidth)
	}
	return nil
}
