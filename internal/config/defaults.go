package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 24x24 arena, a length-2
// snake at the center facing up, and a 75 ms move interval.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  24,
			Height: 24,
		},
		Snake: SnakeConfig{
			StartX:           0,
			StartY:           0,
			InitialLength:    2,
			InitialDirection: "up",
		},
		Timing: TimingConfig{
			MoveInterval: 0.075,
		},
		Render: RenderConfig{
			CellWidth: 2,
		},
	}
}
