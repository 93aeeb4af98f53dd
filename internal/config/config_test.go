package config

import (
	"testing"
	"time"

	"github.com/snakelab/gridsnake/internal/core"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}

	if cfg.Arena.Width != 24 || cfg.Arena.Height != 24 {
		t.Errorf("default arena = %dx%d, expected 24x24", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Snake.InitialLength != 2 {
		t.Errorf("default initial_length = %d, expected 2", cfg.Snake.InitialLength)
	}
	if cfg.MoveInterval() != 75*time.Millisecond {
		t.Errorf("default MoveInterval() = %v, expected 75ms", cfg.MoveInterval())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected core.Direction
		ok       bool
	}{
		{"left", core.DirLeft, true},
		{"up", core.DirUp, true},
		{"right", core.DirRight, true},
		{"down", core.DirDown, true},
		{"Up", 0, false},
		{"north", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		dir, err := ParseDirection(tc.input)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseDirection(%q) failed: %v", tc.input, err)
			} else if dir != tc.expected {
				t.Errorf("ParseDirection(%q) = %v, expected %v", tc.input, dir, tc.expected)
			}
		} else if err == nil {
			t.Errorf("ParseDirection(%q) should fail", tc.input)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := Default()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"arena too narrow", func(c *Config) { c.Arena.Width = 3 }},
		{"arena too short", func(c *Config) { c.Arena.Height = 3 }},
		{"length below minimum", func(c *Config) { c.Snake.InitialLength = 1 }},
		{"unknown direction", func(c *Config) { c.Snake.InitialDirection = "sideways" }},
		{"start outside arena", func(c *Config) { c.Snake.StartX = 100 }},
		{"tail outside arena", func(c *Config) {
			c.Snake.StartY = -(c.Arena.Height / 2) // Tail trails below the bottom edge
		}},
		{"zero move interval", func(c *Config) { c.Timing.MoveInterval = 0 }},
		{"negative move interval", func(c *Config) { c.Timing.MoveInterval = -0.1 }},
		{"zero cell width", func(c *Config) { c.Render.CellWidth = 0 }},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("baseline config should validate, got: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
