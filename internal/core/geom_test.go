package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Direction
	}{
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, got, tc.expected)
		}
		// Opposite is an involution
		if got := tc.dir.Opposite().Opposite(); got != tc.dir {
			t.Errorf("%v.Opposite().Opposite() = %v, expected %v", tc.dir, got, tc.dir)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUp, 0, 1},
		{DirDown, 0, -1},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d, %d), expected (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 3, Y: -2}
	got := c.Add(-1, 5)
	if got != (Cell{X: 2, Y: 3}) {
		t.Errorf("Add(-1, 5) = %v, expected {2 3}", got)
	}
}

func TestBoundsContains(t *testing.T) {
	b := NewBounds(24, 24) // [-12, 12) x [-12, 12)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"min corner (inclusive)", Cell{-12, -12}, true},
		{"max corner (exclusive)", Cell{12, 12}, false},
		{"right edge (exclusive)", Cell{12, 0}, false},
		{"just inside right edge", Cell{11, 0}, true},
		{"top edge (exclusive)", Cell{0, 12}, false},
		{"just inside top edge", Cell{0, 11}, true},
		{"outside left", Cell{-13, 0}, false},
		{"outside bottom", Cell{0, -13}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.cell); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestBoundsDimensions(t *testing.T) {
	b := NewBounds(24, 16)

	if b.Width() != 24 {
		t.Errorf("Width() = %d, expected 24", b.Width())
	}
	if b.Height() != 16 {
		t.Errorf("Height() = %d, expected 16", b.Height())
	}
	if b.Area() != 384 {
		t.Errorf("Area() = %d, expected 384", b.Area())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
