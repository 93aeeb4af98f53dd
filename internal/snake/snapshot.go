package snake

import "github.com/snakelab/gridsnake/internal/core"

// Role distinguishes the head from body segments, primarily so the
// presentation layer can color them differently.
type Role int

const (
	RoleHead Role = iota
	RoleBody
)

// Segment is one occupied cell with its render role.
type Segment struct {
	Cell core.Cell
	Role Role
}

// Snapshot captures everything the presentation layer needs to draw a frame
// without touching simulation internals. Also used for determinism testing.
type Snapshot struct {
	Tick     uint64
	Segments []Segment // Head first
	HasFood  bool
	Food     core.Cell
	Score    int
	Phase    Phase
	Dir      core.Direction
	Length   int
}

// Snapshot returns the current render snapshot.
func (g *Game) Snapshot() Snapshot {
	segs := make([]Segment, len(g.body))
	for i, c := range g.body {
		role := RoleBody
		if i == 0 {
			role = RoleHead
		}
		segs[i] = Segment{Cell: c, Role: role}
	}

	return Snapshot{
		Tick:     g.tick,
		Segments: segs,
		HasFood:  g.hasFood,
		Food:     g.food,
		Score:    g.score,
		Phase:    g.phase,
		Dir:      g.dir,
		Length:   len(g.body),
	}
}
