package snake

import "github.com/snakelab/gridsnake/internal/core"

// spawnFood places food at a uniformly random free cell. Cells occupied by
// the snake are excluded, so food is always visible and reachable. On a
// fully occupied grid the food is deactivated instead of looping forever.
func (g *Game) spawnFood() {
	free := make([]core.Cell, 0, g.bounds.Area()-len(g.body))
	for y := g.bounds.MinY; y < g.bounds.MaxY; y++ {
		for x := g.bounds.MinX; x < g.bounds.MaxX; x++ {
			c := core.Cell{X: x, Y: y}
			if !g.isSnakeAt(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		g.hasFood = false
		return
	}

	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}

// Food returns the active food cell and whether one exists.
func (g *Game) Food() (core.Cell, bool) {
	return g.food, g.hasFood
}
