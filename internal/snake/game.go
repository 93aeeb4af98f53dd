// Package snake implements the grid-snake simulation. It contains pure game
// logic with no terminal dependencies; the platform layer maps input, drives
// frames, and displays the rendered screen buffer.
package snake

import (
	"math/rand"
	"time"

	"github.com/snakelab/gridsnake/internal/config"
	"github.com/snakelab/gridsnake/internal/core"
)

// Phase is the current game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game holds the complete simulation state: the snake body, the food cell,
// the score, and the phase, advanced in fixed move intervals.
type Game struct {
	cfg    config.Config
	bounds core.Bounds
	rng    *rand.Rand
	tick   uint64

	// Snake state
	body    []core.Cell // Head at index 0
	dir     core.Direction
	nextDir core.Direction // Buffered direction for the next move
	growing bool           // If true, don't drop the tail on the next move

	// Food state
	food    core.Cell
	hasFood bool

	score int
	phase Phase
	timer moveTimer

	// Screen dimensions (for restart and too-small detection)
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a snake game with the given configuration.
// Reset must be called before stepping.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes or restarts the game: a fresh snake at the configured
// start, score zero, new food, phase Playing. The full reset happens before
// the phase transition so no stale state survives a restart.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.phase = PhasePlaying
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.bounds = core.NewBounds(g.cfg.Arena.Width, g.cfg.Arena.Height)
	g.timer = newMoveTimer(g.cfg.MoveInterval())
	g.checkScreenSize()

	g.initSnake()
	g.spawnFood()
}

// checkScreenSize flags the game as unplayable when the terminal cannot fit
// the arena plus HUD and border.
func (g *Game) checkScreenSize() {
	requiredW := g.bounds.Width()*g.cfg.Render.CellWidth + 2
	requiredH := g.bounds.Height() + hudHeight + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// initSnake places the starting snake: head at the configured cell, the
// remaining segments trailing opposite the initial direction.
func (g *Game) initSnake() {
	dir, err := g.cfg.Direction()
	if err != nil {
		dir = core.DirUp // Config was validated at load; keep a safe fallback
	}
	g.dir = dir
	g.nextDir = dir
	g.growing = false

	dx, dy := dir.Delta()
	head := core.Cell{X: g.cfg.Snake.StartX, Y: g.cfg.Snake.StartY}
	g.body = g.body[:0]
	for i := 0; i < g.cfg.Snake.InitialLength; i++ {
		g.body = append(g.body, head.Add(-i*dx, -i*dy))
	}
}

// Step advances the game by one frame. The elapsed wall-clock time since the
// previous frame drives the fixed-interval move timer, so the frame rate is
// decoupled from the movement tick.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.tick++

	// Restart is the only transition out of GameOver.
	if in.Has(core.ActionRestart) && g.phase == PhaseGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Pause toggles only between Playing and Paused.
	if in.Has(core.ActionPause) {
		switch g.phase {
		case PhasePlaying:
			g.phase = PhasePaused
		case PhasePaused:
			g.phase = PhasePlaying
		}
	}

	if g.phase != PhasePlaying || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyDirection(in)

	for i := 0; i < g.timer.advance(elapsed); i++ {
		g.move()
		if g.phase != PhasePlaying {
			break
		}
	}

	return core.StepResult{State: g.State()}
}

// applyDirection buffers a requested direction for the next move.
// A request opposite to the current movement direction is ignored, which
// prevents the head from reversing into the adjacent segment.
func (g *Game) applyDirection(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
		if !in.Has(a) {
			continue
		}
		requested, _ := a.Direction()
		if requested != g.dir.Opposite() {
			g.nextDir = requested
		}
	}
}

// move advances the snake one cell: it computes the new head, evaluates the
// rules against the pre-move body, then shifts each segment into the cell
// vacated by its predecessor.
func (g *Game) move() {
	if len(g.body) == 0 {
		return
	}

	g.dir = g.nextDir
	dx, dy := g.dir.Delta()
	newHead := g.body[0].Add(dx, dy)

	outcome := g.evaluateMove(newHead)
	if outcome == OutcomeGameOver {
		// Game over takes precedence: no growth, no score, no movement.
		g.phase = PhaseGameOver
		return
	}

	g.body = append([]core.Cell{newHead}, g.body...)

	if outcome == OutcomeAte {
		g.score++
		g.growing = true
		g.spawnFood()
	}

	if g.growing {
		// Keep the tail this move: same-tick growth.
		g.growing = false
	} else if len(g.body) > 1 {
		g.body = g.body[:len(g.body)-1]
	}
}

// State returns the current platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Score returns the current score. Read-only for the presentation layer;
// only the rules engine increments it and only restart resets it.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// isSnakeAt reports whether the snake occupies the given cell.
func (g *Game) isSnakeAt(c core.Cell) bool {
	for _, seg := range g.body {
		if seg == c {
			return true
		}
	}
	return false
}
