package snake

import "github.com/snakelab/gridsnake/internal/core"

// Outcome is the synchronous result of evaluating one snake move.
// Consumed immediately by the caller instead of being queued as events,
// which keeps the ordering between growth and game over unambiguous.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAte
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeAte:
		return "ate"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// evaluateMove runs the collision and food checks for a prospective head
// cell against the pre-move body. Fatal collisions are checked first so a
// move that is simultaneously fatal and food-hitting never grows or scores.
func (g *Game) evaluateMove(newHead core.Cell) Outcome {
	// Wall collision: outside [-w/2, w/2) x [-h/2, h/2).
	if !g.bounds.Contains(newHead) {
		return OutcomeGameOver
	}

	// Self collision, excluding the tail cell about to be vacated this move.
	checkLen := len(g.body)
	if !g.growing && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.body[i] == newHead {
			return OutcomeGameOver
		}
	}

	if g.hasFood && newHead == g.food {
		return OutcomeAte
	}

	return OutcomeNone
}
