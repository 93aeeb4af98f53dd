package snake

import "time"

// maxMovesPerFrame caps catch-up after a long stall (e.g. a suspended
// terminal) so the snake doesn't teleport across the arena.
const maxMovesPerFrame = 4

// moveTimer accumulates frame time and fires a move for each fixed interval
// crossed. One timer governs all snake movement.
type moveTimer struct {
	interval time.Duration
	acc      time.Duration
}

func newMoveTimer(interval time.Duration) moveTimer {
	return moveTimer{interval: interval}
}

// advance adds elapsed time and returns how many moves are due.
func (t *moveTimer) advance(elapsed time.Duration) int {
	if t.interval <= 0 {
		return 0
	}

	t.acc += elapsed
	fires := 0
	for t.acc >= t.interval {
		t.acc -= t.interval
		fires++
	}

	if fires > maxMovesPerFrame {
		fires = maxMovesPerFrame
	}
	return fires
}
