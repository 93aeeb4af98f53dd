package snake

import (
	"testing"
	"time"
)

func TestMoveTimerAccumulates(t *testing.T) {
	timer := newMoveTimer(75 * time.Millisecond)

	if moves := timer.advance(37 * time.Millisecond); moves != 0 {
		t.Errorf("advance(37ms) = %d, expected 0 before crossing the interval", moves)
	}
	if moves := timer.advance(37 * time.Millisecond); moves != 0 {
		t.Errorf("advance(37ms) = %d, expected 0 at 74ms total", moves)
	}
	if moves := timer.advance(time.Millisecond); moves != 1 {
		t.Errorf("advance(1ms) = %d, expected 1 at 75ms total", moves)
	}
}

func TestMoveTimerKeepsRemainder(t *testing.T) {
	timer := newMoveTimer(75 * time.Millisecond)

	if moves := timer.advance(100 * time.Millisecond); moves != 1 {
		t.Fatalf("advance(100ms) = %d, expected 1", moves)
	}
	// 25ms remainder carries over: 50 more reaches the next interval
	if moves := timer.advance(50 * time.Millisecond); moves != 1 {
		t.Errorf("advance(50ms) = %d, expected 1 from the carried remainder", moves)
	}
}

func TestMoveTimerMultipleIntervals(t *testing.T) {
	timer := newMoveTimer(75 * time.Millisecond)

	if moves := timer.advance(225 * time.Millisecond); moves != 3 {
		t.Errorf("advance(225ms) = %d, expected 3", moves)
	}
}

func TestMoveTimerCapsCatchUp(t *testing.T) {
	timer := newMoveTimer(75 * time.Millisecond)

	// A long stall must not trigger an unbounded burst of moves
	if moves := timer.advance(10 * time.Second); moves != maxMovesPerFrame {
		t.Errorf("advance(10s) = %d, expected cap of %d", moves, maxMovesPerFrame)
	}
	// The excess backlog is discarded, not replayed on the next frame
	if moves := timer.advance(0); moves != 0 {
		t.Errorf("advance(0) after a stall = %d, expected 0", moves)
	}
}
