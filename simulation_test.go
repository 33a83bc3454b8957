package main

import (
	"math/rand"
	"testing"
)

func newTestSimulator(playouts, workers int) *Simulator {
	return NewSimulator(playouts, workers, rand.New(rand.NewSource(42)))
}

func TestGetOrderPriority(t *testing.T) {
	// A win candidate outranks everything else.
	b := NewBoard(9)
	setStones(b, Black, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	setStones(b, White, [2]int{3, 3}, [2]int{3, 4}, [2]int{3, 5}, [2]int{3, 6})
	samePoints(t, "order with win", GetOrder(b), b.Pt(5, 2), b.Pt(5, 7))

	// No own win: the forced block set comes next.
	b = NewBoard(9)
	setStones(b, White, [2]int{3, 3}, [2]int{3, 4}, [2]int{3, 5}, [2]int{3, 6})
	samePoints(t, "order with block", GetOrder(b), b.Pt(3, 2), b.Pt(3, 7))

	// Open-four creation before open-four blocking.
	b = NewBoard(9)
	setStones(b, Black, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5})
	samePoints(t, "order with open four", GetOrder(b), b.Pt(5, 2), b.Pt(5, 6))

	// Nothing tactical: every empty point.
	b = NewBoard(9)
	if got := GetOrder(b); len(got) != 81 {
		t.Fatalf("quiet board order has %d candidates, want 81", len(got))
	}
}

func TestGetOrderBlockOpenFour(t *testing.T) {
	b := NewBoard(9)
	setStones(b, White, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	samePoints(t, "order", GetOrder(b), b.Pt(5, 3), b.Pt(5, 7))
}

func TestRolloutImmediateWin(t *testing.T) {
	// The starting move completes five: the first terminal check must end
	// the trial before any rollout move is played.
	b := NewBoard(9)
	setStones(b, Black, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	b.PlayMove(b.Pt(5, 7), Black)
	sim := newTestSimulator(10, 1)
	before := len(b.GetEmptyPoints())
	if got := sim.rollout(b, Black, PolicyRandom, sim.rng); got != rolloutWin {
		t.Fatalf("rollout = %v, want win", got)
	}
	if len(b.GetEmptyPoints()) != before {
		t.Fatalf("terminal rollout played a move")
	}
}

func TestRolloutLoss(t *testing.T) {
	b := NewBoard(9)
	setStones(b, White, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6}, [2]int{5, 7})
	sim := newTestSimulator(10, 1)
	if got := sim.rollout(b, Black, PolicyRandom, sim.rng); got != rolloutLoss {
		t.Fatalf("rollout = %v, want loss", got)
	}
}

func TestRolloutExhaustedBelowFive(t *testing.T) {
	// No five can ever form on a 2x2 board; the trial must end neutral once
	// the moves run out.
	b := NewBoard(2)
	sim := newTestSimulator(10, 1)
	if got := sim.rollout(b, Black, PolicyRandom, sim.rng); got != rolloutExhausted {
		t.Fatalf("rollout = %v, want exhausted", got)
	}
	if len(b.GetEmptyPoints()) != 0 {
		t.Fatalf("exhausted rollout should fill the board")
	}
}

func TestSimulateTakesForcedWin(t *testing.T) {
	b := NewBoard(9)
	setStones(b, Black, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	sim := newTestSimulator(10, 1)
	move, score := sim.SimulateScored(b, Black, PolicyRuleBased)
	// Both winning candidates score 1.0; ties break to the earliest in
	// candidate order, and points enumerate ascending.
	if move != b.Pt(5, 2) {
		t.Fatalf("simulate chose %d, want %d", move, b.Pt(5, 2))
	}
	if score != 1.0 {
		t.Fatalf("winning candidate score = %v, want 1.0", score)
	}
}

func TestSimulateParallelKeepsTieBreak(t *testing.T) {
	b := NewBoard(9)
	setStones(b, Black, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	sim := newTestSimulator(10, 4)
	move, score := sim.SimulateScored(b, Black, PolicyRuleBased)
	if move != b.Pt(5, 2) {
		t.Fatalf("parallel simulate chose %d, want %d", move, b.Pt(5, 2))
	}
	if score != 1.0 {
		t.Fatalf("score = %v, want 1.0", score)
	}
}

func TestSimulateBlocksOpponentWin(t *testing.T) {
	b := NewBoard(9)
	setStones(b, White, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	sim := newTestSimulator(10, 1)
	move := sim.Simulate(b, Black, PolicyRuleBased)
	if move != b.Pt(5, 2) && move != b.Pt(5, 7) {
		t.Fatalf("simulate chose %d, want a blocking point", move)
	}
}

func TestSimulateScoresStayInRange(t *testing.T) {
	b := NewBoard(5)
	setStones(b, Black, [2]int{3, 3})
	setStones(b, White, [2]int{2, 2})
	sim := newTestSimulator(4, 1)
	root := b.Copy()
	for _, candidate := range root.GetEmptyPoints() {
		score := sim.scoreCandidate(root, candidate, Black, PolicyRandom, sim.rng)
		if score < 0 || score > 1 {
			t.Fatalf("score %v out of [0,1]", score)
		}
		scaled := score * 4
		if scaled != float64(int(scaled)) {
			t.Fatalf("score %v is not a multiple of 1/4", score)
		}
	}
}

func TestSimulateLeavesBoardUntouched(t *testing.T) {
	b := NewBoard(7)
	setStones(b, Black, [2]int{4, 4})
	before := b.Copy()
	sim := newTestSimulator(2, 2)
	sim.Simulate(b, White, PolicyRuleBased)
	for i := 0; i < b.MaxPoint(); i++ {
		if b.ColorAt(Point(i)) != before.ColorAt(Point(i)) {
			t.Fatalf("simulation mutated the evaluated position at %d", i)
		}
	}
}

func TestSimulateFullBoardPasses(t *testing.T) {
	b := NewBoard(2)
	for _, p := range b.GetEmptyPoints() {
		b.PlayMove(p, b.CurrentPlayer())
	}
	sim := newTestSimulator(2, 1)
	if move := sim.Simulate(b, Black, PolicyRandom); move != Pass {
		t.Fatalf("full board simulate = %d, want Pass", move)
	}
}

func TestGetMoveUniformlyLegal(t *testing.T) {
	b := NewBoard(5)
	setStones(b, Black, [2]int{3, 3})
	sim := newTestSimulator(2, 1)
	for i := 0; i < 20; i++ {
		move := sim.GetMove(b, White)
		if move == Pass {
			t.Fatalf("board with space should not pass")
		}
		if b.ColorAt(move) != Empty {
			t.Fatalf("GetMove returned occupied point %d", move)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy("random"); err != nil || p != PolicyRandom {
		t.Fatalf("random parse = %v, %v", p, err)
	}
	if p, err := ParsePolicy("rule_based"); err != nil || p != PolicyRuleBased {
		t.Fatalf("rule_based parse = %v, %v", p, err)
	}
	if _, err := ParsePolicy("minimax"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
