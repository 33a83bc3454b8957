package main

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"
)

// Policy selects how rollout moves are generated.
type Policy int

const (
	PolicyRandom Policy = iota
	PolicyRuleBased
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "random":
		return PolicyRandom, nil
	case "rule_based":
		return PolicyRuleBased, nil
	}
	return 0, fmt.Errorf("unknown policy %q", s)
}

func (p Policy) String() string {
	if p == PolicyRandom {
		return "random"
	}
	return "rule_based"
}

type rolloutResult int

const (
	rolloutLoss rolloutResult = iota - 1
	rolloutExhausted
	rolloutWin
)

// GetOrder returns the first non-empty candidate set for the side to move,
// in strict priority order: immediate wins, forced blocks, open fours, open
// four blocks, else all empty points.
func GetOrder(b *Board) []Point {
	if moves := b.Win(); len(moves) > 0 {
		return moves
	}
	if moves := b.BlockWin(); len(moves) > 0 {
		return moves
	}
	if moves := b.OpenFour(); len(moves) > 0 {
		return moves
	}
	if moves := b.BlockOpenFour(); len(moves) > 0 {
		return moves
	}
	return b.GetEmptyPoints()
}

// Simulator ranks candidate moves with flat Monte Carlo rollouts: a fixed
// number of playouts per candidate, each on its own board clone, scored by
// whether the rollout ends with a five in a row for the simulated color.
type Simulator struct {
	playouts int
	workers  int
	rng      *rand.Rand
}

func NewSimulator(playouts, workers int, rng *rand.Rand) *Simulator {
	if playouts < 1 {
		panic(fmt.Sprintf("playouts %d must be positive", playouts))
	}
	if workers < 1 {
		workers = 1
	}
	return &Simulator{playouts: playouts, workers: workers, rng: rng}
}

// GetMove is the trivial baseline: a uniformly random legal move, or Pass
// when none remains.
func (s *Simulator) GetMove(b *Board, color Color) Point {
	var legal []Point
	for _, p := range b.GetEmptyPoints() {
		if b.IsLegal(p, color) {
			legal = append(legal, p)
		}
	}
	if len(legal) == 0 {
		return Pass
	}
	return legal[s.rng.Intn(len(legal))]
}

// Simulate scores every candidate for color under the given policy and
// returns the best one. Ties break toward the earliest candidate in
// enumeration order. Returns Pass when the board has no empty point.
func (s *Simulator) Simulate(b *Board, color Color, policy Policy) Point {
	move, _ := s.SimulateScored(b, color, policy)
	return move
}

// SimulateScored is Simulate plus the winning candidate's score in [0,1].
func (s *Simulator) SimulateScored(b *Board, color Color, policy Policy) (Point, float64) {
	start := time.Now()
	root := b.Copy()
	root.current = color
	var candidates []Point
	if policy == PolicyRandom {
		candidates = root.GetEmptyPoints()
	} else {
		candidates = GetOrder(root)
	}
	if len(candidates) == 0 {
		return Pass, 0
	}
	scores := make([]float64, len(candidates))
	if s.workers <= 1 || len(candidates) == 1 {
		for i, move := range candidates {
			scores[i] = s.scoreCandidate(root, move, color, policy, s.rng)
		}
	} else {
		s.scoreParallel(root, candidates, color, policy, scores)
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	if GetConfig().LogSimStats {
		log.Printf("simulate: %d candidates, %d playouts each, best score %.2f in %s",
			len(candidates), s.playouts, scores[best], time.Since(start).Round(time.Millisecond))
	}
	return candidates[best], scores[best]
}

// scoreParallel fans candidates out over a fixed worker pool. Each worker
// owns a private RNG and writes only its own score slots, so the reduction
// below stays in candidate order and the first-seen tie-break is preserved
// regardless of completion order.
func (s *Simulator) scoreParallel(root *Board, candidates []Point, color Color, policy Policy, scores []float64) {
	workers := s.workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	var wg sync.WaitGroup
	next := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(s.rng.Int63()))
		go func() {
			defer wg.Done()
			for i := range next {
				scores[i] = s.scoreCandidate(root, candidates[i], color, policy, rng)
			}
		}()
	}
	for i := range candidates {
		next <- i
	}
	close(next)
	wg.Wait()
}

// scoreCandidate runs the configured number of independent trials for one
// candidate. Every trial starts from a fresh clone of root with the
// candidate pre-played, so trials never contaminate each other.
func (s *Simulator) scoreCandidate(root *Board, move Point, color Color, policy Policy, rng *rand.Rand) float64 {
	wins := 0
	for trial := 0; trial < s.playouts; trial++ {
		b := root.Copy()
		b.PlayMove(move, color)
		if s.rollout(b, color, policy, rng) == rolloutWin {
			wins++
		}
	}
	return float64(wins) / float64(s.playouts)
}

// rollout plays one trial to termination. The loop is bounded by the number
// of empty points at trial start: every iteration either returns or fills a
// cell.
func (s *Simulator) rollout(b *Board, color Color, policy Policy, rng *rand.Rand) rolloutResult {
	for steps := len(b.GetEmptyPoints()); ; steps-- {
		switch b.DetectFiveInARow() {
		case color:
			return rolloutWin
		case Opponent(color):
			return rolloutLoss
		}
		if steps <= 0 {
			return rolloutExhausted
		}
		var moves []Point
		if policy == PolicyRandom {
			moves = b.GetEmptyPoints()
		} else {
			moves = GetOrder(b)
		}
		if len(moves) == 0 {
			return rolloutExhausted
		}
		b.PlayMove(moves[rng.Intn(len(moves))], b.CurrentPlayer())
	}
}
