package main

import "math/rand"

type IPlayer interface {
	IsHuman() bool
	ChooseMove(b *Board, color Color) (Move, bool)
}

type HumanPlayer struct {
	pending     bool
	pendingMove Move
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

// ChooseMove hands out the staged move, if the UI has set one.
func (h *HumanPlayer) ChooseMove(*Board, Color) (Move, bool) {
	if !h.HasPendingMove() {
		return Move{}, false
	}
	return h.TakePendingMove(), true
}

func (h *HumanPlayer) SetPendingMove(move Move) {
	h.pendingMove = move
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingMove() Move {
	h.pending = false
	return h.pendingMove
}

// AIPlayer chooses moves with the flat Monte Carlo simulator.
type AIPlayer struct {
	sim    *Simulator
	policy Policy
}

func NewAIPlayer(playouts, workers int, policy Policy, rng *rand.Rand) *AIPlayer {
	return &AIPlayer{sim: NewSimulator(playouts, workers, rng), policy: policy}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

// ChooseMove runs the simulation on a clone of the board, so callers may
// invoke it from a goroutine while the live game keeps serving reads.
func (a *AIPlayer) ChooseMove(b *Board, color Color) (Move, bool) {
	point := a.sim.Simulate(b.Copy(), color, a.policy)
	if point == Pass {
		return Move{}, false
	}
	move := MoveFromPoint(point, b.Size())
	move.Playouts = a.sim.playouts
	return move, true
}
