package main

import "testing"

func TestHumanPlayerStagedMove(t *testing.T) {
	h := NewHumanPlayer()
	if _, ok := h.ChooseMove(nil, Black); ok {
		t.Fatalf("ChooseMove should report no move while nothing is staged")
	}
	h.SetPendingMove(NewMove(3, 4))
	if !h.HasPendingMove() {
		t.Fatalf("staged move not visible")
	}
	move, ok := h.ChooseMove(nil, Black)
	if !ok || !move.Equals(NewMove(3, 4)) {
		t.Fatalf("ChooseMove = %+v, %v", move, ok)
	}
	if h.HasPendingMove() {
		t.Fatalf("staged move should be consumed")
	}
}
