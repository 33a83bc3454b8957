package main

import "fmt"

// Dormant capture machinery. The active rule set is pure stone placement, so
// nothing in PlayMove calls into this file; it is kept as an independently
// tested module so capture rules can be reactivated without a redesign.

// ConnectedComponent returns a board-capacity boolean marker with every
// point of the maximal same-color component containing p set. The search is
// a flood fill over an explicit stack; the marker array is scoped to this
// invocation.
func (b *Board) ConnectedComponent(p Point) []bool {
	color := b.cells[p]
	if !isBlackWhiteEmpty(color) {
		panic(fmt.Sprintf("connected component of %v point", color))
	}
	marker := make([]bool, b.maxPoint)
	marker[p] = true
	stack := []Point{p}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range b.NeighborsOfColor(q, color) {
			if !marker[nb] {
				marker[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return marker
}

func (b *Board) blockOf(stone Point) []bool {
	if !isBlackWhite(b.cells[stone]) {
		panic(fmt.Sprintf("block of %v point", b.cells[stone]))
	}
	return b.ConnectedComponent(stone)
}

// hasLiberty reports whether any stone of the block has an empty neighbor.
func (b *Board) hasLiberty(block []bool) bool {
	for _, stone := range pointsWhere(block) {
		if len(b.NeighborsOfColor(stone, Empty)) > 0 {
			return true
		}
	}
	return false
}

// IsEye reports whether p is a simple eye for color: all orthogonal
// neighbors are Border or color, and at most one diagonal neighbor (zero at
// the board edge) holds the opposing color.
func (b *Board) IsEye(p Point, color Color) bool {
	if !b.isSurrounded(p, color) {
		return false
	}
	opp := Opponent(color)
	falseCount := 0
	atEdge := 0
	for _, d := range b.DiagNeighbors(p) {
		if b.cells[d] == Border {
			atEdge = 1
		} else if b.cells[d] == opp {
			falseCount++
		}
	}
	return falseCount <= 1-atEdge
}

func (b *Board) isSurrounded(p Point, color Color) bool {
	for _, nb := range b.Neighbors(p) {
		if c := b.cells[nb]; c != Border && c != color {
			return false
		}
	}
	return true
}

// detectAndProcessCapture removes the block on nbPoint if it has no liberty.
// It returns the stone when exactly one stone was captured, for ko marking.
func (b *Board) detectAndProcessCapture(nbPoint Point) (single Point, captured bool) {
	block := b.blockOf(nbPoint)
	if b.hasLiberty(block) {
		return NoPoint, false
	}
	captures := pointsWhere(block)
	for _, p := range captures {
		b.cells[p] = Empty
	}
	if len(captures) == 1 {
		return nbPoint, true
	}
	return NoPoint, true
}
