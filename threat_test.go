package main

import (
	"sort"
	"testing"
)

func sortedPoints(points []Point) []Point {
	out := append([]Point(nil), points...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func samePoints(t *testing.T, name string, got []Point, want ...Point) {
	t.Helper()
	g := sortedPoints(got)
	w := sortedPoints(want)
	if len(g) != len(w) {
		t.Fatalf("%s = %v, want %v", name, g, w)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("%s = %v, want %v", name, g, w)
		}
	}
}

func TestWinEmptyWithOpenThree(t *testing.T) {
	b := NewBoard(9)
	setStones(b, Black, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5})
	if moves := b.Win(); len(moves) != 0 {
		t.Fatalf("Win() = %v, want empty", moves)
	}
	samePoints(t, "OpenFour()", b.OpenFour(), b.Pt(5, 2), b.Pt(5, 6))
}

func TestWinWithFourInRow(t *testing.T) {
	b := NewBoard(9)
	setStones(b, Black, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	samePoints(t, "Win()", b.Win(), b.Pt(5, 2), b.Pt(5, 7))
	// An existing four is no longer an open-four creation point.
	if moves := b.OpenFour(); len(moves) != 0 {
		t.Fatalf("OpenFour() = %v, want empty", moves)
	}
}

func TestBlockWin(t *testing.T) {
	b := NewBoard(9)
	setStones(b, White, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	if b.CurrentPlayer() != Black {
		t.Fatalf("black should be to move")
	}
	samePoints(t, "BlockWin()", b.BlockWin(), b.Pt(5, 2), b.Pt(5, 7))
	if moves := b.Win(); len(moves) != 0 {
		t.Fatalf("Win() = %v, want empty for black", moves)
	}
}

func TestWinInColumnAndDiagonal(t *testing.T) {
	b := NewBoard(9)
	setStones(b, Black, [2]int{2, 4}, [2]int{3, 4}, [2]int{4, 4}, [2]int{5, 4})
	samePoints(t, "column Win()", b.Win(), b.Pt(1, 4), b.Pt(6, 4))

	b = NewBoard(9)
	setStones(b, Black, [2]int{2, 2}, [2]int{3, 3}, [2]int{4, 4}, [2]int{5, 5})
	samePoints(t, "diagonal Win()", b.Win(), b.Pt(1, 1), b.Pt(6, 6))
}

func TestWinThroughGap(t *testing.T) {
	// Four stones split around one gap: filling the gap makes five.
	b := NewBoard(9)
	setStones(b, Black, [2]int{5, 2}, [2]int{5, 3}, [2]int{5, 5}, [2]int{5, 6})
	samePoints(t, "Win()", b.Win(), b.Pt(5, 4))
}

func TestOpenFourInColumn(t *testing.T) {
	b := NewBoard(9)
	setStones(b, Black, [2]int{3, 5}, [2]int{4, 5}, [2]int{5, 5})
	samePoints(t, "OpenFour()", b.OpenFour(), b.Pt(2, 5), b.Pt(6, 5))
}

func TestOpenFourNeedsBothEndsOpen(t *testing.T) {
	b := NewBoard(9)
	setStones(b, Black, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5})
	setStones(b, White, [2]int{5, 7})
	// Extending at col 6 leaves only one open end, at col 2 both stay open.
	samePoints(t, "OpenFour()", b.OpenFour(), b.Pt(5, 2))
}

func TestBlockOpenFourDoubleOpen(t *testing.T) {
	b := NewBoard(9)
	setStones(b, White, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	samePoints(t, "BlockOpenFour()", b.BlockOpenFour(), b.Pt(5, 3), b.Pt(5, 7))
}

func TestBlockOpenFourOneSided(t *testing.T) {
	b := NewBoard(9)
	setStones(b, White, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	setStones(b, Black, [2]int{5, 7})
	// The probe at col 3 sees a one-sided four; the completion point five
	// strides ahead joins the probe point itself.
	samePoints(t, "BlockOpenFour()", b.BlockOpenFour(), b.Pt(5, 3), b.Pt(5, 8))
}

func TestBlockOpenFourSplitRun(t *testing.T) {
	b := NewBoard(9)
	setStones(b, White, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 6})
	// The probe at col 5 sits inside the gap: both terminating empty cells
	// block, in addition to the gap point.
	samePoints(t, "BlockOpenFour()", b.BlockOpenFour(), b.Pt(5, 2), b.Pt(5, 5), b.Pt(5, 7))
}

func TestBlockOpenFourDeduplicatesAcrossAxes(t *testing.T) {
	// Two open threes crossing at one empty point must not report the shared
	// blocking points twice.
	b := NewBoard(11)
	setStones(b, White,
		[2]int{6, 4}, [2]int{6, 5}, [2]int{6, 6},
		[2]int{4, 8}, [2]int{5, 8}, [2]int{6, 8})
	got := b.BlockOpenFour()
	seen := make(map[Point]int)
	for _, p := range got {
		seen[p]++
		if seen[p] > 1 {
			t.Fatalf("point %d reported twice in %v", p, got)
		}
	}
}

func TestThreatsSeeOwnColorOnly(t *testing.T) {
	b := NewBoard(9)
	setStones(b, White, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}, [2]int{5, 6})
	b.current = White
	samePoints(t, "Win()", b.Win(), b.Pt(5, 2), b.Pt(5, 7))
	if moves := b.BlockWin(); len(moves) != 0 {
		t.Fatalf("BlockWin() = %v, want empty when white is to move", moves)
	}
}
