package main

import "fmt"

// Board is a Gomoku position on a padded one-dimensional grid. A one-cell
// Border ring surrounds every playable row and wraps the ends of the array,
// so every orthogonal or diagonal neighbor offset of a playable point lands
// on a valid slot and neighbor walks never need bounds checks.
type Board struct {
	size      int
	ns        int // stride between vertically adjacent points: size+1
	maxPoint  int
	cells     []Color
	current   Color
	ko        Point // legacy ko recapture marker, never set by the active rules
	lastMove  Point
	last2Move Point

	rows  [][]Point
	cols  [][]Point
	diags [][]Point
}

// NewBoard creates an empty board. Panics unless 2 <= size <= MaxSize.
func NewBoard(size int) *Board {
	b := &Board{}
	b.Reset(size)
	return b
}

// Reset reinitializes the board to an empty position of the given size and
// recomputes the line tables.
func (b *Board) Reset(size int) {
	if size < 2 || size > MaxSize {
		panic(fmt.Sprintf("board size %d out of range [2, %d]", size, MaxSize))
	}
	b.size = size
	b.ns = size + 1
	b.maxPoint = size*size + 3*(size+1)
	b.current = Black
	b.ko = NoPoint
	b.lastMove = NoPoint
	b.last2Move = NoPoint
	b.cells = make([]Color, b.maxPoint)
	for i := range b.cells {
		b.cells[i] = Border
	}
	for row := 1; row <= size; row++ {
		start := b.rowStart(row)
		for p := start; p < start+Point(size); p++ {
			b.cells[p] = Empty
		}
	}
	b.calculateLines()
}

func (b *Board) Size() int            { return b.size }
func (b *Board) NS() int              { return b.ns }
func (b *Board) MaxPoint() int        { return b.maxPoint }
func (b *Board) CurrentPlayer() Color { return b.current }
func (b *Board) LastMove() Point      { return b.lastMove }
func (b *Board) Last2Move() Point     { return b.last2Move }

func (b *Board) ColorAt(p Point) Color {
	return b.cells[p]
}

// Pt maps a 1-indexed (row, col) pair to a point on this board.
func (b *Board) Pt(row, col int) Point {
	return CoordToPoint(row, col, b.size)
}

func (b *Board) rowStart(row int) Point {
	if row < 1 || row > b.size {
		panic(fmt.Sprintf("row %d out of range [1, %d]", row, b.size))
	}
	return Point(row*b.ns + 1)
}

// Copy returns a fully independent clone sharing no storage with b. Rollouts
// and legality checks mutate clones so the position under evaluation stays
// intact.
func (b *Board) Copy() *Board {
	clone := *b
	clone.cells = make([]Color, len(b.cells))
	copy(clone.cells, b.cells)
	return &clone
}

// PlayMove plays a stone of color on point. Pass always succeeds. A move on
// a non-empty point fails and leaves the board untouched. The active rules
// are pure placement: no capture, suicide, or liberty check runs here.
func (b *Board) PlayMove(p Point, color Color) bool {
	if !isBlackWhite(color) {
		panic(fmt.Sprintf("play move with non-player color %v", color))
	}
	if p == Pass {
		b.ko = NoPoint
		b.current = Opponent(color)
		b.last2Move = b.lastMove
		b.lastMove = p
		return true
	}
	if b.cells[p] != Empty {
		return false
	}
	b.cells[p] = color
	b.current = Opponent(color)
	b.last2Move = b.lastMove
	b.lastMove = p
	return true
}

// IsLegal reports whether color may play on point. It tries the move on a
// throwaway copy so the receiver is never modified.
func (b *Board) IsLegal(p Point, color Color) bool {
	return b.Copy().PlayMove(p, color)
}

// GetEmptyPoints returns every empty point, in ascending point order.
func (b *Board) GetEmptyPoints() []Point {
	return b.pointsOfColor(Empty)
}

// GetColorPoints returns every point occupied by color.
func (b *Board) GetColorPoints(color Color) []Point {
	return b.pointsOfColor(color)
}

func (b *Board) pointsOfColor(color Color) []Point {
	var points []Point
	for p, c := range b.cells {
		if c == color {
			points = append(points, Point(p))
		}
	}
	return points
}

// Neighbors returns the four orthogonal neighbors of p. The padding ring
// guarantees every returned point is a valid array slot.
func (b *Board) Neighbors(p Point) [4]Point {
	ns := Point(b.ns)
	return [4]Point{p - 1, p + 1, p - ns, p + ns}
}

// DiagNeighbors returns the four diagonal neighbors of p.
func (b *Board) DiagNeighbors(p Point) [4]Point {
	ns := Point(b.ns)
	return [4]Point{p - ns - 1, p - ns + 1, p + ns - 1, p + ns + 1}
}

// NeighborsOfColor returns the orthogonal neighbors of p holding color.
func (b *Board) NeighborsOfColor(p Point, color Color) []Point {
	var nbc []Point
	for _, nb := range b.Neighbors(p) {
		if b.cells[nb] == color {
			nbc = append(nbc, nb)
		}
	}
	return nbc
}

// LastBoardMoves returns the last one or two moves that placed stones,
// skipping passes and unset slots.
func (b *Board) LastBoardMoves() []Point {
	var moves []Point
	if b.lastMove != NoPoint && b.lastMove != Pass {
		moves = append(moves, b.lastMove)
	}
	if b.last2Move != NoPoint && b.last2Move != Pass {
		moves = append(moves, b.last2Move)
	}
	return moves
}
