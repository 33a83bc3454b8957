package main

import "fmt"

// Color is the value stored in one board cell. Black and White are the only
// colors legal as a move argument; Border fills the padding ring around the
// playable area.
type Color int8

const (
	Empty Color = iota
	Black
	White
	Border
)

// Point is an index into the flat padded board array. Point values are only
// meaningful for the board size they were computed against.
type Point int

const (
	// Pass is the sentinel move that places no stone.
	Pass Point = -1
	// NoPoint marks an unset move slot (no move has been played yet).
	NoPoint Point = -2
)

// MaxSize is the largest supported board edge length.
const MaxSize = 25

func Opponent(c Color) Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("opponent of non-player color %d", c))
}

func isBlackWhite(c Color) bool {
	return c == Black || c == White
}

func isBlackWhiteEmpty(c Color) bool {
	return c == Black || c == White || c == Empty
}

// CoordToPoint maps a 1-indexed (row, col) pair to its point on a board of
// the given size. The stride between rows is size+1 because of the border
// column shared by adjacent rows.
func CoordToPoint(row, col, size int) Point {
	ns := size + 1
	return Point(row*ns + col)
}

// PointToCoord is the inverse of CoordToPoint for playable points.
func PointToCoord(p Point, size int) (row, col int) {
	ns := size + 1
	return int(p) / ns, int(p) % ns
}

// pointsWhere extracts the indices of all set entries in a board-capacity
// boolean marker array.
func pointsWhere(mask []bool) []Point {
	var points []Point
	for i, set := range mask {
		if set {
			points = append(points, Point(i))
		}
	}
	return points
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	case Border:
		return "Border"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}
