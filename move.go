package main

// Move is a zero-indexed (column, row) coordinate used by the game layer
// and the UI. The engine core works in flat Points; the two agree through
// ToPoint/MoveFromPoint.
type Move struct {
	X        int
	Y        int
	Playouts int
}

func NewMove(x, y int) Move {
	return Move{X: x, Y: y}
}

func (m Move) IsValid(boardSize int) bool {
	return m.X >= 0 && m.Y >= 0 && m.X < boardSize && m.Y < boardSize
}

func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y
}

func (m Move) ToPoint(boardSize int) Point {
	return CoordToPoint(m.Y+1, m.X+1, boardSize)
}

func MoveFromPoint(p Point, boardSize int) Move {
	row, col := PointToCoord(p, boardSize)
	return Move{X: col - 1, Y: row - 1}
}
