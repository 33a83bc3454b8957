package main

// Line precomputation. Every row, every column, and every diagonal of length
// at least five is enumerated once per board size, at Reset time, and the
// resulting point sequences are reused by all whole-board five-in-a-row
// scans. Boards smaller than 5 derive no lines at all: no five can fit.

func (b *Board) calculateLines() {
	b.rows = nil
	b.cols = nil
	b.diags = nil
	if b.size < 5 {
		return
	}
	for i := 1; i <= b.size; i++ {
		row := make([]Point, 0, b.size)
		start := b.rowStart(i)
		for p := start; p < start+Point(b.size); p++ {
			row = append(row, p)
		}
		b.rows = append(b.rows, row)

		col := make([]Point, 0, b.size)
		start = b.rowStart(1) + Point(i-1)
		for p := start; p < b.rowStart(b.size)+Point(i); p += Point(b.ns) {
			col = append(col, p)
		}
		b.cols = append(b.cols, col)
	}

	// Diagonal walks run while the visited cell is still Empty. The tables
	// are built on the freshly initialized empty board, so each walk ends
	// exactly at the Border ring.
	ns := Point(b.ns)
	start := b.rowStart(1)
	for p := start; p < start+Point(b.size); p++ {
		b.appendDiag(b.walkWhileEmpty(p, ns+1))
	}
	for p := start + ns; p <= b.rowStart(b.size); p += ns {
		b.appendDiag(b.walkWhileEmpty(p, ns+1))
		b.appendDiag(b.walkWhileEmpty(p, -ns+1))
	}
	start = b.rowStart(b.size) + 1
	for p := start; p < start+Point(b.size-1); p++ {
		b.appendDiag(b.walkWhileEmpty(p, -ns+1))
	}
}

func (b *Board) walkWhileEmpty(start, step Point) []Point {
	var diag []Point
	for p := start; b.cells[p] == Empty; p += step {
		diag = append(diag, p)
	}
	return diag
}

func (b *Board) appendDiag(diag []Point) {
	if len(diag) >= 5 {
		b.diags = append(b.diags, diag)
	}
}

// DetectFiveInARow returns Black or White if that color has five contiguous
// stones on any precomputed line, Empty otherwise. Rows are scanned first,
// then columns, then diagonals; the first qualifying streak in scan order
// decides the result.
func (b *Board) DetectFiveInARow() Color {
	color, _ := b.FiveInARowLine()
	return color
}

// FiveInARowLine additionally reports the five points of the first winning
// streak found, for display purposes. The points are nil when no five
// exists.
func (b *Board) FiveInARowLine() (Color, []Point) {
	for _, groups := range [][][]Point{b.rows, b.cols, b.diags} {
		for _, line := range groups {
			if color, run := b.fiveInLine(line); color != Empty {
				return color, run
			}
		}
	}
	return Empty, nil
}

// fiveInLine tracks a running same-color streak over one line and reports
// the first streak that reaches exactly five with a stone color.
func (b *Board) fiveInLine(line []Point) (Color, []Point) {
	prev := Border
	counter := 1
	for i, p := range line {
		if b.cells[p] == prev {
			counter++
		} else {
			counter = 1
			prev = b.cells[p]
		}
		if counter == 5 && prev != Empty {
			return prev, line[i-4 : i+1]
		}
	}
	return Empty, nil
}
