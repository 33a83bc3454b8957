package main

// Threat detection. For a candidate empty point and a color, a probe walks
// outward in both senses along one axis, counting contiguous stones of that
// color as if a stone had already been placed on the candidate. Each walk
// ends on a non-matching stone or on the Border sentinel, so the padding
// ring removes any need for bounds checks or loop limits.

// axisSteps returns the point offsets of the four probe axes: row, column,
// and the two diagonals.
func (b *Board) axisSteps() [4]Point {
	ns := Point(b.ns)
	return [4]Point{1, ns, ns + 1, ns - 1}
}

// lineRun probes one axis from p for color. run counts the contiguous
// same-color stones including the hypothetical stone at p; space counts how
// many of the two terminating cells are empty (0..2).
func (b *Board) lineRun(p, step Point, color Color) (run, space int) {
	run = 1
	for q := p + step; ; q += step {
		if b.cells[q] == color {
			run++
			continue
		}
		if b.cells[q] == Empty {
			space++
		}
		break
	}
	for q := p - step; ; q -= step {
		if b.cells[q] == color {
			run++
			continue
		}
		if b.cells[q] == Empty {
			space++
		}
		break
	}
	return run, space
}

// lineRunExt is the extended probe used by BlockOpenFour. On top of run and
// space it reports which sense contributed the stones (dir: +1 forward only,
// -1 backward only, 0 split across both senses) and the terminating empty
// cell of each sense (NoPoint where the walk ended on a stone or the
// border).
func (b *Board) lineRunExt(p, step Point, color Color) (run, space, dir int, endFwd, endBack Point) {
	run = 1
	endFwd, endBack = NoPoint, NoPoint
	fwd, back := 0, 0
	for q := p + step; ; q += step {
		if b.cells[q] == color {
			fwd++
			continue
		}
		if b.cells[q] == Empty {
			space++
			endFwd = q
		}
		break
	}
	for q := p - step; ; q -= step {
		if b.cells[q] == color {
			back++
			continue
		}
		if b.cells[q] == Empty {
			space++
			endBack = q
		}
		break
	}
	run += fwd + back
	switch {
	case fwd > 0 && back > 0:
		dir = 0
	case back > 0:
		dir = -1
	case fwd > 0:
		dir = 1
	}
	return run, space, dir, endFwd, endBack
}

// Win returns every empty point where the current player completes five in
// a row by playing there.
func (b *Board) Win() []Point {
	return b.winningPoints(b.current)
}

// BlockWin returns every empty point where the opponent of the current
// player would complete five in a row, i.e. the set of must-block points.
func (b *Board) BlockWin() []Point {
	return b.winningPoints(Opponent(b.current))
}

func (b *Board) winningPoints(color Color) []Point {
	steps := b.axisSteps()
	var moves []Point
	for _, p := range b.GetEmptyPoints() {
		for _, step := range steps {
			if run, _ := b.lineRun(p, step, color); run >= 5 {
				moves = append(moves, p)
				break
			}
		}
	}
	return moves
}

// OpenFour returns every empty point where the current player creates a
// four with both extending ends open, an unstoppable threat next turn.
func (b *Board) OpenFour() []Point {
	steps := b.axisSteps()
	var moves []Point
	for _, p := range b.GetEmptyPoints() {
		for _, step := range steps {
			if run, space := b.lineRun(p, step, b.current); run == 4 && space == 2 {
				moves = append(moves, p)
				break
			}
		}
	}
	return moves
}

// BlockOpenFour returns the points that defuse an open-four threat by the
// opponent of the current player. Per axis, three sub-cases contribute:
// a one-sided four adds the candidate plus the completion point five strides
// beyond it; a double-open four adds the candidate itself; a four split
// around the candidate additionally adds both gap-terminating empty cells.
// The aggregate is de-duplicated across axes.
func (b *Board) BlockOpenFour() []Point {
	color := Opponent(b.current)
	steps := b.axisSteps()
	seen := make(map[Point]bool)
	var moves []Point
	add := func(p Point) {
		if !seen[p] {
			seen[p] = true
			moves = append(moves, p)
		}
	}
	for _, p := range b.GetEmptyPoints() {
		for _, step := range steps {
			run, space, dir, endFwd, endBack := b.lineRunExt(p, step, color)
			if run != 4 {
				continue
			}
			if space == 1 && dir != 0 {
				if q := p + Point(dir)*5*step; b.emptyAt(q) {
					add(q)
					add(p)
				}
			}
			if space == 2 {
				add(p)
				if dir == 0 {
					add(endFwd)
					add(endBack)
				}
			}
		}
	}
	return moves
}

// emptyAt is ColorAt with a range guard: the five-stride completion point of
// a run near the bottom edge can land past the padded array.
func (b *Board) emptyAt(p Point) bool {
	return p >= 0 && int(p) < b.maxPoint && b.cells[p] == Empty
}
