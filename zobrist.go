package main

import "sync"

// Zobrist hashing over board positions. The game layer hashes the position
// an AI suggestion was computed against, so a result landing after further
// moves can be recognized as stale and dropped.

type ZobristTable struct {
	size  int
	cells []uint64
	side  uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*ZobristTable
}

var zobristTables = &zobristStore{tables: make(map[int]*ZobristTable)}

func GetZobrist(size int) *ZobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	table := &ZobristTable{size: size, cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	zobristTables.tables[size] = table
	return table
}

func (z *ZobristTable) stone(row, col int, color Color) uint64 {
	idx := ((row-1)*z.size + (col - 1)) * 2
	if color == White {
		idx++
	}
	return z.cells[idx]
}

// ComputeHash hashes the stones and the side to move of a board.
func ComputeHash(b *Board) uint64 {
	z := GetZobrist(b.Size())
	var hash uint64
	for row := 1; row <= b.Size(); row++ {
		for col := 1; col <= b.Size(); col++ {
			c := b.ColorAt(b.Pt(row, col))
			if c == Black || c == White {
				hash ^= z.stone(row, col, c)
			}
		}
	}
	if b.CurrentPlayer() == White {
		hash ^= z.side
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
