// Package solver implements the constraint-propagation engine and the
// depth-first search that solve 9×9 Sudoku boards.
package solver

import (
	"math/bits"
	"strings"

	"github.com/jankreimeier/sudoku/internal/board"
)

// digitSet is a set of candidate digits for one cell.
// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
type digitSet uint16

const allDigits digitSet = 0x1ff

func singleton(d int) digitSet {
	return 1 << (d - 1)
}

func (s digitSet) has(d int) bool {
	return s&singleton(d) != 0
}

func (s digitSet) without(d int) digitSet {
	return s &^ singleton(d)
}

func (s digitSet) count() int {
	return bits.OnesCount16(uint16(s))
}

// single returns the lone remaining digit, or 0 if the set is not a singleton.
func (s digitSet) single() int {
	if s.count() != 1 {
		return 0
	}
	return bits.TrailingZeros16(uint16(s)) + 1
}

// digits lists the remaining digits in ascending order, or descending when
// reverse is set.
func (s digitSet) digits(reverse bool) []int {
	out := make([]int, 0, s.count())
	if reverse {
		for d := 9; d >= 1; d-- {
			if s.has(d) {
				out = append(out, d)
			}
		}
		return out
	}
	for d := 1; d <= 9; d++ {
		if s.has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Store maps every cell to its remaining digit possibilities.
//
// Store is a plain value: assigning or passing one copies all 81 candidate
// sets, and that copy is what isolates search branches from each other. A
// failed branch's mutations never reach a sibling or the parent.
type Store struct {
	cells [board.CellCount]digitSet
}

// NewStore returns a store with all nine digits possible in every cell,
// matching an all-blank board.
func NewStore() Store {
	var s Store
	for pos := range s.cells {
		s.cells[pos] = allDigits
	}
	return s
}

// Assign constrains pos to exactly val and propagates the consequences.
// The store is mutated in place either way; it reports false on contradiction.
func (s *Store) Assign(pos, val int) bool {
	return assign(s, pos, val)
}

// Candidates returns the remaining digits for pos in ascending order.
func (s *Store) Candidates(pos int) []int {
	return s.cells[pos].digits(false)
}

// Single returns the settled digit of pos, or 0 while it is still undecided.
func (s *Store) Single(pos int) int {
	return s.cells[pos].single()
}

// Solved reports whether every cell has exactly one candidate left.
func (s *Store) Solved() bool {
	for pos := range s.cells {
		if s.cells[pos].count() != 1 {
			return false
		}
	}
	return true
}

// Board serializes the store as an 81-character board string. Settled cells
// emit their digit, undecided cells the blank marker.
func (s *Store) Board() string {
	var sb strings.Builder
	sb.Grow(board.CellCount)
	for pos := range s.cells {
		if d := s.cells[pos].single(); d != 0 {
			sb.WriteByte('0' + byte(d))
		} else {
			sb.WriteByte(board.Blank)
		}
	}
	return sb.String()
}
