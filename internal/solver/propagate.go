package solver

import "github.com/jankreimeier/sudoku/internal/board"

// assign narrows pos to exactly val by eliminating every other candidate.
// Reports false when an elimination runs into a contradiction.
func assign(s *Store, pos, val int) bool {
	others := s.cells[pos].without(val)
	for d := 1; d <= 9; d++ {
		if others.has(d) && !eliminate(s, pos, d) {
			return false
		}
	}
	return true
}

// eliminate removes val from pos's candidates and applies the two single
// inferences. Eliminating an already-absent value is a no-op.
//
// assign and eliminate are mutually recursive; every call either returns
// immediately or strictly shrinks some candidate set, so the recursion is
// bounded by 81 cells × 9 digits.
func eliminate(s *Store, pos, val int) bool {
	if !s.cells[pos].has(val) {
		return true
	}
	s.cells[pos] = s.cells[pos].without(val)

	switch remaining := s.cells[pos]; remaining.count() {
	case 0:
		// Last candidate removed: contradiction.
		return false
	case 1:
		// Naked single: the settled digit cannot appear in any peer.
		d := remaining.single()
		for _, peer := range board.Peers(pos) {
			if !eliminate(s, peer, d) {
				return false
			}
		}
	}

	// Hidden single: within each unit of pos, val must keep a legal home.
	// If only one cell can still take it, it is forced there.
	for _, unit := range board.UnitsOf(pos) {
		home, n := board.InvalidCell, 0
		for _, p := range unit {
			if s.cells[p].has(val) {
				home = p
				if n++; n > 1 {
					break
				}
			}
		}
		switch n {
		case 0:
			return false
		case 1:
			if !assign(s, home, val) {
				return false
			}
		}
	}
	return true
}

// seed builds a store from a validated board string, assigning the givens
// in fixed left-to-right, top-to-bottom order. Propagation is confluent, so
// the order only matters for reproducibility of failure cases.
func seed(board81 string) (Store, bool) {
	s := NewStore()
	for pos := 0; pos < board.CellCount; pos++ {
		if ch := board81[pos]; !board.IsBlank(ch) {
			if !assign(&s, pos, int(ch-'0')) {
				return s, false
			}
		}
	}
	return s, true
}
