package solver

// search runs depth-first backtracking over the store. Each branch assigns
// a candidate on its own copy, so failed branches leave no trace.
//
// The branch cell is the first cell with the fewest (>1) candidates found
// while scanning in fixed board order; candidates are tried in ascending
// order, or descending when reverse is set. The descending pass exists to
// probe for a second distinct solution.
func search(s Store, reverse bool) (Store, bool) {
	pos, best := -1, 10
	for p := range s.cells {
		if n := s.cells[p].count(); n > 1 && n < best {
			pos, best = p, n
			if n == 2 {
				// No undecided cell can have fewer than two candidates.
				break
			}
		}
	}
	if pos == -1 {
		// Every cell is settled: the store is a solution.
		return s, true
	}

	for _, d := range s.cells[pos].digits(reverse) {
		branch := s
		if !assign(&branch, pos, d) {
			continue
		}
		if result, ok := search(branch, reverse); ok {
			return result, true
		}
	}
	return s, false
}
