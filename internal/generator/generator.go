// Package generator creates 9×9 Sudoku puzzles by driving the solver's
// candidate store through a randomized fill walk.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/jankreimeier/sudoku/internal/board"
	"github.com/jankreimeier/sudoku/internal/solver"
)

const (
	MinGivens = solver.MinGivens
	MaxGivens = board.CellCount

	// DefaultMaxAttempts bounds the retry loop. A single walk almost always
	// succeeds within a handful of attempts; the ceiling exists so a
	// pathological configuration fails instead of spinning forever.
	DefaultMaxAttempts = 300

	// minDistinctDigits rejects candidate puzzles whose givens span fewer
	// than 8 digit values; such boards are trivially under-constrained.
	minDistinctDigits = 8
)

// ErrGenerationFailed signals that no acceptable puzzle emerged within the
// attempt and time budget.
var ErrGenerationFailed = errors.New("failed to generate puzzle")

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
	target  int
}

// New creates a puzzle generator with the given options.
// nil options mean DefaultOptions(Easy).
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(Easy)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	target := options.Givens
	if target == 0 {
		target = options.Difficulty.Givens()
	}
	target = min(max(target, MinGivens), MaxGivens)

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
		target:  target,
	}
}

// Generate creates a puzzle with exactly the target number of givens,
// returned as an 81-character board string. The puzzle is verified
// solvable; with EnsureUnique set it must also pass the uniqueness probe.
func (g *Generator) Generate() (string, error) {
	maxAttempts := g.options.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	start := time.Now()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if g.options.Timeout > 0 && time.Since(start) >= g.options.Timeout {
			break
		}
		if puzzle, ok := g.attempt(); ok {
			return puzzle, nil
		}
	}
	return "", ErrGenerationFailed
}

// attempt runs one randomized fill walk over a fresh store. Cells are
// visited in shuffled order; each gets a uniformly random digit from its
// current candidates. Propagation does most of the work: every assignment
// forces singles elsewhere, and the walk stops at the first contradiction,
// keeping whatever was forced up to that point.
func (g *Generator) attempt() (string, bool) {
	store := solver.NewStore()
	for _, pos := range g.rng.Perm(board.CellCount) {
		digits := store.Candidates(pos)
		i, err := RandRange(g.rng, len(digits))
		if err != nil {
			return "", false
		}
		if !store.Assign(pos, digits[i]) {
			break
		}
		if puzzle, ok := g.harvest(&store); ok {
			return puzzle, true
		}
	}
	return "", false
}

// harvest checks whether the cells already forced to a single candidate can
// be turned into a puzzle: enough of them, spanning at least 8 distinct
// digits, trimmed down to exactly the target count and verified solvable.
func (g *Generator) harvest(store *solver.Store) (string, bool) {
	var singles []int
	var digits []int
	for pos := 0; pos < board.CellCount; pos++ {
		if d := store.Single(pos); d != 0 {
			singles = append(singles, pos)
			digits = append(digits, d)
		}
	}
	if len(singles) < g.target || len(lo.Uniq(digits)) < minDistinctDigits {
		return "", false
	}

	cells := make([]byte, board.CellCount)
	for pos := range cells {
		cells[pos] = board.Blank
	}
	for i, pos := range singles {
		cells[pos] = '0' + byte(digits[i])
	}

	// Blank random givens until exactly the target count remains.
	for len(singles) > g.target {
		i, err := RandRange(g.rng, len(singles))
		if err != nil {
			return "", false
		}
		cells[singles[i]] = board.Blank
		singles = append(singles[:i], singles[i+1:]...)
	}

	puzzle := string(cells)
	if _, err := solver.Solve(puzzle); err != nil {
		return "", false
	}
	if g.options.EnsureUnique {
		unique, err := solver.Unique(puzzle)
		if err != nil || !unique {
			return "", false
		}
	}
	return puzzle, true
}

// Generate is a convenience wrapper producing one puzzle at the given
// difficulty with default options.
func Generate(d Difficulty) (string, error) {
	return New(DefaultOptions(d)).Generate()
}
