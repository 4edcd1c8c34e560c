package solver

import (
	"errors"
	"fmt"

	"github.com/jankreimeier/sudoku/internal/board"
)

var (
	// ErrNoSolution signals search-space exhaustion: the board is
	// well-formed but contradictory or unsolvable. This is an expected
	// outcome, not an input error.
	ErrNoSolution = errors.New("puzzle has no solution")

	// ErrInsufficientGivens rejects boards that are provably
	// under-constrained before any search is attempted.
	ErrInsufficientGivens = errors.New("puzzle must have at least 17 givens")
)

// MinGivens is the smallest number of givens any uniquely solvable
// 9×9 puzzle can have.
const MinGivens = 17

// Solve validates the board, seeds a candidate store and searches for a
// solution, returned as an 81-character board string.
func Solve(board81 string) (string, error) {
	return solve(board81, false)
}

// SolveReverse solves with descending branch order. Comparing its result
// with Solve's reveals whether a second distinct solution exists.
func SolveReverse(board81 string) (string, error) {
	return solve(board81, true)
}

func solve(board81 string, reverse bool) (string, error) {
	if err := board.Validate(board81); err != nil {
		return "", err
	}
	if n := board.CountGivens(board81); n < MinGivens {
		return "", fmt.Errorf("%w: got %d", ErrInsufficientGivens, n)
	}

	s, ok := seed(board81)
	if !ok {
		return "", ErrNoSolution
	}
	result, ok := search(s, reverse)
	if !ok {
		return "", ErrNoSolution
	}
	return result.Board(), nil
}

// Unique reports whether the puzzle appears to have exactly one solution.
// It solves forward and in reverse branch order: differing results prove
// multiple solutions, identical results make uniqueness very likely (the
// probe is probabilistic, not exhaustive).
func Unique(board81 string) (bool, error) {
	forward, err := Solve(board81)
	if err != nil {
		return false, err
	}
	backward, err := SolveReverse(board81)
	if err != nil {
		return false, err
	}
	return forward == backward, nil
}
