package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jankreimeier/sudoku/internal/board"
)

func TestNewStoreAllowsEverything(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Solved())
	assert.Equal(t, strings.Repeat(".", board.CellCount), s.Board())
	for pos := 0; pos < board.CellCount; pos++ {
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, s.Candidates(pos))
	}
}

func TestSeededSolvedBoardRoundTrips(t *testing.T) {
	s, ok := seed(classicSolved)
	require.True(t, ok)

	assert.True(t, s.Solved())
	assert.Equal(t, classicSolved, s.Board())
}

func TestDigitSetOrdering(t *testing.T) {
	set := singleton(2) | singleton(5) | singleton(9)

	assert.Equal(t, []int{2, 5, 9}, set.digits(false))
	assert.Equal(t, []int{9, 5, 2}, set.digits(true))
	assert.Equal(t, 3, set.count())
	assert.Equal(t, 0, set.single())
	assert.Equal(t, 5, (singleton(5)).single())
}
