package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jankreimeier/sudoku/internal/board"
)

func TestEliminateIsIdempotent(t *testing.T) {
	s := NewStore()
	require.True(t, eliminate(&s, 0, 5))

	// Eliminating a value that is already gone must leave the store
	// untouched and report success.
	snapshot := s
	require.True(t, eliminate(&s, 0, 5))
	assert.Equal(t, snapshot, s)
}

func TestAssignRemovesValueFromPeers(t *testing.T) {
	s := NewStore()
	require.True(t, s.Assign(0, 4))

	assert.Equal(t, 4, s.Single(0))
	for _, peer := range board.Peers(0) {
		assert.NotContains(t, s.Candidates(peer), 4, "peer %s still allows 4", board.CellName(peer))
	}
}

func TestAssignConflictingPeerFails(t *testing.T) {
	s := NewStore()
	require.True(t, s.Assign(0, 4))

	// A1 and A2 share a row; forcing the same digit into both must fail.
	assert.False(t, s.Assign(1, 4))
}

func TestEliminateDetectsEmptyCell(t *testing.T) {
	s := NewStore()
	for d := 1; d <= 8; d++ {
		require.True(t, eliminate(&s, 40, d))
	}
	// Only digit 9 remains in E5; removing it empties the cell.
	assert.False(t, eliminate(&s, 40, 9))
}

func TestHiddenSingleForcesLastHome(t *testing.T) {
	s := NewStore()

	// Remove digit 1 from A2..A9. The row unit then has a single legal home
	// for 1, which propagation must force into A1.
	for col := 1; col < 9; col++ {
		require.True(t, eliminate(&s, board.MakePos(0, col), 1))
	}
	assert.Equal(t, 1, s.Single(0))
}

func TestSeedContradictoryBoardFails(t *testing.T) {
	cells := make([]byte, board.CellCount)
	for i := range cells {
		cells[i] = board.Blank
	}
	// Two 7s in the same row.
	cells[0], cells[1] = '7', '7'

	_, ok := seed(string(cells))
	assert.False(t, ok)
}

func TestStoreCopyIsolatesBranches(t *testing.T) {
	s := NewStore()
	branch := s
	require.True(t, branch.Assign(0, 3))

	// The original store must be unaffected by mutations of the copy.
	assert.Equal(t, 0, s.Single(0))
	assert.Len(t, s.Candidates(0), 9)
}
