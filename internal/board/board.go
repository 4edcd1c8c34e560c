// Package board defines the fixed 9×9 grid topology and the 81-character
// board-string boundary shared by the solver and generator.
package board

// Grid geometry constants.
const (
	CellCount = 81
	UnitCount = 27
	UnitSize  = 9

	// Blank marks an unfilled cell in a board string.
	Blank byte = '.'

	// InvalidCell is returned by MakePos for out-of-range coordinates.
	InvalidCell = -1
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// IsBlank reports whether a board-string character marks an unfilled cell.
// '0' is accepted as an input alias for '.'; output always uses '.'.
func IsBlank(ch byte) bool {
	return ch == Blank || ch == '0'
}

// CountGivens returns the number of non-blank cells in a board string.
func CountGivens(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if !IsBlank(s[i]) {
			n++
		}
	}
	return n
}
