package board

const (
	unitsPerCell = 3
	peersPerCell = 20
)

const (
	rowNames = "ABCDEFGHI"
	colNames = "123456789"
)

// Precomputed lookup tables for the grid topology. They are built once in
// init() and never mutated afterwards, so they are safe to share across
// concurrent solves.
var (
	units     [UnitCount][UnitSize]int
	unitsOf   [CellCount][unitsPerCell][UnitSize]int
	peersOf   [CellCount][peersPerCell]int
	cellNames [CellCount]string
)

// Units returns all 27 units: 9 rows, then 9 columns, then 9 boxes.
func Units() [UnitCount][UnitSize]int {
	return units
}

// UnitsOf returns the three units (row, column, box) containing pos.
func UnitsOf(pos int) [unitsPerCell][UnitSize]int {
	return unitsOf[pos]
}

// Peers returns the 20 cells that share at least one unit with pos.
func Peers(pos int) [peersPerCell]int {
	return peersOf[pos]
}

// CellName returns the display name of a position, "A1" through "I9".
// Rows are lettered top to bottom, columns numbered left to right.
func CellName(pos int) string {
	if pos < 0 || pos >= CellCount {
		return "??"
	}
	return cellNames[pos]
}

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			units[r][c] = MakePos(r, c)
		}
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			units[9+c][r] = MakePos(r, c)
		}
	}
	for b := 0; b < 9; b++ {
		baseRow, baseCol := (b/3)*3, (b%3)*3
		for i := 0; i < 9; i++ {
			units[18+b][i] = MakePos(baseRow+i/3, baseCol+i%3)
		}
	}

	for pos := 0; pos < CellCount; pos++ {
		row, col := pos/9, pos%9
		box := 3*(row/3) + col/3
		unitsOf[pos] = [unitsPerCell][UnitSize]int{units[row], units[9+col], units[18+box]}

		var seen [CellCount]bool
		n := 0
		for _, unit := range unitsOf[pos] {
			for _, p := range unit {
				if p != pos && !seen[p] {
					seen[p] = true
					peersOf[pos][n] = p
					n++
				}
			}
		}

		cellNames[pos] = string(rowNames[row]) + string(colNames[col])
	}
}
