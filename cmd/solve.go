package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jankreimeier/sudoku/internal/solver"
)

var (
	solveReverse bool
	solveUnique  bool
	solvePretty  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <board>",
		Short: "Solve an 81-character board string",
		Long: `Solve a board given as 81 characters, row by row: digits '1'-'9'
for givens and '.' for blanks. Pass "-" to read the board from stdin.

Example:
  sudoku solve "003020600900305001001806400008102900700000008006708200002609500800203009005010300"`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVar(&solveReverse, "reverse", false, "Branch on candidates in descending order")
	solveCmd.Flags().BoolVar(&solveUnique, "check-unique", false, "Also report whether the solution is unique")
	solveCmd.Flags().BoolVar(&solvePretty, "pretty", false, "Render the solution as a grid")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	puzzle := args[0]
	if puzzle == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read board from stdin: %w", err)
			}
			return fmt.Errorf("no board on stdin")
		}
		puzzle = strings.TrimSpace(scanner.Text())
	}

	solve := solver.Solve
	if solveReverse {
		solve = solver.SolveReverse
	}

	solution, err := solve(puzzle)
	if err != nil {
		return err
	}

	if solvePretty {
		fmt.Println(renderBoard(solution))
	} else {
		fmt.Println(solution)
	}

	if solveUnique {
		unique, err := solver.Unique(puzzle)
		if err != nil {
			return err
		}
		if unique {
			fmt.Println("solution is unique")
		} else {
			fmt.Println("multiple solutions exist")
		}
	}
	return nil
}
