package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jankreimeier/sudoku/internal/board"
	"github.com/jankreimeier/sudoku/internal/generator"
	"github.com/jankreimeier/sudoku/internal/solver"
)

var (
	genCount      int
	genDifficulty string
	genGivens     int
	genSeed       int64
	genUnique     bool
	genOutput     string
	genPretty     bool
	genTimeout    time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles at a named difficulty.

Examples:
  sudoku gen --difficulty hard
  sudoku gen -n 5 -d insane --seed 42
  sudoku gen -d easy -o puzzles.txt`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genCount, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "", "Difficulty: easy, medium, hard, very-hard, insane, inhuman")
	genCmd.Flags().IntVar(&genGivens, "givens", 0, "Exact number of givens 17-81 (overrides difficulty)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().BoolVar(&genUnique, "unique", true, "Keep only puzzles that pass the uniqueness probe")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file, one 'puzzle solution' pair per line")
	genCmd.Flags().BoolVar(&genPretty, "pretty", false, "Render boards as grids")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")

	rootCmd.AddCommand(genCmd)
}

// resolveDifficulty falls back to the SUDOKU_DIFFICULTY environment
// variable when no --difficulty flag is given, then to easy.
func resolveDifficulty() (generator.Difficulty, error) {
	name := genDifficulty
	if name == "" {
		name = os.Getenv("SUDOKU_DIFFICULTY")
	}
	if name == "" {
		return generator.Easy, nil
	}
	return generator.ParseDifficulty(name)
}

// resolveSeed falls back to the SUDOKU_SEED environment variable when no
// --seed flag is given.
func resolveSeed() int64 {
	if genSeed != 0 {
		return genSeed
	}
	if v := os.Getenv("SUDOKU_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.WithField("SUDOKU_SEED", v).Warn("ignoring unparsable seed")
			return 0
		}
		return n
	}
	return 0
}

func runGen(cmd *cobra.Command, args []string) error {
	difficulty, err := resolveDifficulty()
	if err != nil {
		return err
	}

	opts := generator.DefaultOptions(difficulty)
	opts.Seed = resolveSeed()
	opts.Givens = genGivens
	opts.EnsureUnique = genUnique
	opts.Timeout = genTimeout

	gen := generator.New(opts)

	var lines []string
	for i := 0; i < genCount; i++ {
		start := time.Now()
		puzzle, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		solution, err := solver.Solve(puzzle)
		if err != nil {
			return fmt.Errorf("generated puzzle is unsolvable: %w", err)
		}

		log.WithFields(logrus.Fields{
			"puzzle":   i + 1,
			"givens":   board.CountGivens(puzzle),
			"duration": time.Since(start).Round(time.Millisecond),
		}).Debug("generated puzzle")

		if genOutput != "" {
			lines = append(lines, puzzle+" "+solution)
			continue
		}

		if genPretty {
			fmt.Printf("Puzzle #%d (%s, %d givens):\n%s\n", i+1, difficulty, board.CountGivens(puzzle), renderBoard(puzzle))
			fmt.Printf("Solution:\n%s\n", renderBoard(solution))
		} else {
			fmt.Println(puzzle)
			fmt.Println(solution)
		}
	}

	if genOutput != "" {
		data := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(genOutput, []byte(data), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.WithField("file", genOutput).Infof("wrote %d puzzle(s)", genCount)
	}
	return nil
}
