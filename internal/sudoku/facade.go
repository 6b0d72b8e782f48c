package sudoku

import (
	"fmt"

	"github.com/arsolve/dlxsudoku/internal/exactcover"
)

// Solve builds the exact-cover matrix for g, runs Algorithm X, and
// decodes the result back into a grid. The boolean result reports
// whether a solution was found; on an unsolvable instance it returns
// (nil, false, nil), not an error -- "no solution" is a normal outcome,
// not a failure.
func Solve(g *Grid) (*Grid, bool, error) {
	solved, ok, _, err := SolveWithStats(g, nil)
	return solved, ok, err
}

// SolveWithStats behaves like Solve but also returns the solver's search
// statistics, for callers such as cmd/benchmark that want to report
// timing and node counts.
func SolveWithStats(g *Grid, opts *exactcover.Options) (*Grid, bool, *exactcover.Stats, error) {
	matrix, err := BuildMatrix(g)
	if err != nil {
		return nil, false, nil, err
	}

	solver := exactcover.NewSolver(matrix)
	rowNames, _, stats := solver.SolveWithStats(opts)
	if len(rowNames) == 0 {
		return nil, false, stats, nil
	}

	result, err := DecodeSolution(g, rowNames)
	if err != nil {
		return nil, false, stats, err
	}
	return result, true, stats, nil
}

// SolveText decodes text with GetGridFromText, solves it, and re-encodes
// the result with GetTextFromGrid.
func SolveText(text string) (string, bool, error) {
	g, err := GetGridFromText(text)
	if err != nil {
		return "", false, err
	}
	solved, ok, err := Solve(g)
	if err != nil || !ok {
		return "", ok, err
	}
	return GetTextFromGrid(solved), true, nil
}

// Validate reports an error if g is not a completely and correctly filled
// Sudoku grid: every cell filled, and every row, column, and box
// containing each value 1..N exactly once.
func Validate(g *Grid) error {
	n := g.N
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g.cells[r][c] == 0 {
				return fmt.Errorf("sudoku: cell (%d,%d) is not filled", r, c)
			}
		}
	}

	for i := 0; i < n; i++ {
		if err := checkHouse(n, func(j int) int { return g.cells[i][j] }, fmt.Sprintf("row %d", i)); err != nil {
			return err
		}
		if err := checkHouse(n, func(j int) int { return g.cells[j][i] }, fmt.Sprintf("column %d", i)); err != nil {
			return err
		}
	}

	boxSize := g.BoxSize
	for b := 0; b < n; b++ {
		boxRow, boxCol := (b/boxSize)*boxSize, (b%boxSize)*boxSize
		if err := checkHouse(n, func(j int) int {
			return g.cells[boxRow+j/boxSize][boxCol+j%boxSize]
		}, fmt.Sprintf("box %d", b)); err != nil {
			return err
		}
	}
	return nil
}

func checkHouse(n int, value func(int) int, label string) error {
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		v := value(i)
		if v < 1 || v > n {
			return fmt.Errorf("sudoku: invalid value %d in %s", v, label)
		}
		if seen[v] {
			return fmt.Errorf("sudoku: duplicate value %d in %s", v, label)
		}
		seen[v] = true
	}
	return nil
}
