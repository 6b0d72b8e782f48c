package sudoku

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arsolve/dlxsudoku/internal/dlx"
)

// BuildMatrix deterministically builds a DLX matrix encoding g as four
// families of N^2 exact-cover constraints: cell, row, column, and box.
// Values are zero-based internally (0..N-1); grid entries use 1..N with
// 0 meaning empty. A row is emitted for every (r, c, v) triple where cell
// (r,c) is empty or already holds value v+1, named "r_c_v", forcing
// pre-filled cells to a single candidate row.
func BuildMatrix(g *Grid) (*dlx.Matrix, error) {
	n := g.N
	numConstraints := 4 * n * n

	m := dlx.NewMatrix(constraintColumnNames(n))

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			given := g.cells[r][c]
			if given < 0 || given > n {
				return nil, malformed("value %d at (%d,%d) is outside [0,%d]", given, r, c, n)
			}
			for v := 0; v < n; v++ {
				if given != 0 && given != v+1 {
					continue
				}
				cols := constraintColumns(n, r, c, v)
				rowName := fmt.Sprintf("%d_%d_%d", r, c, v)
				if err := m.AddRow(rowName, cols); err != nil {
					return nil, fmt.Errorf("sudoku: building matrix: %w", err)
				}
			}
		}
	}

	if m.NumColumns() != numConstraints {
		return nil, malformed("expected %d constraint columns, built %d", numConstraints, m.NumColumns())
	}
	return m, nil
}

// constraintColumns returns the four column indices that setting cell
// (r,c) to value v (zero-based) intersects, per the layout in spec.md
// §4.3.
func constraintColumns(n, r, c, v int) []int {
	cell := r*n + c
	row := n*n + r*n + v
	col := 2*n*n + c*n + v
	box := 3*n*n + boxIndex(n, r, c)*n + v
	return []int{cell, row, col, box}
}

func boxIndex(n, r, c int) int {
	boxSize, _ := boxSizeOf(n)
	return (r/boxSize)*boxSize + c/boxSize
}

// constraintColumnNames produces debug-friendly column labels in the
// teacher's R<r>C<c> / R<r>#<v> / C<c>#<v> / B<b>#<v> style, generalized
// from the fixed 9x9 constants the teacher hard-codes.
func constraintColumnNames(n int) []string {
	names := make([]string, 4*n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			names[r*n+c] = fmt.Sprintf("R%dC%d", r, c)
		}
	}
	for r := 0; r < n; r++ {
		for v := 0; v < n; v++ {
			names[n*n+r*n+v] = fmt.Sprintf("R%d#%d", r, v+1)
		}
	}
	for c := 0; c < n; c++ {
		for v := 0; v < n; v++ {
			names[2*n*n+c*n+v] = fmt.Sprintf("C%d#%d", c, v+1)
		}
	}
	for b := 0; b < n; b++ {
		for v := 0; v < n; v++ {
			names[3*n*n+b*n+v] = fmt.Sprintf("B%d#%d", b, v+1)
		}
	}
	return names
}

// DecodeSolution parses each "r_c_v" row name from a solver's solution
// and writes v+1 into a copy of the original grid at (r,c). Pre-filled
// cells are overwritten with the same value they already held, by
// construction of BuildMatrix.
func DecodeSolution(original *Grid, rowNames []string) (*Grid, error) {
	result := original.Clone()
	for _, name := range rowNames {
		r, c, v, err := parseRowName(name)
		if err != nil {
			return nil, err
		}
		if err := result.Set(r, c, v+1); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func parseRowName(name string) (r, c, v int, err error) {
	parts := strings.Split(name, "_")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("sudoku: row name %q is not in r_c_v form", name)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("sudoku: row name %q is not in r_c_v form: %w", name, convErr)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
