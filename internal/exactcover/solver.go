// Package exactcover implements Knuth's Algorithm X over a dlx.Matrix:
// it chooses a branching column by minimum remaining values, covers
// satisfied constraints, recurses, and on failure undoes every mutation
// in exact reverse order.
package exactcover

import (
	"context"
	"math"
	"time"

	"github.com/arsolve/dlxsudoku/internal/dlx"
)

// Solver drives Algorithm X over a single dlx.Matrix. A Solver is
// single-use: call Solve (or SolveWithStats) once per instance.
type Solver struct {
	matrix *dlx.Matrix
	chosen []*dlx.Cell // stack of chosen row-start cells, one per depth
}

// NewSolver returns a Solver for m. m is mutated in place during Solve and
// restored to its original topology once Solve returns, whether or not a
// solution was found.
func NewSolver(m *dlx.Matrix) *Solver {
	return &Solver{matrix: m}
}

// Solve runs Algorithm X and returns the first solution found: the chosen
// row names in selection order, and a map from each chosen row name to
// the column names it covers. An unsolvable instance returns a nil slice
// and an empty map.
func (s *Solver) Solve() ([]string, map[string][]string) {
	rows, details, _ := s.SolveWithStats(nil)
	return rows, details
}

// Options configures SolveWithStats.
type Options struct {
	// Ctx, if non-nil, is checked once per recursive search step (never
	// inside a cover/uncover pair). A cancelled context still unwinds
	// through the normal uncover path before returning, so the matrix is
	// never left partially covered.
	Ctx context.Context
}

// Stats reports search statistics for a SolveWithStats call. It plays no
// role in the algorithm's correctness; it exists purely for diagnostics.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	Solved         bool
	TimeElapsed    time.Duration
}

// SolveWithStats behaves like Solve but also returns search statistics,
// and honors opts.Ctx for cooperative cancellation. A cancelled search
// reports Solved == false with whatever stats were accumulated so far.
func (s *Solver) SolveWithStats(opts *Options) ([]string, map[string][]string, *Stats) {
	var ctx context.Context
	if opts != nil {
		ctx = opts.Ctx
	}

	stats := &Stats{}
	start := time.Now()
	defer func() { stats.TimeElapsed = time.Since(start) }()

	s.chosen = s.chosen[:0]
	stats.Solved = s.search(ctx, stats)
	if !stats.Solved {
		return nil, map[string][]string{}, stats
	}
	rows, details := s.extractSolution()
	return rows, details, stats
}

// search implements the recursive backtracking step described in
// spec.md §4.2: pick the MRV column, cover it, try each row through it in
// order, and on failure uncover in the exact reverse order of covering.
func (s *Solver) search(ctx context.Context, stats *Stats) bool {
	if ctx != nil {
		select {
		case <-ctx.Done():
			return false
		default:
		}
	}

	stats.NodesVisited++

	root := s.matrix.Root()
	if root.Right == &root.Cell {
		return true
	}

	col := s.chooseColumn(root)
	s.matrix.CoverHeader(col)

	for r := col.Down; r != &col.Cell; r = r.Down {
		s.chosen = append(s.chosen, r)

		for j := r.Right; j != r; j = j.Right {
			s.matrix.CoverHeader(j.Column)
		}

		found := s.search(ctx, stats)

		for j := r.Left; j != r; j = j.Left {
			s.matrix.UncoverHeader(j.Column)
		}
		if found {
			s.matrix.UncoverHeader(col)
			return true
		}
		s.chosen = s.chosen[:len(s.chosen)-1]
		stats.BacktrackCount++
	}

	s.matrix.UncoverHeader(col)
	return false
}

// chooseColumn selects the column with the fewest live cells among those
// currently linked to root, breaking ties in favor of the leftmost
// column encountered.
func (s *Solver) chooseColumn(root *dlx.HeaderCell) *dlx.HeaderCell {
	var chosen *dlx.HeaderCell
	minSize := math.MaxInt

	for col := root.Right; col != &root.Cell; col = col.Right {
		h := col.Column
		if h.Size < minSize {
			chosen = h
			minSize = h.Size
		}
	}
	return chosen
}

// extractSolution reads off the chosen row names and the column names
// each one covers, from the depth stack left behind by a successful
// search.
func (s *Solver) extractSolution() ([]string, map[string][]string) {
	rowNames := make([]string, 0, len(s.chosen))
	details := make(map[string][]string, len(s.chosen))

	for _, row := range s.chosen {
		name, _ := s.matrix.RowName(row.RowNumber)
		cols := []string{row.Column.Name}
		for n := row.Right; n != row; n = n.Right {
			cols = append(cols, n.Column.Name)
		}
		rowNames = append(rowNames, name)
		details[name] = cols
	}
	return rowNames, details
}
