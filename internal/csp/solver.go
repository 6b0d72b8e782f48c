package csp

import (
	"fmt"

	"github.com/arsolve/dlxsudoku/internal/sudoku"
)

// Solver is a naive constraint-propagation solver, a comparison baseline
// for the exact-cover solver: it repeatedly applies "naked single" and
// "hidden single" elimination until the board is solved or no further
// progress can be made, and never guesses. It is the generalized,
// two-pattern subset of the teacher's nine-pattern solver.Solver.
type Solver struct {
	board  *Board
	log    Logger
	passes int
}

// NewSolver builds a Solver over g. It does not mutate g.
func NewSolver(g *sudoku.Grid, log Logger) (*Solver, error) {
	b, err := NewBoard(g)
	if err != nil {
		return nil, err
	}
	return &Solver{board: b, log: log}, nil
}

// Solve repeatedly eliminates candidates using naked and hidden singles
// until the board is solved or a pass makes no further progress. It
// returns the resulting grid and whether it is completely solved: a
// partial result is not an error, since this solver makes no guesses.
func (s *Solver) Solve() (*sudoku.Grid, bool) {
	for !s.board.IsSolved() {
		s.passes++
		if s.log != nil {
			s.log.Pass(s.passes)
		}

		if s.findNakedSingles() {
			continue
		}
		if s.findHiddenSingles() {
			continue
		}
		break
	}
	return s.board.Grid(), s.board.IsSolved()
}

func (s *Solver) Passes() int {
	return s.passes
}

// lockValue locks (r,c) to val and logs it under pattern. val is always a
// value board.lockValue has already validated as a live candidate at
// (r,c) -- findNakedSingles and findHiddenSingles only ever call this with
// a value drawn from the cell's or group's own unsolved candidate set, so
// a failure here means that invariant has been broken, not that the input
// puzzle is unsolvable; that is a board-contract violation, not data to
// hand back to the caller, so it panics rather than returning an error.
func (s *Solver) lockValue(r, c, val int, pattern string) {
	cell := s.board.cells[r][c]
	if cell.IsLocked() {
		return
	}
	if err := s.board.lockValue(r, c, val); err != nil {
		panic(fmt.Sprintf("csp: %s: %v", pattern, err))
	}
	if s.log != nil {
		s.log.Found(pattern, r, c, val)
	}
}

// findNakedSingles locks any cell that has exactly one remaining candidate.
func (s *Solver) findNakedSingles() bool {
	found := false
	for r := range s.board.n {
		for c := range s.board.n {
			cell := s.board.cells[r][c]
			if !cell.IsLocked() && cell.NumCandidates() == 1 {
				s.lockValue(r, c, cell.Candidates()[0], "naked single")
				found = true
			}
		}
	}
	return found
}

func (s *Solver) findHiddenSingles() bool {
	found := false
	for i := range s.board.n {
		found = s.checkHiddenSinglesForGroup(s.board.rowGroups[i], "row", i) || found
		found = s.checkHiddenSinglesForGroup(s.board.colGroups[i], "col", i) || found
		found = s.checkHiddenSinglesForGroup(s.board.boxGroups[i], "box", i) || found
	}
	return found
}

func (s *Solver) checkHiddenSinglesForGroup(g *Group, groupType string, index int) bool {
	found := false
	for val, locs := range g.unsolved {
		if locs.Size() != 1 {
			continue
		}
		loc := locs.Values()[0]
		r, c := s.locToCell(groupType, index, loc)
		s.lockValue(r, c, val, "hidden single ("+groupType+")")
		found = true
	}
	return found
}

func (s *Solver) locToCell(groupType string, index, loc int) (r, c int) {
	switch groupType {
	case "row":
		return index, loc
	case "col":
		return loc, index
	default:
		return s.board.boxCellLoc(index, loc)
	}
}
