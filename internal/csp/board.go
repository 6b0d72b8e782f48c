package csp

import (
	"fmt"

	"github.com/arsolve/dlxsudoku/internal/sudoku"
)

// Board is a candidate-propagation view of a Sudoku grid: it mirrors the
// teacher's fixed 9x9 board.Board, generalized to any perfect-square N and
// restricted to the two patterns this package implements (naked and hidden
// singles) rather than the teacher's full human-technique library.
type Board struct {
	n, boxSize    int
	cells         [][]*Cell
	unlockedCount int

	rowGroups []*Group
	colGroups []*Group
	boxGroups []*Group
}

// NewBoard builds a Board from g, locking every given cell and propagating
// the resulting candidate eliminations before returning.
func NewBoard(g *sudoku.Grid) (*Board, error) {
	n := g.N
	b := &Board{n: n, boxSize: g.BoxSize, unlockedCount: n * n}

	b.cells = make([][]*Cell, n)
	for r := range b.cells {
		b.cells[r] = make([]*Cell, n)
		for c := range b.cells[r] {
			b.cells[r][c] = newCell(n)
		}
	}

	b.rowGroups = make([]*Group, n)
	b.colGroups = make([]*Group, n)
	b.boxGroups = make([]*Group, n)
	for i := range n {
		b.rowGroups[i] = newGroup(n)
		b.colGroups[i] = newGroup(n)
		b.boxGroups[i] = newGroup(n)
	}

	for r := range n {
		for c := range n {
			if val := g.Get(r, c); val != 0 {
				if err := b.fixValue(r, c, val); err != nil {
					return nil, err
				}
			}
		}
	}
	return b, nil
}

func (b *Board) IsSolved() bool {
	return b.unlockedCount == 0
}

func (b *Board) fixValue(r, c, val int) error {
	if err := b.lockValue(r, c, val); err != nil {
		return err
	}
	b.cells[r][c].IsFixed = true
	return nil
}

func (b *Board) lockValue(r, c, val int) error {
	cell := b.cells[r][c]
	if cell.IsLocked() {
		if cell.LockedValue() != val {
			return fmt.Errorf("csp: conflicting locked values at (%d,%d)", r, c)
		}
		return nil
	}
	if !cell.IsCandidate(val) {
		return fmt.Errorf("csp: %d is not a legal value at (%d,%d)", val, r, c)
	}

	cell.LockValue(val)
	b.unlockedCount--
	b.eliminateCandidates(r, c, val)
	return nil
}

// eliminateCandidates removes val as a candidate for row r, column c, and
// the box containing (r,c), and removes (r,c) as a possible location for
// any other value in those three houses.
func (b *Board) eliminateCandidates(r, c, val int) {
	n := b.n
	box, boxCell, rowBase, colBase := b.boxInfo(r, c)

	b.rowGroups[r].RemoveCandidateValue(val, c)
	b.colGroups[c].RemoveCandidateValue(val, r)
	b.boxGroups[box].RemoveCandidateValue(val, boxCell)

	for i := range n {
		b.removeCellCandidate(r, i, val)
		b.removeCellCandidate(i, c, val)
		b.removeCellCandidate(rowBase+i/b.boxSize, colBase+i%b.boxSize, val)
	}
}

func (b *Board) removeCellCandidate(r, c, val int) {
	cell := b.cells[r][c]
	if cell.IsLocked() || !cell.IsCandidate(val) {
		return
	}
	cell.RemoveCandidate(val)

	box, boxCell, _, _ := b.boxInfo(r, c)
	b.rowGroups[r].RemoveCandidateCell(val, c)
	b.colGroups[c].RemoveCandidateCell(val, r)
	b.boxGroups[box].RemoveCandidateCell(val, boxCell)
}

func (b *Board) boxInfo(row, col int) (boxIndex, cellIndex, baseRow, baseCol int) {
	boxSize := b.boxSize
	boxRow, boxCol := row/boxSize, col/boxSize
	boxIndex = boxRow*(b.n/boxSize) + boxCol
	baseRow, baseCol = boxRow*boxSize, boxCol*boxSize
	cellIndex = (row-baseRow)*boxSize + (col - baseCol)
	return boxIndex, cellIndex, baseRow, baseCol
}

func (b *Board) boxCellLoc(boxIndex, cellIndex int) (row, col int) {
	boxesPerRow := b.n / b.boxSize
	boxRow, boxCol := boxIndex/boxesPerRow, boxIndex%boxesPerRow
	cellRow, cellCol := cellIndex/b.boxSize, cellIndex%b.boxSize
	return boxRow*b.boxSize + cellRow, boxCol*b.boxSize + cellCol
}

// Grid returns the board's current state as a sudoku.Grid, with 0 for
// cells that remain unlocked.
func (b *Board) Grid() *sudoku.Grid {
	rows := make([][]int, b.n)
	for r := range rows {
		rows[r] = make([]int, b.n)
		for c := range rows[r] {
			rows[r][c] = b.cells[r][c].LockedValue()
		}
	}
	g, _ := sudoku.GridFromRows(rows)
	return g
}
