package csp

import "github.com/arsolve/dlxsudoku/internal/set"

// Cell holds the candidate-propagation state for one Sudoku cell: either a
// locked value, or the set of values not yet ruled out by the houses it
// belongs to.
type Cell struct {
	IsFixed bool

	value      int
	candidates *set.Set[int]
}

func newCell(n int) *Cell {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i + 1
	}
	return &Cell{candidates: set.New(vals...)}
}

func (c *Cell) IsLocked() bool {
	return c.value > 0
}

func (c *Cell) LockedValue() int {
	return c.value
}

func (c *Cell) LockValue(val int) {
	c.value = val
	c.candidates.Clear()
}

func (c *Cell) NumCandidates() int {
	return c.candidates.Size()
}

func (c *Cell) Candidates() []int {
	return c.candidates.Values()
}

func (c *Cell) IsCandidate(val int) bool {
	return c.candidates.Contains(val)
}

func (c *Cell) RemoveCandidate(val int) {
	c.candidates.Remove(val)
}
