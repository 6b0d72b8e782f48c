package csp

import "github.com/arsolve/dlxsudoku/internal/set"

// LocSet is the set of cell indices (0..N-1, position within a house) that
// remain candidate locations for a value.
type LocSet = *set.Set[int]

// Group tracks, for one row, column, or box, which locations remain
// possible for each value not yet locked in that house. It is the
// generalized (N x N) form of the teacher's fixed 9x9 Group/House cache.
type Group struct {
	n        int
	unsolved map[int]LocSet
}

func newGroup(n int) *Group {
	g := &Group{n: n, unsolved: make(map[int]LocSet)}
	locs := make([]int, n)
	for i := range locs {
		locs[i] = i
	}
	for v := 1; v <= n; v++ {
		g.unsolved[v] = set.New(locs...)
	}
	return g
}

// RemoveCandidateCell removes cell from the candidate locations for value val.
func (g *Group) RemoveCandidateCell(val, cell int) {
	if cells := g.unsolved[val]; cells != nil {
		cells.Remove(cell)
		if cells.Size() == 0 {
			delete(g.unsolved, val)
		}
	}
}

// RemoveCandidateValue removes all candidate locations that conflict with a
// locked value of val in cell.
func (g *Group) RemoveCandidateValue(val, cell int) {
	delete(g.unsolved, val)
	for _, locs := range g.unsolved {
		locs.Remove(cell)
	}
}

func (g *Group) NumUnsolved() int {
	return len(g.unsolved)
}

func (g *Group) UnsolvedValues() []int {
	vals := make([]int, 0, len(g.unsolved))
	for v := range g.unsolved {
		vals = append(vals, v)
	}
	return vals
}

func (g *Group) NumLocations(val int) int {
	if loc, ok := g.unsolved[val]; ok {
		return loc.Size()
	}
	return 0
}

func (g *Group) Locations(val int) LocSet {
	if loc, ok := g.unsolved[val]; ok {
		return loc
	}
	return set.New[int]()
}
