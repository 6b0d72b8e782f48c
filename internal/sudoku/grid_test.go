package sudoku

import "testing"

func TestNewGridRejectsNonSquareSize(t *testing.T) {
	if _, err := NewGrid(10); err == nil {
		t.Error("expected error for non-perfect-square size")
	}
}

func TestGridFromRowsRejectsRaggedInput(t *testing.T) {
	_, err := GridFromRows([][]int{{1, 2, 3, 4}, {1, 2, 3, 4}, {1}, {1, 2, 3, 4}})
	if err == nil {
		t.Error("expected error for non-square rows")
	}
}

func TestGridFromRowsRejectsOutOfRangeValue(t *testing.T) {
	_, err := GridFromRows([][]int{{5, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	if err == nil {
		t.Error("expected error for out-of-range value")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, err := GridFromRows([][]int{{1, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	clone := g.Clone()
	if err := clone.Set(0, 0, 9); err == nil {
		t.Fatal("expected range error setting 9 on a 4x4 grid")
	}
	if err := clone.Set(0, 0, 2); err != nil {
		t.Fatal(err)
	}
	if g.Get(0, 0) != 1 {
		t.Errorf("mutating clone affected original: got %d, want 1", g.Get(0, 0))
	}
}

func TestGridBox(t *testing.T) {
	g, err := NewGrid(9)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Box(0, 0); got != 0 {
		t.Errorf("Box(0,0) = %d, want 0", got)
	}
	if got := g.Box(8, 8); got != 8 {
		t.Errorf("Box(8,8) = %d, want 8", got)
	}
	if got := g.Box(4, 4); got != 4 {
		t.Errorf("Box(4,4) = %d, want 4", got)
	}
}

func TestGridEqual(t *testing.T) {
	a, _ := GridFromRows([][]int{{1, 2, 3, 4}, {3, 4, 1, 2}, {2, 1, 4, 3}, {4, 3, 2, 1}})
	b, _ := GridFromRows([][]int{{1, 2, 3, 4}, {3, 4, 1, 2}, {2, 1, 4, 3}, {4, 3, 2, 1}})
	c, _ := GridFromRows([][]int{{1, 2, 3, 4}, {3, 4, 1, 2}, {2, 1, 4, 3}, {4, 3, 2, 0}})

	if !a.Equal(b) {
		t.Error("expected equal grids to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected differing grids to compare unequal")
	}
}
