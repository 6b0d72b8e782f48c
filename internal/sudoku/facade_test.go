package sudoku

import "testing"

func TestSolveTrivial4x4(t *testing.T) {
	g, err := GridFromRows([][]int{
		{1, 0, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	solved, ok, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a solution")
	}
	if err := Validate(solved); err != nil {
		t.Errorf("solution failed validation: %v", err)
	}
	if solved.Get(0, 1) != 2 {
		t.Errorf("Get(0,1) = %d, want 2 (the only legal value left for that cell)", solved.Get(0, 1))
	}
	if solved.Get(3, 3) != 1 {
		t.Errorf("Get(3,3) = %d, want 1", solved.Get(3, 3))
	}
}

func TestSolveCanonical9x9(t *testing.T) {
	puzzle := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	solution := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	g := gridFromDigits(t, puzzle)
	want := gridFromDigits(t, solution)

	solved, ok, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a solution")
	}
	if !solved.Equal(want) {
		t.Errorf("solved grid does not match known solution:\ngot:  %v\nwant: %v", solved.Rows(), want.Rows())
	}
}

func TestSolveSingleBlankCellIsForced(t *testing.T) {
	solution := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	want := gridFromDigits(t, solution)

	almost := want.Clone()
	if err := almost.Set(4, 4, 0); err != nil {
		t.Fatal(err)
	}

	solved, ok, err := Solve(almost)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a solution")
	}
	if !solved.Equal(want) {
		t.Errorf("forced cell did not recover the unique solution:\ngot:  %v\nwant: %v", solved.Rows(), want.Rows())
	}
}

func TestSolveConflictingGridReturnsNoSolution(t *testing.T) {
	g, err := GridFromRows([][]int{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	solved, ok, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no solution for a grid with a duplicate in the first row")
	}
	if solved != nil {
		t.Errorf("expected nil grid on no-solution, got %v", solved.Rows())
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	puzzle := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	g := gridFromDigits(t, puzzle)

	once, ok, err := Solve(g)
	if err != nil || !ok {
		t.Fatalf("first solve: ok=%v err=%v", ok, err)
	}
	twice, ok, err := Solve(once)
	if err != nil || !ok {
		t.Fatalf("second solve: ok=%v err=%v", ok, err)
	}
	if !once.Equal(twice) {
		t.Errorf("solving an already-solved grid changed it:\nonce:  %v\ntwice: %v", once.Rows(), twice.Rows())
	}
}

func TestSolveTextRoundTrip(t *testing.T) {
	puzzle := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	g := gridFromDigits(t, puzzle)

	result, ok, err := SolveText(GetTextFromGrid(g))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a solution")
	}

	solved, err := GetGridFromText(result)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(solved); err != nil {
		t.Errorf("solution failed validation: %v", err)
	}
}

func TestValidateRejectsIncompleteGrid(t *testing.T) {
	g, err := NewGrid(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(g); err == nil {
		t.Error("expected error validating an empty grid")
	}
}

func TestValidateRejectsDuplicateInRow(t *testing.T) {
	g, err := GridFromRows([][]int{
		{1, 1, 3, 4},
		{3, 4, 1, 2},
		{2, 3, 4, 1},
		{4, 2, 2, 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(g); err == nil {
		t.Error("expected error validating a grid with a duplicate in row 0")
	}
}
