package sudoku

import "testing"

func TestTextRoundTrip(t *testing.T) {
	g, err := GridFromRows([][]int{
		{1, 0, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	text := GetTextFromGrid(g)
	back, err := GetGridFromText(text)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(back) {
		t.Errorf("round trip mismatch: got %v, want %v", back.Rows(), g.Rows())
	}
}

func TestGetGridFromTextRejectsNonSquareFieldCount(t *testing.T) {
	if _, err := GetGridFromText("1_2_3"); err == nil {
		t.Error("expected error for a field count that is not a perfect square")
	}
}

func TestGridFromDigitStringTreatsNonDigitsAsEmpty(t *testing.T) {
	g, err := GridFromDigitString("1.34341221434321") // 4x4 grid, '.' at index 1
	if err != nil {
		t.Fatal(err)
	}
	if g.Get(0, 1) != 0 {
		t.Errorf("expected '.' to decode as empty, got %d", g.Get(0, 1))
	}
	if g.Get(0, 0) != 1 || g.Get(0, 2) != 3 || g.Get(0, 3) != 4 {
		t.Errorf("unexpected decode: %v", g.Rows())
	}
}

func TestGridFromDigitStringRejectsOversizeGrids(t *testing.T) {
	s := ""
	for i := 0; i < 16*16; i++ {
		s += "1"
	}
	if _, err := GridFromDigitString(s); err == nil {
		t.Error("expected error for N=16, which exceeds the plain-digit form's N<=9 limit")
	}
}

func TestGridFromDigitStringParsesGivens(t *testing.T) {
	g, err := GridFromDigitString("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"[:81])
	if err != nil {
		t.Fatal(err)
	}
	if g.N != 9 {
		t.Fatalf("N = %d, want 9", g.N)
	}
	if g.Get(0, 0) != 5 || g.Get(0, 1) != 3 {
		t.Errorf("unexpected givens at row 0: %v", g.Rows()[0])
	}
	if g.Get(0, 2) != 0 {
		t.Errorf("expected (0,2) empty, got %d", g.Get(0, 2))
	}
}
