package sudoku

import (
	"math"
	"strconv"
	"strings"
)

// GetTextFromGrid encodes g as underscore-separated decimal values, row
// by row, with the terminal underscore trimmed. This form supports any
// grid size, matching spec.md §6's form (2).
func GetTextFromGrid(g *Grid) string {
	var b strings.Builder
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			b.WriteString(strconv.Itoa(g.cells[r][c]))
			b.WriteByte('_')
		}
	}
	text := b.String()
	return strings.TrimSuffix(text, "_")
}

// GetGridFromText decodes the underscore-separated form produced by
// GetTextFromGrid. The field count must be a perfect square.
func GetGridFromText(text string) (*Grid, error) {
	fields := strings.Split(text, "_")
	n := int(math.Round(math.Sqrt(float64(len(fields)))))
	if n*n != len(fields) {
		return nil, malformed("text encodes %d values, which is not a perfect square", len(fields))
	}

	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, n)
		for j := 0; j < n; j++ {
			v, err := strconv.Atoi(fields[i*n+j])
			if err != nil {
				return nil, malformed("field %q is not an integer", fields[i*n+j])
			}
			row[j] = v
		}
		rows[i] = row
	}
	return GridFromRows(rows)
}

// GridFromDigitString decodes a bare digit string of length N^2 (the
// plain-digit form, only defined for N <= 9): any character other than
// '1'..'9' is treated as an empty cell, matching the teacher's
// puzzle.PuzzleFromFile convention.
func GridFromDigitString(s string) (*Grid, error) {
	n := int(math.Round(math.Sqrt(float64(len(s)))))
	if n*n != len(s) || n > 9 {
		return nil, malformed("digit string has length %d, want a perfect square length N^2 with N<=9", len(s))
	}

	rows := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			ch := s[r*n+c]
			if ch >= '1' && ch <= '9' {
				row[c] = int(ch - '0')
			}
		}
		rows[r] = row
	}
	return GridFromRows(rows)
}
