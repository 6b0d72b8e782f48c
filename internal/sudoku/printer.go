package sudoku

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiBlue)
	solvedColor = color.New(color.Bold, color.FgHiGreen)
	emptyColor  = color.New(color.FgHiBlack)
)

// Print writes a colorized rendering of solved to stdout, coloring cells
// that were already filled in original differently from cells the solver
// filled in, and empty cells differently again. original and solved must
// have the same dimensions; original may be nil if no distinction between
// given and solved cells is wanted.
func Print(original, solved *Grid) {
	width := cellWidth(solved.N)
	border := horizontalBorder(solved.N, solved.BoxSize, width)

	fmt.Println(border)
	for r := 0; r < solved.N; r++ {
		if r != 0 && r%solved.BoxSize == 0 {
			fmt.Println(border)
		}
		printRow(original, solved, r, width)
	}
	fmt.Println(border)
}

func printRow(original, solved *Grid, r, width int) {
	fmt.Print("|")
	for c := 0; c < solved.N; c++ {
		if c != 0 && c%solved.BoxSize == 0 {
			fmt.Print("|")
		}
		val := solved.Get(r, c)
		fmt.Print(" ")
		switch {
		case val == 0:
			emptyColor.Print(strings.Repeat(".", width))
		case original != nil && original.Get(r, c) == val:
			givenColor.Printf("%*d", width, val)
		default:
			solvedColor.Printf("%*d", width, val)
		}
		fmt.Print(" ")
	}
	fmt.Println("|")
}

func cellWidth(n int) int {
	w := len(fmt.Sprintf("%d", n))
	if w < 1 {
		w = 1
	}
	return w
}

// horizontalBorder builds a "+---+---+" style divider sized to n columns
// grouped into boxes of boxSize, the way qur2-go-cover's sudoku printer
// derives its delimiter from the box dimension instead of hard-coding it.
func horizontalBorder(n, boxSize, width int) string {
	segment := strings.Repeat("-", width+2)
	boxes := n / boxSize

	var b strings.Builder
	b.WriteString("+")
	for i := 0; i < boxes; i++ {
		b.WriteString(strings.Repeat(segment, boxSize))
		b.WriteString("+")
	}
	return b.String()
}
