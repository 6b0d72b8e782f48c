// Command sudoku reads a Sudoku puzzle from stdin and solves it with the
// exact-cover (Dancing Links) solver.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/arsolve/dlxsudoku/internal/sudoku"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter the puzzle as N lines of N characters (digits 1-9 for N<=9),")
		fmt.Println("or as underscore-separated decimal values for any N.")
		fmt.Println("Use any non-digit character for an empty cell in the plain-digit form.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	g, err := sudoku.ReadGrid(os.Stdin)
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}

	solved, ok, stats, err := sudoku.SolveWithStats(g, nil)
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}

	if ok {
		color.HiWhite("\nSolution (%d nodes visited, %d backtracks, %v):", stats.NodesVisited, stats.BacktrackCount, stats.TimeElapsed)
		sudoku.Print(g, solved)
	} else {
		color.HiRed("\nNo solution exists for this puzzle.")
	}
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
