// Command dlxdemo demonstrates the internal/dlx and internal/exactcover
// packages directly: first on Knuth's classic toy exact-cover instance,
// then on a Sudoku puzzle reduced to exact cover, reporting search
// statistics for both.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/arsolve/dlxsudoku/internal/dlx"
	"github.com/arsolve/dlxsudoku/internal/exactcover"
	"github.com/arsolve/dlxsudoku/internal/sudoku"
)

func main() {
	fmt.Println(color.HiCyanString("Dancing Links / Algorithm X demonstration"))
	fmt.Println(color.HiCyanString("=========================================="))

	demoToyInstance()
	fmt.Println()
	demoSudoku()
}

// demoToyInstance solves Knuth's published 7-column, 6-row exact cover
// example (Dancing Links Objects, 2000), which has exactly one solution:
// rows A, D, and E.
func demoToyInstance() {
	fmt.Println(color.HiYellowString("\nToy instance (Knuth's 7-column example):"))

	m := dlx.NewMatrix([]string{"1", "2", "3", "4", "5", "6", "7"})
	rows := map[string][]int{
		"A": {2, 4, 5},
		"B": {0, 3, 6},
		"C": {1, 2, 5},
		"D": {0, 3},
		"E": {1, 6},
		"F": {3, 4, 6},
	}
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		if err := m.AddRow(name, rows[name]); err != nil {
			color.Red("error adding row %s: %v", name, err)
			return
		}
	}

	info := m.Stats()
	fmt.Printf("Matrix: %d columns, %d rows, %d nodes, %.1f%% density\n",
		info.Columns, info.Rows, info.TotalNodes, info.Density)

	solver := exactcover.NewSolver(m)
	solution, _, stats := solver.SolveWithStats(nil)
	if !stats.Solved {
		fmt.Println(color.HiRedString("no solution found"))
		return
	}
	fmt.Printf("Solution: %v (%d nodes visited, %d backtracks, %v)\n",
		solution, stats.NodesVisited, stats.BacktrackCount, stats.TimeElapsed)
}

func demoSudoku() {
	fmt.Println(color.HiYellowString("Sudoku instance reduced to exact cover:"))

	puzzle := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	g, err := sudoku.GridFromDigitString(puzzle)
	if err != nil {
		color.Red("error: %v", err)
		return
	}

	matrix, err := sudoku.BuildMatrix(g)
	if err != nil {
		color.Red("error: %v", err)
		return
	}

	info := matrix.Stats()
	fmt.Printf("Matrix: %d columns, %d rows, %d nodes, %.1f%% density\n",
		info.Columns, info.Rows, info.TotalNodes, info.Density)

	solver := exactcover.NewSolver(matrix)
	rowNames, _, stats := solver.SolveWithStats(nil)
	if !stats.Solved {
		fmt.Println(color.HiRedString("no solution found"))
		return
	}

	solved, err := sudoku.DecodeSolution(g, rowNames)
	if err != nil {
		color.Red("error decoding solution: %v", err)
		return
	}

	fmt.Printf("Solved in %d nodes visited, %d backtracks, %v\n",
		stats.NodesVisited, stats.BacktrackCount, stats.TimeElapsed)
	sudoku.Print(g, solved)
}
