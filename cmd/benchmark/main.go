// Command benchmark times internal/sudoku's exact-cover solver against a
// CSV of puzzles and known solutions, optionally comparing it against the
// naive internal/csp singles-only solver. The CSV format mirrors the
// "quizzes,solutions" columns used by the reference implementation's own
// benchmark script: one plain-digit puzzle and solution per row.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/arsolve/dlxsudoku/internal/csp"
	"github.com/arsolve/dlxsudoku/internal/exactcover"
	"github.com/arsolve/dlxsudoku/internal/sudoku"
)

func main() {
	path := flag.String("csv", "sudoku.csv", "path to a CSV file with quizzes,solutions columns")
	limit := flag.Int("limit", 1000, "maximum number of rows to benchmark (0 = all)")
	compareCSP := flag.Bool("compare-csp", false, "also benchmark the naive CSP (singles-only) solver")
	perPuzzleTimeout := flag.Duration("timeout", 0, "abort a single puzzle's exact-cover search after this long (0 = no limit)")
	flag.Parse()

	f, err := os.Open(*path)
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readRows(f, *limit)
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}

	color.HiCyan("Benchmarking exact-cover solver over %d puzzles", len(rows))
	runExactCover(rows, *perPuzzleTimeout)

	if *compareCSP {
		color.HiCyan("\nBenchmarking naive CSP solver over %d puzzles", len(rows))
		runCSP(rows)
	}
}

type puzzleRow struct {
	quiz, solution string
}

func readRows(r io.Reader, limit int) (rows []puzzleRow, err error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	quizCol, solCol := -1, -1
	for i, name := range header {
		switch name {
		case "quizzes":
			quizCol = i
		case "solutions":
			solCol = i
		}
	}
	if quizCol < 0 || solCol < 0 {
		return nil, fmt.Errorf("CSV header must contain both a %q and %q column", "quizzes", "solutions")
	}

	for {
		if limit > 0 && len(rows) >= limit {
			break
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows), err)
		}
		rows = append(rows, puzzleRow{quiz: record[quizCol], solution: record[solCol]})
	}
	return rows, nil
}

func runExactCover(rows []puzzleRow, perPuzzleTimeout time.Duration) {
	var totalTime time.Duration
	var solvedCount, mismatchCount, timedOutCount int

	start := time.Now()
	for i, row := range rows {
		g, err := sudoku.GridFromDigitString(row.quiz)
		if err != nil {
			color.Red("row %d: invalid puzzle: %v", i, err)
			continue
		}
		want, err := sudoku.GridFromDigitString(row.solution)
		if err != nil {
			color.Red("row %d: invalid solution: %v", i, err)
			continue
		}

		opts, cancel := solveOptions(perPuzzleTimeout)

		t0 := time.Now()
		solved, ok, stats, err := sudoku.SolveWithStats(g, opts)
		totalTime += time.Since(t0)
		cancel()
		if err != nil {
			color.Red("row %d: solve error: %v", i, err)
			continue
		}
		if !ok {
			if stats != nil && perPuzzleTimeout > 0 && stats.TimeElapsed >= perPuzzleTimeout {
				timedOutCount++
				color.Yellow("row %d: timed out after %v", i, perPuzzleTimeout)
			} else {
				color.Yellow("row %d: no solution found", i)
			}
			continue
		}
		solvedCount++
		if !solved.Equal(want) {
			mismatchCount++
			color.Red("row %d: solution does not match expected", i)
		}
	}
	wall := time.Since(start)

	color.HiGreen("Solved %d/%d (mismatches: %d, timed out: %d)", solvedCount, len(rows), mismatchCount, timedOutCount)
	if solvedCount > 0 {
		fmt.Printf("Average solve time: %v\n", totalTime/time.Duration(solvedCount))
	}
	fmt.Printf("Total wall time: %v\n", wall)
}

// solveOptions builds the per-puzzle exactcover.Options for timeout, the
// caller must call the returned cancel func once the solve returns,
// matching context.WithTimeout's own contract. A zero timeout disables
// cancellation entirely: the returned options are nil, so no context is
// supplied, since the search loop in
// internal/exactcover only pays the cancellation-check cost when a
// context is actually supplied.
func solveOptions(timeout time.Duration) (*exactcover.Options, context.CancelFunc) {
	if timeout <= 0 {
		return nil, func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	return &exactcover.Options{Ctx: ctx}, cancel
}

func runCSP(rows []puzzleRow) {
	var totalTime time.Duration
	var fullySolvedCount int

	start := time.Now()
	for i, row := range rows {
		g, err := sudoku.GridFromDigitString(row.quiz)
		if err != nil {
			continue
		}

		t0 := time.Now()
		solver, err := csp.NewSolver(g, nil)
		if err != nil {
			color.Red("row %d: %v", i, err)
			continue
		}
		_, solved := solver.Solve()
		totalTime += time.Since(t0)
		if solved {
			fullySolvedCount++
		}
	}
	wall := time.Since(start)

	color.HiGreen("Fully solved by singles alone: %d/%d", fullySolvedCount, len(rows))
	fmt.Printf("Average attempt time: %v\n", totalTime/time.Duration(len(rows)))
	fmt.Printf("Total wall time: %v\n", wall)
}
