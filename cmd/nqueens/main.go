// Command nqueens places N non-attacking queens on an NxN board using
// the generic dlx exact-cover solver: one primary column per rank and
// file (must be occupied exactly once), one secondary column per
// diagonal (occupied at most once), grounded on original_source's
// crates/nqueens encoding.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/kpitt/dlx"
)

func main() {
	n := flag.Int("n", 8, "board size")
	flag.Parse()

	if *n <= 0 {
		fmt.Fprintln(os.Stderr, "board size must be positive")
		os.Exit(1)
	}

	m, err := buildMatrix(*n)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building matrix:", err)
		os.Exit(1)
	}

	solutions := dlx.NewSolver(m, true, true).Solve()
	if len(solutions) == 0 {
		color.HiWhite("No solution for N=%d.", *n)
		return
	}

	board := decodeBoard(*n, solutions[0])
	printBoard(board)
}

func rowName(i int) string  { return fmt.Sprintf("Row_%d", i) }
func fileName(j int) string { return fmt.Sprintf("File_%d", j) }
func diagAName(d int) string { return fmt.Sprintf("DiagA_%d", d) }
func diagBName(d int) string { return fmt.Sprintf("DiagB_%d", d) }

func buildMatrix(n int) (*dlx.Matrix[string], error) {
	b := dlx.NewBuilder[string]()
	for i := 0; i < n; i++ {
		b.AddColumn(dlx.Primary(rowName(i)))
	}
	for j := 0; j < n; j++ {
		b.AddColumn(dlx.Primary(fileName(j)))
	}
	for d := 0; d <= 2*n-2; d++ {
		b.AddColumn(dlx.Secondary(diagAName(d)))
	}
	for d := 0; d <= 2*n-2; d++ {
		b.AddColumn(dlx.Secondary(diagBName(d)))
	}

	rb := b.EndColumns()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rb.AddRow([]string{
				rowName(i),
				fileName(j),
				diagAName(i + j),
				diagBName(n - 1 - i + j),
			})
		}
	}
	return rb.Build()
}

// decodeBoard turns a Solution's selected rows back into queen files
// indexed by rank.
func decodeBoard(n int, sol dlx.Solution[string]) []int {
	files := make([]int, n)
	for i := range files {
		files[i] = -1
	}

	for _, items := range sol.SolutionMap {
		var r, c int
		var haveR, haveC bool
		for _, item := range items {
			var idx int
			if _, err := fmt.Sscanf(item, "Row_%d", &idx); err == nil {
				r, haveR = idx, true
			}
			if _, err := fmt.Sscanf(item, "File_%d", &idx); err == nil {
				c, haveC = idx, true
			}
		}
		if haveR && haveC {
			files[r] = c
		}
	}
	return files
}

func printBoard(files []int) {
	for _, c := range files {
		for j := range files {
			if j == c {
				fmt.Print("Q ")
			} else {
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}
