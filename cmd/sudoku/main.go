// Command sudoku reads a 9x9 board from standard input and solves it
// using the generic dlx exact-cover solver, encoding the puzzle as the
// standard 324-column 4-family matrix (cell, row-digit, column-digit,
// box-digit).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/internal/sudokuio"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	givens := sudokuio.ReadBoard(os.Stdin)
	m, err := buildMatrix(givens)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building matrix:", err)
		os.Exit(1)
	}

	solutions := dlx.NewSolver(m, true, true).Solve()
	if len(solutions) == 0 {
		color.HiWhite("\nNo solution found.")
		return
	}

	color.HiWhite("\nSolution:")
	applySolution(&givens, solutions[0])
	givens.Print()
}

func buildMatrix(givens sudokuio.Board) (*dlx.Matrix[string], error) {
	b := dlx.NewBuilder[string]()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.AddColumn(dlx.Primary(cellName(r, c)))
		}
	}
	for r := 0; r < 9; r++ {
		for v := 1; v <= 9; v++ {
			b.AddColumn(dlx.Primary(rowDigitName(r, v)))
		}
	}
	for c := 0; c < 9; c++ {
		for v := 1; v <= 9; v++ {
			b.AddColumn(dlx.Primary(colDigitName(c, v)))
		}
	}
	for box := 0; box < 9; box++ {
		for v := 1; v <= 9; v++ {
			b.AddColumn(dlx.Primary(boxDigitName(box, v)))
		}
	}

	rb := b.EndColumns()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			box := (r/3)*3 + c/3
			lo, hi := 1, 9
			if givens[r][c] != 0 {
				lo, hi = givens[r][c], givens[r][c]
			}
			for v := lo; v <= hi; v++ {
				rb.AddRow([]string{
					cellName(r, c),
					rowDigitName(r, v),
					colDigitName(c, v),
					boxDigitName(box, v),
				})
			}
		}
	}
	return rb.Build()
}

func cellName(r, c int) string      { return fmt.Sprintf("R%dC%d", r, c) }
func rowDigitName(r, v int) string  { return fmt.Sprintf("R%d#%d", r, v) }
func colDigitName(c, v int) string  { return fmt.Sprintf("C%d#%d", c, v) }
func boxDigitName(b, v int) string  { return fmt.Sprintf("B%d#%d", b, v) }

// applySolution fills board with the digit placed in each solved cell,
// decoded from the per-row item set extractSolution produced.
func applySolution(board *sudokuio.Board, sol dlx.Solution[string]) {
	for _, items := range sol.SolutionMap {
		var r, c, v int
		var haveCell, haveDigit bool
		for _, item := range items {
			if n, err := fmt.Sscanf(item, "R%dC%d", &r, &c); err == nil && n == 2 {
				haveCell = true
			}
			if n, err := fmt.Sscanf(item, "R%d#%d", &r, &v); err == nil && n == 2 {
				haveDigit = true
			}
		}
		if haveCell && haveDigit {
			board[r][c] = v
		}
	}
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
