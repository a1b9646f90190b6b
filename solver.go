package dlx

import (
	"cmp"
	"math/rand/v2"
)

// Solution maps each selected row's number to the items that row covers,
// in row-ring order. It owns its own copies of the item values rather
// than borrowing from the matrix, so a Solution stays valid after the
// Solver that produced it has moved on to the next one (spec.md §9: the
// matrix is mutated in place throughout a search, so a borrowed view
// would be unsafe to retain).
type Solution[T cmp.Ordered] struct {
	SolutionMap map[int][]T
}

// frame records one in-progress "choose column c, iterate its rows"
// level of the (logically recursive) search, reified as an explicit
// stack entry. k is the depth at which this column was chosen; current
// is the row-cell presently selected at that depth; start is col.head,
// the sentinel that marks a full loop around the column.
type frame[T cmp.Ordered] struct {
	k       int
	column  *Column[T]
	current *Cell[T]
	start   *Cell[T]
}

// Solver runs Algorithm X over a Matrix. chooseMin selects the column
// with fewest live rows at each step (minimum-remaining-values); when
// false a column is chosen uniformly at random from the live primary
// columns instead. returnFirst stops the search at the first solution
// found; otherwise every solution is enumerated.
//
// Reification as an explicit stack, rather than recursion, is mandated
// by spec.md §4.5 for stack safety on deep searches; original_source's
// solver.rs AlgorithmXSolver.search is the recursive algorithm this
// reifies.
type Solver[T cmp.Ordered] struct {
	matrix      *Matrix[T]
	chooseMin   bool
	returnFirst bool
}

// NewSolver builds a Solver over m. m must not be reused by another
// concurrent Solver (spec.md §5).
func NewSolver[T cmp.Ordered](m *Matrix[T], chooseMin, returnFirst bool) *Solver[T] {
	return &Solver[T]{matrix: m, chooseMin: chooseMin, returnFirst: returnFirst}
}

// Solve runs Algorithm X to completion (or to the first solution, if
// returnFirst was set) and returns every solution found.
func (s *Solver[T]) Solve() []Solution[T] {
	m := s.matrix
	recorded := make(map[int]*Cell[T])
	var solutions []Solution[T]

	root := &frame[T]{k: -1}
	stack := []*frame[T]{root}
	k := 0
	advance := true

	for {
		if advance {
			if m.first.head.right == m.first.head {
				solutions = append(solutions, s.extractSolution(recorded, k))
				if s.returnFirst {
					return solutions
				}
				advance = false
				continue
			}

			col := s.chooseColumn()
			if col == nil || col.size == 0 {
				advance = false
				continue
			}

			m.cover(col)
			row := col.head.down
			recorded[k] = row
			for j := range walkCells(row, cellRight[T]) {
				m.cover(j.owner)
			}

			stack = append(stack, &frame[T]{k: k, column: col, current: row, start: col.head})
			k++
			continue
		}

		top := stack[len(stack)-1]
		if top.column == nil {
			break
		}

		for j := range walkCells(top.current, cellLeft[T]) {
			m.uncover(j.owner)
		}
		delete(recorded, top.k)

		next := top.current.down
		if next == top.start {
			m.uncover(top.column)
			stack = stack[:len(stack)-1]
			k = top.k
			advance = false
			continue
		}

		top.current = next
		recorded[top.k] = next
		for j := range walkCells(next, cellRight[T]) {
			m.cover(j.owner)
		}
		k = top.k + 1
		advance = true
	}

	return solutions
}

// chooseColumn picks the next primary column to branch on: the smallest
// live column when chooseMin is set, otherwise a uniformly random live
// primary column (original_source's matrix.rs random_column, seeded the
// same way here: an unseeded math/rand/v2 draw per call, since the spec
// leaves seeding strategy unspecified and a global unseeded source is
// the simplest correct choice — see DESIGN.md).
func (s *Solver[T]) chooseColumn() *Column[T] {
	q := s.matrix.pq
	if len(q.items) == 0 {
		return nil
	}
	if s.chooseMin {
		return q.peek()
	}
	return q.items[rand.N(len(q.items))]
}

// extractSolution builds a Solution from the rows recorded at depths
// below depth, walking each chosen row's cells (including the cell
// itself) in ring order to collect item names.
func (s *Solver[T]) extractSolution(recorded map[int]*Cell[T], depth int) Solution[T] {
	sol := Solution[T]{SolutionMap: make(map[int][]T, depth)}
	for k, cell := range recorded {
		if k >= depth {
			continue
		}
		items := []T{cell.owner.Name()}
		for c := range walkCells(cell, cellRight[T]) {
			items = append(items, c.owner.Name())
		}
		sol.SolutionMap[cell.row] = items
	}
	return sol
}
