// Package dlx implements Knuth's Dancing Links (Algorithm X) for the
// exact cover problem over a generic, ordered item type T.
//
// Construction is two-phase: a Builder declares columns (items), then a
// RowBuilder adds rows (subsets of items) and finalizes a Matrix with
// Build. A Solver then runs Algorithm X over the Matrix, either stopping
// at the first solution or enumerating all of them.
//
//	b := dlx.NewBuilder[string]().
//		AddColumn(dlx.Primary("A")).
//		AddColumn(dlx.Primary("B")).
//		EndColumns().
//		AddRow([]string{"A", "B"})
//	m, err := b.Build()
//	if err != nil {
//		// handle
//	}
//	solutions := dlx.NewSolver(m, true, false).Solve()
package dlx
