package dlx

import "cmp"

// headerRow is the sentinel row value carried by every column header
// cell. Data cells are numbered starting at 1, in the order rows are
// added during the builder's row phase (spec.md §3: "row (either Header
// or a nonzero data-row number)").
const headerRow = 0

// Cell is a node of the toroidal doubly-linked matrix: either a column
// header (row == headerRow) or a data cell belonging to exactly one row
// and one column. The four neighbor fields thread the cell into two
// circular rings: up/down within its column, left/right within its row
// (or, for a header cell, within the top ring of primary columns).
//
// Cells are individually heap-allocated and linked by plain pointers,
// the same representation the teacher's solver.Node/solver.ColumnNode
// use — see DESIGN.md for why that beats an index-addressed arena here.
type Cell[T cmp.Ordered] struct {
	id    int
	row   int
	owner *Column[T]

	up, down, left, right *Cell[T]
}

func newCell[T cmp.Ordered](id int, owner *Column[T], row int) *Cell[T] {
	c := &Cell[T]{id: id, row: row, owner: owner}
	c.up, c.down, c.left, c.right = c, c, c, c
	return c
}

// ID returns the cell's dense, stable identifier.
func (c *Cell[T]) ID() int { return c.id }

// Row returns headerRow for a column header, otherwise the 1-based row
// number of the data cell.
func (c *Cell[T]) Row() int { return c.row }

// Owner returns the column this cell belongs to.
func (c *Cell[T]) Owner() *Column[T] { return c.owner }

// insertAfter splices cell into the circular left/right ring immediately
// to the right of prev. Used both for the top ring of primary column
// headers (built during the builder's column phase) and for a data row's
// own left/right ring (built during the row phase) — the two rings never
// share a cell, so the same splice works for both.
func insertAfter[T cmp.Ordered](prev, cell *Cell[T]) {
	cell.left = prev
	cell.right = prev.right
	prev.right.left = cell
	prev.right = cell
}
