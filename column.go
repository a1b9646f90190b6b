package dlx

import "cmp"

// columnName discriminates the sentinel "first" column, which anchors
// the top ring but carries no caller-supplied value, from an ordinary
// item column. Mirrors original_source's HeaderName<T> enum (First /
// Other(T)), collapsed into one struct since Go has no sum types.
type columnName[T cmp.Ordered] struct {
	sentinel bool
	value    T
}

func sentinelName[T cmp.Ordered]() columnName[T] {
	return columnName[T]{sentinel: true}
}

func otherName[T cmp.Ordered](v T) columnName[T] {
	return columnName[T]{value: v}
}

// Column is a header node: a constraint (item) to satisfy. Primary
// columns must be covered exactly once by a solution; secondary columns
// may be covered at most once and never force a backtrack on their own.
type Column[T cmp.Ordered] struct {
	id      int
	name    columnName[T]
	primary bool
	size    int
	head    *Cell[T]

	// pqIndex caches this column's position in the solver's priority
	// queue; -1 when the column is secondary or currently covered.
	pqIndex int
}

// ID returns the column's dense, stable identifier (0 is always the
// sentinel "first" column; declared columns start at 1).
func (c *Column[T]) ID() int { return c.id }

// Primary reports whether this column must be covered exactly once.
func (c *Column[T]) Primary() bool { return c.primary }

// Size returns the number of uncovered data cells currently in this
// column — the live row count a solver would need to try if it chose
// this column next.
func (c *Column[T]) Size() int { return c.size }

// Name returns the item value this column was declared with. Calling it
// on the sentinel column is a programming error; it is never reachable
// through the public API since the sentinel never owns a data cell.
func (c *Column[T]) Name() T { return c.name.value }

// ColumnSpec describes one item supplied during a Builder's column
// phase: its name and whether the constraint it represents is primary
// (covered exactly once) or secondary (covered at most once).
type ColumnSpec[T cmp.Ordered] struct {
	Name    T
	Primary bool
}

// Primary returns a ColumnSpec for a must-cover-exactly-once item.
func Primary[T cmp.Ordered](name T) ColumnSpec[T] {
	return ColumnSpec[T]{Name: name, Primary: true}
}

// Secondary returns a ColumnSpec for an at-most-once item.
func Secondary[T cmp.Ordered](name T) ColumnSpec[T] {
	return ColumnSpec[T]{Name: name, Primary: false}
}
