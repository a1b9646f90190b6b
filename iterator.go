package dlx

import (
	"cmp"
	"iter"
)

// cellStep advances a cell one hop in one of the four link directions.
type cellStep[T cmp.Ordered] func(*Cell[T]) *Cell[T]

func cellUp[T cmp.Ordered](c *Cell[T]) *Cell[T]    { return c.up }
func cellDown[T cmp.Ordered](c *Cell[T]) *Cell[T]  { return c.down }
func cellLeft[T cmp.Ordered](c *Cell[T]) *Cell[T]  { return c.left }
func cellRight[T cmp.Ordered](c *Cell[T]) *Cell[T] { return c.right }

// walkCells yields the cells reachable from start by repeatedly applying
// step, excluding start itself, stopping once step would return to
// start. Grounded on original_source's CellIterator, reshaped as a
// range-over-func sequence (spec.md §4.4: traversal must not include the
// starting cell unless explicitly requested).
func walkCells[T cmp.Ordered](start *Cell[T], step cellStep[T]) iter.Seq[*Cell[T]] {
	return func(yield func(*Cell[T]) bool) {
		for c := step(start); c != start; c = step(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// walkColumns yields the primary columns threaded into the top ring,
// starting just after first and wrapping back to it, excluding the
// sentinel itself. Backs Matrix.LiveColumns, which lets callers inspect
// live columns without touching the solver.
func walkColumns[T cmp.Ordered](first *Column[T]) iter.Seq[*Column[T]] {
	return func(yield func(*Column[T]) bool) {
		for c := first.head.right; c != first.head; c = c.right {
			if !yield(c.owner) {
				return
			}
		}
	}
}
