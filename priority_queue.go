package dlx

import (
	"cmp"
	"container/heap"
)

// columnQueue is a min-heap over the matrix's primary columns, ordered
// by (size, id) ascending: smallest live row count first, ties broken by
// lowest column id (spec.md §4.2, matching original_source's
// HeaderPriorityQueue priority of (-size, index)). Secondary columns are
// never pushed. Each column caches its own heap index (pqIndex) so
// remove/changePriority run in O(log n) instead of requiring a linear
// scan to find the element first — the same trick
// wyf-ACCEPT-eth2030/pkg/txpool/price_heap.go uses for its price/tip
// heaps.
type columnQueue[T cmp.Ordered] struct {
	items []*Column[T]
}

func newColumnQueue[T cmp.Ordered](columns []*Column[T]) *columnQueue[T] {
	q := &columnQueue[T]{items: make([]*Column[T], 0, len(columns))}
	for _, c := range columns {
		if c.primary {
			c.pqIndex = len(q.items)
			q.items = append(q.items, c)
		} else {
			c.pqIndex = -1
		}
	}
	heap.Init(q)
	return q
}

func (q *columnQueue[T]) Len() int { return len(q.items) }

func (q *columnQueue[T]) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.id < b.id
}

func (q *columnQueue[T]) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].pqIndex = i
	q.items[j].pqIndex = j
}

func (q *columnQueue[T]) Push(x any) {
	c := x.(*Column[T])
	c.pqIndex = len(q.items)
	q.items = append(q.items, c)
}

func (q *columnQueue[T]) Pop() any {
	old := q.items
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.pqIndex = -1
	q.items = old[:n-1]
	return c
}

// push re-inserts a primary column, typically one just uncovered.
func (q *columnQueue[T]) push(c *Column[T]) {
	heap.Push(q, c)
}

// remove deletes col from the queue in O(log n). No-op for secondary
// columns, which are never members.
func (q *columnQueue[T]) remove(c *Column[T]) {
	if !c.primary || c.pqIndex < 0 {
		return
	}
	heap.Remove(q, c.pqIndex)
}

// changePriority re-heapifies col after its size changed. No-op for
// secondary columns and for primary columns not currently queued (i.e.
// currently covered).
func (q *columnQueue[T]) changePriority(c *Column[T]) {
	if !c.primary || c.pqIndex < 0 {
		return
	}
	heap.Fix(q, c.pqIndex)
}

// peek returns the column with the smallest (size, id), or nil if the
// queue is empty.
func (q *columnQueue[T]) peek() *Column[T] {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}
