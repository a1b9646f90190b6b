package dlx

import (
	"cmp"
	"slices"
)

// Builder assembles the column phase of a Matrix: a sequence of
// AddColumn calls followed by EndColumns, which moves into the row
// phase. Grounded on original_source's MatrixBuilder -> MatrixColBuilder
// two-phase split (builders.rs); deferred-error accumulation uses
// sentinel errors in the style of katalvlaran-lvlath/dijkstra rather
// than returning an error from every call.
type Builder[T cmp.Ordered] struct {
	specs []ColumnSpec[T]
}

// NewBuilder starts a new column phase.
func NewBuilder[T cmp.Ordered]() *Builder[T] {
	return &Builder[T]{}
}

// AddColumn appends one column spec to the column phase and returns the
// same builder, so calls can be chained.
func (b *Builder[T]) AddColumn(spec ColumnSpec[T]) *Builder[T] {
	b.specs = append(b.specs, spec)
	return b
}

// FromIterable starts a column phase pre-populated from specs and moves
// directly into the row phase; equivalent to calling AddColumn for each
// spec followed by EndColumns.
func FromIterable[T cmp.Ordered](specs []ColumnSpec[T]) *RowBuilder[T] {
	return NewBuilder[T]().AddColumns(specs...).EndColumns()
}

// AddColumns appends every spec in specs, preserving order.
func (b *Builder[T]) AddColumns(specs ...ColumnSpec[T]) *Builder[T] {
	for _, s := range specs {
		b.AddColumn(s)
	}
	return b
}

// EndColumns finalizes the column phase and returns a RowBuilder for the
// row phase. It allocates the sentinel "first" column plus one column
// per declared spec, threads primary columns (and the sentinel) into
// the top ring in declaration order, and indexes columns by 1-based id
// and by name for row resolution. Declaring zero columns is recorded as
// ErrNoColumns and only surfaces once Build is finally called.
func (b *Builder[T]) EndColumns() *RowBuilder[T] {
	rb := &RowBuilder[T]{byID: make(map[int]*Column[T], len(b.specs))}

	if len(b.specs) == 0 {
		rb.err = ErrNoColumns
		return rb
	}

	addColumn := func(name columnName[T], primary bool) *Column[T] {
		col := &Column[T]{id: len(rb.columns), name: name, primary: primary, pqIndex: -1}
		col.head = newCell(len(rb.cells), col, headerRow)
		rb.columns = append(rb.columns, col)
		rb.cells = append(rb.cells, col.head)
		return col
	}

	first := addColumn(sentinelName[T](), false)
	rb.first = first
	rb.byName = make(map[T]*Column[T], len(b.specs))

	prev := first.head
	for i, spec := range b.specs {
		col := addColumn(otherName(spec.Name), spec.Primary)
		rb.byID[i+1] = col
		if _, exists := rb.byName[spec.Name]; !exists {
			rb.byName[spec.Name] = col
		}
		if spec.Primary {
			insertAfter(prev, col.head)
			prev = col.head
		}
	}

	return rb
}

// RowBuilder is the row phase of matrix construction: a sequence of
// AddRow/AddRowByID calls followed by Build. See spec.md §4.3.
type RowBuilder[T cmp.Ordered] struct {
	columns []*Column[T]
	cells   []*Cell[T]
	first   *Column[T]
	byID    map[int]*Column[T]
	byName  map[T]*Column[T]
	numRows int
	err     error
}

// AddRow appends a row given as an unordered slice of items, resolved
// against declared column names. Items are sorted before insertion, so
// callers need not pre-sort; use AddSortedRow to skip that work when the
// caller already has a sorted slice.
func (rb *RowBuilder[T]) AddRow(items []T) *RowBuilder[T] {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return rb.AddSortedRow(sorted)
}

// AddSortedRow is like AddRow but asserts items are already sorted
// ascending; behavior is unspecified if they are not.
func (rb *RowBuilder[T]) AddSortedRow(items []T) *RowBuilder[T] {
	return addSortedRowOf(rb, items, func(v T) (*Column[T], bool) {
		c, ok := rb.byName[v]
		return c, ok
	}, ErrUnknownItem)
}

// AddRowByID appends a row given as 1-based column ids, in declaration
// order (the sentinel "first" column is never addressable this way).
// Ids are sorted before insertion.
func (rb *RowBuilder[T]) AddRowByID(ids []int) *RowBuilder[T] {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return rb.AddSortedRowByID(sorted)
}

// AddSortedRowByID is like AddRowByID but asserts ids are already sorted
// ascending.
func (rb *RowBuilder[T]) AddSortedRowByID(ids []int) *RowBuilder[T] {
	return addSortedRowOf(rb, ids, func(id int) (*Column[T], bool) {
		c, ok := rb.byID[id]
		return c, ok
	}, ErrInvalidColumnID)
}

// addSortedRowOf is the shared row-insertion routine behind both the
// by-value and by-id entry points (original_source's add_sorted_row_fn).
// refs is assumed already sorted; resolve maps one ref to its column.
func addSortedRowOf[T cmp.Ordered, U any](
	rb *RowBuilder[T], refs []U, resolve func(U) (*Column[T], bool), missing error,
) *RowBuilder[T] {
	if rb.err != nil {
		return rb
	}
	if len(refs) == 0 {
		return rb
	}

	row := rb.numRows + 1

	var prev *Cell[T]
	for _, ref := range refs {
		col, ok := resolve(ref)
		if !ok {
			rb.err = missing
			return rb
		}

		cell := newCell(len(rb.cells), col, row)
		rb.cells = append(rb.cells, cell)

		last := col.head.up
		cell.up = last
		cell.down = col.head
		last.down = cell
		col.head.up = cell
		col.size++

		if prev != nil {
			insertAfter(prev, cell)
		}
		prev = cell
	}

	rb.numRows = row
	return rb
}

// Build finalizes the matrix, returning the first error recorded by any
// earlier column or row call, or a ready-to-solve Matrix.
func (rb *RowBuilder[T]) Build() (*Matrix[T], error) {
	if rb.err != nil {
		return nil, rb.err
	}

	m := &Matrix[T]{
		nRows:    rb.numRows,
		nColumns: len(rb.columns) - 1,
		columns:  rb.columns,
		cells:    rb.cells,
		first:    rb.first,
	}
	m.pq = newColumnQueue(rb.columns)
	return m, nil
}
