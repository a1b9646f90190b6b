package dlx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderEmptyColumnsIsError(t *testing.T) {
	_, err := NewBuilder[string]().EndColumns().Build()
	if !errors.Is(err, ErrNoColumns) {
		t.Fatalf("want ErrNoColumns, got %v", err)
	}
}

func TestBuilderUnknownItemIsError(t *testing.T) {
	_, err := NewBuilder[string]().
		AddColumn(Primary("A")).
		EndColumns().
		AddRow([]string{"A", "Z"}).
		Build()
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("want ErrUnknownItem, got %v", err)
	}
}

func TestBuilderInvalidColumnIDIsError(t *testing.T) {
	_, err := NewBuilder[string]().
		AddColumn(Primary("A")).
		EndColumns().
		AddRowByID([]int{1, 99}).
		Build()
	if !errors.Is(err, ErrInvalidColumnID) {
		t.Fatalf("want ErrInvalidColumnID, got %v", err)
	}
}

func TestBuilderErrorIsSticky(t *testing.T) {
	rb := NewBuilder[string]().
		AddColumn(Primary("A")).
		EndColumns().
		AddRow([]string{"Z"}) // first error

	rb = rb.AddRow([]string{"A"}) // must not clear the recorded error
	if _, err := rb.Build(); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("want the first error to stick, got %v", err)
	}
}

func TestBuilderDuplicateNameFirstMatchWins(t *testing.T) {
	m, err := NewBuilder[string]().
		AddColumn(Primary("A")).
		AddColumn(Primary("A")).
		EndColumns().
		AddRowByID([]int{1}).
		AddRowByID([]int{2}).
		AddRow([]string{"A"}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.NumColumns() != 2 {
		t.Fatalf("want 2 declared columns (duplicates aren't merged), got %d", m.NumColumns())
	}
	if m.columns[1].Size() != 2 || m.columns[2].Size() != 1 {
		t.Fatalf("want the by-name row in the first \"A\" column, got sizes %d and %d",
			m.columns[1].Size(), m.columns[2].Size())
	}
}

func TestBuilderBuildsExpectedRows(t *testing.T) {
	m, err := NewBuilder[string]().
		AddColumn(Primary("A")).
		AddColumn(Primary("B")).
		AddColumn(Secondary("C")).
		EndColumns().
		AddRow([]string{"B", "A"}).
		AddSortedRow([]string{"A", "C"}).
		Build()
	require.NoError(t, err)

	require.Equal(t, 2, m.NumRows())
	require.Equal(t, 3, m.NumColumns())

	rows := m.IterRows()
	require.Len(t, rows, 2)
	want := []*Set[string]{NewSet("A", "B"), NewSet("A", "C")}
	for i, got := range rows {
		require.Truef(t, got.Equal(want[i]), "row %d: want %v, got %v", i, want[i].Values(), got.Values())
	}

	require.NoError(t, m.checkInvariants())
}

func TestBuilderAddRowByIDSortsIDs(t *testing.T) {
	m, err := NewBuilder[string]().
		AddColumn(Primary("A")).
		AddColumn(Primary("B")).
		EndColumns().
		AddRowByID([]int{2, 1}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := m.IterRows()
	if !rows[0].Equal(NewSet("A", "B")) {
		t.Fatalf("want row {A,B}, got %v", rows[0].Values())
	}
	// cells 0-2 are the sentinel, A and B headers; the row's cells follow
	// in insertion order, so after sorting the first one belongs to A.
	if got := m.cells[3].owner.Name(); got != "A" {
		t.Fatalf("want the row's first cell in column A after sorting, got %s", got)
	}
}

func TestFromIterable(t *testing.T) {
	specs := []ColumnSpec[string]{Primary("A"), Secondary("B")}
	m, err := FromIterable(specs).AddRow([]string{"A", "B"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.NumColumns() != 2 {
		t.Fatalf("want 2 columns, got %d", m.NumColumns())
	}
}
