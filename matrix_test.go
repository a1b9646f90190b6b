package dlx

import (
	"fmt"
	"testing"
)

func smallMatrix(t *testing.T) *Matrix[string] {
	t.Helper()
	m, err := NewBuilder[string]().
		AddColumn(Primary("A")).
		AddColumn(Primary("B")).
		AddColumn(Primary("C")).
		EndColumns().
		AddRow([]string{"A", "B"}).
		AddRow([]string{"B", "C"}).
		AddRow([]string{"A", "C"}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return m
}

func TestMatrixCoverUncoverRoundTrip(t *testing.T) {
	m := smallMatrix(t)
	if err := m.checkInvariants(); err != nil {
		t.Fatalf("invariants broken before cover: %v", err)
	}

	colA := m.columns[1] // sentinel is id 0
	m.cover(colA)
	if m.first.head.right == colA.head {
		t.Fatal("covered column must not remain linked in the top ring")
	}

	m.uncover(colA)
	if m.first.head.right != colA.head && m.first.head.left != colA.head {
		t.Fatal("uncovered column must be relinked somewhere in the top ring")
	}
	if err := m.checkInvariants(); err != nil {
		t.Fatalf("invariants broken after cover/uncover round trip: %v", err)
	}
}

func TestMatrixNumRowsAndColumns(t *testing.T) {
	m := smallMatrix(t)
	if m.NumColumns() != 3 {
		t.Fatalf("want 3 columns, got %d", m.NumColumns())
	}
	if m.NumRows() != 3 {
		t.Fatalf("want 3 rows, got %d", m.NumRows())
	}
}

func TestMatrixCoverDecrementsIntersectingColumnSizes(t *testing.T) {
	m := smallMatrix(t)
	colA, colB, colC := m.columns[1], m.columns[2], m.columns[3]

	if colB.size != 2 || colC.size != 2 {
		t.Fatalf("want B,C size 2 before cover, got B=%d C=%d", colB.size, colC.size)
	}

	m.cover(colA)
	// covering A removes rows {A,B} and {A,C} from B and C respectively
	if colB.size != 1 {
		t.Fatalf("want B size 1 after covering A, got %d", colB.size)
	}
	if colC.size != 1 {
		t.Fatalf("want C size 1 after covering A, got %d", colC.size)
	}

	m.uncover(colA)
	if colB.size != 2 || colC.size != 2 {
		t.Fatalf("want sizes restored after uncover, got B=%d C=%d", colB.size, colC.size)
	}
}

func ExampleMatrix_IterRows() {
	m, err := NewBuilder[string]().
		AddColumn(Primary("A")).
		AddColumn(Primary("B")).
		EndColumns().
		AddRow([]string{"B", "A"}).
		Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(len(m.IterRows()))
	// Output: 1
}

func BenchmarkCoverUncover(b *testing.B) {
	m, err := NewBuilder[string]().
		AddColumn(Primary("A")).
		AddColumn(Primary("B")).
		AddColumn(Primary("C")).
		EndColumns().
		AddRow([]string{"A", "B"}).
		AddRow([]string{"B", "C"}).
		AddRow([]string{"A", "C"}).
		Build()
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	colA := m.columns[1]

	for b.Loop() {
		m.cover(colA)
		m.uncover(colA)
	}
}
