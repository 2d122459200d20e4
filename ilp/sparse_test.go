package ilp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/ilp"
)

func TestCompactSumsDuplicates(t *testing.T) {
	m := ilp.SparseMatrix{
		Rows:  []int{1, 0, 1, 0},
		Cols:  []int{0, 1, 0, 1},
		Vals:  []int{2, 3, 5, 4},
		Shape: ilp.Shape{NRows: 2, NCols: 2},
	}
	c := m.Compact()
	require.Equal(t, []int{0, 1}, c.Rows)
	require.Equal(t, []int{1, 0}, c.Cols)
	require.Equal(t, []int{7, 7}, c.Vals)
	// the original matrix is untouched
	require.Equal(t, 4, m.NumNonzero())
}

func TestCompactDropsCancelledEntries(t *testing.T) {
	m := ilp.SparseMatrix{
		Rows:  []int{0, 0, 1},
		Cols:  []int{0, 0, 1},
		Vals:  []int{4, -4, 1},
		Shape: ilp.Shape{NRows: 2, NCols: 2},
	}
	c := m.Compact()
	require.Equal(t, 1, c.NumNonzero())
	require.Equal(t, []int{1}, c.Rows)
	require.Equal(t, []int{1}, c.Cols)
}

func TestRowAndColumnGrouping(t *testing.T) {
	// [ 1 2 0 ]
	// [ 0 0 3 ]
	m := ilp.SparseMatrix{
		Rows:  []int{0, 0, 1},
		Cols:  []int{0, 1, 2},
		Vals:  []int{1, 2, 3},
		Shape: ilp.Shape{NRows: 2, NCols: 3},
	}

	rows := m.RowEntries()
	require.Len(t, rows, 2)
	require.Equal(t, []ilp.Entry{{Index: 0, Val: 1}, {Index: 1, Val: 2}}, rows[0])
	require.Equal(t, []ilp.Entry{{Index: 2, Val: 3}}, rows[1])

	cols := m.ColumnEntries()
	require.Len(t, cols, 3)
	require.Equal(t, []ilp.Entry{{Index: 0, Val: 1}}, cols[0])
	require.Equal(t, []ilp.Entry{{Index: 0, Val: 2}}, cols[1])
	require.Equal(t, []ilp.Entry{{Index: 1, Val: 3}}, cols[2])
}

func TestDenseAndContains(t *testing.T) {
	p := &ilp.Polyhedron{
		A: ilp.SparseMatrix{
			Rows:  []int{0, 0},
			Cols:  []int{0, 1},
			Vals:  []int{2, 3},
			Shape: ilp.Shape{NRows: 1, NCols: 2},
		},
		B: []int{100},
		Variables: []ilp.Variable{
			{ID: "x", Bound: ilp.Bound{0, 100}},
			{ID: "y", Bound: ilp.Bound{0, 100}},
		},
	}

	d := p.Dense()
	require.Equal(t, 2.0, d.At(0, 0))
	require.Equal(t, 3.0, d.At(0, 1))

	require.True(t, p.Contains(map[string]int{"x": 0, "y": 33}))
	require.True(t, p.Contains(map[string]int{"x": 50, "y": 0}))
	require.False(t, p.Contains(map[string]int{"x": 50, "y": 33}))
	// bound violation
	require.False(t, p.Contains(map[string]int{"x": -1, "y": 0}))
}

func TestContainsDoubleBound(t *testing.T) {
	p := &ilp.Polyhedron{
		A: ilp.SparseMatrix{
			Rows:  []int{0},
			Cols:  []int{0},
			Vals:  []int{-1},
			Shape: ilp.Shape{NRows: 1, NCols: 1},
		},
		B:           []int{10},
		Variables:   []ilp.Variable{{ID: "x", Bound: ilp.Bound{0, 10}}},
		DoubleBound: true,
	}
	// -x must lie in [0, 10]: only x = 0 qualifies.
	require.True(t, p.Contains(map[string]int{"x": 0}))
	require.False(t, p.Contains(map[string]int{"x": 3}))
}
