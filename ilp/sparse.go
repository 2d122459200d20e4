package ilp

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Entry is one nonzero entry of a row- or column-grouped sparse matrix.
// Index is the column index for row-major grouping and the row index for
// column-major grouping.
type Entry struct {
	Index int
	Val   int
}

// Compact returns a copy of the matrix with entries sorted by (row, col),
// duplicate coordinates summed, and entries that cancel to zero removed.
//
// Summing is the documented duplicate policy for the whole system: it
// preserves the value of A·x under naive concatenation of triples, and it is
// applied before any backend translation so all backends agree.
func (m *SparseMatrix) Compact() SparseMatrix {
	type triple struct{ row, col, val int }
	ts := make([]triple, len(m.Vals))
	for i := range m.Vals {
		ts[i] = triple{m.Rows[i], m.Cols[i], m.Vals[i]}
	}
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].row != ts[j].row {
			return ts[i].row < ts[j].row
		}
		return ts[i].col < ts[j].col
	})

	merged := ts[:0]
	for _, t := range ts {
		if n := len(merged); n > 0 && merged[n-1].row == t.row && merged[n-1].col == t.col {
			merged[n-1].val += t.val
		} else {
			merged = append(merged, t)
		}
	}

	out := SparseMatrix{Shape: m.Shape}
	for _, t := range merged {
		if t.val == 0 {
			continue
		}
		out.Rows = append(out.Rows, t.row)
		out.Cols = append(out.Cols, t.col)
		out.Vals = append(out.Vals, t.val)
	}
	return out
}

// RowEntries groups the nonzero entries by row: the result has Shape.NRows
// slices, each listing (column, value) pairs. Entries with out-of-range
// indices are skipped; callers validate beforehand.
func (m *SparseMatrix) RowEntries() [][]Entry {
	rows := make([][]Entry, m.Shape.NRows)
	for i := range m.Vals {
		r, c := m.Rows[i], m.Cols[i]
		if r < 0 || r >= m.Shape.NRows || c < 0 || c >= m.Shape.NCols {
			continue
		}
		rows[r] = append(rows[r], Entry{Index: c, Val: m.Vals[i]})
	}
	return rows
}

// ColumnEntries groups the nonzero entries by column (compressed sparse
// column view): the result has Shape.NCols slices, each listing (row, value)
// pairs in a single O(nnz) pass.
func (m *SparseMatrix) ColumnEntries() [][]Entry {
	cols := make([][]Entry, m.Shape.NCols)
	for i := range m.Vals {
		r, c := m.Rows[i], m.Cols[i]
		if r < 0 || r >= m.Shape.NRows || c < 0 || c >= m.Shape.NCols {
			continue
		}
		cols[c] = append(cols[c], Entry{Index: r, Val: m.Vals[i]})
	}
	return cols
}

// Dense materializes the constraint matrix as a dense gonum matrix.
// Intended for diagnostics and tests, not for solving.
func (p *Polyhedron) Dense() *mat.Dense {
	a := p.A.Compact()
	d := mat.NewDense(maxInt(a.Shape.NRows, 1), maxInt(a.Shape.NCols, 1), nil)
	for i := range a.Vals {
		d.Set(a.Rows[i], a.Cols[i], float64(a.Vals[i]))
	}
	return d
}

// Contains reports whether the assignment satisfies every constraint row and
// every variable bound. Variables absent from the assignment count as zero.
func (p *Polyhedron) Contains(assignment map[string]int) bool {
	x := mat.NewVecDense(maxInt(p.A.Shape.NCols, 1), nil)
	for j, v := range p.Variables {
		val := assignment[v.ID]
		if val < v.Bound.Lower() || val > v.Bound.Upper() {
			return false
		}
		x.SetVec(j, float64(val))
	}

	if p.A.NumNonzero() == 0 {
		return true
	}

	var ax mat.VecDense
	ax.MulVec(p.Dense(), x)
	for i, rhs := range p.B {
		lhs := ax.AtVec(i)
		if lhs > float64(rhs) {
			return false
		}
		if p.DoubleBound && lhs < 0 {
			return false
		}
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
