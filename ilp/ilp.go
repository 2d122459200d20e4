// Package ilp defines the canonical data model for integer linear programs
// shared by every solver backend.
//
// A problem is a sparse polyhedron A·x ≤ b with per-variable integer bounds,
// together with one or more objective functions solved independently against
// the same polyhedron. The matrix A is held in coordinate (COO) form; backends
// regroup it row-major or column-major as their native API requires.
package ilp

import "math"

// Bound is an inclusive [lower, upper] integer range for a variable.
// It serializes as a two-element JSON array.
type Bound [2]int

// Lower returns the lower bound.
func (b Bound) Lower() int { return b[0] }

// Upper returns the upper bound.
func (b Bound) Upper() int { return b[1] }

// IsFixed reports whether the bound pins the variable to a single value.
func (b Bound) IsFixed() bool { return b[0] == b[1] }

// IsBinary reports whether the bound is exactly (0, 1). Backends may model
// such variables with a native binary kind; the semantics are identical to a
// general integer restricted to {0, 1}.
func (b Bound) IsBinary() bool { return b[0] == 0 && b[1] == 1 }

// Variable is a named integer decision variable.
type Variable struct {
	ID    string `json:"id"`
	Bound Bound  `json:"bound"`
}

// Shape holds the logical dimensions of a sparse matrix.
type Shape struct {
	NRows int `json:"nrows"`
	NCols int `json:"ncols"`
}

// SparseMatrix is an integer matrix in coordinate form: parallel slices of
// row index, column index and value for each nonzero entry.
type SparseMatrix struct {
	Rows  []int `json:"rows"`
	Cols  []int `json:"cols"`
	Vals  []int `json:"vals"`
	Shape Shape `json:"shape"`
}

// NumNonzero returns the number of coordinate entries.
func (m *SparseMatrix) NumNonzero() int { return len(m.Vals) }

// Polyhedron is the feasible region A·x ≤ b plus per-variable bounds.
//
// When DoubleBound is set every row is range-bounded 0 ≤ a·x ≤ b[i] instead
// of a·x ≤ b[i]. A Polyhedron is constructed per request and never mutated
// after validation; backends build private working copies.
type Polyhedron struct {
	A           SparseMatrix `json:"A"`
	B           []int        `json:"b"`
	Variables   []Variable   `json:"variables"`
	DoubleBound bool         `json:"double_bound,omitempty"`
}

// GEPolyhedron is a polyhedron expressed as A·x ≥ b. It exists as a wire
// convenience; solving always happens on the canonical LE form.
type GEPolyhedron struct {
	A         SparseMatrix `json:"A"`
	B         []int        `json:"b"`
	Variables []Variable   `json:"variables"`
}

// ToLE flips the GE polyhedron into canonical LE form by negating the
// constraint coefficients and right-hand side.
func (g *GEPolyhedron) ToLE() *Polyhedron {
	vals := make([]int, len(g.A.Vals))
	for i, v := range g.A.Vals {
		vals[i] = -v
	}
	b := make([]int, len(g.B))
	for i, v := range g.B {
		b[i] = -v
	}
	return &Polyhedron{
		A: SparseMatrix{
			Rows:  append([]int(nil), g.A.Rows...),
			Cols:  append([]int(nil), g.A.Cols...),
			Vals:  vals,
			Shape: g.A.Shape,
		},
		B:         b,
		Variables: append([]Variable(nil), g.Variables...),
	}
}

// Objective maps variable ids to real coefficients. Variables absent from the
// map have coefficient zero; ids not declared in the polyhedron are a
// validation error.
type Objective map[string]float64

// Value recomputes Σ coefficient·assignment over the objective's variables,
// rounded to the nearest integer. Solvers report this locally computed value
// rather than trusting the engine's floating-point objective.
func (o Objective) Value(assignment map[string]int) int {
	var sum float64
	for id, coef := range o {
		sum += coef * float64(assignment[id])
	}
	return int(math.Round(sum))
}

// Direction selects the optimization sense.
type Direction string

const (
	Maximize Direction = "maximize"
	Minimize Direction = "minimize"
)

// IsMaximize reports whether the direction is Maximize.
func (d Direction) IsMaximize() bool { return d == Maximize }
