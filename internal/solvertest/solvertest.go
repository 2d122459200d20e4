// Package solvertest holds the backend conformance scenarios every adapter
// must pass. Each adapter's test file calls Run against a fresh instance; the
// scenarios only rely on the backend-neutral contract, so a failure points at
// the adapter's translation rather than the engine.
package solvertest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/ilp"
	"github.com/polyhedral/ilpd/solver"
)

// pairwise builds the three-variable mutual-exclusion polyhedron:
// x1+x2 <= 1, x1+x3 <= 1, x2+x3 <= 1 with all variables in [0,1].
func pairwise() *ilp.Polyhedron {
	return &ilp.Polyhedron{
		A: ilp.SparseMatrix{
			Rows:  []int{0, 0, 1, 1, 2, 2},
			Cols:  []int{0, 1, 0, 2, 1, 2},
			Vals:  []int{1, 1, 1, 1, 1, 1},
			Shape: ilp.Shape{NRows: 3, NCols: 3},
		},
		B: []int{1, 1, 1},
		Variables: []ilp.Variable{
			{ID: "x1", Bound: ilp.Bound{0, 1}},
			{ID: "x2", Bound: ilp.Bound{0, 1}},
			{ID: "x3", Bound: ilp.Bound{0, 1}},
		},
	}
}

// knapsack builds 2x + 3y <= 100 with x, y in [0,100].
func knapsack() *ilp.Polyhedron {
	return &ilp.Polyhedron{
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
}

// Run executes the full conformance suite against s.
func Run(t *testing.T, s solver.Solver) {
	t.Run("ZeroObjective", func(t *testing.T) {
		p := pairwise()
		sols, err := s.Solve(p, []ilp.Objective{{}}, ilp.Maximize, false)
		require.NoError(t, err)
		require.Len(t, sols, 1)
		require.Equal(t, ilp.Optimal, sols[0].Status)
		require.Equal(t, 0, sols[0].Objective)
	})

	t.Run("EmptyMatrix", func(t *testing.T) {
		p := &ilp.Polyhedron{
			A:         ilp.SparseMatrix{Shape: ilp.Shape{NRows: 0, NCols: 1}},
			Variables: []ilp.Variable{{ID: "x", Bound: ilp.Bound{0, 1}}},
		}
		sols, err := s.Solve(p, []ilp.Objective{{"x": 1}, {"x": 2}}, ilp.Maximize, false)
		require.NoError(t, err)
		require.Len(t, sols, 2)
		for _, sol := range sols {
			require.Equal(t, ilp.EmptySpace, sol.Status)
		}
	})

	t.Run("RejectsUndeclaredObjectiveVariable", func(t *testing.T) {
		_, err := s.Solve(pairwise(), []ilp.Objective{{"nope": 1}}, ilp.Maximize, false)
		require.Error(t, err)
		require.IsType(t, &ilp.InputError{}, err)
		require.Contains(t, err.Error(), "nope")
	})

	t.Run("RejectsDimensionMismatch", func(t *testing.T) {
		p := pairwise()
		p.Variables = p.Variables[:2]
		_, err := s.Solve(p, []ilp.Objective{{"x1": 1}}, ilp.Maximize, false)
		require.Error(t, err)
		require.IsType(t, &ilp.InputError{}, err)
	})

	t.Run("PairwiseMaximizeX3", func(t *testing.T) {
		p := pairwise()
		obj := ilp.Objective{"x3": 1}
		sols, err := s.Solve(p, []ilp.Objective{obj}, ilp.Maximize, false)
		require.NoError(t, err)
		require.Len(t, sols, 1)
		require.Equal(t, ilp.Optimal, sols[0].Status)
		require.Equal(t, 1, sols[0].Objective)
		require.Equal(t, 1, sols[0].Solution["x3"])
		require.True(t, p.Contains(sols[0].Solution))
	})

	t.Run("IntegerRounding", func(t *testing.T) {
		p := knapsack()
		obj := ilp.Objective{"x": 1, "y": 2}
		sols, err := s.Solve(p, []ilp.Objective{obj}, ilp.Maximize, false)
		require.NoError(t, err)
		require.Len(t, sols, 1)
		require.Equal(t, ilp.Optimal, sols[0].Status)
		require.Equal(t, 66, sols[0].Objective)
		require.True(t, p.Contains(sols[0].Solution))
	})

	t.Run("MinimizeIsHonored", func(t *testing.T) {
		sols, err := s.Solve(knapsack(), []ilp.Objective{{"x": 1, "y": 2}}, ilp.Minimize, false)
		require.NoError(t, err)
		require.Equal(t, ilp.Optimal, sols[0].Status)
		require.Equal(t, 0, sols[0].Objective)
	})

	t.Run("MultipleObjectivesInOrder", func(t *testing.T) {
		p := knapsack()
		objs := []ilp.Objective{{"x": 1}, {"y": 1}, {}}
		sols, err := s.Solve(p, objs, ilp.Maximize, false)
		require.NoError(t, err)
		require.Len(t, sols, 3)
		require.Equal(t, 50, sols[0].Objective)
		require.Equal(t, 33, sols[1].Objective)
		require.Equal(t, 0, sols[2].Objective)
	})

	t.Run("FixedVariableSurvives", func(t *testing.T) {
		p := &ilp.Polyhedron{
			A: ilp.SparseMatrix{
				Rows:  []int{0, 0},
				Cols:  []int{0, 1},
				Vals:  []int{1, 1},
				Shape: ilp.Shape{NRows: 1, NCols: 2},
			},
			B: []int{5},
			Variables: []ilp.Variable{
				{ID: "fixed", Bound: ilp.Bound{2, 2}},
				{ID: "y", Bound: ilp.Bound{0, 10}},
			},
		}
		sols, err := s.Solve(p, []ilp.Objective{{"y": 1}}, ilp.Maximize, false)
		require.NoError(t, err)
		require.Equal(t, ilp.Optimal, sols[0].Status)
		require.Equal(t, 3, sols[0].Objective)
		require.Equal(t, 2, sols[0].Solution["fixed"])
	})

	t.Run("BinaryAndGeneralEncodingsAgree", func(t *testing.T) {
		// Same feasible set twice: once with natural (0,1) binary bounds,
		// once with wider integer bounds clamped to 1 by extra rows.
		binary := pairwise()

		general := &ilp.Polyhedron{
			A: ilp.SparseMatrix{
				Rows:  []int{0, 0, 1, 1, 2, 2, 3, 4, 5},
				Cols:  []int{0, 1, 0, 2, 1, 2, 0, 1, 2},
				Vals:  []int{1, 1, 1, 1, 1, 1, 1, 1, 1},
				Shape: ilp.Shape{NRows: 6, NCols: 3},
			},
			B: []int{1, 1, 1, 1, 1, 1},
			Variables: []ilp.Variable{
				{ID: "x1", Bound: ilp.Bound{0, 3}},
				{ID: "x2", Bound: ilp.Bound{0, 3}},
				{ID: "x3", Bound: ilp.Bound{0, 3}},
			},
		}

		obj := ilp.Objective{"x3": 1}
		a, err := s.Solve(binary, []ilp.Objective{obj}, ilp.Maximize, false)
		require.NoError(t, err)
		b, err := s.Solve(general, []ilp.Objective{obj}, ilp.Maximize, false)
		require.NoError(t, err)
		require.Equal(t, a[0].Status, b[0].Status)
		require.Equal(t, a[0].Objective, b[0].Objective)
		require.Contains(t, []int{0, 1}, b[0].Solution["x3"])
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, presolve := range []bool{false, true} {
			p := knapsack()
			obj := []ilp.Objective{{"x": 1, "y": 2}}
			first, err := s.Solve(p, obj, ilp.Maximize, presolve)
			require.NoError(t, err)
			second, err := s.Solve(p, obj, ilp.Maximize, presolve)
			require.NoError(t, err)
			require.Equal(t, first[0].Status, second[0].Status)
			require.Equal(t, first[0].Objective, second[0].Objective)
		}
	})

	t.Run("DoubleBoundRow", func(t *testing.T) {
		p := &ilp.Polyhedron{
			A: ilp.SparseMatrix{
				Rows:  []int{0},
				Cols:  []int{0},
				Vals:  []int{1},
				Shape: ilp.Shape{NRows: 1, NCols: 1},
			},
			B:           []int{2},
			Variables:   []ilp.Variable{{ID: "x", Bound: ilp.Bound{-3, 3}}},
			DoubleBound: true,
		}
		// 0 <= x <= 2 via the row range, so the minimum is 0, not -3.
		sols, err := s.Solve(p, []ilp.Objective{{"x": 1}}, ilp.Minimize, false)
		require.NoError(t, err)
		require.Equal(t, ilp.Optimal, sols[0].Status)
		require.Equal(t, 0, sols[0].Objective)
	})

	t.Run("CoefficientFreeRowIsVacuous", func(t *testing.T) {
		p := &ilp.Polyhedron{
			A: ilp.SparseMatrix{
				Rows:  []int{0},
				Cols:  []int{0},
				Vals:  []int{1},
				Shape: ilp.Shape{NRows: 2, NCols: 1},
			},
			// Row 1 has no coefficients; its negative rhs must not be read
			// as the contradiction 0 <= -1.
			B:         []int{5, -1},
			Variables: []ilp.Variable{{ID: "x", Bound: ilp.Bound{0, 10}}},
		}
		sols, err := s.Solve(p, []ilp.Objective{{"x": 1}}, ilp.Maximize, false)
		require.NoError(t, err)
		require.Equal(t, ilp.Optimal, sols[0].Status)
		require.Equal(t, 5, sols[0].Objective)
	})

	t.Run("InfeasibleReported", func(t *testing.T) {
		p := &ilp.Polyhedron{
			A: ilp.SparseMatrix{
				Rows:  []int{0},
				Cols:  []int{0},
				Vals:  []int{1},
				Shape: ilp.Shape{NRows: 1, NCols: 1},
			},
			B:         []int{-1},
			Variables: []ilp.Variable{{ID: "x", Bound: ilp.Bound{0, 5}}},
		}
		// x <= -1 contradicts x >= 0.
		sols, err := s.Solve(p, []ilp.Objective{{"x": 1}}, ilp.Maximize, false)
		require.NoError(t, err)
		require.Len(t, sols, 1)
		require.Contains(t,
			[]ilp.Status{ilp.Infeasible, ilp.NoFeasible, ilp.MIPFailed},
			sols[0].Status)
	})
}
