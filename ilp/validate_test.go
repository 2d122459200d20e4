package ilp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/ilp"
)

func validPolyhedron() *ilp.Polyhedron {
	return &ilp.Polyhedron{
		A: ilp.SparseMatrix{
			Rows:  []int{0, 0},
			Cols:  []int{0, 1},
			Vals:  []int{1, 1},
			Shape: ilp.Shape{NRows: 1, NCols: 2},
		},
		B: []int{1},
		Variables: []ilp.Variable{
			{ID: "x1", Bound: ilp.Bound{0, 1}},
			{ID: "x2", Bound: ilp.Bound{0, 1}},
		},
	}
}

func TestValidateAcceptsConsistentPolyhedron(t *testing.T) {
	require.NoError(t, validPolyhedron().Validate())
}

func TestValidateRejectsRaggedCOOSlices(t *testing.T) {
	p := validPolyhedron()
	p.A.Vals = p.A.Vals[:1]
	err := p.Validate()
	require.Error(t, err)
	require.IsType(t, &ilp.InputError{}, err)
	require.Contains(t, err.Error(), "same length")
}

func TestValidateRejectsVariableCountMismatch(t *testing.T) {
	p := validPolyhedron()
	p.Variables = p.Variables[:1]
	err := p.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "number of variables")
}

func TestValidateRejectsRHSCountMismatch(t *testing.T) {
	p := validPolyhedron()
	p.B = []int{1, 2}
	err := p.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "elements in b")
}

func TestValidateRejectsOutOfRangeIndices(t *testing.T) {
	p := validPolyhedron()
	p.A.Cols[1] = 7
	require.Error(t, p.Validate())

	p = validPolyhedron()
	p.A.Rows[0] = -1
	require.Error(t, p.Validate())
}

func TestValidateRejectsInvertedBound(t *testing.T) {
	p := validPolyhedron()
	p.Variables[0].Bound = ilp.Bound{2, 1}
	err := p.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "x1")
}

func TestValidateObjectivesGivenValidObjectives(t *testing.T) {
	variables := []ilp.Variable{
		{ID: "x1", Bound: ilp.Bound{0, 1}},
		{ID: "x2", Bound: ilp.Bound{0, 1}},
	}
	objectives := []ilp.Objective{{"x1": 1.0, "x2": 2.0}}
	require.NoError(t, ilp.ValidateObjectives(variables, objectives))
}

func TestValidateObjectivesGivenMissingVariable(t *testing.T) {
	variables := []ilp.Variable{
		{ID: "x1", Bound: ilp.Bound{0, 1}},
		{ID: "x2", Bound: ilp.Bound{0, 1}},
	}
	objectives := []ilp.Objective{{"x1": 1.0, "missing": 2.0}}
	err := ilp.ValidateObjectives(variables, objectives)
	require.Error(t, err)
	require.IsType(t, &ilp.InputError{}, err)
	require.Contains(t, err.Error(), "missing")
}
