package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/ilp"
	"github.com/polyhedral/ilpd/solver"
)

type fakeSolver struct{}

func (fakeSolver) Solve(*ilp.Polyhedron, []ilp.Objective, ilp.Direction, bool) ([]ilp.Solution, error) {
	return nil, nil
}
func (fakeSolver) Name() string { return "Fake" }

func TestRegistryResolvesCaseInsensitively(t *testing.T) {
	solver.Register("Fake", func() solver.Solver { return fakeSolver{} })

	s, err := solver.New("fake")
	require.NoError(t, err)
	require.Equal(t, "Fake", s.Name())

	s, err = solver.New("FAKE")
	require.NoError(t, err)
	require.Equal(t, "Fake", s.Name())
}

func TestRegistryRejectsUnknownBackend(t *testing.T) {
	_, err := solver.New("does-not-exist")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown solver backend")
	require.Contains(t, err.Error(), "available")
}

func TestEmptySolutions(t *testing.T) {
	sols := solver.EmptySolutions(3)
	require.Len(t, sols, 3)
	for _, s := range sols {
		require.Equal(t, ilp.EmptySpace, s.Status)
		require.Equal(t, 0, s.Objective)
		require.NotNil(t, s.Solution)
		require.Empty(t, s.Solution)
	}
}

func TestPrepareOrdersChecks(t *testing.T) {
	p := &ilp.Polyhedron{
		A: ilp.SparseMatrix{
			Rows:  []int{0},
			Cols:  []int{0},
			Vals:  []int{1},
			Shape: ilp.Shape{NRows: 1, NCols: 1},
		},
		B:         []int{1},
		Variables: []ilp.Variable{{ID: "x", Bound: ilp.Bound{0, 1}}},
	}
	require.NoError(t, solver.Prepare(p, []ilp.Objective{{"x": 1}}))

	err := solver.Prepare(p, []ilp.Objective{{"ghost": 1}})
	require.Error(t, err)
	require.IsType(t, &ilp.InputError{}, err)

	// structural errors win over referential ones
	p.B = nil
	err = solver.Prepare(p, []ilp.Objective{{"ghost": 1}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "elements in b")
}

func TestEngineErrorMessage(t *testing.T) {
	err := &solver.EngineError{Backend: "GLPK", Op: "Intopt", Msg: "return code 10"}
	require.Equal(t, "GLPK: Intopt failed: return code 10", err.Error())
}
