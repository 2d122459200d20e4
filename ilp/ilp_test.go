package ilp_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/ilp"
)

func TestBoundClassification(t *testing.T) {
	require.True(t, ilp.Bound{0, 1}.IsBinary())
	require.False(t, ilp.Bound{0, 2}.IsBinary())
	require.True(t, ilp.Bound{3, 3}.IsFixed())
	require.False(t, ilp.Bound{3, 3}.IsBinary())
}

func TestObjectiveValueRoundsLocally(t *testing.T) {
	obj := ilp.Objective{"x": 1.0, "y": 2.0}
	require.Equal(t, 66, obj.Value(map[string]int{"x": 0, "y": 33}))
	// variables absent from the assignment count as zero
	require.Equal(t, 0, obj.Value(map[string]int{}))
	// fractional coefficients round to nearest
	require.Equal(t, 2, ilp.Objective{"x": 0.6}.Value(map[string]int{"x": 3}))
}

func TestGEPolyhedronToLE(t *testing.T) {
	g := &ilp.GEPolyhedron{
		A: ilp.SparseMatrix{
			Rows:  []int{0, 0},
			Cols:  []int{0, 1},
			Vals:  []int{1, 2},
			Shape: ilp.Shape{NRows: 1, NCols: 2},
		},
		B: []int{3},
		Variables: []ilp.Variable{
			{ID: "x", Bound: ilp.Bound{0, 5}},
			{ID: "y", Bound: ilp.Bound{0, 5}},
		},
	}
	le := g.ToLE()
	require.Equal(t, []int{-1, -2}, le.A.Vals)
	require.Equal(t, []int{-3}, le.B)
	require.NoError(t, le.Validate())
	// x + 2y >= 3 holds for (1, 1)
	require.True(t, le.Contains(map[string]int{"x": 1, "y": 1}))
	require.False(t, le.Contains(map[string]int{"x": 0, "y": 0}))
	// source is untouched
	require.Equal(t, []int{1, 2}, g.A.Vals)
}

func TestStatusWireFormIsOrdinal(t *testing.T) {
	b, err := json.Marshal(ilp.Solution{Status: ilp.Optimal, Objective: 1})
	require.NoError(t, err)
	require.Contains(t, string(b), `"status":5`)
	require.NotContains(t, string(b), "error")
}

func TestSolveRequestRoundTrip(t *testing.T) {
	raw := `{
		"polyhedron": {
			"A": {"rows":[0,1],"cols":[0,1],"vals":[1,1],"shape":{"nrows":2,"ncols":2}},
			"b": [1,1],
			"variables": [{"id":"x1","bound":[0,1]},{"id":"x2","bound":[0,1]}]
		},
		"objectives": [{"x1": 1.0}],
		"direction": "maximize"
	}`
	var req struct {
		Polyhedron ilp.Polyhedron  `json:"polyhedron"`
		Objectives []ilp.Objective `json:"objectives"`
		Direction  ilp.Direction   `json:"direction"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	require.NoError(t, req.Polyhedron.Validate())
	require.True(t, req.Direction.IsMaximize())
	require.Equal(t, ilp.Bound{0, 1}, req.Polyhedron.Variables[0].Bound)
}
