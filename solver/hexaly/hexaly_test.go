package hexaly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/internal/solvertest"
	"github.com/polyhedral/ilpd/solver"
	"github.com/polyhedral/ilpd/solver/hexaly"
)

func TestConformance(t *testing.T) {
	solvertest.Run(t, &hexaly.Backend{})
}

func TestRegistered(t *testing.T) {
	s, err := solver.New("hexaly")
	require.NoError(t, err)
	require.Equal(t, "Hexaly", s.Name())
}

func TestOptimizerLifecycle(t *testing.T) {
	opt, err := hexaly.NewOptimizer()
	require.NoError(t, err)
	opt.Close()
	opt.Close() // double close is a no-op
}

// Status and value reads after a solve share one incumbent handle, so
// repeated reads must agree and survive until Close.
func TestSolutionReadsAreStable(t *testing.T) {
	opt, err := hexaly.NewOptimizer()
	require.NoError(t, err)
	defer opt.Close()
	opt.SetVerbosity(0)

	x, err := opt.IntVar(0, 4)
	require.NoError(t, err)
	opt.Maximize(x)
	opt.CloseModel()
	opt.Solve()

	require.Equal(t, hexaly.StateStopped, opt.State())
	first := opt.SolutionStatus()
	require.Equal(t, first, opt.SolutionStatus())
	require.Equal(t, 4, opt.IntValue(x))
	require.Equal(t, 4, opt.IntValue(x))
}
