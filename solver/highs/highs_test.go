package highs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/internal/solvertest"
	"github.com/polyhedral/ilpd/solver"
	"github.com/polyhedral/ilpd/solver/highs"
)

func TestConformance(t *testing.T) {
	solvertest.Run(t, &highs.Backend{})
}

func TestRegistered(t *testing.T) {
	s, err := solver.New("highs")
	require.NoError(t, err)
	require.Equal(t, "HiGHS", s.Name())
}

func TestSolverLifecycle(t *testing.T) {
	s, err := highs.NewSolver()
	require.NoError(t, err)
	require.Greater(t, s.Infinity(), 1e20)
	s.Close()
	s.Close() // double close is a no-op
}
