package glpk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/internal/solvertest"
	"github.com/polyhedral/ilpd/solver"
	"github.com/polyhedral/ilpd/solver/glpk"
)

func TestConformance(t *testing.T) {
	solvertest.Run(t, &glpk.Backend{})
}

func TestRegistered(t *testing.T) {
	s, err := solver.New("glpk")
	require.NoError(t, err)
	require.Equal(t, "GLPK", s.Name())
}
