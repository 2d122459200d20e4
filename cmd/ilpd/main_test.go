package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/ilp"
)

func TestExitCode(t *testing.T) {
	require.Equal(t, 2, exitCode(ilp.Errorf("bad bound on variable %s", "x")))
	require.Equal(t, 2, exitCode(errors.Wrap(ilp.Errorf("bad"), "request")))
	require.Equal(t, 1, exitCode(errors.New("engine fault")))
}
