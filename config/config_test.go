package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhedral/ilpd/config"
	"github.com/polyhedral/ilpd/solver"

	_ "github.com/polyhedral/ilpd/solver/glpk"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "glpk", cfg.Backend)
	require.True(t, cfg.Presolve)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ILPD_PRESOLVE", "false")
	t.Setenv("ILPD_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.False(t, cfg.Presolve)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ilpd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: glpk\nlog_level: warn\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "glpk", cfg.Backend)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestRejectsUnknownBackend(t *testing.T) {
	t.Setenv("ILPD_BACKEND", "simplex9000")

	_, err := config.Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "simplex9000")
}

func TestRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("ILPD_LOG_LEVEL", "loud")

	_, err := config.Load("")
	require.Error(t, err)
}

func TestRegisteredBackendPassesValidation(t *testing.T) {
	require.Contains(t, solver.Available(), "glpk")
}
