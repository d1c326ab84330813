package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultsLocal(t *testing.T) {
	cfg := &Config{BuildTarget: "local", DBDriver: "auto"}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "memory", cfg.DBDriver)
}

func TestResolveDefaultsCloud(t *testing.T) {
	cfg := &Config{BuildTarget: "cloud", DBDriver: ""}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "mongo", cfg.DBDriver)
}

func TestResolveDefaultsExplicitDriverWins(t *testing.T) {
	cfg := &Config{BuildTarget: "local", DBDriver: "mongo"}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "mongo", cfg.DBDriver)
}

func TestResolveDefaultsRejectsUnknownTarget(t *testing.T) {
	cfg := &Config{BuildTarget: "staging"}
	assert.Error(t, cfg.ResolveDefaults())
}

func TestResolveDefaultsRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{BuildTarget: "local", DBDriver: "cassandra"}
	assert.Error(t, cfg.ResolveDefaults())
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("DROPSPOT_HTTP_PORT", "9999")
	t.Setenv("DROPSPOT_BUILD_TARGET", "local")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.HTTPPort)
	assert.Equal(t, ":9999", cfg.GetHTTPAddr())
}
