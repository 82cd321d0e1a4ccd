package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PIGPEN_ENV", "PIGPEN_ADDR", "PIGPEN_CATALOG_PATH", "PIGPEN_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Env:         EnvDevelopment,
		Addr:        ":8080",
		CatalogPath: "data/pig-parts.yaml",
		LogLevel:    "info",
	}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIGPEN_ENV", EnvProduction)
	t.Setenv("PIGPEN_ADDR", "127.0.0.1:9000")
	t.Setenv("PIGPEN_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PIGPEN_CATALOG_PATH=/srv/parts.yaml\nPIGPEN_ADDR=:7000\n"), 0o600))
	t.Setenv("PIGPEN_ADDR", ":9999")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/parts.yaml", cfg.CatalogPath)
	assert.Equal(t, ":9999", cfg.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIGPEN_LOG_LEVEL", "loud")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidate_Env(t *testing.T) {
	cfg := Config{Env: "staging", Addr: ":1", CatalogPath: "x", LogLevel: "info"}
	assert.Error(t, cfg.Validate())
	cfg.Env = EnvProduction
	assert.NoError(t, cfg.Validate())
}
