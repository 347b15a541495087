package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.APIListenAddr)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "grades", cfg.LogPrefix)
	assert.True(t, cfg.SeedDemo)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRADES_API_ADDR", ":8080")
	t.Setenv("GRADES_SEED_DEMO", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.APIListenAddr)
	assert.False(t, cfg.SeedDemo)
}

func TestLoadDotenv(t *testing.T) {
	// Registered so godotenv's values are cleared after the test.
	t.Setenv("GRADES_LOG_PREFIX", "")
	os.Unsetenv("GRADES_LOG_PREFIX")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GRADES_LOG_PREFIX=transcript\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "transcript", cfg.LogPrefix)
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("GRADES_SEED_DEMO", "maybe")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
