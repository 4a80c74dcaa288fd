package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "fpocketR", cfg.CondaEnv)
	assert.Equal(t, "noll", cfg.Ligand)
	assert.Equal(t, 0, cfg.Offset)
	assert.Equal(t, "fpocket-R", cfg.Output)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Vomit)
}

func TestLoadFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "fpocketr.yaml")
	yaml := "conda_env: custom\noffset: 3\nverbose: false\n"
	require.NoError(t, os.WriteFile(fileName, []byte(yaml), 0666))

	cfg, err := Load(fileName)
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.CondaEnv)
	assert.Equal(t, 3, cfg.Offset)
	assert.False(t, cfg.Verbose)
	// Untouched keys keep their defaults.
	assert.Equal(t, "noll", cfg.Ligand)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "fpocketr.yaml")
	yaml := "conda_env: from-file\n"
	require.NoError(t, os.WriteFile(fileName, []byte(yaml), 0666))
	t.Setenv("FPOCKETR_CONDA_ENV", "from-env")

	cfg, err := Load(fileName)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.CondaEnv)
}

func TestLoadEmptyEnvName(t *testing.T) {
	t.Setenv("FPOCKETR_CONDA_ENV", "")
	_, err := Load("")
	require.Error(t, err)
}
