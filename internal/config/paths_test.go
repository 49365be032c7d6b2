package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), paths.ConfigFile)
	assert.Equal(t, ".submitkit", filepath.Base(paths.HomeDir))
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv("SUBMITKIT_CONFIG", "/tmp/custom.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestExpandPath(t *testing.T) {
	expanded, err := ExpandPath("~/x/config.yaml")
	require.NoError(t, err)
	assert.NotContains(t, expanded, "~")
	assert.Equal(t, "config.yaml", filepath.Base(expanded))

	plain, err := ExpandPath("/abs/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/abs/config.yaml", plain)
}
