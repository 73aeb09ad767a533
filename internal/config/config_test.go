package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults().IDColumns, c.IDColumns)
	assert.Equal(t, "json", c.OutputFormat)
	assert.Equal(t, 4, c.Jobs)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg", "config.yaml")
	c := Defaults()
	c.IDColumns = []string{"sku"}
	c.OutputFormat = "markdown"
	c.Jobs = 2
	require.NoError(t, Save(c, p))

	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"sku"}, got.IDColumns)
	assert.Equal(t, "markdown", got.OutputFormat)
	assert.Equal(t, 2, got.Jobs)
}

func TestEnvOverridesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("output_format: yaml\njobs: 3\n"), 0o644))
	t.Setenv("COLPROFILE_OUTPUT_FORMAT", "markdown")

	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "markdown", got.OutputFormat)
	assert.Equal(t, 3, got.Jobs)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "json", got.OutputFormat)
}

func TestLoadBrokenFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("jobs: [unclosed\n"), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}
