package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))

	require.NoError(t, err)
	assert.Equal(t, "/Applications", cfg.ApplicationsDir)
	assert.Empty(t, cfg.ExtensionsFile)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Scripted)
	assert.Equal(t, 400, cfg.WatchDebounceMS)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("applications_dir: /opt/apps\nno_color: true\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/opt/apps", cfg.ApplicationsDir)
	assert.True(t, cfg.NoColor)
	// Untouched keys keep their defaults.
	assert.Equal(t, 400, cfg.WatchDebounceMS)
}

func TestLoad_EnvOverridesProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("applications_dir: /opt/apps\n"), 0o644))
	t.Setenv("DEFAULTAPP_APPLICATIONS_DIR", "/env/apps")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/env/apps", cfg.ApplicationsDir)
}

func TestLoad_InvalidYAMLReportsPosition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("applications_dir: [unclosed\n"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid YAML")
}

func TestLoad_ExpandsHomePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("extensions_file: ~/exts.json\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	home, herr := os.UserHomeDir()
	require.NoError(t, herr)
	assert.Equal(t, filepath.Join(home, "exts.json"), cfg.ExtensionsFile)
}

func TestWriteStarterConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	require.NoError(t, WriteStarterConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "applications_dir")

	// Refuses to clobber.
	assert.Error(t, WriteStarterConfig(path))
}

func TestValidateYAMLSyntax_MissingFile(t *testing.T) {
	assert.Error(t, ValidateYAMLSyntax(filepath.Join(t.TempDir(), "absent.yml")))
}
