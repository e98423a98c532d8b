package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
)

// isolateHome points every per-user path at a temp directory so command
// runs never touch the real user configuration.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestCheckCmd_ScriptedGrantsPermission(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "check", "--scripted")
	require.NoError(t, err)
	assert.Contains(t, out, "Full Disk Access granted")
}

func TestListCmd_ScriptedJSON(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "list", "--json", "--scripted")
	require.NoError(t, err)

	var list []struct {
		Extension       string `json:"extension"`
		ApplicationName string `json:"applicationName"`
		ApplicationPath string `json:"applicationPath"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.NotEmpty(t, list)
	for _, a := range list {
		assert.NotEmpty(t, a.Extension)
		assert.NotEmpty(t, a.ApplicationName)
	}
}

func TestSetCmd_InvalidExtension(t *testing.T) {
	isolateHome(t)

	_, err := runCommand(t, "set", ".", "--scripted")
	require.Error(t, err)

	var cliErr *apperrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, apperrors.Input, cliErr.Category)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestSetCmd_ScriptedRefusesMutation(t *testing.T) {
	isolateHome(t)

	_, err := runCommand(t, "set", "md", "/Applications/Typora.app", "--scripted")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only supported on macOS")
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestAddCmd_NoPicker(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "add", " .SVG ", "--no-picker", "--scripted")
	require.NoError(t, err)
	assert.Contains(t, out, "Extension .svg added")
}

func TestAddCmd_InvalidExtension(t *testing.T) {
	isolateHome(t)

	_, err := runCommand(t, "add", ".", "--no-picker", "--scripted")
	require.Error(t, err)

	var cliErr *apperrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, apperrors.Input, cliErr.Category)
}

func TestWatchCmd_RefusedInScriptedMode(t *testing.T) {
	isolateHome(t)

	_, err := runCommand(t, "watch", "--scripted")
	require.Error(t, err)

	var cliErr *apperrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, apperrors.Configuration, cliErr.Category)
}

func TestConfigShowCmd(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "config", "show", "--scripted")
	require.NoError(t, err)
	assert.Contains(t, out, "applications_dir: /Applications")
	assert.Contains(t, out, "watch_debounce_ms:")
}

func TestConfigInitCmd(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "config", "init", "--scripted")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yml")

	// Second run must refuse to overwrite.
	_, err = runCommand(t, "config", "init", "--scripted")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "version", "--scripted")
	require.NoError(t, err)
	assert.Contains(t, out, "defaultapp dev")
}
