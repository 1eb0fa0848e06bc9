package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/viewshell/internal/cli"
	"github.com/bnema/viewshell/internal/domain/build"
)

func run(t *testing.T, runGUI GUIRunner, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(build.Info{Version: "v1.2.3", Commit: "deadbeef"}, runGUI)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "deadbeef")
}

func TestConfigSchema(t *testing.T) {
	out, err := run(t, nil, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "viewshell configuration"`)
}

func TestConfigSchema_OutputDir(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, nil, "config", "schema", "--output-dir", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "config.schema.json")
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
}

func TestConfigPath_DoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	out, err := run(t, nil, "config", "path", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, path)
	assert.Contains(t, out, "not created yet")
	assert.NoFileExists(t, path)
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[downloads]\npanel_width = 512\n"), 0o600))

	out, err := run(t, nil, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "panel_width")
	assert.Contains(t, out, "512")
}

func TestBrowse_PassesNormalizedURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	var gotURL string
	var gotApp *cli.App
	runGUI := func(app *cli.App, url string) int {
		gotApp, gotURL = app, url
		return 0
	}

	_, err := run(t, runGUI, "browse", "go.dev", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", gotURL)
	require.NotNil(t, gotApp)
	assert.Equal(t, "v1.2.3", gotApp.BuildInfo.Version)
}

func TestBrowse_ExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := run(t, func(*cli.App, string) int { return 3 }, "browse", "--config", path)
	assert.Equal(t, ExitError{Code: 3}, err)
}

func TestBrowse_WithoutFrontend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := run(t, nil, "browse", "--config", path)
	assert.EqualError(t, err, "browser frontend not available")
}
