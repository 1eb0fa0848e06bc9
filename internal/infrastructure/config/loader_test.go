package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 40, mgr.viper.GetInt("tabs.header_height"))
	assert.Equal(t, 360, mgr.viper.GetInt("downloads.panel_width"))
	assert.Equal(t, 480, mgr.viper.GetInt("downloads.panel_height"))
	assert.Equal(t, 380, mgr.viper.GetInt("downloads.panel_offset_right"))
	assert.Equal(t, 50, mgr.viper.GetInt("downloads.panel_offset_top"))
	assert.True(t, mgr.viper.GetBool("downloads.hide_panel_on_blur"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, path, mgr.GetConfigFile())

	cfg := mgr.Get()
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Tabs, cfg.Tabs)
	assert.Equal(t, defaults.Downloads, cfg.Downloads)
}

func TestManager_LoadFileValues(t *testing.T) {
	path := writeConfig(t, `
[tabs]
header_height = 56
startup_urls = ["https://go.dev", " ", "https://example.com"]
new_tab_url = ""

[downloads]
panel_width = 400
hide_panel_on_blur = false

[logging]
level = "DEBUG"
format = "console"
`)

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 56, cfg.Tabs.HeaderHeight)
	assert.Equal(t, []string{"https://go.dev", "https://example.com"}, cfg.Tabs.StartupURLs)
	assert.Equal(t, defaultNewTabURL, cfg.Tabs.NewTabURL)
	assert.Equal(t, 400, cfg.Downloads.PanelWidth)
	assert.Equal(t, 480, cfg.Downloads.PanelHeight)
	assert.False(t, cfg.Downloads.HidePanelOnBlur)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestManager_EnvOverrides(t *testing.T) {
	t.Setenv("VIEWSHELL_LOG_LEVEL", "warn")
	t.Setenv("VIEWSHELL_DOWNLOADS_PANEL_OFFSET_TOP", "70")

	mgr, err := NewManagerWithFile(writeConfig(t, "[logging]\nlevel = \"info\"\n"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 70, cfg.Downloads.PanelOffsetTop)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	mgr, err := NewManagerWithFile(writeConfig(t, `
[window]
width = 10

[downloads]
max_concurrent_copies = 0
`))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.width")
	assert.Contains(t, err.Error(), "downloads.max_concurrent_copies")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	mgr, err := NewManagerWithFile(writeConfig(t, "[tabs\nheader_height = "))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr, err := NewManagerWithFile(writeConfig(t, "[tabs]\nstartup_urls = [\"https://go.dev\"]\n"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Tabs.StartupURLs[0] = "https://changed.example"
	cfg.Tabs.HeaderHeight = 99

	fresh := mgr.Get()
	assert.Equal(t, "https://go.dev", fresh.Tabs.StartupURLs[0])
	assert.Equal(t, 40, fresh.Tabs.HeaderHeight)
}

func TestManager_GetBeforeLoad(t *testing.T) {
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Downloads, mgr.Get().Downloads)
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	path := writeConfig(t, "[tabs]\nheader_height = 40\n")
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(cfg *Config) { got = cfg })

	require.NoError(t, os.WriteFile(path, []byte("[tabs]\nheader_height = 64\n"), 0o600))
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, 64, got.Tabs.HeaderHeight)
	assert.Equal(t, 64, mgr.Get().Tabs.HeaderHeight)
}

func TestManager_ReloadKeepsPreviousOnError(t *testing.T) {
	path := writeConfig(t, "[tabs]\nheader_height = 40\n")
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, os.WriteFile(path, []byte("[tabs]\nheader_height = -1\n"), 0o600))
	require.Error(t, mgr.Reload())
	assert.Equal(t, 40, mgr.Get().Tabs.HeaderHeight)
}
