package config

import (
	"os"
	"path/filepath"
)

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	defaultHeaderHeight = 40
	defaultNewTabURL    = "about:blank"
)

func getDefaultLogDir() string {
	if dir, err := GetLogDir(); err == nil {
		return dir
	}
	return filepath.Join(os.TempDir(), appName, "logs")
}

func getDefaultSessionDirs() (data, cache string) {
	dirs, err := GetXDGDirs()
	if err != nil {
		base := filepath.Join(os.TempDir(), appName)
		return filepath.Join(base, "session"), filepath.Join(base, "cache")
	}
	return filepath.Join(dirs.DataHome, "session"), filepath.Join(dirs.CacheHome, "session")
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	dataDir, cacheDir := getDefaultSessionDirs()
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "text",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: false,
		},
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  "viewshell",
		},
		Tabs: TabsConfig{
			HeaderHeight: defaultHeaderHeight,
			StartupURLs:  []string{"https://duckduckgo.com"},
			NewTabURL:    defaultNewTabURL,
		},
		Session: SessionConfig{
			DataDir:  dataDir,
			CacheDir: cacheDir,
		},
		Downloads: DownloadsConfig{
			TempDir:             filepath.Join(os.TempDir(), appName+"-downloads"),
			MaxConcurrentCopies: 2,
			PanelWidth:          360,
			PanelHeight:         480,
			PanelOffsetRight:    380,
			PanelOffsetTop:      50,
			HidePanelOnBlur:     true,
		},
	}
}
