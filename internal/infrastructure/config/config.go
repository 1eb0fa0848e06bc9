// Package config loads viewshell settings from TOML, the environment and
// built-in defaults.
package config

// Config represents the complete configuration for viewshell.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Window controls the main window.
	Window WindowConfig `mapstructure:"window" toml:"window" json:"window"`
	// Tabs controls tab layout and startup pages.
	Tabs TabsConfig `mapstructure:"tabs" toml:"tabs" json:"tabs"`
	// Session selects where the shared storage partition lives.
	Session SessionConfig `mapstructure:"session" toml:"session" json:"session"`
	// Downloads controls temp storage and the download panel.
	Downloads DownloadsConfig `mapstructure:"downloads" toml:"downloads" json:"downloads"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=console,enum=json"`
	// LogDir receives one log file per session when EnableFileLog is set.
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=200"`
	Height int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=200"`
	Title  string `mapstructure:"title" toml:"title" json:"title"`
}

// TabsConfig holds tab settings.
type TabsConfig struct {
	// HeaderHeight is the band above the active page reserved for the tab strip.
	HeaderHeight int `mapstructure:"header_height" toml:"header_height" json:"header_height" jsonschema:"minimum=0"`
	// StartupURLs are opened on launch; the first one becomes active.
	StartupURLs []string `mapstructure:"startup_urls" toml:"startup_urls" json:"startup_urls"`
	// NewTabURL is loaded by tabs opened from the UI without a URL.
	NewTabURL string `mapstructure:"new_tab_url" toml:"new_tab_url" json:"new_tab_url"`
}

// SessionConfig holds the storage partition location shared by all tabs.
type SessionConfig struct {
	DataDir  string `mapstructure:"data_dir" toml:"data_dir" json:"data_dir"`
	CacheDir string `mapstructure:"cache_dir" toml:"cache_dir" json:"cache_dir"`
}

// DownloadsConfig holds download pipeline settings.
type DownloadsConfig struct {
	// TempDir receives bytes until the user picks a destination.
	TempDir string `mapstructure:"temp_dir" toml:"temp_dir" json:"temp_dir"`
	// MaxConcurrentCopies bounds cross-device moves running at once.
	MaxConcurrentCopies int `mapstructure:"max_concurrent_copies" toml:"max_concurrent_copies" json:"max_concurrent_copies" jsonschema:"minimum=1"`

	PanelWidth  int `mapstructure:"panel_width" toml:"panel_width" json:"panel_width" jsonschema:"minimum=1"`
	PanelHeight int `mapstructure:"panel_height" toml:"panel_height" json:"panel_height" jsonschema:"minimum=1"`
	// PanelOffsetRight and PanelOffsetTop anchor the panel to the main
	// window's top-right corner.
	PanelOffsetRight int  `mapstructure:"panel_offset_right" toml:"panel_offset_right" json:"panel_offset_right"`
	PanelOffsetTop   int  `mapstructure:"panel_offset_top" toml:"panel_offset_top" json:"panel_offset_top"`
	HidePanelOnBlur  bool `mapstructure:"hide_panel_on_blur" toml:"hide_panel_on_blur" json:"hide_panel_on_blur"`
}
