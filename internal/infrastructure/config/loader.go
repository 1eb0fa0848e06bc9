package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "VIEWSHELL"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	explicit   bool
	configFile string
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, falling back to the working directory.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	if err := bindEnv(v); err != nil {
		return nil, err
	}
	configFile, _ := GetConfigFile()
	return &Manager{viper: v, configFile: configFile}, nil
}

// NewManagerWithFile creates a manager bound to one config file. The file is
// created with defaults when missing.
func NewManagerWithFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := bindEnv(v); err != nil {
		return nil, err
	}
	return &Manager{viper: v, explicit: true, configFile: path}, nil
}

// bindEnv maps VIEWSHELL_SECTION_KEY variables onto section.key settings.
func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names for the settings people flip most.
	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}
	return nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicit {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.GetConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	case "console", "text", "":
		config.Logging.Format = "text"
	}

	urls := config.Tabs.StartupURLs[:0]
	for _, u := range config.Tabs.StartupURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	config.Tabs.StartupURLs = urls
	if strings.TrimSpace(config.Tabs.NewTabURL) == "" {
		config.Tabs.NewTabURL = defaultNewTabURL
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Tabs.StartupURLs = append([]string(nil), m.config.Tabs.StartupURLs...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile
}

// createDefaultConfig writes the current defaults to the config file.
func (m *Manager) createDefaultConfig() error {
	if m.configFile == "" {
		configFile, err := GetConfigFile()
		if err != nil {
			return err
		}
		m.configFile = configFile
	}
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(m.configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if m.explicit {
		m.viper.SetConfigFile(m.configFile)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setWindowDefaults(defaults)
	m.setTabsDefaults(defaults)
	m.setSessionDefaults(defaults)
	m.setDownloadsDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.title", defaults.Window.Title)
}

func (m *Manager) setTabsDefaults(defaults *Config) {
	m.viper.SetDefault("tabs.header_height", defaults.Tabs.HeaderHeight)
	m.viper.SetDefault("tabs.startup_urls", defaults.Tabs.StartupURLs)
	m.viper.SetDefault("tabs.new_tab_url", defaults.Tabs.NewTabURL)
}

func (m *Manager) setSessionDefaults(defaults *Config) {
	m.viper.SetDefault("session.data_dir", defaults.Session.DataDir)
	m.viper.SetDefault("session.cache_dir", defaults.Session.CacheDir)
}

func (m *Manager) setDownloadsDefaults(defaults *Config) {
	m.viper.SetDefault("downloads.temp_dir", defaults.Downloads.TempDir)
	m.viper.SetDefault("downloads.max_concurrent_copies", defaults.Downloads.MaxConcurrentCopies)
	m.viper.SetDefault("downloads.panel_width", defaults.Downloads.PanelWidth)
	m.viper.SetDefault("downloads.panel_height", defaults.Downloads.PanelHeight)
	m.viper.SetDefault("downloads.panel_offset_right", defaults.Downloads.PanelOffsetRight)
	m.viper.SetDefault("downloads.panel_offset_top", defaults.Downloads.PanelOffsetTop)
	m.viper.SetDefault("downloads.hide_panel_on_blur", defaults.Downloads.HidePanelOnBlur)
}
