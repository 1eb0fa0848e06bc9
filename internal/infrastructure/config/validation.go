package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateTabs(config)...)
	validationErrors = append(validationErrors, validateDownloads(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error", config.Logging.Level))
	}
	if config.Logging.Format != "text" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format %q must be text, console or json", config.Logging.Format))
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < 200 {
		validationErrors = append(validationErrors, "window.width must be at least 200")
	}
	if config.Window.Height < 200 {
		validationErrors = append(validationErrors, "window.height must be at least 200")
	}
	return validationErrors
}

func validateTabs(config *Config) []string {
	var validationErrors []string
	if config.Tabs.HeaderHeight < 0 {
		validationErrors = append(validationErrors, "tabs.header_height must be non-negative")
	}
	if config.Tabs.HeaderHeight >= config.Window.Height && config.Window.Height > 0 {
		validationErrors = append(validationErrors, "tabs.header_height must be smaller than window.height")
	}
	for i, raw := range config.Tabs.StartupURLs {
		if _, err := url.Parse(raw); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("tabs.startup_urls[%d] is not a valid URL: %v", i, err))
		}
	}
	return validationErrors
}

func validateDownloads(config *Config) []string {
	var validationErrors []string
	d := config.Downloads
	if d.PanelWidth <= 0 || d.PanelHeight <= 0 {
		validationErrors = append(validationErrors, "downloads.panel_width and downloads.panel_height must be positive")
	}
	if d.MaxConcurrentCopies < 1 {
		validationErrors = append(validationErrors, "downloads.max_concurrent_copies must be at least 1")
	}
	if strings.TrimSpace(d.TempDir) == "" {
		validationErrors = append(validationErrors, "downloads.temp_dir must not be empty")
	}
	return validationErrors
}
