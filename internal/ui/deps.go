// Package ui runs the viewshell browser window on GTK4.
package ui

import (
	"context"
	"errors"

	"github.com/bnema/viewshell/internal/bootstrap"
	"github.com/bnema/viewshell/internal/infrastructure/config"
)

// AppID is the application identifier registered with GTK.
const AppID = "com.github.bnema.viewshell"

var (
	ErrNoContext = errors.New("context is required")
	ErrNoConfig  = errors.New("configuration is required")
)

// Dependencies holds everything the UI layer needs at startup.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	// ConfigManager enables live reload when set.
	ConfigManager *config.Manager
	// InitialURL replaces the configured startup pages when set.
	InitialURL string
	// DownloadDir is where save prompts open.
	DownloadDir string
	Timer       *bootstrap.StartupTimer
}

// Validate checks that the required dependencies are present.
func (d *Dependencies) Validate() error {
	if d == nil || d.Ctx == nil {
		return ErrNoContext
	}
	if d.Config == nil {
		return ErrNoConfig
	}
	return nil
}

// startupConfig returns the configuration the shell starts with.
func (d *Dependencies) startupConfig() *config.Config {
	cfg := *d.Config
	if d.InitialURL != "" {
		cfg.Tabs.StartupURLs = []string{d.InitialURL}
	}
	return &cfg
}
