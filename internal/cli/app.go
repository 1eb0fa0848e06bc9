// Package cli holds the state shared by viewshell's terminal commands.
package cli

import (
	"fmt"

	"github.com/bnema/viewshell/internal/cli/styles"
	"github.com/bnema/viewshell/internal/domain/build"
	"github.com/bnema/viewshell/internal/infrastructure/config"
)

// App is the loaded configuration plus the terminal theme.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
}

// NewApp loads the configuration. An empty path selects the XDG config file.
func NewApp(path string) (*App, error) {
	var (
		manager *config.Manager
		err     error
	)
	if path != "" {
		manager, err = config.NewManagerWithFile(path)
	} else {
		manager, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &App{
		Config:  manager.Get(),
		Manager: manager,
		Theme:   styles.NewTheme(),
	}, nil
}

// ConfigFile returns the path of the file the configuration came from.
func (a *App) ConfigFile() string {
	return a.Manager.GetConfigFile()
}
