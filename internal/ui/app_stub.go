//go:build !webkit_cgo

package ui

import (
	"context"

	"github.com/bnema/viewshell/internal/infrastructure/webkit"
	"github.com/bnema/viewshell/internal/logging"
)

// App is unavailable without the webkit_cgo build tag.
type App struct{}

// New reports that this binary was built without the GTK frontend.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return nil, webkit.ErrUnavailable
}

// Run never starts a window in this build.
func (a *App) Run(ctx context.Context, _ []string) int {
	logging.FromContext(ctx).Error().Err(webkit.ErrUnavailable).Msg("GTK frontend not compiled in")
	return 1
}

// Quit does nothing in this build.
func (a *App) Quit() {}
