//go:build webkit_cgo

package ui

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/viewshell/internal/bootstrap"
	"github.com/bnema/viewshell/internal/infrastructure/config"
	"github.com/bnema/viewshell/internal/infrastructure/desktop"
	"github.com/bnema/viewshell/internal/infrastructure/filesystem"
	"github.com/bnema/viewshell/internal/infrastructure/webkit"
	"github.com/bnema/viewshell/internal/logging"
	"github.com/bnema/viewshell/internal/ui/window"
)

// App wraps the GTK application and owns the shell for its lifetime.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application

	loop    webkit.IdleLoop
	session *webkit.Session
	shell   *bootstrap.Shell
	main    *window.MainWindow

	err error
}

// New creates the application. GTK is not touched until Run.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps}, nil
}

// Run starts the GTK main loop and blocks until the application quits.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	code := a.gtkApp.Run(args)
	if a.err != nil {
		log.Error().Err(a.err).Msg("application failed to start")
		if code == 0 {
			code = 1
		}
	}
	return code
}

func (a *App) onActivate(ctx context.Context) {
	if a.main != nil {
		a.main.Present()
		return
	}
	if err := a.start(ctx); err != nil {
		a.err = err
		a.gtkApp.Quit()
	}
}

func (a *App) start(ctx context.Context) error {
	cfg := a.deps.startupConfig()
	timer := a.deps.Timer
	if timer == nil {
		timer = bootstrap.NewStartupTimer()
	}

	fs := filesystem.New(cfg.Downloads.MaxConcurrentCopies)
	if err := bootstrap.PrepareDirs(ctx, cfg, fs); err != nil {
		return err
	}

	session, err := webkit.NewSession(ctx, cfg.Session.DataDir, cfg.Session.CacheDir)
	if err != nil {
		return fmt.Errorf("network session: %w", err)
	}
	a.session = session
	timer.Mark("session")

	shell := bootstrap.NewShell(ctx, cfg)
	main, err := window.NewMain(ctx, a.gtkApp, window.MainConfig{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		HeaderHeight: cfg.Tabs.HeaderHeight,
		DownloadDir:  a.deps.DownloadDir,
		Commands:     shell.Router,
		OnClose:      a.gtkApp.Quit,
	})
	if err != nil {
		return err
	}
	a.main = main
	timer.Mark("window")

	err = shell.Wire(bootstrap.Ports{
		Window:   main,
		Surfaces: session,
		Panels: &window.PanelFactory{
			App:      a.gtkApp,
			Parent:   main.Native(),
			Commands: shell.Router,
		},
		FileSystem: fs,
		Desktop:    desktop.New(),
		Loop:       a.loop,
		Header:     main.Header(),
	})
	if err != nil {
		return err
	}
	a.shell = shell
	session.SetDownloadHandler(shell.Downloads)

	if err := shell.Start(ctx); err != nil {
		return err
	}
	timer.Mark("tabs")

	a.watchConfig(ctx)
	main.Present()
	timer.Log(ctx, zerolog.DebugLevel)
	return nil
}

// watchConfig applies reloaded settings on the main loop.
func (a *App) watchConfig(ctx context.Context) {
	manager := a.deps.ConfigManager
	if manager == nil {
		return
	}
	manager.OnConfigChange(func(cfg *config.Config) {
		a.loop.Post(func() { a.shell.ApplyConfig(cfg) })
	})
	if err := manager.Watch(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config live reload disabled")
	}
}

func (a *App) onShutdown(ctx context.Context) {
	if a.shell != nil {
		a.shell.Shutdown(ctx)
	}
	if a.main != nil && !a.main.IsDestroyed() {
		a.main.Destroy()
	}
}

// Quit stops the application. Safe to call from any goroutine.
func (a *App) Quit() {
	a.loop.Post(func() {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}
