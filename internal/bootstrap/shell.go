// Package bootstrap wires the coordinators of the browser shell together.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/viewshell/internal/app/messaging"
	"github.com/bnema/viewshell/internal/app/messaging/handlers"
	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/application/usecase"
	"github.com/bnema/viewshell/internal/infrastructure/config"
	"github.com/bnema/viewshell/internal/logging"
	"github.com/bnema/viewshell/internal/ui/coordinator"
)

// ErrAlreadyWired is returned when Wire runs twice.
var ErrAlreadyWired = errors.New("shell already wired")

// Ports are the toolkit-side collaborators of the shell.
type Ports struct {
	Window     port.HostWindow
	Surfaces   port.SurfaceFactory
	Panels     port.PanelFactory
	FileSystem port.FileSystem
	Desktop    port.Desktop
	Loop       port.MainLoop
	// Header is the main window's UI sink, subscribed as the main role.
	Header port.EventSink
	// Spawn runs blocking work off the main loop. Nil means a goroutine.
	Spawn func(func())
}

// Shell owns the bus, the command router and the coordinators. The bus and
// router exist before any window so shell views can bind to them; Wire adds
// the rest once the toolkit ports are available.
type Shell struct {
	ctx context.Context
	cfg *config.Config

	Bus    *messaging.Bus
	Router *messaging.Router

	Tabs      *usecase.TabRegistry
	Downloads *usecase.DownloadCoordinator
	Panel     *coordinator.PanelController
	Layout    *coordinator.WindowCoordinator
}

// NewShell creates an unwired shell.
func NewShell(ctx context.Context, cfg *config.Config) *Shell {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Shell{
		ctx:    logging.WithComponent(ctx, "shell"),
		cfg:    cfg,
		Bus:    messaging.NewBus(ctx),
		Router: messaging.NewRouter(),
	}
}

// Wire builds the coordinators on top of ports and registers every command.
func (s *Shell) Wire(ports Ports) error {
	if s.Tabs != nil {
		return ErrAlreadyWired
	}
	log := logging.FromContext(s.ctx)

	if ports.Header != nil {
		s.Bus.Subscribe(ports.Header, messaging.RoleMain)
	}

	headerHeight := s.cfg.Tabs.HeaderHeight
	if headerHeight == 0 {
		headerHeight = -1
	}
	tabs, err := usecase.NewTabRegistry(s.ctx, usecase.TabRegistryConfig{
		Window:       ports.Window,
		Factory:      ports.Surfaces,
		Publisher:    s.Bus,
		HeaderHeight: headerHeight,
	})
	if err != nil {
		return fmt.Errorf("tab registry: %w", err)
	}

	d := s.cfg.Downloads
	panel := coordinator.NewPanelController(s.ctx, coordinator.PanelControllerConfig{
		Factory:     ports.Panels,
		Window:      ports.Window,
		Bus:         s.Bus,
		Width:       d.PanelWidth,
		Height:      d.PanelHeight,
		OffsetRight: d.PanelOffsetRight,
		OffsetTop:   d.PanelOffsetTop,
		HideOnBlur:  d.HidePanelOnBlur,
	})

	downloads, err := usecase.NewDownloadCoordinator(s.ctx, usecase.DownloadCoordinatorConfig{
		Window:     ports.Window,
		FileSystem: ports.FileSystem,
		Desktop:    ports.Desktop,
		Publisher:  s.Bus,
		Panel:      panel,
		Loop:       ports.Loop,
		TempDir:    d.TempDir,
		Spawn:      ports.Spawn,
	})
	if err != nil {
		return fmt.Errorf("download coordinator: %w", err)
	}

	s.Tabs = tabs
	s.Downloads = downloads
	s.Panel = panel
	s.Layout = coordinator.NewWindowCoordinator(s.ctx, ports.Window, ports.Loop, tabs, panel)

	handlers.RegisterTabs(s.Router, tabs, s.cfg.Tabs.NewTabURL)
	handlers.RegisterDownloads(s.Router, downloads, panel)

	log.Debug().Strs("commands", s.Router.Commands()).Msg("shell wired")
	return nil
}

// Start opens the startup tabs, or one new tab when none are configured.
// The first tab that opens becomes active.
func (s *Shell) Start(ctx context.Context) error {
	if s.Tabs == nil {
		return errors.New("shell not wired")
	}
	urls := s.cfg.Tabs.StartupURLs
	if len(urls) == 0 {
		urls = []string{s.cfg.Tabs.NewTabURL}
	}

	var errs []error
	for _, url := range urls {
		if _, err := s.Tabs.Create(ctx, url); err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("url", url).Msg("failed to open startup tab")
			errs = append(errs, err)
		}
	}
	if s.Tabs.Count() == 0 {
		return fmt.Errorf("no startup tab opened: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyConfig takes the live-reloadable settings from cfg.
func (s *Shell) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	logging.SetLevel(cfg.Logging.Level)
	logging.FromContext(s.ctx).Info().Str("level", cfg.Logging.Level).Msg("config reloaded")
}

// Shutdown cancels running downloads and releases every window and tab.
func (s *Shell) Shutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Info().Msg("shutting down")

	if s.Layout != nil {
		s.Layout.Destroy()
	}
	if s.Downloads != nil {
		s.Downloads.CancelAll(ctx)
	}
	if s.Panel != nil {
		s.Panel.Destroy()
	}
	if s.Tabs != nil {
		s.Tabs.CloseAll(ctx)
	}
}
