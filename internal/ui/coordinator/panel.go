package coordinator

import (
	"context"

	"github.com/bnema/viewshell/internal/app/messaging"
	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/domain/entity"
	"github.com/bnema/viewshell/internal/logging"
)

// Default panel geometry, relative to the main window's top-right corner.
const (
	DefaultPanelWidth       = 360
	DefaultPanelHeight      = 480
	DefaultPanelOffsetRight = 380
	DefaultPanelOffsetTop   = 50
)

// SinkSubscriber registers UI sinks for bus events.
type SinkSubscriber interface {
	Subscribe(sink port.EventSink, role messaging.Role)
}

// PanelControllerConfig holds configuration for PanelController.
type PanelControllerConfig struct {
	Factory port.PanelFactory
	Window  port.HostWindow
	Bus     SinkSubscriber

	// Zero values fall back to the Default* constants.
	Width       int
	Height      int
	OffsetRight int
	OffsetTop   int
	// HideOnBlur hides a visible panel when it loses focus.
	HideOnBlur bool
}

// PanelController owns the download panel window. At most one panel exists;
// it is created hidden on first use and forgotten once it reports closed.
type PanelController struct {
	factory port.PanelFactory
	window  port.HostWindow
	bus     SinkSubscriber

	size        entity.Rect
	offsetRight int
	offsetTop   int
	hideOnBlur  bool

	panel port.PanelWindow
}

// NewPanelController creates a controller. No window is created yet.
func NewPanelController(ctx context.Context, cfg PanelControllerConfig) *PanelController {
	logging.FromContext(ctx).Debug().Msg("creating panel controller")

	c := &PanelController{
		factory:     cfg.Factory,
		window:      cfg.Window,
		bus:         cfg.Bus,
		size:        entity.Rect{Width: orDefault(cfg.Width, DefaultPanelWidth), Height: orDefault(cfg.Height, DefaultPanelHeight)},
		offsetRight: orDefault(cfg.OffsetRight, DefaultPanelOffsetRight),
		offsetTop:   orDefault(cfg.OffsetTop, DefaultPanelOffsetTop),
		hideOnBlur:  cfg.HideOnBlur,
	}
	return c
}

// Show creates the panel if needed, positions it and makes it visible.
func (c *PanelController) Show(ctx context.Context) {
	if !c.ensure(ctx) {
		return
	}
	c.Reposition()
	c.panel.Show()
}

// Hide hides the panel without destroying it.
func (c *PanelController) Hide(context.Context) {
	if c.live() {
		c.panel.Hide()
	}
}

// Toggle hides a visible panel and shows it otherwise.
func (c *PanelController) Toggle(ctx context.Context) {
	if c.IsVisible() {
		c.Hide(ctx)
		return
	}
	c.Show(ctx)
}

// IsVisible reports whether a live panel is currently shown.
func (c *PanelController) IsVisible() bool {
	return c.live() && c.panel.IsVisible()
}

// Reposition anchors the panel to the main window's top-right corner.
func (c *PanelController) Reposition() {
	if !c.live() || c.window == nil {
		return
	}
	x, y := c.window.Bounds().AnchorTopRight(c.offsetRight, c.offsetTop)
	c.panel.SetPosition(x, y)
}

// Destroy closes the panel window, used on shutdown.
func (c *PanelController) Destroy() {
	if c.live() {
		c.panel.Destroy()
	}
	c.panel = nil
}

func (c *PanelController) live() bool {
	return c.panel != nil && !c.panel.IsDestroyed()
}

// ensure creates the panel when none is alive. Returns false on failure.
func (c *PanelController) ensure(ctx context.Context) bool {
	if c.live() {
		return true
	}
	if c.factory == nil {
		return false
	}

	var created port.PanelWindow
	callbacks := port.PanelCallbacks{
		OnBlur: func() {
			if c.hideOnBlur && c.panel == created && c.IsVisible() {
				c.panel.Hide()
			}
		},
		OnClosed: func() {
			if c.panel == created {
				c.panel = nil
			}
		},
	}

	panel, err := c.factory.Create(ctx, c.size, callbacks)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to create download panel")
		return false
	}
	created = panel
	c.panel = panel

	if c.bus != nil {
		c.bus.Subscribe(panel.Sink(), messaging.RoleAuxiliary)
	}
	logging.FromContext(ctx).Debug().
		Int("width", c.size.Width).
		Int("height", c.size.Height).
		Msg("download panel created")
	return true
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
