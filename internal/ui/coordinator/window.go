package coordinator

import (
	"context"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/logging"
	"github.com/bnema/viewshell/internal/ui/mainloop"
)

const geometryKey = "geometry"

// Resizer fits the active tab to the window.
type Resizer interface {
	Resize()
}

// Repositioner keeps an auxiliary window anchored to the main window.
type Repositioner interface {
	Reposition()
}

// WindowCoordinator reacts to main window geometry changes. Move and resize
// storms are coalesced into one layout pass per main-loop turn.
type WindowCoordinator struct {
	ctx       context.Context
	tabs      Resizer
	panel     Repositioner
	coalescer *mainloop.Coalescer
}

// NewWindowCoordinator hooks window geometry changes to tabs and panel.
func NewWindowCoordinator(ctx context.Context, window port.HostWindow, loop port.MainLoop, tabs Resizer, panel Repositioner) *WindowCoordinator {
	c := &WindowCoordinator{
		ctx:       ctx,
		tabs:      tabs,
		panel:     panel,
		coalescer: mainloop.NewCoalescer(loop.Post),
	}
	if window != nil {
		window.OnGeometryChanged(c.onGeometryChanged)
	}
	return c
}

func (c *WindowCoordinator) onGeometryChanged() {
	c.coalescer.Post(geometryKey, c.Layout)
}

// Layout resizes the active tab and re-anchors the panel.
func (c *WindowCoordinator) Layout() {
	logging.FromContext(c.ctx).Trace().Msg("window layout")
	if c.tabs != nil {
		c.tabs.Resize()
	}
	if c.panel != nil {
		c.panel.Reposition()
	}
}

// Destroy drops pending layout work.
func (c *WindowCoordinator) Destroy() {
	c.coalescer.Destroy()
}
