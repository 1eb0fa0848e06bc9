//go:build webkit_cgo

package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/viewshell/assets"
	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/domain/entity"
	"github.com/bnema/viewshell/internal/infrastructure/webkit"
	"github.com/bnema/viewshell/internal/logging"
)

// PanelFactory creates the downloads panel as an undecorated window
// transient for the main window.
type PanelFactory struct {
	App      *gtk.Application
	Parent   *gtk.Window
	Commands webkit.CommandHandler
}

// Create builds the panel, initially hidden.
func (f *PanelFactory) Create(ctx context.Context, size entity.Rect, callbacks port.PanelCallbacks) (port.PanelWindow, error) {
	view, err := webkit.NewShellView(ctx, "downloads", assets.DownloadsHTML, f.Commands)
	if err != nil {
		return nil, err
	}

	win := gtk.NewWindow()
	if win == nil {
		return nil, ErrWindowCreationFailed
	}
	if f.App != nil {
		win.SetApplication(f.App)
	}
	if f.Parent != nil {
		win.SetTransientFor(f.Parent)
	}
	win.SetTitle("Downloads")
	win.SetDecorated(false)
	win.SetResizable(false)
	win.SetDefaultSize(size.Width, size.Height)
	win.SetChild(view.Widget())

	p := &panelWindow{
		window: win,
		view:   view,
		logger: logging.FromContext(ctx).With().Str("component", "panel-window").Logger(),
	}

	win.Connect("notify::is-active", func() {
		if !win.IsActive() && win.IsVisible() && callbacks.OnBlur != nil {
			callbacks.OnBlur()
		}
	})
	win.ConnectCloseRequest(func() bool {
		p.markDestroyed()
		if callbacks.OnClosed != nil {
			callbacks.OnClosed()
		}
		return false
	})
	return p, nil
}

type panelWindow struct {
	window    *gtk.Window
	view      *webkit.ShellView
	destroyed bool
	logger    zerolog.Logger
}

// SetPosition is recorded only: GTK 4 leaves window placement to the
// compositor.
func (p *panelWindow) SetPosition(x, y int) {
	p.logger.Trace().Int("x", x).Int("y", y).Msg("panel position requested")
}

func (p *panelWindow) Show() {
	if !p.destroyed {
		p.window.Present()
	}
}

func (p *panelWindow) Hide() {
	if !p.destroyed {
		p.window.SetVisible(false)
	}
}

func (p *panelWindow) IsVisible() bool {
	return !p.destroyed && p.window.IsVisible()
}

func (p *panelWindow) Destroy() {
	if p.destroyed {
		return
	}
	p.markDestroyed()
	p.window.Destroy()
}

func (p *panelWindow) markDestroyed() {
	p.destroyed = true
	p.view.Destroy()
}

func (p *panelWindow) IsDestroyed() bool { return p.destroyed }

func (p *panelWindow) Sink() port.EventSink { return p.view }

var _ port.PanelFactory = (*PanelFactory)(nil)
