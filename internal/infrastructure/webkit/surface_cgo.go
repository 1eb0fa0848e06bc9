//go:build webkit_cgo

package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/domain/entity"
	"github.com/bnema/viewshell/internal/logging"
)

// Surface is a tab's web view. It is placed by the host window inside a
// gtk.Fixed so bounds map one to one onto widget coordinates.
type Surface struct {
	ctx       context.Context
	view      *webkit.WebView
	parent    *gtk.Fixed
	bounds    entity.Rect
	callbacks *port.SurfaceCallbacks
	destroyed bool
}

func newSurface(ctx context.Context, view *webkit.WebView) *Surface {
	s := &Surface{ctx: ctx, view: view}
	s.connect()
	return s
}

func (s *Surface) connect() {
	s.view.Connect("notify::title", func() {
		if cb := s.cb(); cb != nil && cb.OnTitleChanged != nil {
			cb.OnTitleChanged(s.view.Title())
		}
	})
	// Same-document navigations only change the uri property.
	s.view.Connect("notify::uri", func() {
		if s.view.IsLoading() {
			return
		}
		if cb := s.cb(); cb != nil && cb.OnNavigated != nil {
			cb.OnNavigated(s.view.URI())
		}
	})

	s.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		cb := s.cb()
		if cb == nil {
			return
		}
		switch event {
		case webkit.LoadStarted:
			if cb.OnLoadStarted != nil {
				cb.OnLoadStarted()
			}
		case webkit.LoadCommitted:
			if cb.OnNavigated != nil {
				cb.OnNavigated(s.view.URI())
			}
		case webkit.LoadFinished:
			// WebKitGTK has no DOMContentLoaded signal; finished is the
			// closest main-frame milestone.
			if cb.OnDOMReady != nil {
				cb.OnDOMReady()
			}
			if cb.OnLoadStopped != nil {
				cb.OnLoadStopped()
			}
		}
	})

	// New windows become tabs; returning nil tells WebKit not to create a view.
	s.view.ConnectCreate(func(action *webkit.NavigationAction) gtk.Widgetter {
		cb := s.cb()
		if cb == nil || cb.OnNewTarget == nil || action == nil {
			return nil
		}
		if req := action.Request(); req != nil {
			cb.OnNewTarget(req.URI())
		}
		return nil
	})
}

func (s *Surface) cb() *port.SurfaceCallbacks {
	if s.destroyed {
		return nil
	}
	return s.callbacks
}

func (s *Surface) LoadURL(_ context.Context, url string) error {
	if s.destroyed {
		return port.ErrSurfaceDestroyed
	}
	s.view.LoadURI(url)
	return nil
}

func (s *Surface) GoBack(context.Context) error {
	if s.destroyed {
		return port.ErrSurfaceDestroyed
	}
	s.view.GoBack()
	return nil
}

func (s *Surface) GoForward(context.Context) error {
	if s.destroyed {
		return port.ErrSurfaceDestroyed
	}
	s.view.GoForward()
	return nil
}

func (s *Surface) Reload(context.Context) error {
	if s.destroyed {
		return port.ErrSurfaceDestroyed
	}
	s.view.Reload()
	return nil
}

func (s *Surface) CanGoBack() bool    { return !s.destroyed && s.view.CanGoBack() }
func (s *Surface) CanGoForward() bool { return !s.destroyed && s.view.CanGoForward() }

// SetBounds records bounds and applies them when the view is placed.
func (s *Surface) SetBounds(bounds entity.Rect) {
	s.bounds = bounds
	if s.destroyed {
		return
	}
	s.view.SetSizeRequest(bounds.Width, bounds.Height)
	if s.parent != nil {
		s.parent.Move(s.view, float64(bounds.X), float64(bounds.Y))
	}
}

func (s *Surface) Focus() {
	if !s.destroyed {
		s.view.GrabFocus()
	}
}

func (s *Surface) SetCallbacks(callbacks *port.SurfaceCallbacks) {
	s.callbacks = callbacks
}

// AttachTo places the view in parent at its last bounds.
func (s *Surface) AttachTo(parent *gtk.Fixed) {
	if s.destroyed || s.parent == parent {
		return
	}
	s.Detach()
	s.parent = parent
	s.view.SetSizeRequest(s.bounds.Width, s.bounds.Height)
	parent.Put(s.view, float64(s.bounds.X), float64(s.bounds.Y))
}

// Detach removes the view from its parent, keeping it alive.
func (s *Surface) Detach() {
	if s.parent == nil {
		return
	}
	s.parent.Remove(s.view)
	s.parent = nil
}

func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	s.Detach()
	s.callbacks = nil
	s.destroyed = true
	s.view.TryClose()
	logging.FromContext(s.ctx).Debug().Msg("web view destroyed")
}

func (s *Surface) IsDestroyed() bool { return s.destroyed }

var _ port.Surface = (*Surface)(nil)
