// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the host toolkit (WebKitGTK, the filesystem, the desktop) so
// the tab and download coordinators stay independent of any implementation.
package port

import (
	"context"
	"errors"

	"github.com/bnema/viewshell/internal/domain/entity"
)

// ErrSurfaceDestroyed is returned by operations on a destroyed surface.
var ErrSurfaceDestroyed = errors.New("surface destroyed")

// SurfaceCallbacks defines handlers for page events of one surface.
// Implementations invoke them on the main loop.
type SurfaceCallbacks struct {
	// OnTitleChanged is called when the page title changes.
	OnTitleChanged func(title string)
	// OnNavigated is called when a main-frame navigation commits.
	OnNavigated func(url string)
	// OnLoadStarted is called when the surface starts loading.
	OnLoadStarted func()
	// OnLoadStopped is called when loading stops, successfully or not.
	OnLoadStopped func()
	// OnDOMReady is called once the document of the current page is ready.
	OnDOMReady func()
	// OnNewTarget is called when the page asks to open a new top-level target
	// (target=_blank, window.open). The surface never navigates in place for it.
	OnNewTarget func(url string)
}

// Surface is an isolated, embeddable page-rendering region.
type Surface interface {
	// LoadURL starts loading url.
	LoadURL(ctx context.Context, url string) error
	// GoBack navigates back in history.
	GoBack(ctx context.Context) error
	// GoForward navigates forward in history.
	GoForward(ctx context.Context) error
	// Reload reloads the current page.
	Reload(ctx context.Context) error

	CanGoBack() bool
	CanGoForward() bool

	// SetBounds places the surface inside the window's content area.
	SetBounds(bounds entity.Rect)
	// Focus requests keyboard focus for the surface.
	Focus()

	// SetCallbacks registers page event handlers. Pass nil to clear them.
	SetCallbacks(callbacks *SurfaceCallbacks)

	// Destroy releases the surface. It must not be used afterwards.
	Destroy()
	IsDestroyed() bool
}

// SurfaceFactory creates surfaces bound to the shared storage partition, so
// every tab sees the same cookies and session state.
type SurfaceFactory interface {
	Create(ctx context.Context) (Surface, error)
}
