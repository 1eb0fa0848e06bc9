//go:build webkit_cgo

package webkit

import (
	"context"
	"fmt"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/logging"
)

// Session is the single storage partition shared by every tab. It creates
// tab surfaces and routes host-started downloads to a handler.
type Session struct {
	ctx       context.Context
	network   *webkit.NetworkSession
	downloads port.DownloadStartHandler
}

// NewSession creates the persistent network session on dataDir and cacheDir.
// Every view made by Create is bound to it through the network-session
// construct property. It must run on the GTK main thread.
func NewSession(ctx context.Context, dataDir, cacheDir string) (*Session, error) {
	log := logging.FromContext(ctx)

	network := webkit.NewNetworkSession(dataDir, cacheDir)
	if network == nil {
		return nil, ErrSessionCreation
	}
	if network.IsEphemeral() {
		return nil, ErrEphemeralSession
	}

	cookies := network.CookieManager()
	if cookies == nil {
		return nil, fmt.Errorf("%w: no cookie manager", ErrSessionCreation)
	}
	cookiePath := filepath.Join(dataDir, "cookies.db")
	cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
	cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
	network.SetPersistentCredentialStorageEnabled(true)

	s := &Session{
		ctx:     logging.WithComponent(ctx, "webkit-session"),
		network: network,
	}
	network.ConnectDownloadStarted(s.onDownloadStarted)

	log.Info().
		Str("data_dir", dataDir).
		Str("cache_dir", cacheDir).
		Str("cookies", cookiePath).
		Msg("network session ready")
	return s, nil
}

// SetDownloadHandler sets the receiver of host-started transfers. Downloads
// started while no handler is set are cancelled.
func (s *Session) SetDownloadHandler(handler port.DownloadStartHandler) {
	s.downloads = handler
}

func (s *Session) onDownloadStarted(download *webkit.Download) {
	// The suggested name is only known once WebKit asks for a destination.
	download.ConnectDecideDestination(func(suggestedFilename string) bool {
		if s.downloads == nil {
			logging.FromContext(s.ctx).Warn().Str("filename", suggestedFilename).Msg("no download handler, cancelling")
			download.Cancel()
			return true
		}
		s.downloads.HandleStarted(s.ctx, newTransfer(download, suggestedFilename))
		return true
	})
}

// Create returns a new tab surface in this session.
func (s *Session) Create(ctx context.Context) (port.Surface, error) {
	obj := coreglib.NewObjectWithProperties(webkit.GTypeWebView, map[string]any{
		"network-session": coreglib.InternObject(s.network),
	})
	if obj == nil {
		return nil, ErrWebViewCreation
	}
	view, ok := obj.Cast().(*webkit.WebView)
	if !ok {
		return nil, ErrWebViewCreation
	}
	logging.FromContext(ctx).Debug().Msg("web view created")
	return newSurface(s.ctx, view), nil
}

var _ port.SurfaceFactory = (*Session)(nil)
