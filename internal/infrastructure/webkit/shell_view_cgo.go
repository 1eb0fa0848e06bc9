//go:build webkit_cgo

package webkit

import (
	"context"

	javascriptcore "github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/viewshell/assets"
	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/logging"
)

// ShellView is a web view running the browser's own UI (tab strip, download
// panel). It answers bridge commands through a CommandHandler and receives
// bus events as an event sink.
type ShellView struct {
	ctx       context.Context
	view      *webkit.WebView
	handler   CommandHandler
	destroyed bool
}

// NewShellView loads html into a fresh view with the bridge script installed.
func NewShellView(ctx context.Context, name, html string, handler CommandHandler) (*ShellView, error) {
	view := webkit.NewWebView()
	if view == nil {
		return nil, ErrWebViewCreation
	}
	s := &ShellView{
		ctx:     logging.WithComponent(ctx, "shell-"+name),
		view:    view,
		handler: handler,
	}

	ucm := view.UserContentManager()
	ucm.AddScript(webkit.NewUserScript(
		assets.BridgeScript,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))
	if !ucm.RegisterScriptMessageHandler(MessageHandlerName, "") {
		logging.FromContext(s.ctx).Warn().Str("handler", MessageHandlerName).Msg("failed to register script message handler")
	}
	ucm.ConnectScriptMessageReceived(s.onMessage)

	view.LoadHTML(html, "about:blank")
	return s, nil
}

func (s *ShellView) onMessage(value *javascriptcore.Value) {
	if s.destroyed || s.handler == nil || value == nil {
		return
	}
	reply := s.handler.Handle(s.ctx, []byte(value.ToJSON(0)))
	if script := ReplyScript(reply); script != "" {
		s.evaluate(script)
	}
}

// Send emits a bus event inside the page.
func (s *ShellView) Send(channel string, payload any) {
	if s.destroyed {
		return
	}
	script, err := EventScript(channel, payload)
	if err != nil {
		logging.FromContext(s.ctx).Warn().Err(err).Str("channel", channel).Msg("dropping event")
		return
	}
	s.evaluate(script)
}

func (s *ShellView) evaluate(script string) {
	s.view.EvaluateJavascript(s.ctx, script, -1, "", "", nil)
}

// Widget returns the view for placement in a container.
func (s *ShellView) Widget() gtk.Widgetter { return s.view }

// SetSize requests a fixed size for the view.
func (s *ShellView) SetSize(width, height int) {
	if !s.destroyed {
		s.view.SetSizeRequest(width, height)
	}
}

// Destroy stops event delivery; the bus prunes the sink on next publish.
func (s *ShellView) Destroy() {
	s.destroyed = true
}

func (s *ShellView) IsDestroyed() bool { return s.destroyed }

var _ port.EventSink = (*ShellView)(nil)
