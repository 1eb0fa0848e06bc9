//go:build webkit_cgo

package webkit

import (
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/viewshell/internal/application/port"
)

// transfer adapts a WebKit download to port.Transfer. Every signal arrives on
// the GTK main thread.
type transfer struct {
	download  *webkit.Download
	suggested string
	callbacks *port.TransferCallbacks

	cancelled bool
	failed    bool
	ended     bool
}

func newTransfer(download *webkit.Download, suggested string) *transfer {
	t := &transfer{download: download, suggested: suggested}
	t.connect()
	return t
}

func (t *transfer) connect() {
	t.download.ConnectReceivedData(func(uint64) {
		if t.ended || t.callbacks == nil || t.callbacks.OnProgress == nil {
			return
		}
		t.callbacks.OnProgress(int64(t.download.ReceivedDataLength()))
	})

	// WebKit emits failed then finished for cancelled and broken transfers.
	t.download.ConnectFailed(func(error) {
		t.failed = true
		if t.cancelled {
			t.end(port.TransferCancelled)
			return
		}
		t.end(port.TransferInterrupted)
	})
	t.download.ConnectFinished(func() {
		if t.failed {
			return
		}
		t.end(port.TransferFinished)
	})
}

func (t *transfer) end(result port.TransferResult) {
	if t.ended {
		return
	}
	t.ended = true
	if t.callbacks != nil && t.callbacks.OnDone != nil {
		t.callbacks.OnDone(result)
	}
}

func (t *transfer) SuggestedFilename() string { return t.suggested }

func (t *transfer) MimeType() string {
	if resp := t.download.Response(); resp != nil {
		return resp.MIMEType()
	}
	return ""
}

func (t *transfer) URI() string {
	if req := t.download.Request(); req != nil {
		return req.URI()
	}
	return ""
}

func (t *transfer) TotalBytes() int64 {
	if resp := t.download.Response(); resp != nil {
		return int64(resp.ContentLength())
	}
	return 0
}

func (t *transfer) SetDestination(path string) {
	t.download.SetAllowOverwrite(true)
	t.download.SetDestination(path)
}

func (t *transfer) SetCallbacks(callbacks *port.TransferCallbacks) {
	t.callbacks = callbacks
}

func (t *transfer) Cancel() {
	if t.ended || t.cancelled {
		return
	}
	t.cancelled = true
	t.download.Cancel()
}

var _ port.Transfer = (*transfer)(nil)
