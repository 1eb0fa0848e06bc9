//go:build webkit_cgo

package webkit

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/viewshell/internal/application/port"
)

// IdleLoop posts work onto the GTK main thread through GLib idle sources.
type IdleLoop struct{}

// Post schedules fn on the next idle iteration of the GLib main loop.
func (IdleLoop) Post(fn func()) {
	if fn == nil {
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

var _ port.MainLoop = IdleLoop{}
