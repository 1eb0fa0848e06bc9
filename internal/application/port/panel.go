package port

import (
	"context"

	"github.com/bnema/viewshell/internal/domain/entity"
)

// PanelCallbacks receives panel window events on the main loop.
type PanelCallbacks struct {
	// OnBlur is called when the panel loses input focus.
	OnBlur func()
	// OnClosed is called once the panel window is gone.
	OnClosed func()
}

// PanelWindow is the auxiliary download panel window.
type PanelWindow interface {
	SetPosition(x, y int)
	Show()
	Hide()
	IsVisible() bool
	Destroy()
	IsDestroyed() bool
	// Sink delivers events to the UI running inside the panel.
	Sink() EventSink
}

// PanelFactory creates the panel window, initially hidden.
type PanelFactory interface {
	Create(ctx context.Context, size entity.Rect, callbacks PanelCallbacks) (PanelWindow, error)
}
