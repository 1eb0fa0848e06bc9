package port

import (
	"context"

	"github.com/bnema/viewshell/internal/domain/entity"
)

// SavePathResult receives the outcome of a save prompt. It is invoked exactly
// once, on the main loop. canceled is true when the user dismissed the prompt.
type SavePathResult func(path string, canceled bool, err error)

// HostWindow is the main window the tab surfaces live in.
type HostWindow interface {
	// Bounds returns the window frame in screen coordinates.
	Bounds() entity.Rect
	// ContentBounds returns the drawable content area.
	ContentBounds() entity.Rect

	// Attach makes surface the one shown in the content area.
	Attach(surface Surface)
	// Detach removes surface from the content area without destroying it.
	Detach(surface Surface)

	// OnGeometryChanged registers fn for window move, resize, maximize and
	// unmaximize.
	OnGeometryChanged(fn func())

	// PromptSavePath asks the user where to save suggestedName. It must not
	// block; done runs later on the main loop.
	PromptSavePath(ctx context.Context, suggestedName string, done SavePathResult)

	IsDestroyed() bool
}
