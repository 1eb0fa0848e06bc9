// Package window provides the GTK main and panel windows.
package window

import (
	"errors"
	"fmt"
)

var (
	ErrWindowCreationFailed = errors.New("failed to create window")
	ErrNoApplication        = errors.New("gtk application is required")
	ErrWidgetCreation       = errors.New("failed to create widget")
)

// ErrWidgetCreationFailed names the widget that could not be built.
func ErrWidgetCreationFailed(name string) error {
	return fmt.Errorf("%w: %s", ErrWidgetCreation, name)
}
