// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/logging"
)

// ErrNoOpener is returned when no xdg-open binary is available.
var ErrNoOpener = errors.New("xdg-open not found")

// Runner executes an external command. Tests replace it.
type Runner func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, string(out))
	}
	return nil
}

// Adapter implements port.Desktop using xdg-open and the FileManager1 D-Bus
// interface.
type Adapter struct {
	xdgOpenPath  string
	dbusSendPath string
	run          Runner
}

// New creates a new desktop adapter.
func New() *Adapter {
	a := &Adapter{run: runCommand}

	if path, err := exec.LookPath("xdg-open"); err == nil {
		a.xdgOpenPath = path
	}
	// dbus-send is optional; without it the parent folder is opened instead.
	if path, err := exec.LookPath("dbus-send"); err == nil {
		a.dbusSendPath = path
	}
	return a
}

// OpenPath opens path with the user's default application.
func (a *Adapter) OpenPath(ctx context.Context, path string) error {
	if a.xdgOpenPath == "" {
		return ErrNoOpener
	}
	logging.FromContext(ctx).Debug().Str("path", path).Msg("opening file")
	return a.run(ctx, a.xdgOpenPath, path)
}

// ShowItemInFolder asks the file manager to reveal path, falling back to
// opening its parent directory.
func (a *Adapter) ShowItemInFolder(ctx context.Context, path string) error {
	log := logging.FromContext(ctx)

	if a.dbusSendPath != "" {
		fileURI := (&url.URL{Scheme: "file", Path: path}).String()
		err := a.run(ctx, a.dbusSendPath,
			"--session",
			"--dest=org.freedesktop.FileManager1",
			"--type=method_call",
			"/org/freedesktop/FileManager1",
			"org.freedesktop.FileManager1.ShowItems",
			"array:string:"+fileURI,
			"string:",
		)
		if err == nil {
			return nil
		}
		log.Debug().Err(err).Msg("FileManager1 unavailable, opening parent folder")
	}

	if a.xdgOpenPath == "" {
		return ErrNoOpener
	}
	return a.run(ctx, a.xdgOpenPath, filepath.Dir(path))
}

var _ port.Desktop = (*Adapter)(nil)
