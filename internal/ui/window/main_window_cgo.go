//go:build webkit_cgo

package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/viewshell/assets"
	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/domain/entity"
	"github.com/bnema/viewshell/internal/infrastructure/webkit"
	"github.com/bnema/viewshell/internal/logging"
)

// MainConfig holds the main window settings.
type MainConfig struct {
	Title        string
	Width        int
	Height       int
	HeaderHeight int
	// DownloadDir is where save prompts open. Empty keeps the GTK default.
	DownloadDir string
	// Commands answers the tab strip's bridge requests.
	Commands webkit.CommandHandler
	// OnClose runs once the user closes the window.
	OnClose func()
}

// MainWindow is the browser window. The tab strip view sits in a band at
// the top of a gtk.Fixed; the active tab surface is placed below it.
type MainWindow struct {
	window *gtk.ApplicationWindow
	fixed  *gtk.Fixed
	header *webkit.ShellView

	headerHeight int
	downloadDir  string
	onClose      func()
	geometry     []func()
	destroyed    bool

	logger zerolog.Logger
}

// NewMain creates the main window, hidden until Present.
func NewMain(ctx context.Context, app *gtk.Application, cfg MainConfig) (*MainWindow, error) {
	if app == nil {
		return nil, ErrNoApplication
	}
	log := logging.FromContext(ctx)

	mw := &MainWindow{
		headerHeight: cfg.HeaderHeight,
		downloadDir:  cfg.DownloadDir,
		onClose:      cfg.OnClose,
		logger:       log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(cfg.Title)
	mw.window.SetDefaultSize(cfg.Width, cfg.Height)

	mw.fixed = gtk.NewFixed()
	if mw.fixed == nil {
		return nil, ErrWidgetCreationFailed("content")
	}
	mw.fixed.SetHExpand(true)
	mw.fixed.SetVExpand(true)

	header, err := webkit.NewShellView(ctx, "header", assets.ShellHTML, cfg.Commands)
	if err != nil {
		return nil, err
	}
	mw.header = header
	header.SetSize(cfg.Width, mw.headerHeight)
	mw.fixed.Put(header.Widget(), 0, 0)

	mw.window.SetChild(mw.fixed)
	mw.connect()
	return mw, nil
}

func (mw *MainWindow) connect() {
	// GTK 4 has no configure event; size and state properties are the only
	// geometry signals.
	for _, prop := range []string{"default-width", "default-height", "maximized", "fullscreened"} {
		mw.window.Connect("notify::"+prop, mw.onGeometry)
	}
	mw.window.ConnectCloseRequest(func() bool {
		mw.logger.Debug().Msg("main window close requested")
		mw.destroyed = true
		mw.header.Destroy()
		if mw.onClose != nil {
			mw.onClose()
		}
		return false
	})
}

func (mw *MainWindow) onGeometry() {
	if mw.destroyed {
		return
	}
	mw.header.SetSize(mw.Bounds().Width, mw.headerHeight)
	for _, fn := range mw.geometry {
		fn()
	}
}

// Present shows the window.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// Header is the tab strip view, an event sink for the bus.
func (mw *MainWindow) Header() port.EventSink {
	return mw.header
}

// Native returns the GTK window, used as transient parent for dialogs.
func (mw *MainWindow) Native() *gtk.Window {
	return &mw.window.Window
}

func (mw *MainWindow) Bounds() entity.Rect {
	w, h := mw.window.Width(), mw.window.Height()
	if w == 0 || h == 0 {
		w, h = mw.window.DefaultSize()
	}
	// Wayland does not expose window position.
	return entity.Rect{Width: w, Height: h}
}

func (mw *MainWindow) ContentBounds() entity.Rect {
	w, h := mw.fixed.Width(), mw.fixed.Height()
	if w == 0 || h == 0 {
		b := mw.Bounds()
		w, h = b.Width, b.Height
	}
	return entity.Rect{Width: w, Height: h}
}

func (mw *MainWindow) Attach(surface port.Surface) {
	s, ok := surface.(*webkit.Surface)
	if !ok {
		mw.logger.Error().Err(webkit.ErrUnsupportedSurface).Msg("cannot attach surface")
		return
	}
	s.AttachTo(mw.fixed)
}

func (mw *MainWindow) Detach(surface port.Surface) {
	if s, ok := surface.(*webkit.Surface); ok {
		s.Detach()
	}
}

func (mw *MainWindow) OnGeometryChanged(fn func()) {
	mw.geometry = append(mw.geometry, fn)
}

// PromptSavePath opens a native save dialog. done runs from the dialog's
// response signal on the GTK main thread.
func (mw *MainWindow) PromptSavePath(_ context.Context, suggestedName string, done port.SavePathResult) {
	chooser := gtk.NewFileChooserNative("Save File", &mw.window.Window, gtk.FileChooserActionSave, "_Save", "_Cancel")
	chooser.SetModal(true)
	chooser.SetCurrentName(suggestedName)
	if mw.downloadDir != "" {
		if err := chooser.SetCurrentFolder(gio.NewFileForPath(mw.downloadDir)); err != nil {
			mw.logger.Debug().Err(err).Str("dir", mw.downloadDir).Msg("cannot preselect download folder")
		}
	}

	chooser.ConnectResponse(func(response int) {
		defer chooser.Destroy()
		if response != int(gtk.ResponseAccept) {
			done("", true, nil)
			return
		}
		file := chooser.File()
		if file == nil {
			done("", true, nil)
			return
		}
		done(file.Path(), false, nil)
	})
	chooser.Show()
}

func (mw *MainWindow) IsDestroyed() bool { return mw.destroyed }

// Destroy closes the window without running OnClose.
func (mw *MainWindow) Destroy() {
	if mw.destroyed {
		return
	}
	mw.destroyed = true
	mw.header.Destroy()
	mw.window.Destroy()
}

var _ port.HostWindow = (*MainWindow)(nil)
