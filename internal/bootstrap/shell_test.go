package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/domain/entity"
	"github.com/bnema/viewshell/internal/infrastructure/config"
	"github.com/bnema/viewshell/internal/ui/mainloop"
)

type stubSurface struct {
	loaded    []string
	bounds    entity.Rect
	destroyed bool
}

func (s *stubSurface) LoadURL(_ context.Context, url string) error {
	s.loaded = append(s.loaded, url)
	return nil
}
func (s *stubSurface) GoBack(context.Context) error        { return nil }
func (s *stubSurface) GoForward(context.Context) error     { return nil }
func (s *stubSurface) Reload(context.Context) error        { return nil }
func (s *stubSurface) CanGoBack() bool                     { return false }
func (s *stubSurface) CanGoForward() bool                  { return false }
func (s *stubSurface) SetBounds(b entity.Rect)             { s.bounds = b }
func (s *stubSurface) Focus()                              {}
func (s *stubSurface) SetCallbacks(*port.SurfaceCallbacks) {}
func (s *stubSurface) Destroy()                            { s.destroyed = true }
func (s *stubSurface) IsDestroyed() bool                   { return s.destroyed }

type stubFactory struct {
	surfaces []*stubSurface
	err      error
}

func (f *stubFactory) Create(context.Context) (port.Surface, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &stubSurface{}
	f.surfaces = append(f.surfaces, s)
	return s, nil
}

type stubWindow struct {
	attached port.Surface
	onGeom   []func()
}

func (w *stubWindow) Bounds() entity.Rect         { return entity.Rect{Width: 1280, Height: 800} }
func (w *stubWindow) ContentBounds() entity.Rect  { return entity.Rect{Width: 1280, Height: 800} }
func (w *stubWindow) Attach(s port.Surface)       { w.attached = s }
func (w *stubWindow) Detach(port.Surface)         { w.attached = nil }
func (w *stubWindow) OnGeometryChanged(fn func()) { w.onGeom = append(w.onGeom, fn) }
func (w *stubWindow) PromptSavePath(_ context.Context, _ string, done port.SavePathResult) {
	done("", true, nil)
}
func (w *stubWindow) IsDestroyed() bool { return false }

type recordingSink struct {
	channels  []string
	destroyed bool
}

func (s *recordingSink) Send(channel string, _ any) { s.channels = append(s.channels, channel) }
func (s *recordingSink) IsDestroyed() bool          { return s.destroyed }

type stubPanel struct {
	visible   bool
	destroyed bool
	sink      *recordingSink
}

func (p *stubPanel) SetPosition(int, int) {}
func (p *stubPanel) Show()                { p.visible = true }
func (p *stubPanel) Hide()                { p.visible = false }
func (p *stubPanel) IsVisible() bool      { return p.visible }
func (p *stubPanel) Destroy()             { p.destroyed = true }
func (p *stubPanel) IsDestroyed() bool    { return p.destroyed }
func (p *stubPanel) Sink() port.EventSink { return p.sink }

type stubPanels struct {
	created []*stubPanel
}

func (f *stubPanels) Create(context.Context, entity.Rect, port.PanelCallbacks) (port.PanelWindow, error) {
	p := &stubPanel{sink: &recordingSink{}}
	f.created = append(f.created, p)
	return p, nil
}

type nopFS struct{}

func (nopFS) Exists(context.Context, string) (bool, error) { return false, nil }
func (nopFS) Move(context.Context, string, string) error   { return nil }
func (nopFS) Remove(context.Context, string) error         { return nil }
func (nopFS) MkdirAll(context.Context, string) error       { return nil }

type shellFixture struct {
	shell    *Shell
	window   *stubWindow
	surfaces *stubFactory
	panels   *stubPanels
	header   *recordingSink
	loop     *mainloop.Loop
}

func newShellFixture(t *testing.T, mutate func(*config.Config)) *shellFixture {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Tabs.StartupURLs = []string{"https://go.dev", "https://example.com"}
	if mutate != nil {
		mutate(cfg)
	}
	f := &shellFixture{
		shell:    NewShell(context.Background(), cfg),
		window:   &stubWindow{},
		surfaces: &stubFactory{},
		panels:   &stubPanels{},
		header:   &recordingSink{},
		loop:     mainloop.New(),
	}
	require.NoError(t, f.shell.Wire(Ports{
		Window:     f.window,
		Surfaces:   f.surfaces,
		Panels:     f.panels,
		FileSystem: nopFS{},
		Loop:       f.loop,
		Header:     f.header,
		Spawn:      func(fn func()) { fn() },
	}))
	return f
}

func (f *shellFixture) command(t *testing.T, request string) string {
	t.Helper()
	return string(f.shell.Router.Handle(context.Background(), []byte(request)))
}

func TestShell_StartOpensStartupTabs(t *testing.T) {
	f := newShellFixture(t, nil)

	require.NoError(t, f.shell.Start(context.Background()))

	require.Len(t, f.surfaces.surfaces, 2)
	assert.Equal(t, []string{"https://go.dev"}, f.surfaces.surfaces[0].loaded)
	assert.Equal(t, []string{"https://example.com"}, f.surfaces.surfaces[1].loaded)
	assert.Same(t, f.surfaces.surfaces[0], f.window.attached)
	assert.Equal(t, entity.Rect{Y: 40, Width: 1280, Height: 760}, f.surfaces.surfaces[0].bounds)

	assert.Equal(t, []string{"tab:switched", "tab:created", "tab:created"}, f.header.channels)
	assert.Contains(t, f.command(t, `{"id":1,"command":"tab:getAll"}`), `"url":"https://example.com"`)
}

func TestShell_StartWithoutStartupURLsOpensNewTab(t *testing.T) {
	f := newShellFixture(t, func(cfg *config.Config) {
		cfg.Tabs.StartupURLs = nil
		cfg.Tabs.NewTabURL = "about:blank"
	})

	require.NoError(t, f.shell.Start(context.Background()))

	require.Len(t, f.surfaces.surfaces, 1)
	assert.Equal(t, []string{"about:blank"}, f.surfaces.surfaces[0].loaded)
}

func TestShell_StartFailsWhenNoTabOpens(t *testing.T) {
	f := newShellFixture(t, nil)
	f.surfaces.err = errors.New("no web process")

	err := f.shell.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no web process")
}

func TestShell_WireTwice(t *testing.T) {
	f := newShellFixture(t, nil)
	assert.ErrorIs(t, f.shell.Wire(Ports{}), ErrAlreadyWired)
}

func TestShell_StartBeforeWire(t *testing.T) {
	shell := NewShell(context.Background(), nil)
	assert.Error(t, shell.Start(context.Background()))
}

func TestShell_WireRequiresPorts(t *testing.T) {
	shell := NewShell(context.Background(), nil)
	err := shell.Wire(Ports{Window: &stubWindow{}, Loop: mainloop.New()})
	assert.Error(t, err)
	assert.Nil(t, shell.Tabs)
}

func TestShell_PanelCommands(t *testing.T) {
	f := newShellFixture(t, nil)

	assert.JSONEq(t, `{"id":1,"result":null}`, f.command(t, `{"id":1,"command":"download:togglePanel"}`))
	require.Len(t, f.panels.created, 1)
	assert.True(t, f.panels.created[0].visible)

	f.command(t, `{"id":2,"command":"download:hide"}`)
	assert.False(t, f.panels.created[0].visible)

	assert.JSONEq(t, `{"id":3,"result":[]}`, f.command(t, `{"id":3,"command":"download:getAll"}`))
}

func TestShell_GeometryChangeResizesActiveTab(t *testing.T) {
	f := newShellFixture(t, func(cfg *config.Config) { cfg.Tabs.HeaderHeight = 56 })
	require.NoError(t, f.shell.Start(context.Background()))
	active := f.surfaces.surfaces[0]
	active.bounds = entity.Rect{}

	for _, fn := range f.window.onGeom {
		fn()
		fn()
	}
	f.loop.RunPending()

	assert.Equal(t, entity.Rect{Y: 56, Width: 1280, Height: 744}, active.bounds)
}

func TestShell_Shutdown(t *testing.T) {
	f := newShellFixture(t, nil)
	ctx := context.Background()
	require.NoError(t, f.shell.Start(ctx))
	f.command(t, `{"id":1,"command":"download:togglePanel"}`)

	f.shell.Shutdown(ctx)

	for _, s := range f.surfaces.surfaces {
		assert.True(t, s.destroyed)
	}
	assert.True(t, f.panels.created[0].destroyed)
	assert.Equal(t, 0, f.shell.Tabs.Count())
}
