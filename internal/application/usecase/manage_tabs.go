package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/domain/entity"
	"github.com/bnema/viewshell/internal/logging"
)

// DefaultHeaderHeight is the tab strip band kept above the active surface.
const DefaultHeaderHeight = 40

// ErrNoSurfaceFactory is returned when a registry is built without a factory.
var ErrNoSurfaceFactory = errors.New("surface factory is required")

// NewTabID returns a time-ordered UUID string.
func NewTabID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// TabRegistryConfig holds the collaborators of a TabRegistry.
type TabRegistryConfig struct {
	Window    port.HostWindow
	Factory   port.SurfaceFactory
	Publisher port.Publisher
	// HeaderHeight is the band reserved for the tab strip. Zero means
	// DefaultHeaderHeight; use a negative value for no band.
	HeaderHeight int
	IDGenerator  IDGenerator
}

// TabRegistry owns every tab and its surface. Exactly one tab is active
// whenever the registry is non-empty, and only the active surface is attached
// to the window. It must only be used from the main loop.
type TabRegistry struct {
	ctx          context.Context
	window       port.HostWindow
	factory      port.SurfaceFactory
	publisher    port.Publisher
	headerHeight int
	newID        IDGenerator

	tabs     *entity.TabList
	surfaces map[entity.TabID]port.Surface
}

// NewTabRegistry creates an empty registry. ctx carries the logger used by
// surface event handlers.
func NewTabRegistry(ctx context.Context, cfg TabRegistryConfig) (*TabRegistry, error) {
	if cfg.Factory == nil {
		return nil, ErrNoSurfaceFactory
	}
	header := cfg.HeaderHeight
	switch {
	case header == 0:
		header = DefaultHeaderHeight
	case header < 0:
		header = 0
	}
	newID := cfg.IDGenerator
	if newID == nil {
		newID = NewTabID
	}
	return &TabRegistry{
		ctx:          logging.WithComponent(ctx, "tabs"),
		window:       cfg.Window,
		factory:      cfg.Factory,
		publisher:    cfg.Publisher,
		headerHeight: header,
		newID:        newID,
		tabs:         entity.NewTabList(),
		surfaces:     make(map[entity.TabID]port.Surface),
	}, nil
}

// Create opens a new tab loading url. The tab becomes active when it is the
// only one.
func (r *TabRegistry) Create(ctx context.Context, url string) (entity.TabID, error) {
	surface, err := r.factory.Create(ctx)
	if err != nil {
		return "", fmt.Errorf("create surface: %w", err)
	}

	id := entity.TabID(r.newID())
	tab := entity.NewTab(id, url)
	r.tabs.Add(tab)
	r.surfaces[id] = surface
	surface.SetCallbacks(r.callbacksFor(id))

	log := logging.FromContext(logging.WithTabID(ctx, string(id)))
	if err := surface.LoadURL(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("initial load failed")
	}

	log.Info().Str("url", url).Int("position", tab.Position).Msg("tab created")

	// The first tab is switched to before it is announced.
	if r.tabs.ActiveTabID == "" {
		r.SwitchTo(ctx, id)
	}
	r.publish(ChannelTabCreated, tab.Info())
	return id, nil
}

// SwitchTo makes id the active tab. Unknown ids and the already active tab
// are ignored.
func (r *TabRegistry) SwitchTo(ctx context.Context, id entity.TabID) {
	if r.tabs.ActiveTabID == id {
		return
	}
	target := r.tabs.Find(id)
	if target == nil {
		return
	}
	surface := r.surfaces[id]

	if current, ok := r.surfaces[r.tabs.ActiveTabID]; ok && r.window != nil {
		r.window.Detach(current)
	}
	r.tabs.ActiveTabID = id
	if r.window != nil {
		r.window.Attach(surface)
	}
	r.Resize()
	surface.Focus()

	logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("switched tab")
	r.publish(ChannelTabSwitched, target.Info())
}

// Close destroys the tab and its surface. When the active tab closes, the
// first remaining tab is activated.
func (r *TabRegistry) Close(ctx context.Context, id entity.TabID) {
	if r.tabs.Find(id) == nil {
		return
	}
	surface := r.surfaces[id]
	wasActive := r.tabs.ActiveTabID == id

	if wasActive && r.window != nil {
		r.window.Detach(surface)
	}
	surface.SetCallbacks(nil)
	surface.Destroy()
	delete(r.surfaces, id)
	r.tabs.Remove(id)

	if wasActive {
		next := r.tabs.ActiveTabID
		r.tabs.ActiveTabID = ""
		if next != "" {
			r.SwitchTo(ctx, next)
		}
	}

	logging.FromContext(ctx).Info().
		Str("tab_id", string(id)).
		Int("remaining", r.tabs.Count()).
		Msg("tab closed")
	r.publish(ChannelTabClosed, id)
}

// Navigate loads url in the tab.
func (r *TabRegistry) Navigate(ctx context.Context, id entity.TabID, url string) {
	r.withSurface(ctx, id, "navigate", func(s port.Surface) error { return s.LoadURL(ctx, url) })
}

// Back navigates the tab back in history.
func (r *TabRegistry) Back(ctx context.Context, id entity.TabID) {
	r.withSurface(ctx, id, "back", func(s port.Surface) error { return s.GoBack(ctx) })
}

// Forward navigates the tab forward in history.
func (r *TabRegistry) Forward(ctx context.Context, id entity.TabID) {
	r.withSurface(ctx, id, "forward", func(s port.Surface) error { return s.GoForward(ctx) })
}

// Reload reloads the tab.
func (r *TabRegistry) Reload(ctx context.Context, id entity.TabID) {
	r.withSurface(ctx, id, "reload", func(s port.Surface) error { return s.Reload(ctx) })
}

// Resize fits the active surface to the content area below the header band.
func (r *TabRegistry) Resize() {
	active := r.tabs.ActiveTab()
	if active == nil || r.window == nil {
		return
	}
	r.surfaces[active.ID].SetBounds(r.window.ContentBounds().InsetTop(r.headerHeight))
}

// GetAll returns tab snapshots in insertion order.
func (r *TabRegistry) GetAll() []entity.TabInfo {
	return r.tabs.Infos()
}

// Active returns the active tab id, or "" when there are no tabs.
func (r *TabRegistry) Active() entity.TabID {
	return r.tabs.ActiveTabID
}

// Count returns the number of open tabs.
func (r *TabRegistry) Count() int {
	return r.tabs.Count()
}

// CloseAll destroys every tab, used on shutdown.
func (r *TabRegistry) CloseAll(ctx context.Context) {
	for r.tabs.Count() > 0 {
		r.Close(ctx, r.tabs.Tabs[len(r.tabs.Tabs)-1].ID)
	}
}

func (r *TabRegistry) withSurface(ctx context.Context, id entity.TabID, op string, fn func(port.Surface) error) {
	surface, ok := r.surfaces[id]
	if !ok {
		return
	}
	if err := fn(surface); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tab_id", string(id)).Str("op", op).Msg("surface operation failed")
	}
}

func (r *TabRegistry) callbacksFor(id entity.TabID) *port.SurfaceCallbacks {
	return &port.SurfaceCallbacks{
		OnTitleChanged: func(title string) {
			r.update(id, func(_ port.Surface, u *entity.TabUpdate) {
				u.Title = &title
			})
		},
		OnNavigated: func(url string) {
			r.update(id, func(s port.Surface, u *entity.TabUpdate) {
				back, forward := s.CanGoBack(), s.CanGoForward()
				u.URL = &url
				u.CanGoBack = &back
				u.CanGoForward = &forward
			})
		},
		OnLoadStarted: func() {
			r.update(id, func(_ port.Surface, u *entity.TabUpdate) {
				loading := true
				u.IsLoading = &loading
			})
		},
		OnLoadStopped: func() {
			r.update(id, func(s port.Surface, u *entity.TabUpdate) {
				loading := false
				back, forward := s.CanGoBack(), s.CanGoForward()
				u.IsLoading = &loading
				u.CanGoBack = &back
				u.CanGoForward = &forward
			})
		},
		OnDOMReady: func() {
			if r.tabs.ActiveTabID == id {
				r.Resize()
			}
		},
		OnNewTarget: func(url string) {
			if r.tabs.Find(id) == nil {
				return
			}
			newID, err := r.Create(r.ctx, url)
			if err != nil {
				logging.FromContext(r.ctx).Error().Err(err).Str("url", url).Msg("failed to open new target")
				return
			}
			r.SwitchTo(r.ctx, newID)
		},
	}
}

func (r *TabRegistry) update(id entity.TabID, fill func(port.Surface, *entity.TabUpdate)) {
	tab := r.tabs.Find(id)
	if tab == nil {
		return
	}
	u := entity.TabUpdate{ID: id}
	fill(r.surfaces[id], &u)
	tab.Apply(u)
	r.publish(ChannelTabUpdated, u)
}

func (r *TabRegistry) publish(channel string, payload any) {
	if r.publisher != nil {
		r.publisher.Publish(channel, payload)
	}
}
