package usecase

import (
	"context"
	"sync"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/domain/entity"
)

type publishedEvent struct {
	channel string
	payload any
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(channel string, payload any) {
	p.events = append(p.events, publishedEvent{channel: channel, payload: payload})
}

func (p *recordingPublisher) channels() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.channel)
	}
	return out
}

func (p *recordingPublisher) count(channel string) int {
	n := 0
	for _, e := range p.events {
		if e.channel == channel {
			n++
		}
	}
	return n
}

func (p *recordingPublisher) last(channel string) (any, bool) {
	for i := len(p.events) - 1; i >= 0; i-- {
		if p.events[i].channel == channel {
			return p.events[i].payload, true
		}
	}
	return nil, false
}

type fakeSurface struct {
	loaded       []string
	bounds       entity.Rect
	focused      int
	backs        int
	forwards     int
	reloads      int
	canGoBack    bool
	canGoForward bool
	callbacks    *port.SurfaceCallbacks
	destroyed    bool
}

func (s *fakeSurface) LoadURL(_ context.Context, url string) error {
	s.loaded = append(s.loaded, url)
	return nil
}
func (s *fakeSurface) GoBack(context.Context) error    { s.backs++; return nil }
func (s *fakeSurface) GoForward(context.Context) error { s.forwards++; return nil }
func (s *fakeSurface) Reload(context.Context) error    { s.reloads++; return nil }
func (s *fakeSurface) CanGoBack() bool                 { return s.canGoBack }
func (s *fakeSurface) CanGoForward() bool              { return s.canGoForward }
func (s *fakeSurface) SetBounds(b entity.Rect)         { s.bounds = b }
func (s *fakeSurface) Focus()                          { s.focused++ }
func (s *fakeSurface) SetCallbacks(cb *port.SurfaceCallbacks) {
	s.callbacks = cb
}
func (s *fakeSurface) Destroy()          { s.destroyed = true }
func (s *fakeSurface) IsDestroyed() bool { return s.destroyed }

type fakeSurfaceFactory struct {
	created []*fakeSurface
	err     error
}

func (f *fakeSurfaceFactory) Create(context.Context) (port.Surface, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &fakeSurface{}
	f.created = append(f.created, s)
	return s, nil
}

type promptCall struct {
	name string
	done port.SavePathResult
}

type fakeWindow struct {
	content  entity.Rect
	frame    entity.Rect
	attached []port.Surface
	prompts  []promptCall
	onGeom   []func()
}

func (w *fakeWindow) Bounds() entity.Rect        { return w.frame }
func (w *fakeWindow) ContentBounds() entity.Rect { return w.content }
func (w *fakeWindow) Attach(s port.Surface)      { w.attached = append(w.attached, s) }
func (w *fakeWindow) Detach(s port.Surface) {
	for i, a := range w.attached {
		if a == s {
			w.attached = append(w.attached[:i], w.attached[i+1:]...)
			return
		}
	}
}
func (w *fakeWindow) OnGeometryChanged(fn func()) { w.onGeom = append(w.onGeom, fn) }
func (w *fakeWindow) PromptSavePath(_ context.Context, name string, done port.SavePathResult) {
	w.prompts = append(w.prompts, promptCall{name: name, done: done})
}
func (w *fakeWindow) IsDestroyed() bool { return false }

func (w *fakeWindow) resolvePrompt(i int, path string, canceled bool, err error) {
	w.prompts[i].done(path, canceled, err)
}

type fakeTransfer struct {
	filename    string
	mimeType    string
	uri         string
	total       int64
	destination string
	callbacks   *port.TransferCallbacks
	cancels     int
}

func (t *fakeTransfer) SuggestedFilename() string { return t.filename }
func (t *fakeTransfer) MimeType() string          { return t.mimeType }
func (t *fakeTransfer) URI() string               { return t.uri }
func (t *fakeTransfer) TotalBytes() int64         { return t.total }
func (t *fakeTransfer) SetDestination(p string)   { t.destination = p }
func (t *fakeTransfer) SetCallbacks(cb *port.TransferCallbacks) {
	t.callbacks = cb
}
func (t *fakeTransfer) Cancel() { t.cancels++ }

func (t *fakeTransfer) progress(n int64) { t.callbacks.OnProgress(n) }

func (t *fakeTransfer) done(r port.TransferResult) { t.callbacks.OnDone(r) }

// memFS is an in-memory file system recording every operation.
type memFS struct {
	mu      sync.Mutex
	files   map[string]bool
	moves   [][2]string
	removes []string
	moveErr error
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string]bool)}
}

func (f *memFS) Exists(_ context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[path], nil
}

func (f *memFS) Move(_ context.Context, src, dst string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves = append(f.moves, [2]string{src, dst})
	if f.moveErr != nil {
		return f.moveErr
	}
	delete(f.files, src)
	f.files[dst] = true
	return nil
}

func (f *memFS) Remove(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes = append(f.removes, path)
	delete(f.files, path)
	return nil
}

func (f *memFS) MkdirAll(context.Context, string) error { return nil }

func (f *memFS) touch(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = true
}

type countingPanel struct {
	shows int
}

func (p *countingPanel) Show(context.Context) { p.shows++ }

func inline(fn func()) { fn() }

func sequence(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return prefix + string(rune('0'+n))
	}
}
