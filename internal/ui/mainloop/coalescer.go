package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one main-loop turn. Only the
// latest callback posted for a key before that turn runs.
type Coalescer struct {
	mu      sync.Mutex
	post    func(func())
	latest  map[string]func() // key present = a run is scheduled
	stopped bool
}

// NewCoalescer schedules through post, such as (*Loop).Post or an idle source.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop: NewCoalescer needs a post function")
	}
	return &Coalescer{post: post, latest: make(map[string]func())}
}

// Post records fn as the callback for key, scheduling a run if none is
// pending.
func (c *Coalescer) Post(key string, fn func()) {
	if key == "" || fn == nil {
		return
	}
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if !scheduled {
		c.post(func() { c.flush(key) })
	}
}

func (c *Coalescer) flush(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Destroy drops scheduled work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.stopped = true
	clear(c.latest)
	c.mu.Unlock()
}
