// Package mainloop serializes coordinator work onto one goroutine.
package mainloop

import (
	"context"
	"sync"
)

// Loop is an unbounded FIFO of callbacks drained by a single goroutine.
// It backs headless runs and tests; the GTK build posts through glib instead.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	closed  bool
}

// New creates an idle loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post schedules fn. Safe from any goroutine, including the loop itself.
// Work posted after Close is dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run drains posted work until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
		l.RunPending()
		if l.isClosed() {
			return nil
		}
	}
}

// RunPending runs queued work, including work queued while draining, and
// returns how many callbacks ran.
func (l *Loop) RunPending() int {
	ran := 0
	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		l.mu.Unlock()

		if len(batch) == 0 {
			return ran
		}
		for _, fn := range batch {
			fn()
			ran++
		}
	}
}

// Close stops Run after the current batch and drops further posts.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.pending = nil
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}
