package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/viewshell/internal/logging"
)

// StartupTimer tracks how long each startup phase takes. Safe for
// concurrent use.
type StartupTimer struct {
	mu     sync.Mutex
	now    func() time.Time
	start  time.Time
	last   time.Time
	order  []string
	phases map[string]time.Duration
}

// NewStartupTimer creates a timer starting now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	t := now()
	return &StartupTimer{
		now:    now,
		start:  t,
		last:   t,
		phases: make(map[string]time.Duration),
	}
}

// Mark records the time since the previous mark under phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] += now.Sub(t.last)
	t.last = now
}

// Total returns the time elapsed since the timer was created.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now().Sub(t.start)
}

// Log writes every phase in mark order as one line at level.
func (t *StartupTimer) Log(ctx context.Context, level zerolog.Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).WithLevel(level).Dur("total", t.now().Sub(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
