package messaging

import (
	"context"
	"strings"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/logging"
)

// ChannelDownloadChanged is the list-refresh hint sent to the main window after
// every other download event.
const ChannelDownloadChanged = "download:changed"

const (
	downloadPrefix = "download:"
	tabPrefix      = "tab:"
)

// Role tells the bus which window a sink lives in.
type Role int

const (
	// RoleMain is the main window UI (tab strip).
	RoleMain Role = iota
	// RoleAuxiliary is any secondary UI, such as the download panel.
	RoleAuxiliary
)

type subscriber struct {
	sink port.EventSink
	role Role
}

// Bus fans events out to every live UI surface. Sinks that report themselves
// destroyed are pruned on the next publish. Bus is not safe for concurrent
// use; it is driven from the main loop.
type Bus struct {
	ctx         context.Context
	subscribers []subscriber
}

// NewBus creates an empty bus.
func NewBus(ctx context.Context) *Bus {
	return &Bus{ctx: logging.WithComponent(ctx, "bus")}
}

// Subscribe registers sink. Registering the same sink twice is a no-op.
func (b *Bus) Subscribe(sink port.EventSink, role Role) {
	if sink == nil {
		return
	}
	for _, s := range b.subscribers {
		if s.sink == sink {
			return
		}
	}
	b.subscribers = append(b.subscribers, subscriber{sink: sink, role: role})
}

// Unsubscribe removes sink if present.
func (b *Bus) Unsubscribe(sink port.EventSink) {
	kept := b.subscribers[:0]
	for _, s := range b.subscribers {
		if s.sink != sink {
			kept = append(kept, s)
		}
	}
	b.subscribers = kept
}

// Len returns the number of live subscribers after pruning.
func (b *Bus) Len() int {
	b.prune()
	return len(b.subscribers)
}

// Publish delivers payload on channel to every live sink, except tab events
// which only main-window sinks receive. Download events are followed by a
// download:changed hint to main-window sinks.
func (b *Bus) Publish(channel string, payload any) {
	b.prune()

	mainOnly := strings.HasPrefix(channel, tabPrefix) || channel == ChannelDownloadChanged
	b.send(channel, payload, mainOnly)

	if strings.HasPrefix(channel, downloadPrefix) && channel != ChannelDownloadChanged {
		b.send(ChannelDownloadChanged, nil, true)
	}
}

func (b *Bus) send(channel string, payload any, mainOnly bool) {
	for _, s := range b.subscribers {
		if mainOnly && s.role != RoleMain {
			continue
		}
		s.sink.Send(channel, payload)
	}
}

func (b *Bus) prune() {
	kept := b.subscribers[:0]
	for _, s := range b.subscribers {
		if s.sink.IsDestroyed() {
			logging.FromContext(b.ctx).Debug().Int("role", int(s.role)).Msg("pruning destroyed sink")
			continue
		}
		kept = append(kept, s)
	}
	// Drop references held past the new length.
	for i := len(kept); i < len(b.subscribers); i++ {
		b.subscribers[i] = subscriber{}
	}
	b.subscribers = kept
}

var _ port.Publisher = (*Bus)(nil)
