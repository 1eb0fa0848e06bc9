package port

// EventSink is one UI surface that consumes fire-and-forget events.
type EventSink interface {
	// Send delivers payload on channel. Payloads are JSON-encodable.
	Send(channel string, payload any)
	// IsDestroyed reports that the surface is gone and must be pruned.
	IsDestroyed() bool
}

// Publisher fans events out to every live UI surface.
type Publisher interface {
	Publish(channel string, payload any)
}

// MainLoop serializes work onto the single control-flow goroutine.
type MainLoop interface {
	// Post schedules fn to run on the main loop. It never runs fn inline.
	Post(fn func())
}
