package cache

import "time"

// Event kinds published to an EventSink.
const (
	EventInvalidated = "invalidated"
	EventWarmed      = "warmed"
)

// Event is a cache lifecycle notification, consumed by the operator
// websocket stream. Purely observational — nothing branches on it.
type Event struct {
	Kind   string    `json:"kind"`
	BookID int       `json:"book_id,omitempty"`
	Count  int       `json:"count,omitempty"`
	At     time.Time `json:"at"`
}

// EventSink receives cache lifecycle events. Implementations must not block;
// publishers call from hot paths and worker goroutines.
type EventSink interface {
	Publish(Event)
}

// publish forwards an event to sink when one is configured.
func publish(sink EventSink, ev Event) {
	if sink == nil {
		return
	}
	ev.At = time.Now()
	sink.Publish(ev)
}
