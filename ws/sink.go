package ws

import (
	"context"

	"skillflow/domain/event"
)

// Sink bridges the fan-out machinery and one websocket connection.
// Events land on a buffered channel that the connection's write pump
// drains.
type Sink struct {
	Events chan event.Event
}

func NewSink(bufferSize int) *Sink {
	return &Sink{Events: make(chan event.Event, bufferSize)}
}

// Consume is called by the broadcaster. It hands the event to the owning
// connection and returns immediately. A full buffer means the client is
// not keeping up; the event is dropped rather than blocking the emitter,
// and the client resynchronizes on its next fetch.
func (s *Sink) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
