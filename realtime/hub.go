package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"skillflow/contract"
	"skillflow/domain/event"
)

// Hub implements the addressing primitive "send this event to every live
// session of user X". Callers never enumerate session ids; a user with N
// devices is one address. Delivery is best-effort: no retries, no ordering
// across users, no durability. The Hub is not a message broker.
type Hub struct {
	log         *slog.Logger
	registry    contract.IRegistry
	sinkTimeout time.Duration
}

func NewHub(log *slog.Logger, registry contract.IRegistry, sinkTimeout time.Duration) *Hub {
	return &Hub{log: log, registry: registry, sinkTimeout: sinkTimeout}
}

// EmitToUser fans an event out to all sessions of one user.
// Zero live sessions is a silent no-op.
func (h *Hub) EmitToUser(ctx context.Context, userID string, e event.Event) {
	for _, sink := range h.registry.SinksForUser(userID) {
		h.deliver(ctx, sink, e)
	}
}

func (h *Hub) EmitToAll(ctx context.Context, e event.Event) {
	for _, ss := range h.registry.AllSinks() {
		h.deliver(ctx, ss.Sink, e)
	}
}

// EmitToAllExcept skips the originating session, so a device never echoes
// back the event it just produced.
func (h *Hub) EmitToAllExcept(ctx context.Context, sessionID string, e event.Event) {
	for _, ss := range h.registry.AllSinks() {
		if ss.SessionID == sessionID {
			continue
		}
		h.deliver(ctx, ss.Sink, e)
	}
}

// deliver bounds each sink hand-off so one slow consumer can never stall
// the caller. A failed delivery is logged and dropped; clients resynchronize
// through pull-based fetches after reconnect.
func (h *Hub) deliver(ctx context.Context, sink contract.EventSink, e event.Event) {
	deliveryCtx, cancel := context.WithTimeout(ctx, h.sinkTimeout)
	defer cancel()

	if err := sink.Consume(deliveryCtx, e); err != nil {
		h.log.Warn(fmt.Sprintf("Dropped %s event", e.EventName()), "error", err)
	}
}
