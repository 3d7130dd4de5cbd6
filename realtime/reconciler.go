package realtime

import (
	"context"
	"fmt"
	"log/slog"

	"skillflow/contract"
	"skillflow/domain/event"
	"skillflow/repositories"
)

// ReadStateReconciler drives the read-receipt state transition and keeps
// every device of both participants converged without a full refetch.
//
// A read receipt has two distinct audiences with different reactions: the
// message sender flips its ticks, while the reader's other devices only
// clear a badge. Two event names keep those roles unambiguous.
type ReadStateReconciler struct {
	log         *slog.Logger
	messages    repositories.IMessageRepository
	broadcaster contract.IBroadcaster
}

func NewReadStateReconciler(log *slog.Logger, messages repositories.IMessageRepository,
	broadcaster contract.IBroadcaster) *ReadStateReconciler {
	return &ReadStateReconciler{log: log, messages: messages, broadcaster: broadcaster}
}

// MarkConversationRead persists the sent->read transition for every unread
// message from senderID to receiverID, then notifies both sides. When the
// persistence update fails, nothing is emitted: clients keep stale state
// and reconcile on their next fetch. When nothing was unread, nothing is
// emitted either.
func (r *ReadStateReconciler) MarkConversationRead(ctx context.Context, senderID, receiverID string) error {
	updated, err := r.messages.MarkConversationRead(senderID, receiverID)
	if err != nil {
		r.log.Error("Read-state update failed, keeping clients stale",
			"sender_id", senderID, "receiver_id", receiverID, "error", err)
		return fmt.Errorf("mark conversation read: %w", err)
	}
	if updated == 0 {
		return nil
	}

	r.broadcaster.EmitToUser(ctx, senderID, event.MessagesRead{ReaderID: receiverID, PartnerID: senderID})
	r.broadcaster.EmitToUser(ctx, receiverID, event.SelfMessagesRead{PartnerID: senderID})
	return nil
}
