package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"skillflow/contract"
	"skillflow/domain"
	"skillflow/domain/event"
	"skillflow/repositories"
)

// Router dispatches inbound client events to the correct addressees. It is
// stateless itself: all state lives in the message records or the session
// registry. Handlers fail closed: a persistence error aborts the handler
// with no outbound events, and nothing is retried at this layer.
type Router struct {
	log         *slog.Logger
	registry    contract.IRegistry
	broadcaster contract.IBroadcaster
	presence    *PresenceBroadcaster
	reconciler  *ReadStateReconciler
	messages    repositories.IMessageRepository
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, broadcaster contract.IBroadcaster,
	presence *PresenceBroadcaster, reconciler *ReadStateReconciler,
	messages repositories.IMessageRepository) *Router {
	return &Router{
		log:         log,
		registry:    registry,
		broadcaster: broadcaster,
		presence:    presence,
		reconciler:  reconciler,
		messages:    messages,
	}
}

// Connected admits a session and re-announces presence to everyone.
func (r *Router) Connected(ctx context.Context, session domain.Session, sink contract.EventSink) {
	r.registry.Register(session.UserID, session.ID, sink)
	r.presence.Announce(ctx)
}

// Disconnected evicts a session and re-announces presence.
func (r *Router) Disconnected(ctx context.Context, session domain.Session) {
	r.registry.Unregister(session.UserID, session.ID)
	r.presence.Announce(ctx)
}

// HandleTyping is a pure relay to all devices of the receiver.
func (r *Router) HandleTyping(ctx context.Context, cmd domain.TypingCommand) {
	r.broadcaster.EmitToUser(ctx, cmd.ReceiverID, event.Typing{SenderID: cmd.SenderID})
}

func (r *Router) HandleStopTyping(ctx context.Context, cmd domain.TypingCommand) {
	r.broadcaster.EmitToUser(ctx, cmd.ReceiverID, event.StopTyping{SenderID: cmd.SenderID})
}

func (r *Router) HandleMarkAsRead(ctx context.Context, cmd domain.MarkAsReadCommand) error {
	return r.reconciler.MarkConversationRead(ctx, cmd.SenderID, cmd.ReceiverID)
}

// HandleUpdateProfile propagates an already-persisted profile change:
// every other session learns the new public record, and the user's own
// devices refresh their local copy. originSessionID may be empty when the
// change came through the HTTP path rather than a socket event.
func (r *Router) HandleUpdateProfile(ctx context.Context, originSessionID string, user domain.User) {
	r.broadcaster.EmitToAllExcept(ctx, originSessionID, event.UserProfileUpdated(user))
	r.broadcaster.EmitToUser(ctx, user.ID, event.RefreshOwnProfile(user))
}

// HandleDeleteMessage soft-deletes the record, then notifies all devices of
// BOTH participants. The stored record is authoritative for the addressing;
// the ids the client sent along are ignored.
func (r *Router) HandleDeleteMessage(ctx context.Context, cmd domain.DeleteMessageCommand) error {
	id, err := uuid.Parse(cmd.MessageID)
	if err != nil {
		return fmt.Errorf("invalid message id %q: %w", cmd.MessageID, err)
	}

	message, err := r.messages.SoftDelete(id)
	if err != nil {
		r.log.Error("Message deletion failed, emitting nothing",
			"message_id", cmd.MessageID, "error", err)
		return fmt.Errorf("delete message: %w", err)
	}

	deleted := event.MessageDeleted{
		MessageID:  message.ID.String(),
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
	}
	r.broadcaster.EmitToUser(ctx, message.ReceiverID, deleted)
	r.broadcaster.EmitToUser(ctx, message.SenderID, deleted)
	return nil
}

// NotifyNewMessage pushes a freshly persisted message to the receiver's
// devices. Triggered from the HTTP send path, not a socket event; the
// sender's own devices learn about it from the send response.
func (r *Router) NotifyNewMessage(ctx context.Context, message domain.Message) {
	r.broadcaster.EmitToUser(ctx, message.ReceiverID, event.NewMessage(message))
}

// NotifyFollowToggle fans a committed follow/unfollow out to its three
// audiences: fresh counts for everyone, the button state for the actor's
// devices only, and a notification for the target only when a new follow
// occurred. Counts go to literally everyone, matching observed behavior.
func (r *Router) NotifyFollowToggle(ctx context.Context, toggle repositories.FollowToggle) {
	r.broadcaster.EmitToAll(ctx, event.CountUpdate{
		UserID:    toggle.Target.ID,
		Followers: len(toggle.Target.Followers),
		Following: len(toggle.Target.Following),
	})
	r.broadcaster.EmitToAll(ctx, event.CountUpdate{
		UserID:    toggle.Actor.ID,
		Followers: len(toggle.Actor.Followers),
		Following: len(toggle.Actor.Following),
	})

	r.broadcaster.EmitToUser(ctx, toggle.Actor.ID, event.RelationshipUpdated{
		TargetID:    toggle.Target.ID,
		IsFollowing: toggle.NowFollowing,
	})

	if toggle.NowFollowing {
		r.broadcaster.EmitToUser(ctx, toggle.Target.ID, event.NewNotification{
			From:      toggle.Actor.Name,
			Message:   "started following you",
			FromPic:   toggle.Actor.ProfilePic,
			Timestamp: time.Now().UTC(),
		})
	}
}
