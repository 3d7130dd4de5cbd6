package realtime

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"skillflow/domain"
	"skillflow/domain/event"
	"skillflow/mocks"
	"skillflow/repositories"
)

// recordingSink captures everything delivered to one session.
type recordingSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *recordingSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) byName(name string) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []event.Event
	for _, e := range s.events {
		if e.EventName() == name {
			matched = append(matched, e)
		}
	}
	return matched
}

func newTestRouter(t *testing.T, messages repositories.IMessageRepository) *Router {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewSessionRegistry()
	hub := NewHub(log, registry, time.Second)
	presence := NewPresenceBroadcaster(registry, hub)
	reconciler := NewReadStateReconciler(log, messages, hub)
	return NewRouter(log, registry, hub, presence, reconciler, messages)
}

func connect(router *Router, userID string) (*recordingSink, domain.Session) {
	sink := &recordingSink{}
	session := domain.Session{ID: uuid.NewString(), UserID: userID}
	router.Connected(context.Background(), session, sink)
	return sink, session
}

func TestRouter_Connect_Broadcasts_Presence_Snapshot(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, nil)

	// Given alice is connected
	aliceSink, _ := connect(router, "alice")

	// When bob connects
	bobSink, bobSession := connect(router, "bob")

	// Then both receive a full snapshot containing both users
	snapshots := aliceSink.byName("getOnlineUsers")
	req.Len(snapshots, 2) // one per connect
	latest := snapshots[len(snapshots)-1].(event.OnlineUsers)
	req.ElementsMatch([]string{"alice", "bob"}, []string(latest))

	// When bob disconnects, the remaining sessions learn it
	router.Disconnected(context.Background(), bobSession)
	snapshots = aliceSink.byName("getOnlineUsers")
	latest = snapshots[len(snapshots)-1].(event.OnlineUsers)
	req.ElementsMatch([]string{"alice"}, []string(latest))
	req.Len(bobSink.byName("getOnlineUsers"), 1) // only its own connect
}

func TestRouter_Typing_Relayed_To_All_Receiver_Devices_Only(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, nil)

	aliceSink, _ := connect(router, "alice")
	bobDevice1, _ := connect(router, "bob")
	bobDevice2, _ := connect(router, "bob")

	// When alice types to bob
	router.HandleTyping(context.Background(), domain.TypingCommand{SenderID: "alice", ReceiverID: "bob"})

	// Then both of bob's devices see it and alice sees nothing
	req.Len(bobDevice1.byName("typing"), 1)
	req.Len(bobDevice2.byName("typing"), 1)
	req.Equal(event.Typing{SenderID: "alice"}, bobDevice1.byName("typing")[0])
	req.Empty(aliceSink.byName("typing"))
}

func TestRouter_New_Message_And_Read_Receipt_Across_Devices(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	router := newTestRouter(t, mockMessages)

	// Given user A has two devices and B one
	sessionA1, _ := connect(router, "A")
	sessionA2, _ := connect(router, "A")
	sessionB, _ := connect(router, "B")

	// When B sends A a message
	message := domain.Message{ID: uuid.New(), SenderID: "B", ReceiverID: "A", Text: "hello"}
	router.NotifyNewMessage(context.Background(), message)

	// Then both of A's devices receive it, B's does not
	req.Len(sessionA1.byName("newMessage"), 1)
	req.Len(sessionA2.byName("newMessage"), 1)
	req.Empty(sessionB.byName("newMessage"))

	// When A reads it from the first device
	mockMessages.EXPECT().MarkConversationRead("B", "A").Return(1, nil).Times(1)
	err := router.HandleMarkAsRead(context.Background(), domain.MarkAsReadCommand{SenderID: "B", ReceiverID: "A"})
	req.NoError(err)

	// Then B's device gets exactly one tick flip
	req.Equal([]event.Event{event.MessagesRead{ReaderID: "A", PartnerID: "B"}}, sessionB.byName("messagesRead"))
	// And A's other device clears its badge exactly once
	req.Equal([]event.Event{event.SelfMessagesRead{PartnerID: "B"}}, sessionA2.byName("selfMessagesRead"))
}

func TestRouter_Delete_Message_Notifies_Both_Participants(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	router := newTestRouter(t, mockMessages)

	senderSink, _ := connect(router, "alice")
	receiverSink, _ := connect(router, "bob")
	bystanderSink, _ := connect(router, "carol")

	id := uuid.New()
	deleted := domain.Message{ID: id, SenderID: "alice", ReceiverID: "bob", IsDeleted: true}
	mockMessages.EXPECT().SoftDelete(id).Return(deleted, nil).Times(1)

	// When the message is deleted
	err := router.HandleDeleteMessage(context.Background(), domain.DeleteMessageCommand{MessageID: id.String()})
	req.NoError(err)

	// Then both participants are notified, nobody else
	expected := event.MessageDeleted{MessageID: id.String(), SenderID: "alice", ReceiverID: "bob"}
	req.Equal([]event.Event{expected}, senderSink.byName("messageDeleted"))
	req.Equal([]event.Event{expected}, receiverSink.byName("messageDeleted"))
	req.Empty(bystanderSink.byName("messageDeleted"))
}

func TestRouter_Delete_Message_Failure_Emits_Nothing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	router := newTestRouter(t, mockMessages)

	senderSink, _ := connect(router, "alice")

	id := uuid.New()
	mockMessages.EXPECT().SoftDelete(id).
		Return(domain.Message{}, context.DeadlineExceeded).Times(1)

	// When the deletion fails, no stale event leaks out
	err := router.HandleDeleteMessage(context.Background(), domain.DeleteMessageCommand{MessageID: id.String()})
	req.Error(err)
	req.Empty(senderSink.byName("messageDeleted"))
}

func TestRouter_Update_Profile_Skips_Originating_Session(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, nil)

	aliceDevice1, originSession := connect(router, "alice")
	aliceDevice2, _ := connect(router, "alice")
	bobSink, _ := connect(router, "bob")

	user := domain.User{ID: "alice", Name: "Alice"}

	// When alice updates her profile from device 1
	router.HandleUpdateProfile(context.Background(), originSession.ID, user)

	// Then everyone else learns the public record
	req.Len(bobSink.byName("userProfileUpdated"), 1)
	req.Len(aliceDevice2.byName("userProfileUpdated"), 1)
	req.Empty(aliceDevice1.byName("userProfileUpdated"))

	// And all of alice's devices refresh their local copy
	req.Len(aliceDevice1.byName("refreshOwnProfile"), 1)
	req.Len(aliceDevice2.byName("refreshOwnProfile"), 1)
	req.Empty(bobSink.byName("refreshOwnProfile"))
}

func TestRouter_Follow_Toggle_Audiences(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, nil)

	actorSink, _ := connect(router, "A")
	targetSink, _ := connect(router, "B")
	bystanderSink, _ := connect(router, "C")

	toggle := repositories.FollowToggle{
		Actor:        domain.User{ID: "A", Name: "Alice", ProfilePic: "/alice.png", Following: []string{"B"}},
		Target:       domain.User{ID: "B", Followers: []string{"A"}},
		NowFollowing: true,
	}

	// When A follows B
	router.NotifyFollowToggle(context.Background(), toggle)

	// Then every connected client receives both count updates
	for _, sink := range []*recordingSink{actorSink, targetSink, bystanderSink} {
		counts := sink.byName("countUpdate")
		req.Len(counts, 2)
		req.ElementsMatch([]event.Event{
			event.CountUpdate{UserID: "B", Followers: 1, Following: 0},
			event.CountUpdate{UserID: "A", Followers: 0, Following: 1},
		}, counts)
	}

	// And only the actor's sessions see the button state
	req.Equal([]event.Event{event.RelationshipUpdated{TargetID: "B", IsFollowing: true}},
		actorSink.byName("relationshipUpdated"))
	req.Empty(targetSink.byName("relationshipUpdated"))
	req.Empty(bystanderSink.byName("relationshipUpdated"))

	// And only the target is notified about the new follower
	notifications := targetSink.byName("newNotification")
	req.Len(notifications, 1)
	notification := notifications[0].(event.NewNotification)
	req.Equal("Alice", notification.From)
	req.Equal("started following you", notification.Message)
	req.Equal("/alice.png", notification.FromPic)
	req.Empty(actorSink.byName("newNotification"))
	req.Empty(bystanderSink.byName("newNotification"))
}

func TestRouter_Unfollow_Sends_No_Notification(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t, nil)

	_, _ = connect(router, "A")
	targetSink, _ := connect(router, "B")

	// When A unfollows B
	router.NotifyFollowToggle(context.Background(), repositories.FollowToggle{
		Actor:        domain.User{ID: "A"},
		Target:       domain.User{ID: "B"},
		NowFollowing: false,
	})

	// Then counts still update but no notification fires
	req.Len(targetSink.byName("countUpdate"), 2)
	req.Empty(targetSink.byName("newNotification"))
}
