//go:generate go run go.uber.org/mock/mockgen -source=realtime_service.go -destination=../mocks/mock_realtime_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"skillflow/contract"
	"skillflow/domain"
	"skillflow/realtime"
	"skillflow/repositories"
)

// IRealtimeService is the single seam the transports depend on: the
// websocket layer drives the session lifecycle and socket events, the HTTP
// layer drives the persistence-first operations. Neither owns any realtime
// logic themselves.
type IRealtimeService interface {
	Connect(ctx context.Context, session domain.Session, sink contract.EventSink)
	Disconnect(ctx context.Context, session domain.Session)

	HandleTyping(ctx context.Context, cmd domain.TypingCommand)
	HandleStopTyping(ctx context.Context, cmd domain.TypingCommand)
	HandleMarkAsRead(ctx context.Context, cmd domain.MarkAsReadCommand) error
	HandleUpdateProfile(ctx context.Context, originSessionID string, user domain.User)
	HandleDeleteMessage(ctx context.Context, cmd domain.DeleteMessageCommand) error

	RegisterUser(ctx context.Context, user domain.User) (domain.User, error)
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	GetConversation(ctx context.Context, myID, partnerID string) ([]domain.Message, error)
	DeleteMessage(ctx context.Context, messageID string) error
	ToggleFollow(ctx context.Context, cmd domain.ToggleFollowCommand) (repositories.FollowToggle, error)
	UpdateProfile(ctx context.Context, user domain.User) (domain.User, error)
}

type RealtimeService struct {
	log      *slog.Logger
	router   *realtime.Router
	messages repositories.IMessageRepository
	users    repositories.IUserRepository
}

func NewRealtimeService(log *slog.Logger, router *realtime.Router,
	messages repositories.IMessageRepository, users repositories.IUserRepository) *RealtimeService {
	return &RealtimeService{log: log, router: router, messages: messages, users: users}
}

func (s *RealtimeService) Connect(ctx context.Context, session domain.Session, sink contract.EventSink) {
	s.router.Connected(ctx, session, sink)
}

func (s *RealtimeService) Disconnect(ctx context.Context, session domain.Session) {
	s.router.Disconnected(ctx, session)
}

func (s *RealtimeService) HandleTyping(ctx context.Context, cmd domain.TypingCommand) {
	s.router.HandleTyping(ctx, cmd)
}

func (s *RealtimeService) HandleStopTyping(ctx context.Context, cmd domain.TypingCommand) {
	s.router.HandleStopTyping(ctx, cmd)
}

func (s *RealtimeService) HandleMarkAsRead(ctx context.Context, cmd domain.MarkAsReadCommand) error {
	return s.router.HandleMarkAsRead(ctx, cmd)
}

func (s *RealtimeService) HandleUpdateProfile(ctx context.Context, originSessionID string, user domain.User) {
	s.router.HandleUpdateProfile(ctx, originSessionID, user)
}

func (s *RealtimeService) HandleDeleteMessage(ctx context.Context, cmd domain.DeleteMessageCommand) error {
	return s.router.HandleDeleteMessage(ctx, cmd)
}

// RegisterUser creates the user record with profile defaults filled in.
// No event is emitted: a fresh account has no followers to notify and is
// not yet connected.
func (s *RealtimeService) RegisterUser(ctx context.Context, user domain.User) (domain.User, error) {
	if err := domain.Validate(user); err != nil {
		return domain.User{}, err
	}

	created, err := s.users.CreateUser(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}
	return created, nil
}

// SendMessage persists a new message and pushes it to the receiver's
// devices. The sender's own devices learn about it from the response.
func (s *RealtimeService) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	if err := domain.Validate(cmd); err != nil {
		return domain.Message{}, err
	}

	now := time.Now().UTC()
	message := domain.Message{
		ID:         uuid.New(),
		SenderID:   cmd.SenderID,
		ReceiverID: cmd.ReceiverID,
		Text:       cmd.Text,
		Image:      cmd.Image,
		Document:   cmd.Document,
		Status:     domain.StatusSent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := message.Validate(); err != nil {
		return domain.Message{}, err
	}

	if err := s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, fmt.Errorf("store message: %w", err)
	}

	s.router.NotifyNewMessage(ctx, message)
	return message, nil
}

// GetConversation returns the full exchange between two users and marks the
// partner->me direction read, exactly as opening the conversation does. A
// failed reconciliation does not fail the fetch: the events are a
// best-effort acceleration, the response body is the source of truth.
func (s *RealtimeService) GetConversation(ctx context.Context, myID, partnerID string) ([]domain.Message, error) {
	messages, err := s.messages.Conversation(myID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("fetch conversation: %w", err)
	}

	if err := s.router.HandleMarkAsRead(ctx, domain.MarkAsReadCommand{
		SenderID:   partnerID,
		ReceiverID: myID,
	}); err != nil {
		s.log.Warn("Conversation fetched but read-state reconciliation failed",
			"my_id", myID, "partner_id", partnerID, "error", err)
	}
	return messages, nil
}

func (s *RealtimeService) DeleteMessage(ctx context.Context, messageID string) error {
	return s.router.HandleDeleteMessage(ctx, domain.DeleteMessageCommand{MessageID: messageID})
}

// ToggleFollow flips the follow edge and fans the outcome out to its three
// audiences.
func (s *RealtimeService) ToggleFollow(ctx context.Context, cmd domain.ToggleFollowCommand) (repositories.FollowToggle, error) {
	if err := domain.Validate(cmd); err != nil {
		return repositories.FollowToggle{}, err
	}

	toggle, err := s.users.ToggleFollow(cmd.ActorID, cmd.TargetID)
	if err != nil {
		return repositories.FollowToggle{}, fmt.Errorf("toggle follow: %w", err)
	}

	s.router.NotifyFollowToggle(ctx, toggle)
	return toggle, nil
}

// UpdateProfile persists the profile change, then propagates it. This is
// the HTTP path: no originating session to exclude.
func (s *RealtimeService) UpdateProfile(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := s.users.UpdateProfile(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}

	s.router.HandleUpdateProfile(ctx, "", updated)
	return updated, nil
}
