// Package event defines the outbound wire events of the realtime layer.
// Event names and payload shapes are a compatibility contract with clients
// and must not change.
package event

import (
	"time"

	"skillflow/domain"
)

// Event is implemented by every outbound payload. EventName is the wire
// name clients subscribe to.
type Event interface {
	EventName() string
}

// OnlineUsers is the full-state presence snapshot: clients replace their
// local online set wholesale, never apply it as a delta.
type OnlineUsers []string

func (OnlineUsers) EventName() string { return "getOnlineUsers" }

type Typing struct {
	SenderID string `json:"senderId"`
}

func (Typing) EventName() string { return "typing" }

type StopTyping struct {
	SenderID string `json:"senderId"`
}

func (StopTyping) EventName() string { return "stopTyping" }

// MessagesRead tells the original sender's devices to flip their ticks.
type MessagesRead struct {
	ReaderID  string `json:"readerId"`
	PartnerID string `json:"partnerId"`
}

func (MessagesRead) EventName() string { return "messagesRead" }

// SelfMessagesRead tells the reader's OTHER devices to clear the unread
// badge for that conversation. Kept distinct from MessagesRead so a device
// never has to guess which role it plays.
type SelfMessagesRead struct {
	PartnerID string `json:"partnerId"`
}

func (SelfMessagesRead) EventName() string { return "selfMessagesRead" }

type NewMessage domain.Message

func (NewMessage) EventName() string { return "newMessage" }

type MessageDeleted struct {
	MessageID  string `json:"messageId"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

func (MessageDeleted) EventName() string { return "messageDeleted" }

type UserProfileUpdated domain.User

func (UserProfileUpdated) EventName() string { return "userProfileUpdated" }

type RefreshOwnProfile domain.User

func (RefreshOwnProfile) EventName() string { return "refreshOwnProfile" }

type CountUpdate struct {
	UserID    string `json:"userId"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

func (CountUpdate) EventName() string { return "countUpdate" }

type RelationshipUpdated struct {
	TargetID    string `json:"targetId"`
	IsFollowing bool   `json:"isFollowing"`
}

func (RelationshipUpdated) EventName() string { return "relationshipUpdated" }

type NewNotification struct {
	From      string    `json:"from"`
	Message   string    `json:"message"`
	FromPic   string    `json:"fromPic"`
	Timestamp time.Time `json:"timestamp"`
}

func (NewNotification) EventName() string { return "newNotification" }
