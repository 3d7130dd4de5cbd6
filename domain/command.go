package domain

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a command's required fields at the transport boundary,
// so event handlers never need defensive field-presence checks.
func Validate(cmd any) error {
	return validate.Struct(cmd)
}

type TypingCommand struct {
	SenderID   string `json:"senderId" validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required"`
}

type MarkAsReadCommand struct {
	SenderID   string `json:"senderId" validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required"`
}

// DeleteMessageCommand carries the sender/receiver ids clients send along,
// but the stored record stays authoritative for addressing the fan-out.
type DeleteMessageCommand struct {
	MessageID  string `json:"messageId" validate:"required,uuid"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

type SendMessageCommand struct {
	SenderID   string    `json:"senderId" validate:"required"`
	ReceiverID string    `json:"receiverId" validate:"required"`
	Text       string    `json:"text"`
	Image      string    `json:"image"`
	Document   *Document `json:"document"`
}

type ToggleFollowCommand struct {
	ActorID  string `json:"myId" validate:"required"`
	TargetID string `json:"targetId" validate:"required"`
}
