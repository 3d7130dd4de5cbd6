// Package domain contains core concepts of the chat system.
// This file defines Message entities and related rules.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"skillflow/errors"
)

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// Document is a file attachment carried inline with a message,
// e.g. "Resume.pdf" with its bytes and declared content type.
type Document struct {
	Name        string `json:"name"`
	ContentType string `json:"type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"data,omitempty"`
}

// Message is a direct message between two users. Content fields are cleared
// on soft delete but the record itself is never removed from the store.
type Message struct {
	ID         uuid.UUID     `json:"id"`
	SenderID   string        `json:"senderId"`
	ReceiverID string        `json:"receiverId"`
	Text       string        `json:"text"`
	Image      string        `json:"image,omitempty"`
	Document   *Document     `json:"document,omitempty"`
	Status     MessageStatus `json:"status"`
	IsDeleted  bool          `json:"isDeleted"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

const deletedPlaceholder = "This message was deleted"

// Validate rejects messages with no content at all, and attachments whose
// declared content type disagrees with what their bytes actually are.
func (m Message) Validate() error {
	hasText := strings.TrimSpace(m.Text) != ""
	hasDocument := m.Document != nil && len(m.Document.Data) > 0
	if !hasText && m.Image == "" && !hasDocument {
		return errors.ErrEmptyMessage
	}
	if hasDocument && m.Document.ContentType != "" {
		if !mimetype.Detect(m.Document.Data).Is(m.Document.ContentType) {
			return errors.ErrAttachmentMismatch
		}
	}
	return nil
}

// SoftDelete clears the content while keeping the record, so conversations
// keep their slot and clients can render a tombstone.
func (m *Message) SoftDelete() {
	m.Text = deletedPlaceholder
	m.Image = ""
	m.Document = nil
	m.IsDeleted = true
	m.UpdatedAt = time.Now().UTC()
}
