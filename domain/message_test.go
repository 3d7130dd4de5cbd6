package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"skillflow/errors"
)

func TestMessage_Validate_Requires_Some_Content(t *testing.T) {
	req := require.New(t)

	req.ErrorIs(Message{Text: "   "}.Validate(), errors.ErrEmptyMessage)
	req.NoError(Message{Text: "hello"}.Validate())
	req.NoError(Message{Image: "/cat.png"}.Validate())
	req.NoError(Message{Document: &Document{Name: "notes.txt", Data: []byte("plain text")}}.Validate())
}

func TestMessage_Validate_Checks_Declared_Content_Type(t *testing.T) {
	req := require.New(t)

	pdfHeader := []byte("%PDF-1.4\n%fake body")

	// Declared type matches the sniffed bytes
	req.NoError(Message{Document: &Document{
		Name:        "resume.pdf",
		ContentType: "application/pdf",
		Data:        pdfHeader,
	}}.Validate())

	// Declared type lies about the bytes
	req.ErrorIs(Message{Document: &Document{
		Name:        "resume.pdf",
		ContentType: "image/png",
		Data:        pdfHeader,
	}}.Validate(), errors.ErrAttachmentMismatch)

	// No declared type means nothing to cross-check
	req.NoError(Message{Document: &Document{
		Name: "resume.pdf",
		Data: pdfHeader,
	}}.Validate())
}

func TestMessage_SoftDelete_Clears_Content_Only(t *testing.T) {
	req := require.New(t)
	message := Message{
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "secret",
		Image:      "/cat.png",
		Document:   &Document{Name: "secret.pdf"},
		Status:     StatusRead,
	}

	message.SoftDelete()

	req.True(message.IsDeleted)
	req.NotContains(message.Text, "secret")
	req.Empty(message.Image)
	req.Nil(message.Document)
	req.Equal("alice", message.SenderID)
	req.Equal("bob", message.ReceiverID)
	req.False(message.UpdatedAt.IsZero())
}
