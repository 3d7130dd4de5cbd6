package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"skillflow/domain"
	"skillflow/errors"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMessage(senderID, receiverID, text string, at time.Time) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Status:     domain.StatusSent,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
}

func TestMessageRepository_Conversation_Is_Chronological_Both_Directions(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	stored := []domain.Message{
		newMessage("alice", "bob", "hi bob", at),
		newMessage("bob", "alice", "hi alice", at.Add(1*time.Minute)),
		newMessage("alice", "bob", "how are you?", at.Add(2*time.Minute)),
	}
	for _, message := range stored {
		req.NoError(repository.StoreMessage(message))
	}
	// An unrelated conversation must not bleed in
	req.NoError(repository.StoreMessage(newMessage("alice", "carol", "psst", at)))

	// When fetching the conversation from either side
	fetched, err := repository.Conversation("bob", "alice")
	req.NoError(err)

	// Then both directions come back, oldest first
	req.Equal(stored, fetched)
}

func TestMessageRepository_Ids_With_Key_Delimiters_Stay_Isolated(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	// Given a conversation with a user whose id contains a key delimiter
	secret := newMessage("alice", "bob:1", "for bob:1 only", time.Now().UTC())
	req.NoError(repository.StoreMessage(secret))

	// Then the (alice, bob) conversation never sees it
	leaked, err := repository.Conversation("alice", "bob")
	req.NoError(err)
	req.Empty(leaked)

	// And reading (alice, bob) never flips its status
	updated, err := repository.MarkConversationRead("alice", "bob")
	req.NoError(err)
	req.Zero(updated)

	// While its own conversation still works end to end
	fetched, err := repository.Conversation("bob:1", "alice")
	req.NoError(err)
	req.Equal([]domain.Message{secret}, fetched)

	updated, err = repository.MarkConversationRead("alice", "bob:1")
	req.NoError(err)
	req.Equal(1, updated)
}

func TestMessageRepository_MarkConversationRead_Only_One_Direction(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	fromAlice := newMessage("alice", "bob", "one", at)
	fromBob := newMessage("bob", "alice", "two", at.Add(time.Minute))
	req.NoError(repository.StoreMessage(fromAlice))
	req.NoError(repository.StoreMessage(fromBob))

	// When bob reads alice's messages
	updated, err := repository.MarkConversationRead("alice", "bob")
	req.NoError(err)
	req.Equal(1, updated)

	// Then only the alice->bob direction flipped
	messages, err := repository.Conversation("alice", "bob")
	req.NoError(err)
	byID := lo.KeyBy(messages, func(m domain.Message) uuid.UUID { return m.ID })
	req.Equal(domain.StatusRead, byID[fromAlice.ID].Status)
	req.Equal(domain.StatusSent, byID[fromBob.ID].Status)

	// And reading again is a no-op
	updated, err = repository.MarkConversationRead("alice", "bob")
	req.NoError(err)
	req.Zero(updated)
}

func TestMessageRepository_SoftDelete_Keeps_The_Record(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message := newMessage("alice", "bob", "delete me", time.Now().UTC())
	message.Image = "/cat.png"
	req.NoError(repository.StoreMessage(message))

	// When the message is soft-deleted
	deleted, err := repository.SoftDelete(message.ID)
	req.NoError(err)

	// Then content is cleared but the record and addressing survive
	req.True(deleted.IsDeleted)
	req.NotEqual("delete me", deleted.Text)
	req.Empty(deleted.Image)
	req.Equal("alice", deleted.SenderID)
	req.Equal("bob", deleted.ReceiverID)

	// And the conversation still holds its slot
	messages, err := repository.Conversation("alice", "bob")
	req.NoError(err)
	req.Len(messages, 1)
	req.True(messages[0].IsDeleted)

	// And deleting twice is rejected
	_, err = repository.SoftDelete(message.ID)
	req.ErrorIs(err, errors.ErrMessageAlreadyGone)
}

func TestMessageRepository_SoftDelete_Missing_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	_, err := repository.SoftDelete(uuid.New())
	req.ErrorIs(err, errors.ErrMessageNotFound)
}

func TestMessageRepository_Deleted_Messages_Are_Never_Marked_Read(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message := newMessage("alice", "bob", "gone", time.Now().UTC())
	req.NoError(repository.StoreMessage(message))
	_, err := repository.SoftDelete(message.ID)
	req.NoError(err)

	updated, err := repository.MarkConversationRead("alice", "bob")
	req.NoError(err)
	req.Zero(updated)
}

func TestMessageRepository_GetMessage_Roundtrip(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message := newMessage("alice", "bob", "findable", time.Now().UTC())
	req.NoError(repository.StoreMessage(message))

	fetched, err := repository.GetMessage(message.ID)
	req.NoError(err)
	req.Equal(message, fetched)
}
