//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"skillflow/domain"
	"skillflow/errors"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessage(id uuid.UUID) (domain.Message, error)
	Conversation(userA, userB string) ([]domain.Message, error)
	MarkConversationRead(senderID, receiverID string) (int, error)
	SoftDelete(id uuid.UUID) (domain.Message, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// keyEscaper percent-escapes the key delimiters inside user ids. Ids are
// arbitrary client-supplied strings, and an unescaped ":" would make one
// conversation's scan prefix a prefix of another's.
var keyEscaper = strings.NewReplacer("%", "%25", ":", "%3A", "|", "%7C")

// conversationKey is direction-free: both halves of a direct conversation
// share one prefix, so a single scan covers both directions.
func conversationKey(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return keyEscaper.Replace(userA) + "|" + keyEscaper.Replace(userB)
}

// messageKey is formatted as "msg:{conversation}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func messageKey(message domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s",
		conversationKey(message.SenderID, message.ReceiverID),
		message.CreatedAt.UnixNano(),
		message.ID,
	))
}

// refKey indexes a message by id alone, pointing at its full key.
// Status updates and deletions resolve through it.
func refKey(id uuid.UUID) []byte {
	return []byte("msgref:" + id.String())
}

// StoreMessage persists a message under its conversation key and writes the
// id index in the same transaction.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	key := messageKey(message)
	bytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(refKey(message.ID), key)
	})
}

func (m MessageRepository) GetMessage(id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		var innerErr error
		message, innerErr = resolveMessage(txn, id)
		return innerErr
	})
	return message, err
}

// Conversation retrieves all messages between two users, oldest first.
// Thanks to the padded timestamp in the key, messages are naturally sorted
// by time during the prefix scan.
func (m MessageRepository) Conversation(userA, userB string) ([]domain.Message, error) {
	var messages []domain.Message
	prefix := []byte(fmt.Sprintf("msg:%s:", conversationKey(userA, userB)))

	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var message domain.Message
				if err := json.Unmarshal(value, &message); err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return messages, err
}

// MarkConversationRead bulk-updates every non-deleted message sent by
// senderID to receiverID whose status is not yet read. Setting read on an
// already-read conversation is a no-op, so duplicate triggering from two
// devices of the same reader is safe. Returns how many records changed.
func (m MessageRepository) MarkConversationRead(senderID, receiverID string) (int, error) {
	type record struct {
		key   []byte
		value []byte
	}
	var updates []record
	prefix := []byte(fmt.Sprintf("msg:%s:", conversationKey(senderID, receiverID)))

	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			var message domain.Message
			err := item.Value(func(value []byte) error {
				return json.Unmarshal(value, &message)
			})
			if err != nil {
				return err
			}
			if message.SenderID != senderID || message.Status == domain.StatusRead || message.IsDeleted {
				continue
			}

			message.Status = domain.StatusRead
			message.UpdatedAt = time.Now().UTC()
			bytes, err := json.Marshal(message)
			if err != nil {
				return err
			}
			updates = append(updates, record{key: item.KeyCopy(nil), value: bytes})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(updates) == 0 {
		return 0, nil
	}

	// A WriteBatch splits the commit internally, so a conversation larger
	// than one transaction never fails with ErrTxnTooBig. Marking an
	// already-read message again is a no-op, so the scan and the writes
	// need not share a transaction.
	batch := m.db.NewWriteBatch()
	defer batch.Cancel()
	for _, update := range updates {
		if err := batch.Set(update.key, update.value); err != nil {
			return 0, err
		}
	}
	if err := batch.Flush(); err != nil {
		return 0, err
	}
	return len(updates), nil
}

// SoftDelete clears the message content and flags it deleted, keeping the
// record in place. Returns the updated record so callers can address the
// deletion fan-out from the authoritative sender/receiver pair.
func (m MessageRepository) SoftDelete(id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := m.db.Update(func(txn *badger.Txn) error {
		var innerErr error
		message, innerErr = resolveMessage(txn, id)
		if innerErr != nil {
			return innerErr
		}
		if message.IsDeleted {
			return errors.ErrMessageAlreadyGone
		}

		message.SoftDelete()
		bytes, innerErr := json.Marshal(message)
		if innerErr != nil {
			return innerErr
		}
		return txn.Set(messageKey(message), bytes)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// resolveMessage follows the id index to the full record.
func resolveMessage(txn *badger.Txn, id uuid.UUID) (domain.Message, error) {
	refItem, err := txn.Get(refKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	if err != nil {
		return domain.Message{}, err
	}

	var key []byte
	if err = refItem.Value(func(value []byte) error {
		key = append(key, value...)
		return nil
	}); err != nil {
		return domain.Message{}, err
	}

	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	if err != nil {
		return domain.Message{}, err
	}

	var message domain.Message
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &message)
	})
	return message, err
}
