package realtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"skillflow/domain/event"
)

type nopSink struct{}

func (nopSink) Consume(_ context.Context, _ event.Event) error { return nil }

func TestSessionRegistry_Register_One_User_One_Session(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	userID := uuid.NewString()
	sessionID := uuid.NewString()
	sink := nopSink{}

	// Given no user is connected
	req.Empty(registry.ListOnlineUserIDs())
	req.False(registry.IsOnline(userID))

	// When a session registers
	registry.Register(userID, sessionID, sink)

	// Then the user is online with exactly one sink
	req.True(registry.IsOnline(userID))
	req.Equal([]string{userID}, registry.ListOnlineUserIDs())
	req.Len(registry.SinksForUser(userID), 1)
	req.Len(registry.AllSinks(), 1)
}

func TestSessionRegistry_Register_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	userID := uuid.NewString()
	sessionID := uuid.NewString()

	// When the same pair registers twice
	registry.Register(userID, sessionID, nopSink{})
	registry.Register(userID, sessionID, nopSink{})

	// Then nothing is duplicated
	req.Len(registry.ListOnlineUserIDs(), 1)
	req.Len(registry.SinksForUser(userID), 1)
	req.Len(registry.AllSinks(), 1)
}

func TestSessionRegistry_Multiple_Devices_Same_User(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	userID := uuid.NewString()
	session1 := uuid.NewString()
	session2 := uuid.NewString()

	// When two devices of the same user register
	registry.Register(userID, session1, nopSink{})
	registry.Register(userID, session2, nopSink{})

	// Then the user appears once but owns two sinks
	req.Equal([]string{userID}, registry.ListOnlineUserIDs())
	req.Len(registry.SinksForUser(userID), 2)
}

func TestSessionRegistry_Unregister_Last_Session_Removes_User(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	userID := uuid.NewString()
	sessionID := uuid.NewString()

	// Given one registered session
	registry.Register(userID, sessionID, nopSink{})

	// When it unregisters
	registry.Unregister(userID, sessionID)

	// Then no trace of the user remains
	req.False(registry.IsOnline(userID))
	req.Empty(registry.ListOnlineUserIDs())
	req.Nil(registry.SinksForUser(userID))
	req.Empty(registry.AllSinks())
}

func TestSessionRegistry_Unregister_Non_Last_Session_Keeps_User_Online(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	userID := uuid.NewString()
	session1 := uuid.NewString()
	session2 := uuid.NewString()

	// Given two devices of the same user
	registry.Register(userID, session1, nopSink{})
	registry.Register(userID, session2, nopSink{})

	// When one device disconnects
	registry.Unregister(userID, session1)

	// Then the user stays online through the other device
	req.True(registry.IsOnline(userID))
	req.Len(registry.SinksForUser(userID), 1)
}

func TestSessionRegistry_Register_Unregister_Balance(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	userID := uuid.NewString()

	// For any sequence of register/unregister, online iff
	// registrations minus unregistrations > 0
	var sessions []string
	for i := 0; i < 5; i++ {
		sessionID := uuid.NewString()
		sessions = append(sessions, sessionID)
		registry.Register(userID, sessionID, nopSink{})
		req.True(registry.IsOnline(userID))
	}
	for i, sessionID := range sessions {
		registry.Unregister(userID, sessionID)
		req.Equal(i < len(sessions)-1, registry.IsOnline(userID))
	}

	// Unregistering once more must not leak a negative count
	registry.Unregister(userID, uuid.NewString())
	req.False(registry.IsOnline(userID))
	req.Empty(registry.ListOnlineUserIDs())
}

func TestSessionRegistry_Anonymous_Session_Excluded_From_Presence(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	sessionID := uuid.NewString()

	// When a session registers without a user
	registry.Register("", sessionID, nopSink{})

	// Then it receives broadcasts but is never online
	req.Empty(registry.ListOnlineUserIDs())
	req.Len(registry.AllSinks(), 1)

	// And unregistering it is a clean no-op on presence
	registry.Unregister("", sessionID)
	req.Empty(registry.AllSinks())
}
