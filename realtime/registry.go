// Package realtime handles session tracking, presence propagation, and
// event fan-out to connected devices. It orchestrates delivery without
// containing persistence or transport logic.
package realtime

import (
	"sync"

	"github.com/samber/lo"

	"skillflow/contract"
)

type Set map[string]struct{}

// SessionRegistry maps a logical user to the set of currently connected
// sessions (devices/tabs). A userID key exists iff its set is non-empty,
// which makes "online" membership equal to "has a key in the map".
// State is never persisted; presence resets on process restart.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Set                // userID -> session ids
	sinks    map[string]contract.EventSink // sessionID -> delivery endpoint
	owners   map[string]string             // sessionID -> userID ("" if anonymous)
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]Set),
		sinks:    make(map[string]contract.EventSink),
		owners:   make(map[string]string),
	}
}

// Register admits a session. Anonymous sessions (empty userID) keep their
// sink so global broadcasts still reach them, but never join the presence
// map. Registering the same pair twice is idempotent.
func (r *SessionRegistry) Register(userID, sessionID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sinks[sessionID] = sink
	r.owners[sessionID] = userID

	if userID == "" {
		return
	}
	if _, ok := r.sessions[userID]; !ok {
		r.sessions[userID] = make(Set)
	}
	r.sessions[userID][sessionID] = struct{}{}
}

// Unregister evicts a session on disconnect. When the last session of a
// user goes away, the user entry is removed entirely so no empty sets are
// left dangling. Unknown sessions are a no-op.
func (r *SessionRegistry) Unregister(userID, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sinks, sessionID)
	delete(r.owners, sessionID)

	if userID == "" {
		return
	}
	if members, ok := r.sessions[userID]; ok {
		delete(members, sessionID)
		if len(members) == 0 {
			delete(r.sessions, userID)
		}
	}
}

// ListOnlineUserIDs returns the distinct users with at least one live
// session. Order is unspecified.
func (r *SessionRegistry) ListOnlineUserIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.sessions)
}

func (r *SessionRegistry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[userID]
	return ok
}

// SinksForUser resolves every live session of a user into its sink.
// Returns nil when the user has no session, which callers treat as a
// silent no-op.
func (r *SessionRegistry) SinksForUser(userID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.sessions[userID]
	if !ok {
		return nil
	}
	var sinks []contract.EventSink
	for sessionID := range members {
		if sink, exists := r.sinks[sessionID]; exists {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

// AllSinks snapshots every connected session, anonymous ones included.
func (r *SessionRegistry) AllSinks() []contract.SessionSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]contract.SessionSink, 0, len(r.sinks))
	for sessionID, sink := range r.sinks {
		sinks = append(sinks, contract.SessionSink{SessionID: sessionID, Sink: sink})
	}
	return sinks
}
