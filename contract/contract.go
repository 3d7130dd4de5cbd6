//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"skillflow/domain/event"
)

// EventSink is the delivery endpoint of one live session.
// Implementations must never block longer than the context allows.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// SessionSink pairs a sink with the session that owns it, so broadcasters
// can exclude the originating session from a fan-out.
type SessionSink struct {
	SessionID string
	Sink      EventSink
}

type IRegistry interface {
	Register(userID, sessionID string, sink EventSink)
	Unregister(userID, sessionID string)
	ListOnlineUserIDs() []string
	IsOnline(userID string) bool
	SinksForUser(userID string) []EventSink
	AllSinks() []SessionSink
}

// IBroadcaster routes one event to a set of live sessions. Addressing a user
// with zero sessions is a silent no-op, never an error.
type IBroadcaster interface {
	EmitToUser(ctx context.Context, userID string, e event.Event)
	EmitToAll(ctx context.Context, e event.Event)
	EmitToAllExcept(ctx context.Context, sessionID string, e event.Event)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
