package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"skillflow/domain"
	"skillflow/services"
)

// Server upgrades HTTP requests to websocket sessions and pumps events in
// both directions. Inbound frames are decoded, validated, and dispatched to
// the service; outbound events arrive on the session's sink and are written
// as envelopes. Handler failures are logged and never surfaced to the
// client: the socket is a best-effort acceleration path.
type Server struct {
	log        *slog.Logger
	service    services.IRealtimeService
	upgrader   websocket.Upgrader
	bufferSize int
}

func NewServer(log *slog.Logger, service services.IRealtimeService,
	allowedOrigins []string, bufferSize int) *Server {
	return &Server{
		log:        log,
		service:    service,
		upgrader:   newUpgrader(allowedOrigins),
		bufferSize: bufferSize,
	}
}

func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowedMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		allowedMap[origin] = true
	}

	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedMap) == 0 {
				return true
			}
			return allowedMap[r.Header.Get("Origin")]
		},
	}
}

// Handle serves GET /ws?userId=...
// No token is validated here; identification is by query parameter, and a
// missing or literal "undefined" userId admits the connection anonymously.
func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	userID := r.URL.Query().Get("userId")
	if userID == "undefined" {
		userID = ""
	}
	session := domain.Session{ID: uuid.NewString(), UserID: userID}

	ctx := r.Context()
	sink := NewSink(s.bufferSize)
	s.service.Connect(ctx, session, sink)
	defer s.service.Disconnect(ctx, session)

	done := make(chan struct{})
	defer close(done)
	go s.writePump(conn, sink, done)

	s.readLoop(ctx, conn, session)
}

// writePump drains the session sink into the connection. A write error
// closes the connection, which in turn unblocks the read loop.
func (s *Server) writePump(conn *websocket.Conn, sink *Sink, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case evt := <-sink.Events:
			envelope, err := NewEnvelope(evt.EventName(), evt)
			if err != nil {
				s.log.Error("Failed to encode outbound event",
					"event", evt.EventName(), "error", err)
				continue
			}
			if err := conn.WriteJSON(envelope); err != nil {
				conn.Close()
				return
			}
		}
	}
}

// readLoop blocks until the client disconnects or a network error occurs.
func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, session domain.Session) {
	for {
		var envelope Envelope
		if err := conn.ReadJSON(&envelope); err != nil {
			s.log.Debug(fmt.Sprintf("Client %s disconnected", session.ID), "user_id", session.UserID)
			return
		}
		s.dispatch(ctx, session, envelope)
	}
}

// dispatch routes one inbound frame. Malformed frames and handler errors
// are logged and skipped, never fatal to the connection.
func (s *Server) dispatch(ctx context.Context, session domain.Session, envelope Envelope) {
	var err error
	switch envelope.Event {
	case "typing":
		var cmd domain.TypingCommand
		if cmd, err = decode[domain.TypingCommand](envelope.Data); err == nil {
			s.service.HandleTyping(ctx, cmd)
		}
	case "stopTyping":
		var cmd domain.TypingCommand
		if cmd, err = decode[domain.TypingCommand](envelope.Data); err == nil {
			s.service.HandleStopTyping(ctx, cmd)
		}
	case "markAsRead":
		var cmd domain.MarkAsReadCommand
		if cmd, err = decode[domain.MarkAsReadCommand](envelope.Data); err == nil {
			err = s.service.HandleMarkAsRead(ctx, cmd)
		}
	case "updateProfile":
		var user domain.User
		if unmarshalErr := json.Unmarshal(envelope.Data, &user); unmarshalErr != nil {
			err = unmarshalErr
		} else if user.ID == "" {
			err = fmt.Errorf("updateProfile payload has no user id")
		} else {
			s.service.HandleUpdateProfile(ctx, session.ID, user)
		}
	case "deleteMessage":
		var cmd domain.DeleteMessageCommand
		if cmd, err = decode[domain.DeleteMessageCommand](envelope.Data); err == nil {
			err = s.service.HandleDeleteMessage(ctx, cmd)
		}
	default:
		s.log.Debug(fmt.Sprintf("Ignoring unknown event %q", envelope.Event))
	}

	if err != nil {
		s.log.Warn(fmt.Sprintf("Handler failed for %q event", envelope.Event),
			"session_id", session.ID, "user_id", session.UserID, "error", err)
	}
}

// decode unmarshals a payload and validates its required fields at the
// boundary, so handlers never see half-filled commands.
func decode[T any](data json.RawMessage) (T, error) {
	var cmd T
	if err := json.Unmarshal(data, &cmd); err != nil {
		return cmd, err
	}
	if err := domain.Validate(cmd); err != nil {
		return cmd, err
	}
	return cmd, nil
}
