// Package httpapi exposes the request/response surface that drives the
// realtime core: message send/fetch/delete, follow toggling, and profile
// updates. Handlers commit persistence through the service and let it fan
// the outcome out; no realtime logic lives here.
package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"skillflow/domain"
	"skillflow/errors"
	"skillflow/services"
)

type Handler struct {
	log     *slog.Logger
	service services.IRealtimeService
}

func NewHandler(log *slog.Logger, service services.IRealtimeService) *Handler {
	return &Handler{log: log, service: service}
}

// Router wires all routes, including the websocket upgrade endpoint.
func (h *Handler) Router(wsHandler http.HandlerFunc, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/ws", wsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/messages", h.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/api/messages/{myId}/{partnerId}", h.GetConversation).Methods(http.MethodGet)
	r.HandleFunc("/api/messages/{id}", h.DeleteMessage).Methods(http.MethodDelete)
	r.HandleFunc("/api/users", h.RegisterUser).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{id}/follow", h.ToggleFollow).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{id}", h.UpdateProfile).Methods(http.MethodPut)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var cmd domain.SendMessageCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	message, err := h.service.SendMessage(r.Context(), cmd)
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusCreated, message)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messages, err := h.service.GetConversation(r.Context(), vars["myId"], vars["partnerId"])
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	h.writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMessage(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.RegisterUser(r.Context(), user)
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MyID string `json:"myId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	toggle, err := h.service.ToggleFollow(r.Context(), domain.ToggleFollowCommand{
		ActorID:  body.MyID,
		TargetID: mux.Vars(r)["id"],
	})
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}

	status := "none"
	if toggle.NowFollowing {
		status = "following"
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	user.ID = mux.Vars(r)["id"]

	updated, err := h.service.UpdateProfile(r.Context(), user)
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}
	switch {
	case stderrors.Is(err, errors.ErrMessageNotFound), stderrors.Is(err, errors.ErrUserNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrUserAlreadyExists):
		return http.StatusConflict
	case stderrors.Is(err, errors.ErrEmptyMessage),
		stderrors.Is(err, errors.ErrAttachmentMismatch),
		stderrors.Is(err, errors.ErrSelfFollow),
		stderrors.Is(err, errors.ErrMessageAlreadyGone):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
