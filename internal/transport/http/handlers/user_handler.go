package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Jer-romano/messagely/internal/service"
	"github.com/Jer-romano/messagely/internal/transport/http/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list users: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	user, err := h.userService.Get(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		} else {
			log.Printf("ERROR get user: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// MessagesFrom lists messages the user sent. Only that user may ask.
func (h *UserHandler) MessagesFrom(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if middleware.GetUsername(r.Context()) != username {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "You can only view your own messages")
		return
	}

	messages, err := h.userService.MessagesFrom(r.Context(), username)
	if err != nil {
		h.writeListError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// MessagesTo lists messages the user received. Only that user may ask.
func (h *UserHandler) MessagesTo(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if middleware.GetUsername(r.Context()) != username {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "You can only view your own messages")
		return
	}

	messages, err := h.userService.MessagesTo(r.Context(), username)
	if err != nil {
		h.writeListError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (h *UserHandler) writeListError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	log.Printf("ERROR list messages: %v", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
}
