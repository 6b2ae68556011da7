package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Jer-romano/messagely/internal/service"
	"github.com/Jer-romano/messagely/internal/transport/http/middleware"
	"github.com/Jer-romano/messagely/pkg/validator"
)

type MessageHandler struct {
	msgService *service.MessageService
}

func NewMessageHandler(msgService *service.MessageService) *MessageHandler {
	return &MessageHandler{msgService: msgService}
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	from := middleware.GetUsername(r.Context())

	var input struct {
		ToUsername string `json:"to_username"`
		Body       string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateMessage(input.ToUsername, input.Body); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	msg, err := h.msgService.Send(r.Context(), from, input.ToUsername, input.Body)
	if err != nil {
		if errors.Is(err, service.ErrRecipientNotFound) {
			writeError(w, http.StatusNotFound, "RECIPIENT_NOT_FOUND", "Recipient does not exist")
		} else {
			log.Printf("ERROR send message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": msg})
}

func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	requester := middleware.GetUsername(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid message ID")
		return
	}

	msg, err := h.msgService.Get(r.Context(), requester, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Message not found")
		case errors.Is(err, service.ErrNotParticipant):
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Only the sender or recipient can view this message")
		default:
			log.Printf("ERROR get message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": msg})
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	requester := middleware.GetUsername(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid message ID")
		return
	}

	msg, err := h.msgService.MarkRead(r.Context(), requester, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Message not found")
		case errors.Is(err, service.ErrNotRecipient):
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Only the recipient can mark this message read")
		default:
			log.Printf("ERROR mark message read: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": msg})
}
