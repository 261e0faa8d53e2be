package api

import (
	"encoding/json"
	"net/http"

	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"github.com/mindhaven-org/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactMessageRepo
	notifier    services.Notifier
}

func newContactHandler(contactRepo *database.ContactMessageRepo, notifier services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// ContactMessageCollection represents multiple contact messages with a
// total count
type ContactMessageCollection struct {
	Messages []*models.ContactMessage `json:"messages"`
	Total    int                      `json:"total"`
}

// createContactMessage stores a message from the public contact form and
// notifies staff out of band
func (h contactHandler) createContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.ContactMessageInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact message request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact message", err))
			return
		}

		message, err := h.contactRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Notification failure must not fail the submission
		go h.notifier.NotifyContactMessage(message)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}

// getAllContactMessages retrieves contact messages for the dashboard,
// optionally only unread ones
func (h contactHandler) getAllContactMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unreadOnly := r.URL.Query().Get("unread") == "true"

		messages, err := h.contactRepo.FindAll(unreadOnly)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ContactMessageCollection{Messages: messages, Total: len(messages)})
	}
}

// markRead marks a contact message as read
func (h contactHandler) markRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseIDParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.contactRepo.MarkRead(messageID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

// deleteContactMessage deletes a contact message by ID
func (h contactHandler) deleteContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseIDParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.contactRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
