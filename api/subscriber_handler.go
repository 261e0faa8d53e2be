package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type subscriberHandler struct {
	responder      Responder
	logger         zerolog.Logger
	subscriberRepo *database.SubscriberRepo
}

func newSubscriberHandler(subscriberRepo *database.SubscriberRepo) subscriberHandler {
	logger := log.With().Str("handlerName", "subscriberHandler").Logger()

	return subscriberHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		subscriberRepo: subscriberRepo,
	}
}

// SubscriberCollection represents multiple subscribers with a total count
type SubscriberCollection struct {
	Subscribers []*models.Subscriber `json:"subscribers"`
	Total       int                  `json:"total"`
}

// subscribe registers a newsletter subscriber from the public site
func (h subscriberHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.SubscriberInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode subscriber request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("subscriber", err))
			return
		}

		subscriber, err := h.subscriberRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, subscriber)
	}
}

// getAllSubscribers retrieves subscribers for the dashboard with optional filters
func (h subscriberHandler) getAllSubscribers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter database.SubscriberFilter
		q := r.URL.Query()

		if raw := q.Get("active"); raw != "" {
			active := raw == "true"
			filter.Active = &active
		}
		filter.Search = q.Get("search")
		if raw := q.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("limit", "must be a non-negative integer"))
				return
			}
			filter.Limit = limit
		}
		if raw := q.Get("offset"); raw != "" {
			offset, err := strconv.Atoi(raw)
			if err != nil || offset < 0 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("offset", "must be a non-negative integer"))
				return
			}
			filter.Offset = offset
		}

		subscribers, err := h.subscriberRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, SubscriberCollection{Subscribers: subscribers, Total: len(subscribers)})
	}
}

// updateSubscriber updates a subscriber's email, name, status or preferences
func (h subscriberHandler) updateSubscriber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscriberID, err := parseIDParam(r, "subscriberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.SubscriberInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode subscriber request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("subscriber", err))
			return
		}

		subscriber, err := h.subscriberRepo.Update(subscriberID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, subscriber)
	}
}

// deleteSubscriber deletes a subscriber by ID
func (h subscriberHandler) deleteSubscriber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscriberID, err := parseIDParam(r, "subscriberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.subscriberRepo.Delete(subscriberID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "subscriber deleted successfully",
		})
	}
}
