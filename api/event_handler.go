package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	eventRepo *database.EventRepo
}

func newEventHandler(eventRepo *database.EventRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()

	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		eventRepo: eventRepo,
	}
}

// EventCollection represents multiple events with a total count
type EventCollection struct {
	Events []*models.Event `json:"events"`
	Total  int             `json:"total"`
}

func eventFilterFromQuery(r *http.Request) (database.EventFilter, error) {
	var filter database.EventFilter
	q := r.URL.Query()

	if raw := q.Get("eventType"); raw != "" {
		eventType, err := models.ParseEventType(raw)
		if err != nil {
			return filter, err
		}
		filter.EventType = &eventType
	}
	if raw := q.Get("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}
	if raw := q.Get("published"); raw != "" {
		published := raw == "true"
		filter.Published = &published
	}
	filter.Future = q.Get("future") == "true"
	filter.Past = q.Get("past") == "true"
	filter.Search = q.Get("search")

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, errs.NewInvalidFieldError("limit", "must be a non-negative integer")
		}
		filter.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, errs.NewInvalidFieldError("offset", "must be a non-negative integer")
		}
		filter.Offset = offset
	}

	return filter, nil
}

// getAllEvents retrieves events for the dashboard with optional filters
func (h eventHandler) getAllEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := eventFilterFromQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		events, err := h.eventRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, EventCollection{Events: events, Total: len(events)})
	}
}

// getPublishedEvents retrieves published events for the public site
func (h eventHandler) getPublishedEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := eventFilterFromQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		published := true
		filter.Published = &published

		events, err := h.eventRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, EventCollection{Events: events, Total: len(events)})
	}
}

// getEvent retrieves a specific event by ID
func (h eventHandler) getEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// getEventBySlug retrieves a published event by slug for the public site
func (h eventHandler) getEventBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		event, err := h.eventRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !event.IsPublished {
			h.responder.WriteError(w, errs.NewNotFound("event"))
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// createEvent creates a new event. The slug must be unique across events.
func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.EventInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("event", err))
			return
		}

		event, err := h.eventRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, event)
	}
}

// updateEvent updates an existing event
func (h eventHandler) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.EventInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("event", err))
			return
		}

		event, err := h.eventRepo.Update(eventID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// deleteEvent deletes an event by ID
func (h eventHandler) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.eventRepo.Delete(eventID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "event deleted successfully",
		})
	}
}

// toggleFeatured sets the event's featured flag
func (h eventHandler) toggleFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("toggle", err))
			return
		}

		event, err := h.eventRepo.SetFeatured(eventID, payload.Value)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// togglePublished sets the event's published flag
func (h eventHandler) togglePublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("toggle", err))
			return
		}

		event, err := h.eventRepo.SetPublished(eventID, payload.Value)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, event)
	}
}
