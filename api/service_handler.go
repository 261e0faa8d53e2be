package api

import (
	"encoding/json"
	"net/http"

	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/mindhaven-org/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type serviceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceRepo *database.ServiceRepo
}

func newServiceHandler(serviceRepo *database.ServiceRepo) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceRepo: serviceRepo,
	}
}

// ServiceCollection represents multiple service offerings with a total count
type ServiceCollection struct {
	Services []*models.Service `json:"services"`
	Total    int               `json:"total"`
}

// getAllServices retrieves every service offering
func (h serviceHandler) getAllServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.serviceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ServiceCollection{Services: services, Total: len(services)})
	}
}

// createService creates a new service offering
func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.ServiceInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode service request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("service", err))
			return
		}

		service, err := h.serviceRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, service)
	}
}

// updateService updates an existing service offering
func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseIDParam(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.ServiceInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode service request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("service", err))
			return
		}

		service, err := h.serviceRepo.Update(serviceID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, service)
	}
}

// deleteService deletes a service offering by ID
func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseIDParam(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.serviceRepo.Delete(serviceID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "service deleted successfully",
		})
	}
}
