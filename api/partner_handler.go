package api

import (
	"encoding/json"
	"net/http"

	"github.com/mindhaven-org/backend/database"
	"github.com/mindhaven-org/backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// partnerHandler serves the organization showcase content: partners, the
// hall of fame and success stories
type partnerHandler struct {
	responder        Responder
	logger           zerolog.Logger
	partnerRepo      *database.PartnerRepo
	hallOfFameRepo   *database.HallOfFameRepo
	successStoryRepo *database.SuccessStoryRepo
}

func newPartnerHandler(partnerRepo *database.PartnerRepo, hallOfFameRepo *database.HallOfFameRepo, successStoryRepo *database.SuccessStoryRepo) partnerHandler {
	logger := log.With().Str("handlerName", "partnerHandler").Logger()

	return partnerHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		partnerRepo:      partnerRepo,
		hallOfFameRepo:   hallOfFameRepo,
		successStoryRepo: successStoryRepo,
	}
}

func (h partnerHandler) getAllPartners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partners, err := h.partnerRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, partners)
	}
}

func (h partnerHandler) createPartner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.PartnerInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode partner request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("partner", err))
			return
		}

		partner, err := h.partnerRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, partner)
	}
}

func (h partnerHandler) updatePartner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerID, err := parseIDParam(r, "partnerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.PartnerInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode partner request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("partner", err))
			return
		}

		partner, err := h.partnerRepo.Update(partnerID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, partner)
	}
}

func (h partnerHandler) deletePartner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerID, err := parseIDParam(r, "partnerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.partnerRepo.Delete(partnerID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "partner deleted successfully",
		})
	}
}

func (h partnerHandler) getAllHallOfFame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.hallOfFameRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, entries)
	}
}

func (h partnerHandler) createHallOfFame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.HallOfFameInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode hall of fame request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("hall of fame entry", err))
			return
		}

		entry, err := h.hallOfFameRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, entry)
	}
}

func (h partnerHandler) updateHallOfFame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := parseIDParam(r, "entryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.HallOfFameInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode hall of fame request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("hall of fame entry", err))
			return
		}

		entry, err := h.hallOfFameRepo.Update(entryID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, entry)
	}
}

func (h partnerHandler) deleteHallOfFame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := parseIDParam(r, "entryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.hallOfFameRepo.Delete(entryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "hall of fame entry deleted successfully",
		})
	}
}

func (h partnerHandler) getAllSuccessStories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stories, err := h.successStoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stories)
	}
}

func (h partnerHandler) createSuccessStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input database.SuccessStoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode success story request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("success story", err))
			return
		}

		story, err := h.successStoryRepo.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, story)
	}
}

func (h partnerHandler) updateSuccessStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := parseIDParam(r, "storyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input database.SuccessStoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode success story request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("success story", err))
			return
		}

		story, err := h.successStoryRepo.Update(storyID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, story)
	}
}

func (h partnerHandler) deleteSuccessStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := parseIDParam(r, "storyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.successStoryRepo.Delete(storyID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "success story deleted successfully",
		})
	}
}
